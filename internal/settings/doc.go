// Package settings implements the interactive settings verifier.
//
// A Verifier asks the user for one named setting at a time, checks the
// answer against the rule selected by the request's Kind, and re-prompts
// with a short diagnostic until the answer is acceptable. Accepted values
// are committed into a config.Store; rejected input never reaches it.
//
// Input, output and the filesystem are injected so the prompt loop can be
// driven by scripted input in tests.
package settings
