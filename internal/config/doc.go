// Package config defines the format-agnostic settings model for the
// application, the Configuration Store that holds user-supplied setting
// values, and the Loader interface for reading settings from files.
//
// The `config.Store` is the single source of truth for committed setting
// values. It is filled with the `user` defaults of a `config.Settings` at
// startup and mutated only by the settings verifier. Concrete Loader
// implementations, such as for HCL, are provided in separate packages.
package config
