// Package hcl provides the concrete HCL implementation of the settings
// Loader interface defined in the `config` package. It is responsible for
// file discovery, HCL parsing and decoding, and CTY-to-Go value conversion.
package hcl
