// Package hcl provides the concrete implementation of the config.Loader
// interface. Files ending in .hcl are read with the native HCL syntax, where
// only top-level literal attributes are accepted. Everything else is JSON:
// values are decoded verbatim with encoding/json and the HCL JSON parser
// reports positioned diagnostics when decoding fails.
package hcl
