// Package config defines the format-agnostic configuration document consumed
// by a training run, the Loader interface that produces it, and the Saver
// that persists a copy of it next to the run's outputs.
//
// A Document is opaque to this package: it keeps attribute order and holds
// every value in its encoding/json form. Loaders producing cty values store
// them through Document.Set. Concrete loaders, such as the HCL/JSON one, live
// in separate packages.
package config
