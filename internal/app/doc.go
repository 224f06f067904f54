// Package app contains the core application logic. It defines the App
// struct, the parsed run arguments, and the bootstrap lifecycle of a
// training run (logger, configuration, workload), decoupled from any
// specific entrypoint like a CLI.
package app
