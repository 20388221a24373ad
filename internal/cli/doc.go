// Package cli defines the Cobra command tree for the a2agen CLI. Each file in
// this package registers one top-level command (generate, validate, init, ...)
// with the root command. Command implementations delegate to internal packages
// for the model, validation, and emission logic and only handle flag parsing,
// I/O, and user-facing formatting.
package cli
