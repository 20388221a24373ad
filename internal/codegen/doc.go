// Package codegen turns a validated agent definition into the Python source
// that bootstraps an A2A agent server. Emission is a pure function: the same
// definition always produces byte-identical output. Callers must run
// agentdef.Validate first; codegen itself never rejects input.
package codegen
