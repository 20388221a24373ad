// Package agentdef holds the in-memory model of an A2A agent definition:
// the agent card, optional extended card, server wiring, and peer
// relationships. It parses definitions from YAML, checks them against an
// embedded JSON Schema, and runs the canonical semantic validation that
// gates code generation.
package agentdef
