// Package scaffold generates starter agent definition files from an embedded
// template. It powers the "a2agen init" command, producing an agent.yaml that
// already passes schema and semantic validation so the first generate run
// succeeds out of the box.
package scaffold
