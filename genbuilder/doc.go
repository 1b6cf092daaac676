// Package genbuilder constructs synthetic PCP instances for tests and
// benchmarks, in the functional-option style of lvlath/builder: options
// resolve into an immutable config before any topology is built, and every
// constructor is deterministic for the same config.
package genbuilder
