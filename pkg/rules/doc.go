// Package rules holds the declarative validator spec table: an immutable
// mapping from a rule symbol to everything the engine needs to validate that
// token family, including kind dispatch (regex or checksum), schema.org
// metadata for JSON-LD emission, a human-readable error message, and the
// valid/invalid example corpus that keeps documentation and implementation
// provably in sync.
//
// The table is built once at process start and is read-only afterwards.
// Adding a rule means adding a Spec literal; no code generation or
// per-rule types are involved.
package rules
