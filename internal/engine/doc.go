// Package engine validates programmatic trading report rows against a
// schema variant and aggregates the findings into a report.
//
// This package is the heart of the validator, containing all domain logic
// independent of any UI or transport layer. It can be used by web handlers,
// CLI tools, or tests without modification.
//
// # Validation flow
//
// A run is a pure, synchronous computation over an in-memory row sequence:
//
//  1. [New] binds a [Validator] to an immutable schema variant.
//  2. [Validator.Validate] walks each row: requiredness is decided by the
//     conditional predicate table, then per-field checks run in column
//     order, then the row-scoped business rules (fund arithmetic, leverage,
//     high-frequency disclosure).
//  3. After all rows, the row-set rule (duplicate client codes) runs, and
//     the findings are aggregated into a [Report].
//
// A row's failures never abort validation of later rows; the engine never
// returns an error for row content. Configuration faults (a malformed
// schema, a predicate missing from the dispatch table) panic at package
// init, before any row is seen.
//
// # Determinism
//
// Issues are ordered by row ordinal, then column position, with row-set
// findings last. Validating the same rows twice yields identical reports.
// Schema variants are shared read-only, so concurrent runs need no locking.
package engine
