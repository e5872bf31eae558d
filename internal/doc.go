// Package internal hosts the convention verification engine: the rule
// contract, the process-wide rule registry, the execution engine that walks
// a syntax tree and dispatches rules, and the aggregator that turns raw
// findings into a deterministic report.
//
// The engine consumes an already-built syntax tree (internal/syntax) and
// emits no bytes itself; formatting belongs to the formatter package and
// parsing to a front end such as internal/gosyntax.
package internal
