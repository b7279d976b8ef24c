// Package core defines the abstract syntax tree of the federated SQL dialect.
//
// This package contains:
//   - Commands (Query, SetQuery, Insert, Update, Delete, StoredProcedure, ...)
//   - FROM clause items, expressions and criteria
//   - Procedural statements and blocks
//   - Hint and option value objects
//   - DDL statement nodes consumed by the metadata builder
//   - The Visitor contract, Walk, Clone and Equal
//
// Nodes are plain structs with exported fields. The parser builds each node
// completely before handing it out and nothing in this module mutates a node
// afterwards; callers that need a modified tree should Clone first.
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib plus the value
// libraries used for literals. Parsing and rendering depend on core, not the
// reverse.
package core
