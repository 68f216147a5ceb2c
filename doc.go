// Package delegates demonstrates function values as first-class bindings in Go.
//
// The module walks through a progression of small patterns:
//
//   - method values and plain function values with a shared shape
//   - ordered composition of side-effecting callbacks (multi-target dispatch)
//   - anonymous functions assigned to named function types
//   - generic two-argument combinators over ints, decimals, strings and records
//
// Package delegates See subpackages:
//   - callback: callback shapes, composition, combinators, named registry
//   - pet: the record the demo operates on
//   - demo: the fixed demonstration sequence
//   - cmd/delegates: runnable entry point
package delegates
