// Package callback provides small, explicit helpers for working with function
// values as first-class bindings.
//
// It covers the shapes used throughout this module:
//
//   - Procedure: a single-argument side effect that reports write failures.
//   - StringFunc: a text-to-text transform.
//   - Combinator[T]: a two-argument reduction over one type.
//   - BiFunc[T, R]: a two-argument function with an independent result type.
//
// Multi-target dispatch is modeled as an ordered list (Multicast) rather than
// operator overloading. Invocation stops at the first error.
//
// Named bindings can be kept in a Registry and retrieved with typed lookups
// (Lookup / MustLookup).
//
// Import
//
//	"github.com/yosang/delegates/callback"
package callback
