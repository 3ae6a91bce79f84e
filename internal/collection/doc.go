// Package collection provides an ordered-unique container of file records.
//
// A Collection is keyed by absolute path and preserves first-seen order.
// It is built empty, from explicit paths, or from recursive tree walks with
// optional filtering, then queried through selection, sorting and set
// algebra (Union, Diff, Sum). Combinators always deep-copy; two collections
// never share records after a combine.
//
// A Collection is for single-owner, single-goroutine use. Parallel tree
// walks belong in separate collections combined afterwards with the algebra
// operators.
package collection
