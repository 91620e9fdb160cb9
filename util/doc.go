// Package util provides generic collection utilities for restkit.
//
// It includes order-preserving unique filters, a monoid-combining map,
// a recursively-merging map, a key-restricted map, sublist search, and
// shell quoting helpers.
package util
