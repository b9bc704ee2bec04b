// Package index implements exact nearest-neighbour search over an
// in-memory set of chunk vectors. An index is an immutable snapshot:
// every change is build-then-swap through a Handle, never an in-place
// update.
package index
