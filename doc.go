// Package lazyvec provides a lazily initialized, copy-on-write vector.
//
// A LazyVec starts with every cell pointing at a single shared default value.
// A cell is promoted to its own independently mutable copy only on the first
// mutable access, so constructing a vector of N cells never constructs N
// values up front. This pays off when elements are expensive to build (large
// structs, strings) and most cells are never written.
//
// # Quick Start
//
//	var def = lazyvec.SharedDefault(func() string { return "pending" })
//
//	v := lazyvec.Of(def()).Named("jobs").WithLen(1024).Build()
//
//	idx := v.Push("first")       // idx == 0
//	s := v.Get(idx)              // "first"
//	*v.Mut(idx) = "updated"      // cell already owned, plain write
//
// # Cell Model
//
// Each cell is either shared (observes the one default value) or owned (holds
// its own copy). Promotion is one-way: once a cell is owned it stays owned
// until Pop vacates its slot or Reinit wipes the prefix. Read accessors (Get,
// Ref, LastRef, Iter) never promote; mutable accessors (Mut, LastMut, IterMut,
// GetDisjointMut) always promote the cells they touch, even if the caller
// never writes through the returned pointer. That eager promotion is a
// deliberate simplification, not an optimization gap.
//
// # Typed Indices
//
// LazyVec is generic over its index type, so callers can address cells with a
// domain newtype instead of a bare int:
//
//	type NodeID uint32
//
//	v := lazyvec.WithLen[string, NodeID]("nodes", 64, def())
//	id := v.Push("root") // id is a NodeID
//
// # Errors
//
// Every failure mode (out-of-range index, Pop on empty, duplicate offsets in
// GetDisjointMut) indicates a caller bug, so LazyVec panics instead of
// returning errors. There is no recoverable-error path.
//
// LazyVec is a single-owner value type: no internal locking, no goroutine
// safety. Callers needing concurrent access must synchronize externally.
package lazyvec
