package lazyvec

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// DefaultCapacity is the physical capacity used by New.
const DefaultCapacity = 4 * 1024

// cell is one addressable slot in the backing store. An un-owned cell
// logically denotes the vector's shared default value; an owned cell holds
// its own copy. The zero cell is shared.
type cell[T any] struct {
	owned bool
	value T
}

// LazyVec is a lazily initialized vector of T addressed by the index newtype I.
//
// The logical length (cells reachable through the indexing API) is tracked
// separately from the physical capacity, so a vector can be pre-grown without
// making cells addressable. See the package documentation for the cell model.
type LazyVec[T any, I Index] struct {
	label   string
	length  int
	cells   []cell[T]
	def     *T
	cloneFn func(T) T
	logger  *Logger
	metrics MetricsCollector
}

// New creates a LazyVec with the default physical capacity (DefaultCapacity).
// All cells start shared. def must not be nil and must outlive the vector;
// use SharedDefault to build one per distinct default value.
func New[T any, I Index](label string, def *T, opts ...Option[T]) *LazyVec[T, I] {
	return WithLen[T, I](label, DefaultCapacity, def, opts...)
}

// WithLen creates a LazyVec with a caller-chosen physical capacity. All cells
// start shared and the logical length is zero; capacity 0 is legal.
func WithLen[T any, I Index](label string, capacity int, def *T, opts ...Option[T]) *LazyVec[T, I] {
	if def == nil {
		panic(fmt.Sprintf("lazyvec: %s: nil default", label))
	}
	if capacity < 0 {
		panic(fmt.Sprintf("lazyvec: %s: negative capacity %d", label, capacity))
	}

	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	return &LazyVec[T, I]{
		label:   label,
		cells:   make([]cell[T], capacity),
		def:     def,
		cloneFn: o.cloneFn,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Len returns the logical length.
func (v *LazyVec[T, I]) Len() int {
	return v.length
}

// IsEmpty reports whether the logical length is zero.
func (v *LazyVec[T, I]) IsEmpty() bool {
	return v.length == 0
}

// Cap returns the physical capacity of the backing store.
func (v *LazyVec[T, I]) Cap() int {
	return len(v.cells)
}

// Label returns the diagnostic label.
func (v *LazyVec[T, I]) Label() string {
	return v.label
}

// DefaultValue returns the shared default. Callers must not mutate it; every
// shared cell in this vector (and possibly in others) observes it.
func (v *LazyVec[T, I]) DefaultValue() *T {
	return v.def
}

// GrowTo extends the physical capacity to n with shared cells. It is a no-op
// when n does not exceed the current capacity and never changes the logical
// length.
func (v *LazyVec[T, I]) GrowTo(n int) {
	if n <= len(v.cells) {
		return
	}

	start := time.Now()
	grown := make([]cell[T], n)
	copy(grown, v.cells)
	v.cells = grown
	elapsed := time.Since(start)

	v.logger.LogGrow(v.label, n, elapsed)
	v.metrics.RecordGrow(n, elapsed)
}

// Reinit grows the physical capacity to at least n, then force-resets every
// cell in [0, n) to shared, discarding any owned values there. The logical
// length is untouched; Push and Pop remain its only mutators. Use Reinit to
// recycle a vector for a new logical sequence while keeping the allocation.
func (v *LazyVec[T, I]) Reinit(n int) {
	v.GrowTo(n)

	start := time.Now()
	clear(v.cells[:n])
	elapsed := time.Since(start)

	v.logger.LogReinit(v.label, n, elapsed)
	v.metrics.RecordReinit(n, elapsed)
}

// Push appends val as an owned cell and returns its typed index. A vacant
// physical slot at the logical length is reused; otherwise the backing store
// is extended. Amortized O(1).
func (v *LazyVec[T, I]) Push(val T) I {
	idx := I(v.length)
	if v.length < len(v.cells) {
		v.cells[v.length] = cell[T]{owned: true, value: val}
	} else {
		v.cells = append(v.cells, cell[T]{owned: true, value: val})
	}
	v.length++
	v.metrics.RecordPush()
	return idx
}

// Pop removes the last cell, resets its physical slot to shared and returns
// the owned value. Panics on an empty vector. Panics if the target cell was
// never promoted to owned: under correct use of Push that is unreachable, so
// it indicates a caller writing into the backing store behind the API.
func (v *LazyVec[T, I]) Pop() T {
	if v.length == 0 {
		panic(fmt.Sprintf("lazyvec: %s is empty", v.label))
	}
	c := &v.cells[v.length-1]
	if !c.owned {
		panic(fmt.Sprintf("lazyvec: %s: popped value is uninitialized", v.label))
	}
	val := c.value
	*c = cell[T]{}
	v.length--
	v.metrics.RecordPop()
	return val
}

// Get returns the value at idx without promoting the cell. A shared cell
// yields a copy of the default. Panics when idx is outside the logical range.
func (v *LazyVec[T, I]) Get(idx I) T {
	return *v.Ref(idx)
}

// Ref returns a read-only view of the value at idx without promoting the
// cell. For a shared cell the returned pointer is the shared default itself,
// so callers must not write through it; use Mut for writes. Panics when idx
// is outside the logical range.
func (v *LazyVec[T, I]) Ref(idx I) *T {
	off := v.boundsCheck(idx)
	c := &v.cells[off]
	if !c.owned {
		return v.def
	}
	return &c.value
}

// Mut returns a mutable pointer to the value at idx, promoting the cell to
// owned first. Promotion happens even if the caller never writes. Panics when
// idx is outside the logical range.
func (v *LazyVec[T, I]) Mut(idx I) *T {
	off := v.boundsCheck(idx)
	v.promote(off)
	return &v.cells[off].value
}

// LastIdx returns the raw offset of the most-recently-pushed element. Panics
// on an empty vector.
func (v *LazyVec[T, I]) LastIdx() int {
	if v.length == 0 {
		panic(fmt.Sprintf("lazyvec: %s is empty", v.label))
	}
	return v.length - 1
}

// LastRef returns a read-only view of the last element. Panics on an empty
// vector.
func (v *LazyVec[T, I]) LastRef() *T {
	return v.Ref(I(v.LastIdx()))
}

// LastMut returns a mutable pointer to the last element, promoting it.
// Panics on an empty vector.
func (v *LazyVec[T, I]) LastMut() *T {
	return v.Mut(I(v.LastIdx()))
}

// Iter returns a lazy sequence over the logical range in reverse order
// (highest index first). No cell is promoted; shared cells yield the default.
func (v *LazyVec[T, I]) Iter() iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		for off := v.length - 1; off >= 0; off-- {
			c := &v.cells[off]
			val := c.value
			if !c.owned {
				val = *v.def
			}
			if !yield(I(off), val) {
				return
			}
		}
	}
}

// IterMut returns a lazy sequence of mutable pointers over the logical range
// in reverse order (highest index first). Every visited cell is promoted,
// consistent with Mut, even where a caller might only read. Break early to
// leave the remaining cells shared.
func (v *LazyVec[T, I]) IterMut() iter.Seq2[I, *T] {
	return func(yield func(I, *T) bool) {
		for off := v.length - 1; off >= 0; off-- {
			v.promote(off)
			if !yield(I(off), &v.cells[off].value) {
				return
			}
		}
	}
}

// GetDisjointMut returns one independent mutable pointer per offset,
// promoting cells as needed. The offsets must be pairwise distinct (panics
// otherwise): deduplication is established before any pointer is handed out,
// which is what makes the returned pointers safe to mutate independently.
//
// Offsets are raw and checked against the physical capacity only, NOT the
// logical length. That relaxation is deliberate: callers may address
// pre-grown but not-yet-pushed cells. Callers wanting logical-length bounds
// must check Len() themselves.
func (v *LazyVec[T, I]) GetDisjointMut(offsets ...int) []*T {
	seen := make(map[int]struct{}, len(offsets))
	for _, off := range offsets {
		if off < 0 || off >= len(v.cells) {
			panic(fmt.Sprintf("lazyvec: %s: offset out of range [%d] with capacity %d", v.label, off, len(v.cells)))
		}
		if _, dup := seen[off]; dup {
			panic(fmt.Sprintf("lazyvec: %s: duplicate offset %d", v.label, off))
		}
		seen[off] = struct{}{}
	}

	out := make([]*T, len(offsets))
	for i, off := range offsets {
		v.promote(off)
		out[i] = &v.cells[off].value
	}
	return out
}

// Owned reports whether the cell at the raw offset has been promoted. Offsets
// are checked against the physical capacity only. Diagnostic use; never
// promotes.
func (v *LazyVec[T, I]) Owned(offset int) bool {
	if offset < 0 || offset >= len(v.cells) {
		panic(fmt.Sprintf("lazyvec: %s: offset out of range [%d] with capacity %d", v.label, offset, len(v.cells)))
	}
	return v.cells[offset].owned
}

// Clone returns a deep copy sharing the same default value. Owned cells are
// copied with the configured clone function (plain value copy when none is
// set).
func (v *LazyVec[T, I]) Clone() *LazyVec[T, I] {
	cells := make([]cell[T], len(v.cells))
	copy(cells, v.cells)
	if v.cloneFn != nil {
		for i := range cells {
			if cells[i].owned {
				cells[i].value = v.cloneFn(cells[i].value)
			}
		}
	}
	return &LazyVec[T, I]{
		label:   v.label,
		length:  v.length,
		cells:   cells,
		def:     v.def,
		cloneFn: v.cloneFn,
		logger:  v.logger,
		metrics: v.metrics,
	}
}

// EqualFunc reports whether v and other hold the same logical sequence of
// values under eq. Labels, capacities and cell states (shared vs owned) are
// not compared; a shared cell equals an owned cell holding the default.
func (v *LazyVec[T, I]) EqualFunc(other *LazyVec[T, I], eq func(a, b T) bool) bool {
	if v.length != other.length {
		return false
	}
	for off := 0; off < v.length; off++ {
		if !eq(*v.refAt(off), *other.refAt(off)) {
			return false
		}
	}
	return true
}

// String renders a debug representation: label, logical length and the full
// backing store including still-shared cells. Troubleshooting only; not a
// stable format.
func (v *LazyVec[T, I]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "LazyVec(%q len=%d cap=%d)[", v.label, v.length, len(v.cells))
	for i, c := range v.cells {
		if i > 0 {
			sb.WriteString(" ")
		}
		if c.owned {
			fmt.Fprintf(&sb, "owned(%v)", c.value)
		} else {
			fmt.Fprintf(&sb, "shared(%v)", *v.def)
		}
	}
	sb.WriteString("]")
	return sb.String()
}

func (v *LazyVec[T, I]) refAt(off int) *T {
	c := &v.cells[off]
	if !c.owned {
		return v.def
	}
	return &c.value
}

// promote copies the default into the cell at off and marks it owned.
// Idempotent; off must be physically in range.
func (v *LazyVec[T, I]) promote(off int) {
	c := &v.cells[off]
	if c.owned {
		return
	}
	if v.cloneFn != nil {
		c.value = v.cloneFn(*v.def)
	} else {
		c.value = *v.def
	}
	c.owned = true
}

// boundsCheck converts idx to a raw offset and panics when it falls outside
// the logical range.
func (v *LazyVec[T, I]) boundsCheck(idx I) int {
	off := int(idx)
	if off < 0 || off >= v.length {
		panic(fmt.Sprintf("lazyvec: %s: index out of range [%d] with length %d", v.label, off, v.length))
	}
	return off
}
