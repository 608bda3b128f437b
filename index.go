package lazyvec

import "golang.org/x/exp/constraints"

// Index constrains the typed-index parameter of LazyVec. Any integer newtype
// qualifies; the bidirectional conversion to a raw offset is the ordinary
// integer conversion. Signed types are allowed for ergonomic arithmetic, but
// negative values are always out of range.
type Index interface {
	constraints.Integer
}

// Offset is the ready-made index type for callers that do not need a domain
// newtype.
type Offset int
