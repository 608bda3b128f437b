package lazyvec

import "sync"

// SharedDefault returns a process-wide lazy singleton for a default value.
// The returned function constructs the value on first call and hands out the
// same pointer forever after, so any number of vectors can share one default
// without each cloning it.
//
// Bind the result to a package-level variable and pass it to every vector
// that needs that default:
//
//	var emptyRow = lazyvec.SharedDefault(func() Row { return Row{} })
//
//	a := lazyvec.New[Row, lazyvec.Offset]("batch-a", emptyRow())
//	b := lazyvec.New[Row, lazyvec.Offset]("batch-b", emptyRow())
//
// The singleton lives for the remainder of the process. Creating spurious
// distinct defaults (one per vector, one per call site that could have shared)
// effectively leaks memory.
func SharedDefault[T any](fn func() T) func() *T {
	return sync.OnceValue(func() *T {
		v := fn()
		return &v
	})
}
