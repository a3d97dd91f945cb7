// Package lazy provides Lazy, a value computed on first request and reused after.
package lazy

import (
	"sync"

	"github.com/ib-77/fluent/pkg/fluent"
)

// Lazy defers a computation until Call or FlatMap asks for the value. The
// computation runs at most once; a panic is normalized and raised again on
// every later Call.
type Lazy[T any] struct {
	value func() T
}

// Defer wraps fn without running it
func Defer[T any](fn func() T) *Lazy[T] {
	return &Lazy[T]{value: sync.OnceValue(func() T {
		return fluent.Call(fn)
	})}
}

// DeferWith wraps fn and the parameter it will be called with
func DeferWith[P, T any](fn func(P) T, parameter P) *Lazy[T] {
	return Defer(func() T { return fn(parameter) })
}

// Call computes the value on first use and returns it
func (l *Lazy[T]) Call() T {
	return l.value()
}

// Apply returns a Lazy that runs op on the value once it is computed
func (l *Lazy[T]) Apply(op func(T)) *Lazy[T] {
	return Defer(func() T {
		item := l.Call()
		op(item)
		return item
	})
}

// Map returns a Lazy over fn's result, computing nothing yet
func Map[T, R any](l *Lazy[T], fn func(T) R) *Lazy[R] {
	return Defer(func() R { return fn(l.Call()) })
}

// FlatMap computes the value and hands it to fn
func FlatMap[T, R any](l *Lazy[T], fn func(T) R) R {
	item := l.Call()
	return fluent.Call(func() R { return fn(item) })
}
