package chain

import (
	"github.com/ib-77/fluent/pkg/fluent"
	"github.com/ib-77/fluent/pkg/fluent/config"
)

// Condition is a branch over the value of the wrapper S that started it. The
// test runs when a terminal method is called, never before, and is skipped
// (branch not taken) when the value is absent.
type Condition[S internal[S, T], T any] struct {
	source proxy[S, T]
	test   func(T) bool
	negate bool
}

func newCondition[S internal[S, T], T any](source S, test func(T) bool, negate bool) *Condition[S, T] {
	return &Condition[S, T]{
		source: source.proxy(),
		test:   test,
		negate: negate,
	}
}

func (c *Condition[S, T]) accepted() bool {
	if c.source.empty() {
		return false
	}

	passed := fluent.Call(func() bool {
		return c.test(c.source.getItem())
	})
	if c.negate {
		return !passed
	}
	return passed
}

// Then applies op to the source when the branch is taken and returns the source
func (c *Condition[S, T]) Then(op func(T)) S {
	if c.accepted() {
		item := c.source.getItem()
		fluent.Invoke(func() { op(item) })
	}
	return c.source.owner()
}

// Invoke runs action when the branch is taken and returns the source
func (c *Condition[S, T]) Invoke(action func()) S {
	if c.accepted() {
		fluent.Invoke(action)
	}
	return c.source.owner()
}

// ThenMap returns an Optional holding fn's result when the branch is taken, else an empty one
func (c *Condition[S, T]) ThenMap(fn func(T) T) *Optional[T] {
	return MapIf(c, fn)
}

// ThenTo returns an Optional holding item when the branch is taken, else an empty one
func (c *Condition[S, T]) ThenTo(item T) *Optional[T] {
	return ToIf(c, item)
}

// ThenCall returns an Optional holding fn's result when the branch is taken, else an empty one
func (c *Condition[S, T]) ThenCall(fn func() T) *Optional[T] {
	if c.accepted() {
		return MaybeWith(c.source.getConfiguration(), fluent.Call(fn))
	}
	return NoneWith[T](c.source.getConfiguration())
}

func (c *Condition[S, T]) Log(tag any) *Logger[*Condition[S, T], T] {
	return newLogger[*Condition[S, T], T](c, tag)
}

func (c *Condition[S, T]) proxy() proxy[*Condition[S, T], T] {
	return proxy[*Condition[S, T], T]{
		item:   c.source.getItem(),
		absent: c.source.empty(),
		cfg:    c.source.getConfiguration(),
		self:   c,
		rebuild: func(item T, cfg *config.Configuration) *Condition[S, T] {
			return newCondition[S, T](c.source.copy(item, cfg), c.test, c.negate)
		},
	}
}

// MapIf is ThenMap for a result of another type
func MapIf[S internal[S, T], T, R any](c *Condition[S, T], fn func(T) R) *Optional[R] {
	cfg := c.source.getConfiguration()
	if !c.accepted() {
		return NoneWith[R](cfg)
	}
	return MaybeWith(cfg, fluent.Call(func() R {
		return fn(c.source.getItem())
	}))
}

// ToIf is ThenTo for an item of another type
func ToIf[S internal[S, T], T, R any](c *Condition[S, T], item R) *Optional[R] {
	cfg := c.source.getConfiguration()
	if !c.accepted() {
		return NoneWith[R](cfg)
	}
	return MaybeWith(cfg, item)
}
