package chain

import (
	"github.com/ib-77/fluent/pkg/fluent"
	"github.com/ib-77/fluent/pkg/fluent/config"
	"github.com/ib-77/fluent/pkg/fluent/tuple"
)

// Chain holds one value and the configuration shared along the call chain
type Chain[T any] struct {
	item T
	cfg  *config.Configuration
}

// Let starts a chain over item with the default configuration
func Let[T any](item T) *Chain[T] {
	return LetWith(config.Default(), item)
}

// LetWith starts a chain over item with cfg, falling back to the default when cfg is nil
func LetWith[T any](cfg *config.Configuration, item T) *Chain[T] {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Chain[T]{
		item: item,
		cfg:  cfg,
	}
}

// Call starts a chain over the value fn returns
func Call[T any](fn func() T) *Chain[T] {
	return Let(fluent.Call(fn))
}

// From starts a chain over the value held by c, e.g. a lazy.Lazy
func From[T any](c fluent.Callable[T]) *Chain[T] {
	return Call(c.Call)
}

// Call returns the held value
func (c *Chain[T]) Call() T {
	return c.item
}

// Apply runs op on the held value for its side effects
func (c *Chain[T]) Apply(op func(T)) *Chain[T] {
	fluent.Invoke(func() { op(c.item) })
	return c
}

// Invoke runs action before moving on, ignoring the held value
func (c *Chain[T]) Invoke(action func()) *Chain[T] {
	fluent.Invoke(action)
	return c
}

// Map replaces the held value with fn's result, see the package level Map to change its type
func (c *Chain[T]) Map(fn func(T) T) *Chain[T] {
	return Map(c, fn)
}

// When starts a branch taken when test passes
func (c *Chain[T]) When(test func(T) bool) *Condition[*Chain[T], T] {
	return newCondition[*Chain[T], T](c, test, false)
}

// WhenNot starts a branch taken when test fails
func (c *Chain[T]) WhenNot(test func(T) bool) *Condition[*Chain[T], T] {
	return newCondition[*Chain[T], T](c, test, true)
}

// Guard runs op on the held value, capturing its error or panic instead of propagating it
func (c *Chain[T]) Guard(op func(T) error) *Guard[*Chain[T], T] {
	return newGuard(c.proxy(), true, func() (T, error) {
		return c.item, op(c.item)
	})
}

// GuardMap is Guard for a transformation that may fail, see TryMap to change the type
func (c *Chain[T]) GuardMap(fn func(T) (T, error)) *Guard[*Chain[T], T] {
	return TryMap(c, fn)
}

// And starts collecting the held value together with item
func (c *Chain[T]) And(item T) *Collector[T] {
	return NewCollector[T](c.cfg).
		And(c.item).
		And(item)
}

// Debug runs op only while the configuration is in debugging mode
func (c *Chain[T]) Debug(op func(T)) *Chain[T] {
	if c.cfg.Debugging() {
		return c.Apply(op)
	}
	return c
}

// DefaultIfEmpty replaces an absent held value with defaultValue
func (c *Chain[T]) DefaultIfEmpty(defaultValue T) *Chain[T] {
	return c.Optional().DefaultIfEmpty(defaultValue)
}

// Optional switches to absence aware operations over the held value
func (c *Chain[T]) Optional() *Optional[T] {
	return MaybeWith(c.cfg, c.item)
}

// Log starts a logging operation tagged with tag
func (c *Chain[T]) Log(tag any) *Logger[*Chain[T], T] {
	return newLogger[*Chain[T], T](c, tag)
}

func (c *Chain[T]) proxy() proxy[*Chain[T], T] {
	return proxy[*Chain[T], T]{
		item:   c.item,
		absent: fluent.IsNil(c.item),
		cfg:    c.cfg,
		self:   c,
		rebuild: func(item T, cfg *config.Configuration) *Chain[T] {
			return LetWith(cfg, item)
		},
	}
}

// Map transforms the held value into a new chain
func Map[T, R any](c *Chain[T], fn func(T) R) *Chain[R] {
	return LetWith(c.cfg, fluent.Call(func() R {
		return fn(c.item)
	}))
}

// FlatMap hands the held value to fn and returns fn's result as is
func FlatMap[T, R any](c *Chain[T], fn func(T) R) R {
	return fluent.Call(func() R {
		return fn(c.item)
	})
}

// To continues with item in place of the held value
func To[T, R any](c *Chain[T], item R) *Chain[R] {
	return LetWith(c.cfg, item)
}

// Pair pairs the held value with item
func Pair[T, R any](c *Chain[T], item R) *Chain[tuple.Pair[T, R]] {
	return LetWith(c.cfg, tuple.PairOf(c.item, item))
}

// PairWith pairs the held value with fn's result for it
func PairWith[T, R any](c *Chain[T], fn func(T) R) *Chain[tuple.Pair[T, R]] {
	return Pair(c, fluent.Call(func() R {
		return fn(c.item)
	}))
}

// TryMap runs a transformation that may fail, capturing the failure in a Guard
func TryMap[T, R any](c *Chain[T], fn func(T) (R, error)) *Guard[*Chain[R], R] {
	var zero R
	return newGuard(LetWith(c.cfg, zero).proxy(), false, func() (R, error) {
		return fn(c.item)
	})
}

// Try runs fn once, capturing its failure in a Guard
func Try[T any](fn func() (T, error)) *Guard[*Chain[T], T] {
	var zero T
	return newGuard(Let(zero).proxy(), false, fn)
}

// Collect starts a collector over the elements of the held slice
func Collect[T any](c *Chain[[]T]) *Collector[T] {
	collector := NewCollector[T](c.cfg)
	for _, item := range c.item {
		collector.And(item)
	}
	return collector
}
