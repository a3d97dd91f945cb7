package chain

import (
	"iter"
	"slices"

	"github.com/ib-77/fluent/pkg/fluent"
	"github.com/ib-77/fluent/pkg/fluent/config"
)

// Collector accumulates non-absent values in insertion order. And mutates the
// collector in place and is not safe for concurrent use.
type Collector[T any] struct {
	items []T
	cfg   *config.Configuration
}

func NewCollector[T any](cfg *config.Configuration) *Collector[T] {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Collector[T]{cfg: cfg}
}

// And appends item; absent items are dropped
func (c *Collector[T]) And(item T) *Collector[T] {
	if !fluent.IsNil(item) {
		c.items = append(c.items, item)
	}
	return c
}

// Items returns a copy of the collected values
func (c *Collector[T]) Items() []T {
	return slices.Clone(c.items)
}

func (c *Collector[T]) Len() int {
	return len(c.items)
}

// All iterates the collected values in insertion order
func (c *Collector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range c.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Map returns a new collector of fn's results, dropping absent ones
func (c *Collector[T]) Map(fn func(T) T) *Collector[T] {
	return MapItems(c, fn)
}

// Reduce folds the values left to right. It is empty for no values and holds
// the single value, without calling op, for one.
func (c *Collector[T]) Reduce(op func(T, T) T) *Optional[T] {
	if len(c.items) == 0 {
		return NoneWith[T](c.cfg)
	}

	acc := c.items[0]
	for _, item := range c.items[1:] {
		acc = fluent.Call(func() T { return op(acc, item) })
	}
	return MaybeWith(c.cfg, acc)
}

// ForEach runs op on every value in order, stopping at the first failure
func (c *Collector[T]) ForEach(op func(T)) *Collector[T] {
	for _, item := range c.items {
		fluent.Invoke(func() { op(item) })
	}
	return c
}

func (c *Collector[T]) Log(tag any) *Logger[*Collector[T], []T] {
	return newLogger[*Collector[T], []T](c, tag)
}

func (c *Collector[T]) proxy() proxy[*Collector[T], []T] {
	return proxy[*Collector[T], []T]{
		item:   slices.Clone(c.items),
		absent: false,
		cfg:    c.cfg,
		self:   c,
		rebuild: func(items []T, cfg *config.Configuration) *Collector[T] {
			collector := NewCollector[T](cfg)
			for _, item := range items {
				collector.And(item)
			}
			return collector
		},
	}
}

// ToList continues with a Chain over the collected values
func ToList[T any](c *Collector[T]) *Chain[[]T] {
	return LetWith(c.cfg, c.Items())
}

// MapItems maps every value into a new collector, dropping absent results
func MapItems[T, R any](c *Collector[T], fn func(T) R) *Collector[R] {
	mapped := NewCollector[R](c.cfg)
	for _, item := range c.items {
		mapped.And(fluent.Call(func() R { return fn(item) }))
	}
	return mapped
}

// FlatMapItems hands the collected values to fn and returns its result
func FlatMapItems[T, R any](c *Collector[T], fn func([]T) R) R {
	items := c.Items()
	return fluent.Call(func() R { return fn(items) })
}
