package chain

import (
	"github.com/ib-77/fluent/pkg/fluent"
	"github.com/ib-77/fluent/pkg/fluent/config"
)

// Optional is a chain whose value may be absent. Every operation is skipped
// while it is absent; DefaultIfEmpty brings it back to a Chain.
type Optional[T any] struct {
	item    T
	present bool
	cfg     *config.Configuration
}

// Maybe wraps item, treating a nil item as absent
func Maybe[T any](item T) *Optional[T] {
	return MaybeWith(config.Default(), item)
}

func MaybeWith[T any](cfg *config.Configuration, item T) *Optional[T] {
	return newOptional(cfg, item, !fluent.IsNil(item))
}

// Some wraps item as present, even when it is nil
func Some[T any](item T) *Optional[T] {
	return newOptional(config.Default(), item, true)
}

func None[T any]() *Optional[T] {
	return NoneWith[T](config.Default())
}

func NoneWith[T any](cfg *config.Configuration) *Optional[T] {
	var zero T
	return newOptional(cfg, zero, false)
}

func newOptional[T any](cfg *config.Configuration, item T, present bool) *Optional[T] {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Optional[T]{
		item:    item,
		present: present,
		cfg:     cfg,
	}
}

// Call returns the held value, or the zero value when absent
func (o *Optional[T]) Call() T {
	return o.item
}

func (o *Optional[T]) Get() (T, bool) {
	return o.item, o.present
}

func (o *Optional[T]) IsPresent() bool {
	return o.present
}

func (o *Optional[T]) IsEmpty() bool {
	return !o.present
}

func (o *Optional[T]) Apply(op func(T)) *Optional[T] {
	if o.present {
		fluent.Invoke(func() { op(o.item) })
	}
	return o
}

func (o *Optional[T]) Invoke(action func()) *Optional[T] {
	if o.present {
		fluent.Invoke(action)
	}
	return o
}

func (o *Optional[T]) Map(fn func(T) T) *Optional[T] {
	return MapOptional(o, fn)
}

func (o *Optional[T]) When(test func(T) bool) *Condition[*Optional[T], T] {
	return newCondition[*Optional[T], T](o, test, false)
}

func (o *Optional[T]) WhenNot(test func(T) bool) *Condition[*Optional[T], T] {
	return newCondition[*Optional[T], T](o, test, true)
}

// Guard runs op on a present value, capturing its error or panic
func (o *Optional[T]) Guard(op func(T) error) *Guard[*Optional[T], T] {
	return newGuard(o.proxy(), true, func() (T, error) {
		if !o.present {
			return o.item, nil
		}
		return o.item, op(o.item)
	})
}

func (o *Optional[T]) Debug(op func(T)) *Optional[T] {
	if o.cfg.Debugging() {
		return o.Apply(op)
	}
	return o
}

// DefaultIfEmpty returns a Chain over the held value, or over defaultValue when absent
func (o *Optional[T]) DefaultIfEmpty(defaultValue T) *Chain[T] {
	if o.present {
		return LetWith(o.cfg, o.item)
	}
	return LetWith(o.cfg, defaultValue)
}

func (o *Optional[T]) Log(tag any) *Logger[*Optional[T], T] {
	return newLogger[*Optional[T], T](o, tag)
}

func (o *Optional[T]) proxy() proxy[*Optional[T], T] {
	return proxy[*Optional[T], T]{
		item:   o.item,
		absent: !o.present,
		cfg:    o.cfg,
		self:   o,
		rebuild: func(item T, cfg *config.Configuration) *Optional[T] {
			return MaybeWith(cfg, item)
		},
	}
}

// MapOptional transforms a present value; a nil result leaves the new Optional absent
func MapOptional[T, R any](o *Optional[T], fn func(T) R) *Optional[R] {
	if !o.present {
		return NoneWith[R](o.cfg)
	}
	return MaybeWith(o.cfg, fluent.Call(func() R {
		return fn(o.item)
	}))
}

// FlatMapOptional hands a present value to fn and returns fn's result, or the zero R when absent
func FlatMapOptional[T, R any](o *Optional[T], fn func(T) R) R {
	if !o.present {
		var zero R
		return zero
	}
	return fluent.Call(func() R {
		return fn(o.item)
	})
}
