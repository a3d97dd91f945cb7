// Package either provides Either, a value that holds a left side (usually the
// failure) or a right side (usually the success).
package either

import (
	"errors"
	"fmt"

	"github.com/ib-77/fluent/pkg/fluent"
	"github.com/ib-77/fluent/pkg/fluent/chain"
)

var ErrNoValue = errors.New("either: no value on either side")

// OtherValueError is returned when the requested side is empty but the other
// side holds a value.
type OtherValueError struct {
	Value any
}

func (e *OtherValueError) Error() string {
	return fmt.Sprintf("either: requested side is empty, other side holds %v", e.Value)
}

type Either[L, R any] struct {
	left     L
	right    R
	hasLeft  bool
	hasRight bool
}

// Left builds an Either holding left; a nil left leaves it empty
func Left[L, R any](left L) Either[L, R] {
	return Either[L, R]{left: left, hasLeft: !fluent.IsNil(left)}
}

// Right builds an Either holding right; a nil right leaves it empty
func Right[L, R any](right R) Either[L, R] {
	return Either[L, R]{right: right, hasRight: !fluent.IsNil(right)}
}

func (e Either[L, R]) IsLeft() bool {
	return e.hasLeft
}

func (e Either[L, R]) IsRight() bool {
	return e.hasRight
}

func (e Either[L, R]) GetLeft() *chain.Optional[L] {
	if !e.hasLeft {
		return chain.None[L]()
	}
	return chain.Some(e.left)
}

func (e Either[L, R]) GetRight() *chain.Optional[R] {
	if !e.hasRight {
		return chain.None[R]()
	}
	return chain.Some(e.right)
}

func (e Either[L, R]) SetLeft(left L) Either[L, R] {
	e.left, e.hasLeft = left, !fluent.IsNil(left)
	return e
}

func (e Either[L, R]) SetRight(right R) Either[L, R] {
	e.right, e.hasRight = right, !fluent.IsNil(right)
	return e
}

// LeftOrFail returns the left value, an *OtherValueError when only the right is
// set, or ErrNoValue when neither is.
func (e Either[L, R]) LeftOrFail() (L, error) {
	switch {
	case e.hasLeft:
		return e.left, nil
	case e.hasRight:
		return e.left, &OtherValueError{Value: e.right}
	default:
		return e.left, ErrNoValue
	}
}

// RightOrFail mirrors LeftOrFail for the right side
func (e Either[L, R]) RightOrFail() (R, error) {
	switch {
	case e.hasRight:
		return e.right, nil
	case e.hasLeft:
		return e.right, &OtherValueError{Value: e.left}
	default:
		return e.right, ErrNoValue
	}
}

// Fold calls onLeft when the left side is set, otherwise onRight when the right
// side is set. Nothing is called for an empty Either.
func (e Either[L, R]) Fold(onLeft func(L), onRight func(R)) {
	if e.hasLeft {
		fluent.Invoke(func() { onLeft(e.left) })
	} else if e.hasRight {
		fluent.Invoke(func() { onRight(e.right) })
	}
}

// FoldRight is Fold with the right side checked first
func (e Either[L, R]) FoldRight(onLeft func(L), onRight func(R)) {
	if e.hasRight {
		fluent.Invoke(func() { onRight(e.right) })
	} else if e.hasLeft {
		fluent.Invoke(func() { onLeft(e.left) })
	}
}

// FromResult builds an Either from a guarded outcome: the failure on the left,
// the produced value on the right.
func FromResult[T any](r fluent.Result[T]) Either[error, T] {
	if r.IsFailure() {
		return Either[error, T]{left: r.Err(), hasLeft: true}
	}
	return Either[error, T]{right: r.Result(), hasRight: true}
}
