package fluent

import (
	"errors"
	"fmt"
)

var ErrNilFailure = errors.New("fluent: failure without cause")

// Failure is the single failure kind raised by chained operations. Whatever a
// callback panicked with is kept as the cause.
type Failure struct {
	cause error
}

func (f *Failure) Error() string {
	if f.cause == nil {
		return ErrNilFailure.Error()
	}
	return f.cause.Error()
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// Normalize converts a recovered panic value into a *Failure. A *Failure is
// returned as is, errors become the cause, any other value is formatted into one.
func Normalize(v any) *Failure {
	switch e := v.(type) {
	case nil:
		return nil
	case *Failure:
		return e
	case error:
		return &Failure{cause: e}
	default:
		return &Failure{cause: fmt.Errorf("%v", e)}
	}
}

// Invoke runs fn; a panic leaves it as a *Failure.
func Invoke(fn func()) {
	defer rethrow()
	fn()
}

// Call runs fn and returns its value; a panic leaves it as a *Failure.
func Call[R any](fn func() R) R {
	defer rethrow()
	return fn()
}

// Capture runs fn once and records its outcome instead of propagating it.
// A returned error is kept unchanged, a panic is kept as the error it carried
// or normalized when it was not an error.
func Capture[R any](fn func() (R, error)) (res Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				res = Fail[R](err)
				return
			}
			res = Fail[R](Normalize(r))
		}
	}()

	out, err := fn()
	if err != nil {
		return Fail[R](err)
	}
	return Success(out)
}

func rethrow() {
	if r := recover(); r != nil {
		panic(Normalize(r))
	}
}
