package fluent

// Callable is implemented by anything that can hand back a held value on request
type Callable[T any] interface {
	// Call returns the held value
	Call() T
}

// Caller adapts a plain function to Callable
type Caller[T any] func() T

func (c Caller[T]) Call() T {
	return c()
}
