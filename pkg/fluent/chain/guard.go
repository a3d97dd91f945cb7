package chain

import (
	"github.com/ib-77/fluent/pkg/fluent"
	"github.com/ib-77/fluent/pkg/fluent/config"
)

// GuardTag is the tag a captured failure is reported under when logging is enabled
const GuardTag = "guard"

// Guard holds the outcome of a computation that ran exactly once: the value it
// produced or the failure it raised. One of the OnError terminals turns it
// back into the wrapper S.
type Guard[S internal[S, T], T any] struct {
	target  proxy[S, T]
	outcome fluent.Result[T]
}

// newGuard runs fn against source. With keep set, success leaves source as it
// is; otherwise source is rebuilt around the produced value.
func newGuard[S internal[S, T], T any](source proxy[S, T], keep bool, fn func() (T, error)) *Guard[S, T] {
	outcome := fluent.Capture(fn)

	target := source
	if outcome.IsSuccess() && !keep {
		target = source.copyItem(outcome.Result()).proxy()
	}

	if outcome.IsFailure() {
		reportCaptured(source.getConfiguration(), outcome.Err())
	}

	return &Guard[S, T]{
		target:  target,
		outcome: outcome,
	}
}

// reportCaptured hands a captured failure to the exception logger so a Guard
// that is never resolved still leaves a trace.
func reportCaptured(cfg *config.Configuration, err error) {
	logger := cfg.ExceptionLogger()
	if !cfg.Logging() || logger == nil {
		return
	}
	fluent.Invoke(func() { logger(GuardTag, err) })
}

// Err returns the captured failure, nil on success
func (g *Guard[S, T]) Err() error {
	return g.outcome.Err()
}

// Result returns the recorded outcome
func (g *Guard[S, T]) Result() fluent.Result[T] {
	return g.outcome
}

// OnErrorReturnItem continues with item when the computation failed
func (g *Guard[S, T]) OnErrorReturnItem(item T) S {
	return fluent.Finally(g.outcome,
		func(T) S { return g.target.owner() },
		func(error) S { return g.target.copyItem(item) })
}

// OnErrorReturn continues with fn's result for the failure when the computation failed
func (g *Guard[S, T]) OnErrorReturn(fn func(error) T) S {
	return fluent.Finally(g.outcome,
		func(T) S { return g.target.owner() },
		func(err error) S {
			return g.target.copyItem(fluent.Call(func() T { return fn(err) }))
		})
}

// OnError hands the failure to handler and ends the chain
func (g *Guard[S, T]) OnError(handler func(error)) {
	if g.outcome.IsFailure() {
		err := g.outcome.Err()
		fluent.Invoke(func() { handler(err) })
	}
}

// OnErrorMap returns an Optional holding fn's result for the failure, empty on success
func (g *Guard[S, T]) OnErrorMap(fn func(error) T) *Optional[T] {
	return OnErrorMapTo(g, fn)
}

// OnErrorMapItem returns an Optional holding item on failure, empty on success
func (g *Guard[S, T]) OnErrorMapItem(item T) *Optional[T] {
	return OnErrorMapTo(g, func(error) T { return item })
}

func (g *Guard[S, T]) Log(tag any) *Logger[*Guard[S, T], T] {
	return newLogger[*Guard[S, T], T](g, tag)
}

func (g *Guard[S, T]) proxy() proxy[*Guard[S, T], T] {
	return proxy[*Guard[S, T], T]{
		item:   g.target.getItem(),
		absent: g.target.empty(),
		cfg:    g.target.getConfiguration(),
		self:   g,
		rebuild: func(item T, cfg *config.Configuration) *Guard[S, T] {
			return &Guard[S, T]{
				target:  g.target.copy(item, cfg).proxy(),
				outcome: g.outcome.WithResult(item),
			}
		},
	}
}

// OnErrorMapTo is OnErrorMap for a result of another type
func OnErrorMapTo[S internal[S, T], T, R any](g *Guard[S, T], fn func(error) R) *Optional[R] {
	cfg := g.target.getConfiguration()
	return fluent.Finally(g.outcome,
		func(T) *Optional[R] { return NoneWith[R](cfg) },
		func(err error) *Optional[R] {
			return MaybeWith(cfg, fluent.Call(func() R { return fn(err) }))
		})
}
