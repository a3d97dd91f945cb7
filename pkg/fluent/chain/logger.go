package chain

import (
	"github.com/ib-77/fluent/pkg/fluent"
	"github.com/ib-77/fluent/pkg/fluent/config"
)

// Logger dispatches messages to the loggers of the source's configuration. Nothing
// is logged unless logging is enabled and the matching logger is set.
type Logger[S internal[S, T], T any] struct {
	source S
	tag    any
	cfg    *config.Configuration
}

func newLogger[S internal[S, T], T any](source S, tag any) *Logger[S, T] {
	return &Logger[S, T]{
		source: source,
		tag:    tag,
		cfg:    source.proxy().getConfiguration(),
	}
}

// Message builds the message from the held value
func (l *Logger[S, T]) Message(compose func(T) any) *MessageLogger[S, T] {
	item := l.source.proxy().getItem()
	return &MessageLogger[S, T]{
		logger:  l,
		message: fluent.Call(func() any { return compose(item) }),
	}
}

func (l *Logger[S, T]) Info(message any) S {
	if logger := l.cfg.InfoLogger(); l.cfg.Logging() && logger != nil {
		fluent.Invoke(func() { logger(l.tag, message) })
	}
	return l.source
}

func (l *Logger[S, T]) Error(message any) S {
	if logger := l.cfg.ErrorLogger(); l.cfg.Logging() && logger != nil {
		fluent.Invoke(func() { logger(l.tag, message) })
	}
	return l.source
}

func (l *Logger[S, T]) Exception(err error) S {
	if logger := l.cfg.ExceptionLogger(); l.cfg.Logging() && logger != nil {
		fluent.Invoke(func() { logger(l.tag, err) })
	}
	return l.source
}

// MessageLogger logs a message built ahead of time
type MessageLogger[S internal[S, T], T any] struct {
	logger  *Logger[S, T]
	message any
}

func (m *MessageLogger[S, T]) Info() S {
	return m.logger.Info(m.message)
}

func (m *MessageLogger[S, T]) Error() S {
	return m.logger.Error(m.message)
}
