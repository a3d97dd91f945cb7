package config

import (
	"sync"

	"github.com/ib-77/fluent/pkg/fluent"
)

type (
	// MessageLogger receives info and error messages
	MessageLogger func(tag any, message any)

	// ExceptionLogger receives failures
	ExceptionLogger func(tag any, err error)
)

// Configuration is shared by every wrapper created against it. Field updates are
// not synchronized; set it up before chains start reading it concurrently.
type Configuration struct {
	key             any
	debugging       bool
	logging         bool
	infoLogger      MessageLogger
	errorLogger     MessageLogger
	exceptionLogger ExceptionLogger
}

var (
	mu        sync.Mutex
	instances = make(map[any]*Configuration)
)

// Instance returns the configuration registered under key, creating it on first
// request. key must be comparable; a key that cannot be hashed panics with a
// *fluent.Failure.
func Instance(key any) *Configuration {
	return fluent.Call(func() *Configuration {
		return instance(key)
	})
}

func instance(key any) *Configuration {
	mu.Lock()
	defer mu.Unlock()

	cfg, ok := instances[key]
	if !ok {
		cfg = &Configuration{key: key}
		instances[key] = cfg
	}
	return cfg
}

// Default returns the configuration registered under the nil key
func Default() *Configuration {
	return Instance(nil)
}

func (c *Configuration) Key() any {
	return c.key
}

func (c *Configuration) Debugging() bool {
	return c.debugging
}

func (c *Configuration) SetDebugging(debugging bool) *Configuration {
	c.debugging = debugging
	return c
}

func (c *Configuration) Logging() bool {
	return c.logging
}

func (c *Configuration) SetLogging(logging bool) *Configuration {
	c.logging = logging
	return c
}

func (c *Configuration) InfoLogger() MessageLogger {
	return c.infoLogger
}

func (c *Configuration) SetInfoLogger(logger MessageLogger) *Configuration {
	c.infoLogger = logger
	return c
}

func (c *Configuration) ErrorLogger() MessageLogger {
	return c.errorLogger
}

func (c *Configuration) SetErrorLogger(logger MessageLogger) *Configuration {
	c.errorLogger = logger
	return c
}

func (c *Configuration) ExceptionLogger() ExceptionLogger {
	return c.exceptionLogger
}

func (c *Configuration) SetExceptionLogger(logger ExceptionLogger) *Configuration {
	c.exceptionLogger = logger
	return c
}

func SetDebugging(debugging bool) {
	Default().SetDebugging(debugging)
}

func SetLogging(logging bool) {
	Default().SetLogging(logging)
}

func SetInfoLogger(logger MessageLogger) {
	Default().SetInfoLogger(logger)
}

func SetErrorLogger(logger MessageLogger) {
	Default().SetErrorLogger(logger)
}

func SetExceptionLogger(logger ExceptionLogger) {
	Default().SetExceptionLogger(logger)
}
