// Package logging connects a zap logger to the loggers of a config.Configuration.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ib-77/fluent/pkg/fluent/config"
)

// InfoLogger writes info messages through logger
func InfoLogger(logger *zap.Logger) config.MessageLogger {
	return func(tag any, message any) {
		logger.Info(fmt.Sprint(message), zap.Any("tag", tag))
	}
}

// ErrorLogger writes error messages through logger
func ErrorLogger(logger *zap.Logger) config.MessageLogger {
	return func(tag any, message any) {
		logger.Error(fmt.Sprint(message), zap.Any("tag", tag))
	}
}

// ExceptionLogger writes failures through logger
func ExceptionLogger(logger *zap.Logger) config.ExceptionLogger {
	return func(tag any, err error) {
		logger.Error("failure", zap.Any("tag", tag), zap.Error(err))
	}
}

// Install sets all three loggers of cfg to write through logger and enables logging
func Install(cfg *config.Configuration, logger *zap.Logger) *config.Configuration {
	return cfg.
		SetInfoLogger(InfoLogger(logger)).
		SetErrorLogger(ErrorLogger(logger)).
		SetExceptionLogger(ExceptionLogger(logger)).
		SetLogging(true)
}
