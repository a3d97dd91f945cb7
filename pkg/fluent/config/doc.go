// Package config keeps the settings consulted by debug and logging operations.
//
// Configurations are created lazily, one per key, and live for the rest of the
// process. Most callers only touch the default instance through the package
// level setters:
//
//	config.SetDebugging(true)
//	config.SetLogging(true)
//	config.SetInfoLogger(func(tag, msg any) { log.Println(tag, msg) })
package config
