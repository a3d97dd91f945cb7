// Package fluent holds the pieces shared by every wrapper package: the Failure
// kind that callback panics are normalized into, the Result a guarded
// computation records, and small helpers such as IsNil.
//
// The wrappers themselves live in package chain; shared settings live in
// package config.
package fluent
