// Package chain provides fluent wrappers that carry one value through a
// sequence of operations without explicit nil checks or error branches.
//
// Wrappers:
// - Chain: holds a value; Apply, Map, When, Guard, And, Debug, Log
// - Optional: a Chain that may be empty; operations are skipped while empty
// - Condition: a branch started by When/WhenNot, resolved by Then/ThenMap/ThenTo
// - Guard: the outcome of a computation that may fail, resolved by OnError*
// - Collector: an ordered accumulation of values started by And or Collect
//
// A callback that panics stops the chain with a *fluent.Failure panic. Guard is
// the one place where failures (returned errors or panics) are captured instead.
//
// Go methods cannot declare type parameters, so operations that change the held
// type are package functions:
//
//	n := chain.Map(chain.Let(5), func(x int) int { return x * 2 }).
//		When(func(x int) bool { return x > 5 }).
//		Then(func(x int) { fmt.Println(x) }).
//		Call() // 10
package chain
