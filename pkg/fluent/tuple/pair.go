// Package tuple provides the Pair that chain operations such as In and Pair produce.
package tuple

import "fmt"

// Pair holds two values of possibly different types
type Pair[A, B any] struct {
	first  A
	second B
}

func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{first: first, second: second}
}

func (p Pair[A, B]) First() A {
	return p.first
}

func (p Pair[A, B]) Second() B {
	return p.second
}

// Values returns both members, handy for multi-assignment
func (p Pair[A, B]) Values() (A, B) {
	return p.first, p.second
}

func (p Pair[A, B]) WithFirst(first A) Pair[A, B] {
	p.first = first
	return p
}

func (p Pair[A, B]) WithSecond(second B) Pair[A, B] {
	p.second = second
	return p
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.second)
}
