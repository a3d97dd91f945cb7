package chain

import (
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/ib-77/fluent/pkg/fluent"
	"github.com/ib-77/fluent/pkg/fluent/tuple"
)

// Comparator reports whether left and right match
type Comparator[T any] func(left, right T) bool

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal is the default Comparator: deep equality where two absent values are
// equal and an absent value never equals a present one. Pointers are followed
// and unexported fields compared, so two distinct pointers to equal values are
// equal; pass a Comparator using == to match on identity.
func Equal[T any](left, right T) bool {
	leftNil, rightNil := fluent.IsNil(left), fluent.IsNil(right)
	if leftNil || rightNil {
		return leftNil && rightNil
	}
	return cmp.Equal(left, right, exportAll)
}

// In pairs the held value with whether it matches any of items. Absent entries
// in items are ignored. comparator defaults to Equal.
func In[T any](c *Chain[T], items []T, comparator ...Comparator[T]) *Chain[tuple.Pair[T, bool]] {
	compare := Comparator[T](Equal[T])
	if len(comparator) > 0 && comparator[0] != nil {
		compare = comparator[0]
	}

	found := false
	for _, item := range items {
		if fluent.IsNil(item) {
			continue
		}
		if fluent.Call(func() bool { return compare(c.item, item) }) {
			found = true
			break
		}
	}

	return LetWith(c.cfg, tuple.PairOf(c.item, found))
}
