package vector

import (
	"fmt"
	"strings"
)

// Equal is true if a and b have the same length and hold equal elements at every
// position. Sharing of storage and capacity have no influence on the result.
// A nil vector equals an empty one.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	var x, y []T
	if a != nil {
		x = a.blk.live()
	}
	if b != nil {
		y = b.blk.live()
	}
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !eq(x[i], y[i]) {
			return false
		}
	}
	return true
}

// String returns the elements of v, formatted like a slice.
func (v *Vector[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, x := range v.blk.live() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteByte(']')
	return b.String()
}
