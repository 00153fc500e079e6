package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned if a position is outside of the live elements of a vector.
var ErrOutOfRange = errors.New("vector position out of range")

// ErrCapacityExceeded is returned if storage larger than the maximum capacity
// of a vector is requested. See MaxCapacity.
var ErrCapacityExceeded = errors.New("vector capacity exceeded")

// ErrEmpty is returned for operations which need at least one element.
var ErrEmpty = errors.New("vector is empty")

// ErrForeignCursor is returned if a range is delimited by cursors which do not
// index into the same storage.
var ErrForeignCursor = errors.New("cursors do not refer to the same storage")

func outOfRange(pos, size int) error {
	return fmt.Errorf("%w: position %d with size %d", ErrOutOfRange, pos, size)
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("cow.vector: "+msg, msgargs...)
		panic(msg)
	}
}
