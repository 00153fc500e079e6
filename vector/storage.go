package vector

import "fmt"

// block is the storage of a vector. It holds a fixed number of slots, of which
// the first size ones hold live elements. Slots beyond size are always set to
// the zero value of T. A block never changes its capacity; growing a vector
// means allocating a new block.
//
// A block is referenced by one or more vectors; refs counts them. If refs drops
// to zero, the live elements are destroyed in order and the slots are dropped.
type block[T any] struct {
	slots    []T // len(slots) is the capacity of the block
	size     int
	refs     int
	released bool
	props    props[T]
}

// allocate creates an empty block with room for capacity elements. The new block
// has a single owner.
func allocate[T any](capacity int, p props[T]) (*block[T], error) {
	assertThat(capacity >= 0, "negative capacity requested: %d", capacity)
	if p.maxCap > 0 && capacity > p.maxCap {
		return nil, fmt.Errorf("%w: requested %d, maximum is %d", ErrCapacityExceeded, capacity, p.maxCap)
	}
	tracer().Debugf("allocating storage for %d elements", capacity)
	return &block[T]{
		slots: make([]T, capacity),
		refs:  1,
		props: p,
	}, nil
}

// construct creates a block of the given capacity and constructs n elements in it,
// the i-th one being produced by elem(i). If elem fails, all elements constructed
// so far are destroyed, the block is dropped and the error is returned unchanged.
func construct[T any](capacity, n int, p props[T], elem func(int) (T, error)) (*block[T], error) {
	assertThat(n <= capacity, "cannot construct %d elements in storage of capacity %d", n, capacity)
	b, err := allocate(capacity, p)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		x, err := elem(i)
		if err != nil {
			tracer().Debugf("element construction failed at %d/%d, rolling back", i, n)
			b.destroyRange(0, b.size)
			b.slots = nil
			b.released = true
			return nil, err
		}
		b.slots[i] = x
		b.size++
	}
	return b, nil
}

// copyBlock creates a block of the given capacity holding copies of src.
func copyBlock[T any](src []T, capacity int, p props[T]) (*block[T], error) {
	return construct(capacity, len(src), p, func(i int) (T, error) {
		return p.copyOf(src[i])
	})
}

func (b *block[T]) capacity() int {
	if b == nil {
		return 0
	}
	return len(b.slots)
}

func (b *block[T]) length() int {
	if b == nil {
		return 0
	}
	return b.size
}

// live returns the slots holding live elements.
func (b *block[T]) live() []T {
	if b == nil {
		return nil
	}
	return b.slots[:b.size]
}

// destroyRange destroys the elements in slots [from, to), in index order.
// It does not change size.
func (b *block[T]) destroyRange(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		if b.props.destroy != nil {
			b.props.destroy(&b.slots[i])
		}
		b.slots[i] = zero
	}
}

// acquire adds an owner.
func (b *block[T]) acquire() *block[T] {
	if b != nil {
		assertThat(!b.released, "attempt to share released storage")
		b.refs++
	}
	return b
}

// release removes an owner. If it was the last one, all live elements are
// destroyed and the storage is dropped. release reports whether the block
// has been freed.
func (b *block[T]) release() bool {
	if b == nil {
		return false
	}
	assertThat(b.refs > 0, "storage released more often than acquired")
	b.refs--
	if b.refs > 0 {
		return false
	}
	tracer().Debugf("releasing storage of %d/%d elements", b.size, len(b.slots))
	b.destroyRange(0, b.size)
	b.size = 0
	b.slots = nil
	b.released = true
	return true
}
