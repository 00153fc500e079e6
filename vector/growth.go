package vector

import "fmt"

// Reserve makes sure v can hold at least n elements without allocating. If n does
// not exceed the current capacity, Reserve is a no-op; it never shrinks storage.
// Otherwise v moves to new private storage of capacity n.
//
// If allocation or copying fails, v is left unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	tracer().Debugf("reserving capacity %d (was %d)", n, v.Cap())
	return v.reallocate(n)
}

// grown returns the capacity to use for a full storage of capacity c. Capacity
// starts at 1 and doubles, but will not grow past a maximum capacity which is
// still larger than c.
func (p props[T]) grown(c int) int {
	if c == 0 {
		return 1
	}
	n := 2 * c
	if p.maxCap > 0 && c < p.maxCap && n > p.maxCap {
		n = p.maxCap
	}
	return n
}

// grownTo returns the capacity reached from c by repeated growth, large enough to
// hold need elements.
func (p props[T]) grownTo(c, need int) int {
	for c < need {
		c = p.grown(c)
	}
	return c
}

// PushBack appends a copy of x to v. If v is full, its capacity doubles
// (an empty vector gets a capacity of 1).
//
// If copying x or allocating fails, v is left unchanged.
func (v *Vector[T]) PushBack(x T) error {
	elem, err := v.props.copyOf(x)
	if err != nil {
		return err
	}
	if v.Len() < v.Cap() {
		err = v.Detach()
	} else {
		err = v.Reserve(v.props.grown(v.Cap()))
	}
	if err != nil {
		v.props.destroyOne(&elem)
		return err
	}
	v.blk.slots[v.blk.size] = elem
	v.blk.size++
	return nil
}

// PopBack removes the last element of v. It returns ErrEmpty for an empty vector.
func (v *Vector[T]) PopBack() error {
	if v.Empty() {
		return ErrEmpty
	}
	if err := v.Detach(); err != nil {
		return err
	}
	v.truncate(v.Len() - 1)
	return nil
}

// Resize changes the number of elements of v to n. Missing elements are default
// constructed and appended, surplus elements are destroyed from the end of v.
// Capacity is never reduced; if it is exceeded, v moves to storage of capacity n.
//
// If constructing an element or allocating fails, v is left unchanged.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("cannot resize vector to %d: %w", n, ErrOutOfRange)
	}
	size := v.Len()
	if n == size {
		return nil
	}
	if n < size {
		if err := v.Detach(); err != nil {
			return err
		}
		v.truncate(n)
		return nil
	}
	added := make([]T, 0, n-size)
	for i := size; i < n; i++ {
		x, err := v.props.newElem()
		if err != nil {
			v.props.destroyAll(added)
			return err
		}
		added = append(added, x)
	}
	var err error
	if n > v.Cap() {
		err = v.reallocate(n)
	} else {
		err = v.Detach()
	}
	if err != nil {
		v.props.destroyAll(added)
		return err
	}
	copy(v.blk.slots[size:n], added)
	v.blk.size = n
	return nil
}

// ShrinkToFit reduces the capacity of v to its length. If v has unused capacity,
// it moves to new private storage, otherwise ShrinkToFit is a no-op.
//
// If copying fails, v is left unchanged.
func (v *Vector[T]) ShrinkToFit() error {
	if v.blk == nil || v.Cap() == v.Len() {
		return nil
	}
	tracer().Debugf("shrinking capacity %d to %d", v.Cap(), v.Len())
	return v.reallocate(v.Len())
}

// Clear removes all elements from v, keeping its capacity. If the storage of v is
// shared, v gets new empty storage and the other owners keep their elements.
func (v *Vector[T]) Clear() error {
	if !v.shared() {
		v.truncate(0)
		return nil
	}
	blk, err := allocate(v.Cap(), v.props)
	if err != nil {
		return err
	}
	v.blk.release()
	v.blk = blk
	return nil
}

// truncate destroys the elements from position n onwards. v must not be shared.
func (v *Vector[T]) truncate(n int) {
	if v.blk == nil || n >= v.blk.size {
		return
	}
	assertThat(!v.shared(), "attempt to truncate shared storage")
	v.blk.destroyRange(n, v.blk.size)
	v.blk.size = n
}

func (p props[T]) destroyOne(x *T) {
	if p.destroy != nil {
		p.destroy(x)
	}
}

func (p props[T]) destroyAll(xs []T) {
	for i := range xs {
		p.destroyOne(&xs[i])
	}
}
