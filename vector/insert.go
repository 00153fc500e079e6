package vector

import "fmt"

// Insertion and erasure work on positions, not on cursor identity: cursors only
// deliver the index. Growing the storage invalidates all cursors issued before.

// Insert inserts a copy of x before position pos and returns a cursor to the
// inserted element.
func (v *Vector[T]) Insert(pos Cursor[T], x T) (Cursor[T], error) {
	return v.InsertValues(pos, x)
}

// InsertN inserts n copies of x before position pos and returns a cursor to the
// first inserted element. Inserting zero elements returns pos unchanged.
func (v *Vector[T]) InsertN(pos Cursor[T], n int, x T) (Cursor[T], error) {
	if n < 0 {
		return pos, fmt.Errorf("cannot insert %d elements: %w", n, ErrOutOfRange)
	}
	if err := v.checkInsertPos(pos); err != nil {
		return pos, err
	}
	staged, err := v.stage(n, func(int) T { return x })
	if err != nil {
		return pos, err
	}
	return v.insertStaged(pos, staged)
}

// InsertValues inserts copies of values before position pos and returns a cursor
// to the first inserted element.
func (v *Vector[T]) InsertValues(pos Cursor[T], values ...T) (Cursor[T], error) {
	if err := v.checkInsertPos(pos); err != nil {
		return pos, err
	}
	staged, err := v.stage(len(values), func(i int) T { return values[i] })
	if err != nil {
		return pos, err
	}
	return v.insertStaged(pos, staged)
}

// InsertRange inserts copies of the elements in [first, last) before position pos
// and returns a cursor to the first inserted element. The range may be taken from
// v itself.
func (v *Vector[T]) InsertRange(pos, first, last Cursor[T]) (Cursor[T], error) {
	src, err := rangeOf(first, last)
	if err != nil {
		return pos, err
	}
	return v.InsertValues(pos, src...)
}

func (v *Vector[T]) checkInsertPos(pos Cursor[T]) error {
	if pos.pos < 0 || pos.pos > v.Len() {
		return outOfRange(pos.pos, v.Len())
	}
	return nil
}

// stage copies n elements, produced by src, into a fresh slice. Nothing of v is
// touched, so a failing copy leaves v as it was.
func (v *Vector[T]) stage(n int, src func(int) T) ([]T, error) {
	staged := make([]T, 0, n)
	for i := 0; i < n; i++ {
		x, err := v.props.copyOf(src(i))
		if err != nil {
			v.props.destroyAll(staged)
			return nil, err
		}
		staged = append(staged, x)
	}
	return staged, nil
}

func (v *Vector[T]) insertStaged(pos Cursor[T], staged []T) (Cursor[T], error) {
	n := len(staged)
	if n == 0 {
		return pos, nil
	}
	i, size := pos.pos, v.Len()
	var err error
	if size+n > v.Cap() {
		err = v.reallocate(v.props.grownTo(v.Cap(), size+n))
	} else {
		err = v.Detach()
	}
	if err != nil {
		v.props.destroyAll(staged)
		return pos, err
	}
	slots := v.blk.slots
	if i < size {
		copy(slots[i+n:size+n], slots[i:size]) // copy handles the overlap
	}
	copy(slots[i:i+n], staged)
	v.blk.size += n
	tracer().Debugf("inserted %d elements at %d", n, i)
	return Cursor[T]{owner: v, blk: v.blk, pos: i}, nil
}

// Erase removes the element at position pos and returns a cursor to the element
// following it (or End()).
func (v *Vector[T]) Erase(pos Cursor[T]) (Cursor[T], error) {
	if pos.pos < 0 || pos.pos >= v.Len() {
		return pos, outOfRange(pos.pos, v.Len())
	}
	return v.EraseRange(pos, pos.Add(1))
}

// EraseRange removes the elements in [first, last) and returns a cursor to the
// element following the removed range (or End()). Erasing an empty range returns
// first unchanged. Capacity is never reduced.
func (v *Vector[T]) EraseRange(first, last Cursor[T]) (Cursor[T], error) {
	if first.blk != last.blk {
		return first, ErrForeignCursor
	}
	i, j, size := first.pos, last.pos, v.Len()
	if i < 0 || i > j || j > size {
		return first, fmt.Errorf("cannot erase range [%d,%d) of size %d: %w", i, j, size, ErrOutOfRange)
	}
	if i == j {
		return first, nil
	}
	if err := v.Detach(); err != nil {
		return first, err
	}
	slots := v.blk.slots
	v.blk.destroyRange(i, j)
	copy(slots[i:], slots[j:size])
	var zero T
	for k := size - (j - i); k < size; k++ {
		slots[k] = zero // moved, not destroyed
	}
	v.blk.size -= j - i
	tracer().Debugf("erased %d elements at %d", j-i, i)
	return Cursor[T]{owner: v, blk: v.blk, pos: i}, nil
}

// rangeOf returns the live elements in [first, last).
func rangeOf[T any](first, last Cursor[T]) ([]T, error) {
	if first.blk != last.blk {
		return nil, ErrForeignCursor
	}
	if first.pos < 0 || first.pos > last.pos || last.pos > first.blk.length() {
		return nil, fmt.Errorf("invalid range [%d,%d): %w", first.pos, last.pos, ErrOutOfRange)
	}
	return first.blk.live()[first.pos:last.pos], nil
}
