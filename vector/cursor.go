package vector

// Cursor is a random-access position within the storage of a vector.
//
// A cursor does not own the storage it indexes into. It is invalidated by any
// operation that moves its vector to new storage: growing, Reserve, ShrinkToFit
// and detaching from shared storage. Cursors do no bounds checking of their
// own beyond what slice indexing does.
//
// Cursors are values; arithmetic returns new cursors.
type Cursor[T any] struct {
	owner *Vector[T] // vector which issued the cursor, if any
	blk   *block[T]
	pos   int
}

// Index returns the position of c.
func (c Cursor[T]) Index() int {
	return c.pos
}

// Valid is true if the storage c indexes into is still alive, is still the
// storage of the vector which issued c, and c is positioned within [0, Len()]
// of it. A vector which detaches, re-allocates or is released invalidates all
// cursors it issued before, even if other vectors keep the old storage alive.
func (c Cursor[T]) Valid() bool {
	if c.owner != nil && c.owner.blk != c.blk {
		return false
	}
	if c.blk == nil {
		return c.pos == 0
	}
	return !c.blk.released && c.pos >= 0 && c.pos <= c.blk.size
}

func (c Cursor[T]) moved(n int) Cursor[T] {
	return Cursor[T]{owner: c.owner, blk: c.blk, pos: c.pos + n}
}

// Get dereferences c.
func (c Cursor[T]) Get() T {
	return c.blk.slots[c.pos]
}

// Ptr returns a pointer to the element at c.
func (c Cursor[T]) Ptr() *T {
	return &c.blk.slots[c.pos]
}

// Set overwrites the element at c. The cursor should stem from a non-const
// accessor (Begin, End), otherwise the write may be visible to other vectors
// sharing the storage.
func (c Cursor[T]) Set(x T) {
	c.blk.slots[c.pos] = x
}

// At returns the element at offset n from c.
func (c Cursor[T]) At(n int) T {
	return c.blk.slots[c.pos+n]
}

// Next returns the cursor to the following position.
func (c Cursor[T]) Next() Cursor[T] {
	return c.moved(1)
}

// Prev returns the cursor to the preceding position.
func (c Cursor[T]) Prev() Cursor[T] {
	return c.moved(-1)
}

// Inc advances c by one position and returns the advanced cursor.
func (c *Cursor[T]) Inc() Cursor[T] {
	c.pos++
	return *c
}

// Dec moves c back by one position and returns the moved cursor.
func (c *Cursor[T]) Dec() Cursor[T] {
	c.pos--
	return *c
}

// PostInc advances c by one position and returns the cursor as it was before.
func (c *Cursor[T]) PostInc() Cursor[T] {
	old := *c
	c.pos++
	return old
}

// PostDec moves c back by one position and returns the cursor as it was before.
func (c *Cursor[T]) PostDec() Cursor[T] {
	old := *c
	c.pos--
	return old
}

// Add returns c moved by n positions.
func (c Cursor[T]) Add(n int) Cursor[T] {
	return c.moved(n)
}

// Sub returns c moved back by n positions.
func (c Cursor[T]) Sub(n int) Cursor[T] {
	return c.moved(-n)
}

// Diff returns the distance c - other. Both cursors must index into the same storage.
func (c Cursor[T]) Diff(other Cursor[T]) int {
	assertThat(c.blk == other.blk, "cannot subtract cursors of different storage")
	return c.pos - other.pos
}

// Compare returns -1, 0 or +1, depending on whether c is located before, at or
// after other. Both cursors must index into the same storage.
func (c Cursor[T]) Compare(other Cursor[T]) int {
	switch d := c.Diff(other); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// Equal is true if c and other denote the same position.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.Compare(other) == 0
}

// Less is true if c is located before other.
func (c Cursor[T]) Less(other Cursor[T]) bool {
	return c.Compare(other) < 0
}

// LessEqual is true if c is located before or at other.
func (c Cursor[T]) LessEqual(other Cursor[T]) bool {
	return c.Compare(other) <= 0
}

// Greater is true if c is located after other.
func (c Cursor[T]) Greater(other Cursor[T]) bool {
	return c.Compare(other) > 0
}

// GreaterEqual is true if c is located after or at other.
func (c Cursor[T]) GreaterEqual(other Cursor[T]) bool {
	return c.Compare(other) >= 0
}

// --- Reverse cursor --------------------------------------------------------

// ReverseCursor walks the storage of a vector from back to front. It wraps a
// cursor (its base) which is positioned one element after the element the
// reverse cursor refers to.
type ReverseCursor[T any] struct {
	base Cursor[T]
}

// Base returns the underlying forward cursor.
func (r ReverseCursor[T]) Base() Cursor[T] {
	return r.base
}

// Index returns the position of the element r refers to.
func (r ReverseCursor[T]) Index() int {
	return r.base.pos - 1
}

// Valid is true if the base cursor of r is valid.
func (r ReverseCursor[T]) Valid() bool {
	return r.base.Valid()
}

// Get dereferences r.
func (r ReverseCursor[T]) Get() T {
	return r.base.At(-1)
}

// Ptr returns a pointer to the element at r.
func (r ReverseCursor[T]) Ptr() *T {
	return r.base.Prev().Ptr()
}

// Set overwrites the element at r. See Cursor.Set.
func (r ReverseCursor[T]) Set(x T) {
	r.base.Prev().Set(x)
}

// At returns the element n steps (towards the front) from r.
func (r ReverseCursor[T]) At(n int) T {
	return r.base.At(-1 - n)
}

// Next returns the reverse cursor to the preceding element of the vector.
func (r ReverseCursor[T]) Next() ReverseCursor[T] {
	return ReverseCursor[T]{base: r.base.Prev()}
}

// Prev returns the reverse cursor to the following element of the vector.
func (r ReverseCursor[T]) Prev() ReverseCursor[T] {
	return ReverseCursor[T]{base: r.base.Next()}
}

// Inc advances r by one step towards the front and returns the advanced cursor.
func (r *ReverseCursor[T]) Inc() ReverseCursor[T] {
	r.base.pos--
	return *r
}

// Dec moves r back by one step towards the end and returns the moved cursor.
func (r *ReverseCursor[T]) Dec() ReverseCursor[T] {
	r.base.pos++
	return *r
}

// PostInc advances r and returns the cursor as it was before.
func (r *ReverseCursor[T]) PostInc() ReverseCursor[T] {
	old := *r
	r.base.pos--
	return old
}

// PostDec moves r back and returns the cursor as it was before.
func (r *ReverseCursor[T]) PostDec() ReverseCursor[T] {
	old := *r
	r.base.pos++
	return old
}

// Add returns r moved by n steps towards the front.
func (r ReverseCursor[T]) Add(n int) ReverseCursor[T] {
	return ReverseCursor[T]{base: r.base.Sub(n)}
}

// Sub returns r moved by n steps towards the end.
func (r ReverseCursor[T]) Sub(n int) ReverseCursor[T] {
	return ReverseCursor[T]{base: r.base.Add(n)}
}

// Diff returns the distance r - other in reverse direction.
func (r ReverseCursor[T]) Diff(other ReverseCursor[T]) int {
	return other.base.Diff(r.base)
}

// Compare is like Cursor.Compare, in reverse direction.
func (r ReverseCursor[T]) Compare(other ReverseCursor[T]) int {
	return other.base.Compare(r.base)
}

// Equal is true if r and other denote the same position.
func (r ReverseCursor[T]) Equal(other ReverseCursor[T]) bool {
	return r.Compare(other) == 0
}

// Less is true if r comes before other when walking backwards.
func (r ReverseCursor[T]) Less(other ReverseCursor[T]) bool {
	return r.Compare(other) < 0
}

// LessEqual is true if r comes before other or is equal to it.
func (r ReverseCursor[T]) LessEqual(other ReverseCursor[T]) bool {
	return r.Compare(other) <= 0
}

// Greater is true if r comes after other when walking backwards.
func (r ReverseCursor[T]) Greater(other ReverseCursor[T]) bool {
	return r.Compare(other) > 0
}

// GreaterEqual is true if r comes after other or is equal to it.
func (r ReverseCursor[T]) GreaterEqual(other ReverseCursor[T]) bool {
	return r.Compare(other) >= 0
}
