package vector

import (
	"fmt"

	"github.com/npillmayer/cow/maybe"
)

// Vector is a resizable random-access sequence with copy-on-write storage.
//
// The zero value is an empty vector ready to use. A Vector must not be copied
// by assigning the struct value; use Copy or Assign instead, which account for
// the additional owner of the storage.
type Vector[T any] struct {
	props props[T]
	blk   *block[T]
}

// New creates an empty vector. It does not allocate storage.
func New[T any](opts ...Option[T]) *Vector[T] {
	return &Vector[T]{props: props[T]{}.with(opts)}
}

// Make creates a vector of n default elements. Default elements are created with
// the constructor set by WithConstructor, or are the zero value of T.
func Make[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot make vector of size %d: %w", n, ErrOutOfRange)
	}
	v := New(opts...)
	blk, err := construct(n, n, v.props, func(int) (T, error) {
		return v.props.newElem()
	})
	if err != nil {
		return nil, err
	}
	v.blk = blk
	return v, nil
}

// Filled creates a vector of n copies of value.
func Filled[T any](n int, value T, opts ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot make vector of size %d: %w", n, ErrOutOfRange)
	}
	v := New(opts...)
	blk, err := construct(n, n, v.props, func(int) (T, error) {
		return v.props.copyOf(value)
	})
	if err != nil {
		return nil, err
	}
	v.blk = blk
	return v, nil
}

// Of creates a vector holding the given values, with capacity equal to their count.
func Of[T any](values ...T) *Vector[T] {
	v, err := FromSlice(values)
	assertThat(err == nil, "unexpected error creating vector from values: %v", err)
	return v
}

// FromSlice creates a vector holding copies of the elements of values.
func FromSlice[T any](values []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	blk, err := copyBlock(values, len(values), v.props)
	if err != nil {
		return nil, err
	}
	v.blk = blk
	return v, nil
}

// FromRange creates a vector holding copies of the elements in [first, last).
// Both cursors have to index into the same storage.
func FromRange[T any](first, last Cursor[T], opts ...Option[T]) (*Vector[T], error) {
	src, err := rangeOf(first, last)
	if err != nil {
		return nil, err
	}
	return FromSlice(src, opts...)
}

// --- Ownership -------------------------------------------------------------

// Copy returns a vector sharing the storage of v. No elements are copied;
// the first mutation of either vector will give it storage of its own.
func (v *Vector[T]) Copy() *Vector[T] {
	w := &Vector[T]{props: v.props, blk: v.blk.acquire()}
	if v.blk != nil {
		tracer().Debugf("sharing storage, now with %d owners", v.blk.refs)
	}
	return w
}

// Assign makes v share the storage of w, dropping the storage v held before.
// Self-assignment is a no-op.
func (v *Vector[T]) Assign(w *Vector[T]) {
	if v == w {
		return
	}
	blk := w.blk.acquire() // acquire first: v and w may already share
	v.drop()
	v.blk = blk
	v.props = w.props
}

// Move returns a vector taking over the storage of v, leaving v empty.
// The number of owners of the storage does not change.
func (v *Vector[T]) Move() *Vector[T] {
	w := &Vector[T]{props: v.props, blk: v.blk}
	v.blk = nil
	return w
}

// MoveFrom transfers the storage of w to v, dropping the storage v held before.
// w is left empty.
func (v *Vector[T]) MoveFrom(w *Vector[T]) {
	if v == w {
		return
	}
	v.drop()
	v.blk, w.blk = w.blk, nil
	v.props = w.props
}

// Swap exchanges the contents of v and w, including their options.
func (v *Vector[T]) Swap(w *Vector[T]) {
	v.blk, w.blk = w.blk, v.blk
	v.props, w.props = w.props, v.props
}

// Release gives up v's ownership of its storage. If v was the last owner, all
// elements are destroyed. v is left empty and may be re-used.
func (v *Vector[T]) Release() {
	v.drop()
}

func (v *Vector[T]) drop() {
	v.blk.release()
	v.blk = nil
}

// RefCount returns the number of vectors sharing the storage of v, or 0 if v has no
// storage at all. It is intended for tests and diagnostics.
func (v *Vector[T]) RefCount() int {
	if v.blk == nil {
		return 0
	}
	return v.blk.refs
}

func (v *Vector[T]) shared() bool {
	return v.blk != nil && v.blk.refs > 1
}

// Detach gives v a private copy of its storage, if the storage is shared.
// Otherwise Detach is a no-op. The copy has the same capacity as the shared
// storage.
//
// If copying an element fails, the elements copied so far are destroyed and
// v keeps sharing its storage.
func (v *Vector[T]) Detach() error {
	if !v.shared() {
		return nil
	}
	tracer().Debugf("detaching from storage shared by %d owners", v.blk.refs)
	return v.reallocate(v.blk.capacity())
}

func (v *Vector[T]) mustDetach() {
	if err := v.Detach(); err != nil {
		panic(fmt.Errorf("cow.vector: cannot detach from shared storage: %w", err))
	}
}

// reallocate moves v to new private storage of the given capacity, copying all
// live elements. On error, v is unchanged.
func (v *Vector[T]) reallocate(capacity int) error {
	assertThat(capacity >= v.blk.length(), "cannot reallocate %d elements to capacity %d",
		v.blk.length(), capacity)
	blk, err := copyBlock(v.blk.live(), capacity, v.props)
	if err != nil {
		return err
	}
	v.blk.release()
	v.blk = blk
	return nil
}

// --- Accessors -------------------------------------------------------------

// Len returns the number of elements of v.
func (v *Vector[T]) Len() int {
	return v.blk.length()
}

// Cap returns the number of elements v can hold without allocating new storage.
func (v *Vector[T]) Cap() int {
	return v.blk.capacity()
}

// Empty is true if v holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.Len() == 0
}

// Get returns the element at position i. It never detaches. Like indexing a slice,
// Get panics if i is out of range.
func (v *Vector[T]) Get(i int) T {
	return v.blk.live()[i]
}

// At returns a pointer to the element at position i, suitable for modifying it.
// If the storage of v is shared, v detaches first. At returns ErrOutOfRange for
// positions outside of [0, Len()).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.Len() {
		return nil, outOfRange(i, v.Len())
	}
	if err := v.Detach(); err != nil {
		return nil, err
	}
	return &v.blk.slots[i], nil
}

// Index returns a pointer to the element at position i, suitable for modifying it.
// If the storage of v is shared, v detaches first.
//
// Index does not check i beyond what slice indexing does, and panics if detaching
// fails. Use At if element copying may fail.
func (v *Vector[T]) Index(i int) *T {
	v.mustDetach()
	return &v.blk.live()[i]
}

// Set replaces the element at position i.
func (v *Vector[T]) Set(i int, value T) error {
	p, err := v.At(i)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Front returns the first element of v, if any.
func (v *Vector[T]) Front() maybe.Maybe[T] {
	if v.Empty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.Get(0))
}

// Back returns the last element of v, if any.
func (v *Vector[T]) Back() maybe.Maybe[T] {
	if v.Empty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.Get(v.Len() - 1))
}

// Each calls f for every element of v in index order, until f returns false.
// It never detaches; f must not modify v.
func (v *Vector[T]) Each(f func(int, T) bool) {
	for i, x := range v.blk.live() {
		if !f(i, x) {
			return
		}
	}
}

// ToSlice returns the elements of v in a new slice. Elements are copied by
// assignment, not with the copier hook.
func (v *Vector[T]) ToSlice() []T {
	s := make([]T, v.Len())
	copy(s, v.blk.live())
	return s
}

// --- Cursors ---------------------------------------------------------------

// Begin returns a cursor to the first element. If the storage of v is shared,
// v detaches first, so the cursor may be used to modify elements.
// Begin panics if detaching fails.
func (v *Vector[T]) Begin() Cursor[T] {
	v.mustDetach()
	return Cursor[T]{owner: v, blk: v.blk}
}

// End returns a cursor to the position past the last element. Like Begin, it
// detaches shared storage.
func (v *Vector[T]) End() Cursor[T] {
	v.mustDetach()
	return Cursor[T]{owner: v, blk: v.blk, pos: v.Len()}
}

// CBegin returns a read-only cursor to the first element. It never detaches.
func (v *Vector[T]) CBegin() Cursor[T] {
	return Cursor[T]{owner: v, blk: v.blk}
}

// CEnd returns a read-only cursor past the last element. It never detaches.
func (v *Vector[T]) CEnd() Cursor[T] {
	return Cursor[T]{owner: v, blk: v.blk, pos: v.Len()}
}

// RBegin returns a reverse cursor to the last element, detaching shared storage.
func (v *Vector[T]) RBegin() ReverseCursor[T] {
	return ReverseCursor[T]{base: v.End()}
}

// REnd returns a reverse cursor to the position before the first element,
// detaching shared storage.
func (v *Vector[T]) REnd() ReverseCursor[T] {
	return ReverseCursor[T]{base: v.Begin()}
}

// CRBegin is the read-only counterpart of RBegin.
func (v *Vector[T]) CRBegin() ReverseCursor[T] {
	return ReverseCursor[T]{base: v.CEnd()}
}

// CREnd is the read-only counterpart of REnd.
func (v *Vector[T]) CREnd() ReverseCursor[T] {
	return ReverseCursor[T]{base: v.CBegin()}
}
