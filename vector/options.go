package vector

// props holds the element hooks and limits of a vector. Copies of a vector
// inherit the props of the original.
type props[T any] struct {
	construct func() (T, error)
	copyElem  func(T) (T, error)
	destroy   func(*T)
	maxCap    int // 0 means unlimited
}

// Option is a type to help initializing vectors at creation time.
type Option[T any] struct {
	config func(props[T]) props[T]
}

func (p props[T]) with(opts []Option[T]) props[T] {
	for _, option := range opts {
		if option.config != nil {
			p = option.config(p)
		}
	}
	return p
}

// WithConstructor sets the function used to create default elements, e.g. for
// Make and Resize. Without it, the default element is the zero value of T.
func WithConstructor[T any](f func() (T, error)) Option[T] {
	return Option[T]{config: func(p props[T]) props[T] {
		p.construct = f
		return p
	}}
}

// WithCopier sets the function used to copy elements into new storage: when
// detaching from shared storage, when re-allocating and when inserting values.
// Element types holding references (slices, maps, pointers) may want to
// deep-copy them here.
//
// Use it like this:
//
//	v := vector.New(vector.WithCopier(func(s []byte) ([]byte, error) {
//		return append([]byte(nil), s...), nil
//	}))
func WithCopier[T any](f func(T) (T, error)) Option[T] {
	return Option[T]{config: func(p props[T]) props[T] {
		p.copyElem = f
		return p
	}}
}

// WithDestructor sets a function which is called for every element destroyed
// by the vector: erased, truncated, or released together with its storage.
// Destruction is performed in index order.
func WithDestructor[T any](f func(*T)) Option[T] {
	return Option[T]{config: func(p props[T]) props[T] {
		p.destroy = f
		return p
	}}
}

// MaxCapacity limits the capacity of storage a vector may allocate. Requests
// exceeding n fail with ErrCapacityExceeded. n ≤ 0 means unlimited.
func MaxCapacity[T any](n int) Option[T] {
	return Option[T]{config: func(p props[T]) props[T] {
		if n < 0 {
			n = 0
		}
		p.maxCap = n
		return p
	}}
}

func (p props[T]) newElem() (T, error) {
	if p.construct == nil {
		var zero T
		return zero, nil
	}
	return p.construct()
}

func (p props[T]) copyOf(x T) (T, error) {
	if p.copyElem == nil {
		return x, nil
	}
	return p.copyElem(x)
}
