/*
Package vector implements a resizable, random-access vector with copy-on-write
storage sharing.

Copying a vector is cheap: the copy shares the backing storage of the original,
and a reference count on the storage keeps track of how many vectors currently
hold it. The first mutation through any of the sharing vectors gives this
vector a private deep copy of the storage ("detach"), leaving all other
vectors unaffected. Clients therefore get value semantics at the cost of a
pointer copy.

	v := vector.Of(1, 2, 3)
	w := v.Copy()      // v and w share storage, v.RefCount() == 2
	_ = w.PushBack(4)  // w detaches; v is still [1 2 3]

Go has neither copy constructors nor destructors, so the lifecycle of a
vector is explicit: Copy, Assign, Move and MoveFrom take the place of
copying and moving, and Release gives up ownership of the storage.
Vectors must not be copied by plain assignment of the struct value.

Element construction and destruction can be customized with options
(WithConstructor, WithCopier, WithDestructor). If a hook fails during an
operation which allocates new storage, already constructed elements are
destroyed and the vector keeps its previous state.

Vectors are not safe for concurrent use. Reference counts are not atomic;
clients sharing storage between goroutines have to serialize access
externally, including calls to Copy and Release.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cow.vector'.
func tracer() tracing.Trace {
	return tracing.Select("cow.vector")
}
