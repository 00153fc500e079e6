package vector

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	tp "github.com/xlab/treeprint"
)

var errBoom = errors.New("boom")

// lifecycle records calls to element hooks and can be set up to make them fail.
type lifecycle struct {
	copies, constructs int
	failCopyAt         int // fail on this (1-based) copy; 0 means never
	failConstructAt    int
	destroyed          []int
}

func (l *lifecycle) options() []Option[int] {
	return []Option[int]{
		WithCopier(func(x int) (int, error) {
			l.copies++
			if l.copies == l.failCopyAt {
				return 0, errBoom
			}
			return x, nil
		}),
		WithConstructor(func() (int, error) {
			l.constructs++
			if l.constructs == l.failConstructAt {
				return 0, errBoom
			}
			return -1, nil
		}),
		WithDestructor(func(x *int) {
			l.destroyed = append(l.destroyed, *x)
		}),
	}
}

// failCopyAfter lets the n-th copy from now on fail.
func (l *lifecycle) failCopyAfter(n int) {
	l.failCopyAt = l.copies + n
}

// --- Print vector ----------------------------------------------------------

func dumpVec[T any](v *Vector[T]) string {
	header := fmt.Sprintf("\nVector(len=%d, cap=%d, refs=%d)\n", v.Len(), v.Cap(), v.RefCount())
	if v.blk == nil {
		return header + "   <no storage>\n"
	}
	printer := tp.New()
	branch := printer.AddBranch(fmt.Sprintf("block %p released=%v", v.blk, v.blk.released))
	for i, x := range v.blk.slots {
		if i < v.blk.size {
			branch.AddNode(fmt.Sprintf("%d: %s", i, spew.Sprintf("%#v", x)))
		} else {
			branch.AddNode(fmt.Sprintf("%d: _", i))
		}
	}
	return header + printer.String() + "\n"
}
