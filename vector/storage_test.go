package vector

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAllocateRespectsMaxCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow.vector")
	defer teardown()
	//
	p := props[int]{maxCap: 4}
	if _, err := allocate(5, p); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected allocation of 5 slots to fail with capacity exceeded, got %v", err)
	}
	b, err := allocate(4, p)
	if err != nil {
		t.Fatalf("expected allocation of 4 slots to succeed, got %v", err)
	}
	if b.capacity() != 4 || b.size != 0 || b.refs != 1 {
		t.Errorf("expected empty block of capacity 4 with one owner, is cap=%d, size=%d, refs=%d",
			b.capacity(), b.size, b.refs)
	}
}

func TestConstructRollsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow.vector")
	defer teardown()
	//
	l := &lifecycle{}
	p := props[int]{}.with(l.options())
	b, err := construct(5, 5, p, func(i int) (int, error) {
		if i == 3 {
			return 0, errBoom
		}
		return i * 10, nil
	})
	if err != errBoom {
		t.Errorf("expected construction error to be propagated unchanged, is %v", err)
	}
	if b != nil {
		t.Error("expected no block to be returned on failure")
	}
	if len(l.destroyed) != 3 || l.destroyed[0] != 0 || l.destroyed[1] != 10 || l.destroyed[2] != 20 {
		t.Errorf("expected constructed elements [0 10 20] to be destroyed, destroyed %v", l.destroyed)
	}
}

func TestReleaseDestroysInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow.vector")
	defer teardown()
	//
	l := &lifecycle{}
	p := props[int]{}.with(l.options())
	b, err := copyBlock([]int{1, 2, 3}, 4, p)
	if err != nil {
		t.Fatal(err)
	}
	b.acquire()
	if b.release() {
		t.Error("expected block with two owners to survive a release")
	}
	if len(l.destroyed) != 0 {
		t.Errorf("expected no elements to be destroyed, destroyed %v", l.destroyed)
	}
	if !b.release() {
		t.Error("expected block to be freed by last release")
	}
	if len(l.destroyed) != 3 || l.destroyed[0] != 1 || l.destroyed[2] != 3 {
		t.Errorf("expected elements to be destroyed in order [1 2 3], destroyed %v", l.destroyed)
	}
	if !b.released || b.slots != nil || b.size != 0 {
		t.Error("expected released block to have dropped its slots")
	}
}

func TestDestroyRangeResetsSlots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow.vector")
	defer teardown()
	//
	b, _ := copyBlock([]string{"a", "b", "c"}, 3, props[string]{})
	b.destroyRange(1, 3)
	if b.slots[1] != "" || b.slots[2] != "" || b.slots[0] != "a" {
		t.Errorf("expected slots 1 and 2 to be reset, are %q", b.slots)
	}
}
