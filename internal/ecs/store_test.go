package ecs

import (
	"testing"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/core/types/enums"
)

func TestStore_InsertGetRemove(t *testing.T) {
	s := NewStore[int]()
	a := types.PackEntityID(0, enums.KindMob, 1, 0)
	b := types.PackEntityID(0, enums.KindMob, 1, 1)
	c := types.PackEntityID(0, enums.KindMob, 1, 2)

	s.Insert(a, 10)
	s.Insert(b, 20)
	s.Insert(c, 30)
	s.Insert(b, 21)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if v, ok := s.Get(b); !ok || v != 21 {
		t.Errorf("Get(b) = %d, %v; want 21, true", v, ok)
	}

	s.Remove(a)
	if s.Has(a) {
		t.Error("a still present after Remove")
	}
	if v, ok := s.Get(c); !ok || v != 30 {
		t.Errorf("Get(c) after swap-remove = %d, %v", v, ok)
	}
	if got := s.Entities(); len(got) != 2 || got[0] != c || got[1] != b {
		t.Errorf("Entities() = %v, want [c b]", got)
	}

	s.Remove(a)
	if s.Len() != 2 {
		t.Errorf("double Remove changed Len to %d", s.Len())
	}
}

func TestStore_PtrMutatesInPlace(t *testing.T) {
	type hp struct{ cur int }
	s := NewStore[hp]()
	e := types.PackEntityID(0, enums.KindMob, 1, 0)

	if s.Ptr(e) != nil {
		t.Fatal("Ptr of missing entity must be nil")
	}
	s.Insert(e, hp{cur: 5})
	s.Ptr(e).cur -= 2

	if v, _ := s.Get(e); v.cur != 3 {
		t.Errorf("cur = %d, want 3", v.cur)
	}
}

func TestStore_StaleIDMisses(t *testing.T) {
	s := NewStore[string]()
	old := types.PackEntityID(0, enums.KindMob, 1, 7)
	fresh := types.PackEntityID(0, enums.KindMob, 2, 7)

	s.Insert(fresh, "new")
	if _, ok := s.Get(old); ok {
		t.Error("stale id found the row of a newer generation")
	}
}

func TestStore_Each(t *testing.T) {
	s := NewStore[int]()
	for i := uint32(0); i < 4; i++ {
		s.Insert(types.PackEntityID(0, enums.KindMob, 1, i), int(i))
	}

	sum := 0
	s.Each(func(_ types.EntityID, v *int) {
		*v *= 10
		sum += *v
	})
	if sum != 60 {
		t.Errorf("sum = %d, want 60", sum)
	}
}
