package engine

import (
	"container/heap"
	"testing"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/core/types/enums"
)

func TestTurnQueue(t *testing.T) {
	pq := make(TurnQueue, 0)
	heap.Init(&pq)

	e1 := types.PackEntityID(0, enums.KindMob, 1, 1)
	e2 := types.PackEntityID(0, enums.KindMob, 1, 2)
	e3 := types.PackEntityID(0, enums.KindMob, 1, 3)

	item1 := &TurnItem{Entity: e1, Priority: 10}
	item2 := &TurnItem{Entity: e2, Priority: 5}
	item3 := &TurnItem{Entity: e3, Priority: 20}

	heap.Push(&pq, item1)
	heap.Push(&pq, item2)
	heap.Push(&pq, item3)

	if pq.Len() != 3 {
		t.Errorf("Expected length 3, got %d", pq.Len())
	}

	// First pop should be e2 (Tick 5)
	first := heap.Pop(&pq).(*TurnItem)
	if first.Entity != e2 {
		t.Errorf("Expected e2, got %s", first.Entity)
	}

	// Current queue: e1(10), e3(20). Changing e1 to 30. New Top should be e3.
	pq.Update(item1, 30)

	second := heap.Pop(&pq).(*TurnItem)
	if second.Entity != e3 {
		t.Errorf("Expected e3 (Tick 20), got %s", second.Entity)
	}

	third := heap.Pop(&pq).(*TurnItem)
	if third.Entity != e1 {
		t.Errorf("Expected e1 (Tick 30), got %s", third.Entity)
	}
}

func TestTurnQueue_TieBreakByIndex(t *testing.T) {
	tm := NewTurnManager()
	late := types.PackEntityID(0, enums.KindMob, 1, 7)
	early := types.PackEntityID(0, enums.KindMob, 3, 2)

	tm.AddEntity(late, 4)
	tm.AddEntity(early, 4)

	if next := tm.PeekNext(); next.Entity != early {
		t.Errorf("PeekNext() = %s, want lower index first", next.Entity)
	}

	tm.RemoveEntity(early)
	if tm.Has(early) || tm.Len() != 1 {
		t.Errorf("RemoveEntity did not remove: len=%d", tm.Len())
	}
	if dump := tm.DebugDump(); len(dump) != 1 || dump[0].ID != late {
		t.Errorf("DebugDump() = %+v", dump)
	}
}
