package engine

import (
	"container/heap"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/pkg/logger"
)

// TurnManager manages the priority queue of AI turns.
type TurnManager struct {
	queue   TurnQueue
	itemMap map[types.EntityID]*TurnItem
}

func NewTurnManager() *TurnManager {
	return &TurnManager{
		queue:   make(TurnQueue, 0),
		itemMap: make(map[types.EntityID]*TurnItem),
	}
}

// AddEntity registers an entity in the turn system.
func (tm *TurnManager) AddEntity(id types.EntityID, nextTick uint64) {
	if item, ok := tm.itemMap[id]; ok {
		tm.queue.Update(item, nextTick)
		return
	}

	item := &TurnItem{
		Entity:   id,
		Priority: nextTick,
	}

	heap.Push(&tm.queue, item)
	tm.itemMap[id] = item

	logger.Log.WithField("entity_id", id).Debug("Entity added to TurnManager")
}

// UpdatePriority updates an entity's position in the queue (e.g. after they acted).
func (tm *TurnManager) UpdatePriority(id types.EntityID, newTick uint64) {
	if item, ok := tm.itemMap[id]; ok {
		tm.queue.Update(item, newTick)
	}
}

// PeekNext returns the entity whose turn is next, without removing them.
func (tm *TurnManager) PeekNext() *TurnItem {
	if tm.queue.Len() == 0 {
		return nil
	}
	return tm.queue[0]
}

// RemoveEntity removes an entity from the turn system (e.g. death).
func (tm *TurnManager) RemoveEntity(id types.EntityID) {
	if item, ok := tm.itemMap[id]; ok {
		heap.Remove(&tm.queue, item.Index)
		delete(tm.itemMap, id)
	}
}

func (tm *TurnManager) Has(id types.EntityID) bool {
	_, ok := tm.itemMap[id]
	return ok
}

func (tm *TurnManager) Len() int {
	return tm.queue.Len()
}

// TurnEntry - строка отладочного снимка очереди.
type TurnEntry struct {
	ID       types.EntityID `json:"id"`
	Priority uint64         `json:"priority"`
	Index    int            `json:"index"`
}

// DebugDump возвращает снимок очереди для отладки
func (tm *TurnManager) DebugDump() []TurnEntry {
	// Инициализируем как пустой слайс, а не nil. Тогда в JSON это будет "[]", а не "null"
	result := make([]TurnEntry, 0, len(tm.queue))
	for _, item := range tm.queue {
		result = append(result, TurnEntry{
			ID:       item.Entity,
			Priority: item.Priority,
			Index:    item.Index,
		})
	}
	return result
}
