package engine

import (
	"container/heap"

	"github.com/bisarnacki/magog/internal/core/types"
)

// TurnItem обертка для элемента очереди приоритетов
type TurnItem struct {
	Entity   types.EntityID // Чей ход
	Priority uint64         // NextActionTick. Чем меньше, тем раньше ход.
	Index    int            // Индекс в куче (нужен для update)
}

// TurnQueue реализует heap.Interface и хранит TurnItems
type TurnQueue []*TurnItem

func (pq TurnQueue) Len() int { return len(pq) }

func (pq TurnQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	// При равном тике раньше ходит тот, кто раньше создан
	return pq[i].Entity.Index() < pq[j].Entity.Index()
}

func (pq TurnQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *TurnQueue) Push(x any) {
	n := len(*pq)
	item := x.(*TurnItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *TurnQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // элемент больше не в куче
	*pq = old[0 : n-1]
	return item
}

// Update изменяет приоритет элемента в очереди
func (pq *TurnQueue) Update(item *TurnItem, priority uint64) {
	item.Priority = priority
	heap.Fix(pq, item.Index)
}
