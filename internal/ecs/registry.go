package ecs

import (
	"fmt"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/core/types/enums"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Table - то, что Registry чистит при удалении сущности.
type Table interface {
	Remove(e types.EntityID)
}

// Registry выдаёт идентификаторы сущностей и следит за их жизнью.
// Слот освобождается с увеличением поколения; слот на последнем
// поколении выводится из оборота навсегда.
type Registry struct {
	shard uint8
	gens  []uint16
	kinds []enums.EntityKind
	alive []bool
	free  []uint32

	tables []Table
}

func NewRegistry(shard uint8) *Registry {
	return &Registry{shard: shard}
}

// Register подключает таблицу компонентов к жизненному циклу.
func (r *Registry) Register(t Table) {
	r.tables = append(r.tables, t)
}

// Make выдаёт новый, ранее не использованный идентификатор.
func (r *Registry) Make(kind enums.EntityKind) types.EntityID {
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
		r.gens[idx]++
	} else {
		idx = uint32(len(r.gens))
		r.gens = append(r.gens, 1)
		r.kinds = append(r.kinds, kind)
		r.alive = append(r.alive, false)
	}
	r.kinds[idx] = kind
	r.alive[idx] = true

	return types.PackEntityID(r.shard, kind, r.gens[idx], idx)
}

// IsAlive - id выдан этим реестром и сущность ещё не удалена.
func (r *Registry) IsAlive(e types.EntityID) bool {
	idx := e.Index()
	if e.IsNil() || int(idx) >= len(r.gens) || e.Shard() != r.shard {
		return false
	}
	return r.alive[idx] && r.gens[idx] == e.Generation() && r.kinds[idx] == e.Kind()
}

// Remove удаляет сущность и все её компоненты.
// Повторное удаление того же id - ошибка вызывающего кода.
func (r *Registry) Remove(e types.EntityID) {
	if !r.IsAlive(e) {
		logger.Log.WithFields(logrus.Fields{
			"component": "ecs",
			"entity_id": e,
		}).Panic("Remove of a dead or foreign entity.")
	}

	for _, t := range r.tables {
		t.Remove(e)
	}

	idx := e.Index()
	r.alive[idx] = false
	if r.gens[idx] < types.MaxGeneration {
		r.free = append(r.free, idx)
	}
}

// Entities возвращает живые сущности в порядке индексов.
func (r *Registry) Entities() []types.EntityID {
	out := make([]types.EntityID, 0, len(r.gens))
	for idx, ok := range r.alive {
		if ok {
			out = append(out, types.PackEntityID(r.shard, r.kinds[idx], r.gens[idx], uint32(idx)))
		}
	}
	return out
}

// Count - число живых сущностей.
func (r *Registry) Count() int {
	n := 0
	for _, ok := range r.alive {
		if ok {
			n++
		}
	}
	return n
}

// RegistryState - состояние реестра для сохранения.
type RegistryState struct {
	Gens  []uint16           `cbor:"1,keyasint"`
	Kinds []enums.EntityKind `cbor:"2,keyasint"`
	Alive []bool             `cbor:"3,keyasint"`
	Free  []uint32           `cbor:"4,keyasint"`
}

func (r *Registry) State() RegistryState {
	return RegistryState{
		Gens:  append([]uint16(nil), r.gens...),
		Kinds: append([]enums.EntityKind(nil), r.kinds...),
		Alive: append([]bool(nil), r.alive...),
		Free:  append([]uint32(nil), r.free...),
	}
}

// Restore заменяет состояние реестра сохранённым. Таблицы не трогает.
func (r *Registry) Restore(s RegistryState) error {
	n := len(s.Gens)
	if len(s.Kinds) != n || len(s.Alive) != n {
		return fmt.Errorf("registry state: %d gens, %d kinds, %d alive flags", n, len(s.Kinds), len(s.Alive))
	}
	for _, idx := range s.Free {
		if int(idx) >= n || s.Alive[idx] {
			return fmt.Errorf("registry state: bad free slot %d", idx)
		}
	}

	r.gens = append([]uint16(nil), s.Gens...)
	r.kinds = append([]enums.EntityKind(nil), s.Kinds...)
	r.alive = append([]bool(nil), s.Alive...)
	r.free = append([]uint32(nil), s.Free...)
	return nil
}
