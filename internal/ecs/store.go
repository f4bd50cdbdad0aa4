package ecs

import "github.com/bisarnacki/magog/internal/core/types"

// Store - таблица компонентов одного типа (sparse set).
// Значения лежат плотно в dense, index переводит сущность в позицию.
// Ключом служит полный EntityID, поэтому устаревший id никогда не найдёт
// строку новой сущности в том же слоте.
type Store[T any] struct {
	index    map[types.EntityID]int
	dense    []T
	entities []types.EntityID
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[types.EntityID]int),
		dense:    make([]T, 0, 64),
		entities: make([]types.EntityID, 0, 64),
	}
}

// Insert добавляет или заменяет компонент.
func (s *Store[T]) Insert(e types.EntityID, val T) {
	if i, ok := s.index[e]; ok {
		s.dense[i] = val
		return
	}
	s.index[e] = len(s.dense)
	s.dense = append(s.dense, val)
	s.entities = append(s.entities, e)
}

// Get возвращает копию компонента.
func (s *Store[T]) Get(e types.EntityID) (T, bool) {
	if i, ok := s.index[e]; ok {
		return s.dense[i], true
	}
	var zero T
	return zero, false
}

// Ptr возвращает указатель для изменения на месте или nil.
// Указатель действителен до следующего Insert/Remove в этой таблице.
func (s *Store[T]) Ptr(e types.EntityID) *T {
	if i, ok := s.index[e]; ok {
		return &s.dense[i]
	}
	return nil
}

func (s *Store[T]) Has(e types.EntityID) bool {
	_, ok := s.index[e]
	return ok
}

// Remove удаляет компонент перестановкой с последним элементом.
func (s *Store[T]) Remove(e types.EntityID) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.dense) - 1
	if i != last {
		s.dense[i] = s.dense[last]
		s.entities[i] = s.entities[last]
		s.index[s.entities[i]] = i
	}

	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	delete(s.index, e)
}

func (s *Store[T]) Len() int {
	return len(s.dense)
}

// Entities возвращает копию списка владельцев в порядке хранения.
func (s *Store[T]) Entities() []types.EntityID {
	out := make([]types.EntityID, len(s.entities))
	copy(out, s.entities)
	return out
}

// Each обходит таблицу в порядке хранения. fn не должна менять таблицу.
func (s *Store[T]) Each(fn func(e types.EntityID, val *T)) {
	for i := range s.dense {
		fn(s.entities[i], &s.dense[i])
	}
}
