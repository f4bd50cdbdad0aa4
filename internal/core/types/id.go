package types

import (
	"fmt"
	"strconv"

	"github.com/bisarnacki/magog/internal/core/types/enums"
)

// EntityID - 64-битный идентификатор сущности.
//
// Формат битов (от старших к младшим):
//
//	[ Shard (8) | Kind (8) | Generation (16) | Index (32) ]
//
// Index адресует слот в хранилище сущностей, Generation растёт при каждом
// переиспользовании слота. Пара (Index, Generation) никогда не повторяется,
// поэтому ссылка на удалённую сущность не может случайно указать на новую.
type EntityID uint64

// NilEntityID - отсутствие сущности.
const NilEntityID EntityID = 0

// Конфигурация битов EntityID.
const (
	bitsIndex = 32
	bitsGen   = 16
	bitsKind  = 8
	bitsShard = 8

	shiftGen   = bitsIndex
	shiftKind  = bitsIndex + bitsGen
	shiftShard = bitsIndex + bitsGen + bitsKind

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
	maskShard = (1 << bitsShard) - 1
)

// MaxGeneration - последнее допустимое поколение слота.
// Слот, достигший его, больше не выдаётся.
const MaxGeneration = maskGen

// PackEntityID собирает EntityID из составных частей.
// Проверок диапазонов нет: значения обрезаются масками.
func PackEntityID(shardID uint8, kind enums.EntityKind, gen uint16, index uint32) EntityID {
	return EntityID(
		(uint64(shardID) << shiftShard) |
			(uint64(kind&maskKind) << shiftKind) |
			(uint64(gen) << shiftGen) |
			uint64(index),
	)
}

// Index возвращает индекс слота.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота.
func (id EntityID) Generation() uint16 {
	return uint16((id >> shiftGen) & maskGen)
}

// Kind возвращает вид сущности.
func (id EntityID) Kind() enums.EntityKind {
	return enums.EntityKind((id >> shiftKind) & maskKind)
}

// Shard возвращает идентификатор мира, выдавшего сущность.
func (id EntityID) Shard() uint8 {
	return uint8((id >> shiftShard) & maskShard)
}

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// IsLocal проверяет, принадлежит ли сущность текущему шарду.
func (id EntityID) IsLocal(currentShard uint8) bool {
	return id.Shard() == currentShard
}

// String используется в логах.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf(
		"[shard=%d kind=%s gen=%d idx=%d]",
		id.Shard(),
		id.Kind(),
		id.Generation(),
		id.Index(),
	)
}

// MarshalJSON пишет EntityID строкой: JavaScript теряет точность на uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON принимает и строку, и число.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*id = EntityID(v)
	return nil
}

// ParseEntityID разбирает десятичное представление из MarshalJSON.
func ParseEntityID(s string) (EntityID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NilEntityID, fmt.Errorf("invalid entity id %q: %w", s, err)
	}
	return EntityID(v), nil
}
