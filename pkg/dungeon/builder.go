package dungeon

import (
	"fmt"
	"strings"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Painter - всё, что умеет запоминать местность клетки.
type Painter interface {
	Paint(loc domain.Location, t domain.Terrain)
}

// Spawner создаёт сущность по имени формы.
type Spawner interface {
	SpawnNamed(name string, loc domain.Location) (types.EntityID, bool)
}

// Cell - размеченная клетка уровня.
type Cell struct {
	Loc     domain.Location
	Terrain domain.Terrain
}

// Spawn - сущность, которую нужно поставить при загрузке уровня.
type Spawn struct {
	Form string
	Loc  domain.Location
}

// Level - разобранная карта. Клетки и спавны идут в порядке чтения текста.
type Level struct {
	Cells    []Cell
	Spawns   []Spawn
	Start    domain.Location
	HasStart bool
}

// LevelBuilder предоставляет fluent API для создания уровней из текста.
// Строка текста - координата y, столбец - x.
type LevelBuilder struct {
	origin domain.Location
	legend Legend
	rows   []string
}

// NewLevel создаёт builder, у которого левый верхний символ карты попадает в origin.
func NewLevel(origin domain.Location) *LevelBuilder {
	return &LevelBuilder{
		origin: origin,
		legend: DefaultLegend(),
	}
}

// WithLegend заменяет словарь символов.
func (b *LevelBuilder) WithLegend(l Legend) *LevelBuilder {
	b.legend = l
	return b
}

// Rows добавляет строки карты.
func (b *LevelBuilder) Rows(rows ...string) *LevelBuilder {
	b.rows = append(b.rows, rows...)
	return b
}

// Text добавляет многострочный текст. Пустые строки по краям отбрасываются.
func (b *LevelBuilder) Text(text string) *LevelBuilder {
	return b.Rows(strings.Split(strings.Trim(text, "\n"), "\n")...)
}

// Build разбирает карту. Пробел означает «не размечено».
func (b *LevelBuilder) Build() (*Level, error) {
	lvl := &Level{}
	for y, row := range b.rows {
		for x, ch := range []rune(row) {
			if ch == ' ' {
				continue
			}
			loc := domain.Loc(int(b.origin.X)+x, int(b.origin.Y)+y, b.origin.Z)

			if t, ok := b.legend.Terrain[ch]; ok {
				lvl.Cells = append(lvl.Cells, Cell{Loc: loc, Terrain: t})
				continue
			}

			lvl.Cells = append(lvl.Cells, Cell{Loc: loc, Terrain: domain.TerrainFloor})
			if ch == StartGlyph {
				if lvl.HasStart {
					return nil, fmt.Errorf("row %d col %d: second start position", y, x)
				}
				lvl.Start, lvl.HasStart = loc, true
				continue
			}
			form, ok := b.legend.Spawns[ch]
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown map glyph %q", y, x, ch)
			}
			lvl.Spawns = append(lvl.Spawns, Spawn{Form: form, Loc: loc})
		}
	}
	if len(lvl.Cells) == 0 {
		return nil, fmt.Errorf("empty level")
	}
	return lvl, nil
}

// Paint переносит местность уровня в p.
func (l *Level) Paint(p Painter) {
	for _, c := range l.Cells {
		p.Paint(c.Loc, c.Terrain)
	}
}

// Populate ставит сущности уровня. Неизвестная форма - ошибка,
// уже созданные к этому моменту сущности остаются на карте.
func (l *Level) Populate(s Spawner) error {
	for _, sp := range l.Spawns {
		e, ok := s.SpawnNamed(sp.Form, sp.Loc)
		if !ok {
			return fmt.Errorf("unknown form %q at %v", sp.Form, sp.Loc)
		}
		logger.Log.WithFields(logrus.Fields{
			"component": "level_builder",
			"entity_id": e,
			"form":      sp.Form,
		}).Debug("Level entity placed")
	}
	return nil
}
