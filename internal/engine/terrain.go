package engine

import (
	"slices"

	"github.com/bisarnacki/magog/internal/domain"
)

// TerrainMap - разреженная карта местности. Неразмеченная клетка
// получает местность по умолчанию для своего биома.
type TerrainMap struct {
	cells map[domain.Location]domain.Terrain
}

func NewTerrainMap() *TerrainMap {
	return &TerrainMap{cells: make(map[domain.Location]domain.Terrain)}
}

// Paint задаёт местность клетки.
func (m *TerrainMap) Paint(loc domain.Location, t domain.Terrain) {
	m.cells[loc] = t
}

func (m *TerrainMap) Terrain(loc domain.Location) domain.Terrain {
	if t, ok := m.cells[loc]; ok {
		return t
	}
	return domain.DefaultTerrain(loc)
}

// IsPainted - клетка размечена явно.
func (m *TerrainMap) IsPainted(loc domain.Location) bool {
	_, ok := m.cells[loc]
	return ok
}

func (m *TerrainMap) Len() int {
	return len(m.cells)
}

// TerrainCell - запись размеченной клетки.
type TerrainCell struct {
	Loc     domain.Location `cbor:"1,keyasint"`
	Terrain domain.Terrain  `cbor:"2,keyasint"`
}

// Cells возвращает размеченные клетки в порядке Location.Compare.
func (m *TerrainMap) Cells() []TerrainCell {
	out := make([]TerrainCell, 0, len(m.cells))
	for loc, t := range m.cells {
		out = append(out, TerrainCell{Loc: loc, Terrain: t})
	}
	slices.SortFunc(out, func(a, b TerrainCell) int {
		return a.Loc.Compare(b.Loc)
	})
	return out
}
