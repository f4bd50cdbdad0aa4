package systems

import (
	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
)

// TerrainMap - доступ к местности без зависимости от движка.
type TerrainMap interface {
	Terrain(loc domain.Location) domain.Terrain
}

// Field - местность плюс занятость клеток мобами.
type Field interface {
	TerrainMap
	MobAt(loc domain.Location) (types.EntityID, bool)
}
