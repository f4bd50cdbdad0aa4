package systems

import (
	"os"
	"testing"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/core/types/enums"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// testField - открытый пол со стенами и мобами в заданных клетках.
type testField struct {
	walls domain.LocationSet
	mobs  map[domain.Location]types.EntityID
}

func newTestField() *testField {
	return &testField{
		walls: make(domain.LocationSet),
		mobs:  make(map[domain.Location]types.EntityID),
	}
}

func (f *testField) Terrain(loc domain.Location) domain.Terrain {
	if f.walls.Has(loc) {
		return domain.TerrainWall
	}
	return domain.TerrainFloor
}

func (f *testField) MobAt(loc domain.Location) (types.EntityID, bool) {
	e, ok := f.mobs[loc]
	return e, ok
}

func (f *testField) addMob(loc domain.Location, idx uint32) types.EntityID {
	e := types.PackEntityID(0, enums.KindMob, 1, idx)
	f.mobs[loc] = e
	return e
}
