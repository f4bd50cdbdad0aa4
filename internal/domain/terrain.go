package domain

import "strings"

// Terrain - тип местности в клетке.
type Terrain uint8

const (
	TerrainVoid Terrain = iota
	TerrainFloor
	TerrainGrass
	TerrainWater
	TerrainShallows
	TerrainMagma
	TerrainTree
	TerrainWall
	TerrainRockWall
	TerrainRock
	TerrainFence
	TerrainBars
	TerrainStalagmite
	TerrainChasm
	TerrainDownstairs
)

type terrainInfo struct {
	name        string
	blocksSight bool
	blocksWalk  bool
	blocksShot  bool
}

var terrainTable = map[Terrain]terrainInfo{
	TerrainVoid:       {"VOID", false, true, false},
	TerrainFloor:      {"FLOOR", false, false, false},
	TerrainGrass:      {"GRASS", false, false, false},
	TerrainWater:      {"WATER", false, true, false},
	TerrainShallows:   {"SHALLOWS", false, false, false},
	TerrainMagma:      {"MAGMA", false, true, false},
	TerrainTree:       {"TREE", true, true, true},
	TerrainWall:       {"WALL", true, true, true},
	TerrainRockWall:   {"ROCK_WALL", true, true, true},
	TerrainRock:       {"ROCK", true, true, true},
	TerrainFence:      {"FENCE", false, true, true},
	TerrainBars:       {"BARS", false, true, false},
	TerrainStalagmite: {"STALAGMITE", false, true, true},
	TerrainChasm:      {"CHASM", false, true, false},
	TerrainDownstairs: {"DOWNSTAIRS", false, false, false},
}

// BlocksSight - клетка непрозрачна для FOV.
func (t Terrain) BlocksSight() bool {
	return terrainTable[t].blocksSight
}

// BlocksWalk - в клетку нельзя шагнуть.
func (t Terrain) BlocksWalk() bool {
	return terrainTable[t].blocksWalk
}

// BlocksShot - снаряд останавливается перед клеткой.
func (t Terrain) BlocksShot() bool {
	return terrainTable[t].blocksShot
}

func (t Terrain) String() string {
	if info, ok := terrainTable[t]; ok {
		return info.name
	}
	return "UNKNOWN"
}

func ParseTerrain(s string) (Terrain, bool) {
	upper := strings.ToUpper(s)
	for t, info := range terrainTable {
		if info.name == upper {
			return t, true
		}
	}
	return TerrainVoid, false
}

// DefaultTerrain - местность неразмеченной клетки: лес на поверхности,
// сплошной камень под землёй.
func DefaultTerrain(l Location) Terrain {
	if l.IsOverland() {
		return TerrainTree
	}
	return TerrainRock
}
