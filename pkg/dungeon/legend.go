package dungeon

import "github.com/bisarnacki/magog/internal/domain"

// Legend - значение символов карты. Символ либо задаёт местность,
// либо ставит сущность формы на пол.
type Legend struct {
	Terrain map[rune]domain.Terrain
	Spawns  map[rune]string
}

// StartGlyph отмечает стартовую клетку игрока.
const StartGlyph = '@'

// DefaultLegend - символы встроенных уровней.
func DefaultLegend() Legend {
	return Legend{
		Terrain: map[rune]domain.Terrain{
			'.': domain.TerrainFloor,
			',': domain.TerrainGrass,
			'~': domain.TerrainWater,
			'-': domain.TerrainShallows,
			'&': domain.TerrainMagma,
			'%': domain.TerrainTree,
			'#': domain.TerrainWall,
			'X': domain.TerrainRockWall,
			'*': domain.TerrainRock,
			'+': domain.TerrainFence,
			'I': domain.TerrainBars,
			'^': domain.TerrainStalagmite,
			':': domain.TerrainChasm,
			'>': domain.TerrainDownstairs,
		},
		Spawns: map[rune]string{
			'd': "dreg",
			's': "snake",
			'o': "ooze",
			'/': "wand of lightning",
			'!': "wand of fire",
			'?': "wand of confusion",
			'(': "dagger",
			'[': "leather armor",
		},
	}
}

// Glyph - символ местности для отрисовки. Неизвестная местность рисуется пробелом.
func (l Legend) Glyph(t domain.Terrain) rune {
	best := ' '
	for r, lt := range l.Terrain {
		// Минимальный символ, чтобы результат не зависел от порядка обхода map.
		if lt == t && (best == ' ' || r < best) {
			best = r
		}
	}
	return best
}
