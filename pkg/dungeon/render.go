package dungeon

import (
	"strings"

	"github.com/bisarnacki/magog/internal/domain"
)

// TerrainSource отдаёт местность клетки.
type TerrainSource interface {
	Terrain(loc domain.Location) domain.Terrain
}

// Render рисует прямоугольник w×h от клетки topLeft в тех же символах,
// из которых строится уровень. marks перекрывают местность.
func Render(src TerrainSource, legend Legend, topLeft domain.Location, w, h int, marks map[domain.Location]rune) []string {
	out := make([]string, 0, h)
	var sb strings.Builder
	for y := range h {
		sb.Reset()
		for x := range w {
			loc := domain.Loc(int(topLeft.X)+x, int(topLeft.Y)+y, topLeft.Z)
			if r, ok := marks[loc]; ok {
				sb.WriteRune(r)
				continue
			}
			sb.WriteRune(legend.Glyph(src.Terrain(loc)))
		}
		out = append(out, strings.TrimRight(sb.String(), " "))
	}
	return out
}
