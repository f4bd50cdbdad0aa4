package dungeon

import (
	"fmt"
	"slices"

	"github.com/bisarnacki/magog/internal/domain"
)

const caveText = `
##########################################
#......#.........#####..........#........#
#.d....#....s....#...#....o.....#...,,,..#
#..............................,#..,,,,..#
#......#.........#.........#....#........#
####.###.........#...#.....#....#####.####
#........................../........!....#
#...^^.....@.......(.......#.............#
#...^^.....................#.....s.......#
####.#######.....~~~~......#####.#########
#.........#......~~~~~-.........#........#
#...[.....#......~~~~--....?....#....d...#
#.........#.........--..........I........#
#....s....................#.............>#
##########################################
`

const meadowText = `
%%%%%%%%%%%%%%%%%%%%%%%%
%,,,,,,,,%%%,,,,,,,,,,,%
%,,,@,,,,,,,,,,,,,,,,,,%
%,,,,,,,,,,,,,,,+++,,,,%
%,,~~~,,,,,,,,,,+>+,,,,%
%,,~~~-,,,,s,,,,,,,,,,,%
%,,,,,,,,,,,,,,,,,,,,,,%
%%%%%%%%%%%%%%%%%%%%%%%%
`

var builtins = map[string]struct {
	text string
	z    int8
}{
	"cave":   {caveText, 1},
	"meadow": {meadowText, 0},
}

// Builtins - имена встроенных уровней.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Builtin собирает встроенный уровень по имени.
func Builtin(name string) (*Level, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q", name)
	}
	return NewLevel(domain.Loc(0, 0, b.z)).Text(b.text).Build()
}
