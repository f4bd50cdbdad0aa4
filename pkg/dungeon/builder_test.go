package dungeon

import (
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/forms"
	"github.com/bisarnacki/magog/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type fakeMap map[domain.Location]domain.Terrain

func (f fakeMap) Paint(loc domain.Location, t domain.Terrain) { f[loc] = t }

func (f fakeMap) Terrain(loc domain.Location) domain.Terrain {
	if t, ok := f[loc]; ok {
		return t
	}
	return domain.DefaultTerrain(loc)
}

type fakeSpawner struct {
	known  []string
	placed []Spawn
}

func (f *fakeSpawner) SpawnNamed(name string, loc domain.Location) (types.EntityID, bool) {
	if !slices.Contains(f.known, name) {
		return types.NilEntityID, false
	}
	f.placed = append(f.placed, Spawn{Form: name, Loc: loc})
	return types.NilEntityID, true
}

func TestLevelBuilder_Build(t *testing.T) {
	origin := domain.Loc(10, 20, 2)
	lvl, err := NewLevel(origin).Rows(
		"###",
		"#@d",
		" .>",
	).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(lvl.Cells) != 8 {
		t.Fatalf("cells = %d, want 8 (space is unmarked)", len(lvl.Cells))
	}
	if !lvl.HasStart || lvl.Start != domain.Loc(11, 21, 2) {
		t.Fatalf("start = %v (%v)", lvl.Start, lvl.HasStart)
	}
	want := []Spawn{{Form: "dreg", Loc: domain.Loc(12, 21, 2)}}
	if !slices.Equal(lvl.Spawns, want) {
		t.Fatalf("spawns = %v, want %v", lvl.Spawns, want)
	}

	m := fakeMap{}
	lvl.Paint(m)
	tests := []struct {
		loc  domain.Location
		want domain.Terrain
	}{
		{domain.Loc(10, 20, 2), domain.TerrainWall},
		{domain.Loc(11, 21, 2), domain.TerrainFloor},
		{domain.Loc(12, 21, 2), domain.TerrainFloor},
		{domain.Loc(12, 22, 2), domain.TerrainDownstairs},
		{domain.Loc(10, 22, 2), domain.TerrainRock},
	}
	for _, tt := range tests {
		if got := m.Terrain(tt.loc); got != tt.want {
			t.Errorf("terrain at %v = %s, want %s", tt.loc, got, tt.want)
		}
	}
}

func TestLevelBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		wantErr string
	}{
		{"unknown glyph", []string{"#Q#"}, "unknown map glyph"},
		{"two starts", []string{"@.@"}, "second start"},
		{"empty", []string{"   ", ""}, "empty level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLevel(domain.Loc(0, 0, 1)).Rows(tt.rows...).Build()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLevel_Populate(t *testing.T) {
	lvl, err := NewLevel(domain.Loc(0, 0, 1)).Rows("d.s").Build()
	if err != nil {
		t.Fatal(err)
	}

	sp := &fakeSpawner{known: []string{"dreg"}}
	err = lvl.Populate(sp)
	if err == nil || !strings.Contains(err.Error(), `"snake"`) {
		t.Fatalf("error = %v, want unknown snake", err)
	}
	if len(sp.placed) != 1 {
		t.Fatalf("placed = %v", sp.placed)
	}
}

func TestBuiltin(t *testing.T) {
	reg := forms.Default()
	for _, name := range Builtins() {
		t.Run(name, func(t *testing.T) {
			lvl, err := Builtin(name)
			if err != nil {
				t.Fatalf("Builtin: %v", err)
			}
			if !lvl.HasStart {
				t.Fatal("level has no start")
			}
			for _, sp := range lvl.Spawns {
				if _, ok := reg.Named(sp.Form); !ok {
					t.Errorf("spawn of unknown form %q", sp.Form)
				}
			}
		})
	}

	if _, err := Builtin("nowhere"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestRender_RoundTrip(t *testing.T) {
	rows := []string{
		"#####",
		"#.,~#",
		"#:>^#",
		"#####",
	}
	origin := domain.Loc(-3, 4, 1)
	lvl, err := NewLevel(origin).Rows(rows...).Build()
	if err != nil {
		t.Fatal(err)
	}
	m := fakeMap{}
	lvl.Paint(m)

	got := Render(m, DefaultLegend(), origin, 5, 4, nil)
	if !slices.Equal(got, rows) {
		t.Fatalf("render:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(rows, "\n"))
	}

	marked := Render(m, DefaultLegend(), origin, 5, 4, map[domain.Location]rune{domain.Loc(-2, 5, 1): '@'})
	if marked[1] != "#@,~#" {
		t.Fatalf("marked row = %q", marked[1])
	}
}
