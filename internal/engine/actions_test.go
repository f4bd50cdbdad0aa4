package engine

import (
	"strings"
	"testing"

	"github.com/bisarnacki/magog/internal/core/types/enums"
	"github.com/bisarnacki/magog/internal/domain"
)

func TestEntityMelee(t *testing.T) {
	w := newTestWorld(t)
	player := spawnPlayer(t, w, origin)
	dummy := spawn(t, w, "dummy", origin.Step(domain.North, 1))

	before, _ := w.Snapshot()
	if out := w.EntityMelee(player, domain.South); out != domain.Declined {
		t.Fatalf("melee into empty hex = %s, want DECLINED", out)
	}
	after, _ := w.Snapshot()
	assertSameSnapshot(t, before, after)

	if out := w.EntityMelee(player, domain.North); out != domain.Acted {
		t.Fatalf("melee = %s", out)
	}
	if hp(t, w, dummy) != 90 {
		t.Fatalf("dummy hp = %d, want 90", hp(t, w, dummy))
	}
	if b, _ := w.Brain(dummy); b.State != enums.BrainHunting {
		t.Fatalf("hit dummy must wake up, brain = %s", b.State)
	}
}

func TestEntityStep(t *testing.T) {
	w := newTestWorld(t)
	player := spawnPlayer(t, w, origin)
	spawn(t, w, "dummy", origin.Step(domain.North, 1))
	w.Terrains().Paint(origin.Step(domain.South, 1), domain.TerrainWall)

	tests := []struct {
		name string
		dir  domain.Dir6
		want domain.Outcome
		to   domain.Location
	}{
		{"blocked by mob", domain.North, domain.CannotAct, origin},
		{"blocked by wall", domain.South, domain.CannotAct, origin},
		{"free", domain.SouthEast, domain.Acted, origin.Step(domain.SouthEast, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := w.EntityStep(player, tt.dir); out != tt.want {
				t.Fatalf("step = %s, want %s", out, tt.want)
			}
			if loc, _ := w.Location(player); loc != tt.to {
				t.Fatalf("player at %v, want %v", loc, tt.to)
			}
		})
	}
}

func TestIdle_Regenerates(t *testing.T) {
	w := newTestWorld(t)
	player := spawnPlayer(t, w, origin)
	w.health.Ptr(player).HP = 20

	for range domain.RegenInterval - 1 {
		w.Idle(player)
	}
	if hp(t, w, player) != 20 {
		t.Fatalf("healed too early: %d", hp(t, w, player))
	}
	w.Idle(player)
	if hp(t, w, player) != 21 {
		t.Fatalf("hp = %d after %d idle turns, want 21", hp(t, w, player), domain.RegenInterval)
	}

	// Любое другое действие сбрасывает счётчик.
	w.EntityStep(player, domain.North)
	if b, _ := w.Brain(player); b.IdleTurns != 0 {
		t.Fatalf("idle turns = %d after a step", b.IdleTurns)
	}
}

func TestSlowMobWaitsTwoTicks(t *testing.T) {
	w := newTestWorld(t)
	dummy := spawn(t, w, "dummy", origin)
	w.stats.Insert(dummy, domain.Stats{Intrinsics: domain.IntrinsicSlow})

	w.Idle(dummy)
	if b, _ := w.Brain(dummy); b.NextActionTick != w.Tick()+2 {
		t.Fatalf("next action = %d, want tick+2", b.NextActionTick)
	}
}

func TestConfusedMove_SpendsTurn(t *testing.T) {
	w := newTestWorld(t)
	player := spawnPlayer(t, w, origin)
	w.ApplyEffectToEntity(domain.Confusion(), player, player)
	w.DrainMsgs()

	// Ход тратится всегда, даже если случайное направление упёрлось в стену.
	for range 10 {
		if out := w.EntityStep(player, domain.North); out != domain.Acted {
			t.Fatalf("confused step = %s, want ACTED", out)
		}
	}
	staggers := 0
	for _, m := range w.DrainMsgs() {
		if strings.HasSuffix(m.Text, "шатается.") {
			staggers++
		}
	}
	if staggers == 0 {
		t.Fatal("confused player never staggered")
	}
}

func TestEquipment(t *testing.T) {
	w := newTestWorld(t)
	player := spawnPlayer(t, w, origin)
	ring := spawn(t, w, "ring", origin)
	helmet := give(t, w, player, "helmet")

	if st, _ := w.Stats(player); st.Armor != 1 {
		t.Fatalf("armor with helmet = %d, want 1", st.Armor)
	}

	if out := w.PickUp(player); out != domain.Acted {
		t.Fatalf("pick up = %s", out)
	}
	if parent, slot, ok := w.spatial.Parent(ring); !ok || parent != player || slot != enums.SlotBag0 {
		t.Fatalf("ring held by %s in %s", parent, slot)
	}
	if st, _ := w.Stats(player); st.Armor != 1 {
		t.Fatalf("bag items must not add stats, armor = %d", st.Armor)
	}
	if out := w.PickUp(player); out != domain.Declined {
		t.Fatalf("pick up from empty floor = %s, want DECLINED", out)
	}

	if out := w.Wield(player, ring); out != domain.Acted {
		t.Fatalf("wield = %s", out)
	}
	if st, _ := w.Stats(player); st.Armor != 3 {
		t.Fatalf("armor = %d, want 3", st.Armor)
	}

	// Второй шлем вытесняет первый в рюкзак.
	second := give(t, w, player, "helmet")
	if out := w.Wield(player, second); out != domain.Acted {
		t.Fatalf("wield second helmet = %s", out)
	}
	if _, slot, _ := w.spatial.Parent(helmet); !slot.IsBag() {
		t.Fatalf("displaced helmet in %s, want bag", slot)
	}
	if st, _ := w.Stats(player); st.Armor != 3 {
		t.Fatalf("armor = %d after swap, want 3", st.Armor)
	}
}

func TestSpawnPlayer(t *testing.T) {
	w := newTestWorld(t)
	player := spawnPlayer(t, w, origin)

	if again := spawnPlayer(t, w, origin.Step(domain.North, 2)); again != player {
		t.Fatal("second SpawnPlayer created a new player")
	}
	if loc, _ := w.Location(player); loc != origin {
		t.Fatalf("placed player moved to %v", loc)
	}

	w.spatial.Remove(player)
	spawnPlayer(t, w, origin.Step(domain.North, 2))
	if loc, ok := w.Location(player); !ok || loc != origin.Step(domain.North, 2) {
		t.Fatalf("player in limbo was not teleported: %v", loc)
	}
}

func TestEntityStep_UpdatesMobMemory(t *testing.T) {
	w := newTestWorld(t)
	spawnPlayer(t, w, origin)
	scout := spawn(t, w, "scout", origin.Step(domain.South, 3))

	if out := w.EntityStep(scout, domain.South); out != domain.Acted {
		t.Fatalf("step = %s", out)
	}
	memory, ok := w.MapMemory(scout)
	if !ok {
		t.Fatal("scout has no map memory")
	}
	at := origin.Step(domain.South, 4)
	if !memory.Seen.Has(at) || !memory.Seen.Has(at.Step(domain.South, 2)) {
		t.Fatalf("scout memory not refreshed after the step: %d cells seen", len(memory.Seen))
	}
}

func TestSpawn_LoadoutOverflowLeavesNoStrays(t *testing.T) {
	w := newTestWorld(t)
	hoarder := spawn(t, w, "hoarder", origin)

	if n := len(w.Contents(hoarder)); n != 10 {
		t.Fatalf("hoarder holds %d items, want 10", n)
	}
	if n := len(w.Entities()); n != 11 {
		t.Fatalf("world has %d entities, want hoarder and 10 wands", n)
	}
}
