package engine

import (
	"testing"

	"github.com/bisarnacki/magog/internal/domain"
)

func TestNextTick_Monotonic(t *testing.T) {
	w := newTestWorld(t)
	if w.Tick() != 0 || len(w.Entities()) != 0 {
		t.Fatalf("fresh world: tick=%d entities=%d", w.Tick(), len(w.Entities()))
	}
	if _, ok := w.Player(); ok {
		t.Fatal("fresh world must have no player")
	}

	spawnPlayer(t, w, origin)
	spawn(t, w, "dummy", origin.Step(domain.North, 3))

	for i := uint64(1); i <= 20; i++ {
		w.NextTick()
		if w.Tick() != i {
			t.Fatalf("after %d ticks Tick() = %d", i, w.Tick())
		}
	}
}

func TestFx_LifetimeIsHorizon(t *testing.T) {
	w := newTestWorld(t)
	for range 5 {
		w.NextTick()
	}
	start := w.Tick()

	fx := w.SpawnFx(origin, domain.AnimExplosion)
	a, _ := w.Anim(fx)
	if a.DoneWorldTick != start+domain.FxHorizon || a.AnimStart != w.AnimTick() {
		t.Fatalf("fx anim = %+v", a)
	}

	for w.Tick() < start+domain.FxHorizon-1 {
		w.NextTick()
		if !w.Exists(fx) {
			t.Fatalf("fx vanished early at tick %d", w.Tick())
		}
	}

	w.NextTick()
	if w.Tick() != start+domain.FxHorizon {
		t.Fatalf("tick = %d", w.Tick())
	}
	if w.Exists(fx) {
		t.Fatal("fx must be gone once tick reaches start+FxHorizon")
	}
	if len(w.EntitiesAt(origin)) != 0 {
		t.Fatal("expired fx left a spatial entry")
	}
}

func TestSpawnFx_PanicsOnMobState(t *testing.T) {
	w := newTestWorld(t)
	defer func() {
		if recover() == nil {
			t.Fatal("SpawnFx with AnimMob must panic")
		}
	}()
	w.SpawnFx(origin, domain.AnimMob)
}

func TestTickAnims_OneShotReturnsToMob(t *testing.T) {
	w := newTestWorld(t)
	player := spawnPlayer(t, w, origin)
	dummy := spawn(t, w, "dummy", origin.Step(domain.North, 1))

	w.EntityMelee(player, domain.North)
	if a, _ := w.Anim(dummy); a.State != domain.AnimMobHurt {
		t.Fatalf("dummy anim = %s, want MOB_HURT", a.State)
	}

	for range domain.OneShotDuration {
		w.AdvanceAnimClock()
	}
	w.TickAnims()
	if a, _ := w.Anim(dummy); a.State != domain.AnimMob {
		t.Fatalf("dummy anim = %s, want MOB", a.State)
	}
}

func TestCleanDead_DropsContents(t *testing.T) {
	w := newTestWorld(t)
	player := spawnPlayer(t, w, origin)
	at := origin.Step(domain.NorthEast, 1)
	frail := spawn(t, w, "frail", at)

	ring := w.Contents(frail)
	if len(ring) != 1 {
		t.Fatalf("frail contents = %v", ring)
	}
	if st, _ := w.Stats(frail); st.Armor != 2 {
		t.Fatalf("frail armor = %d, want ring bonus 2", st.Armor)
	}

	// Броня 2, сила 10: 8 урона по 5 HP.
	if out := w.EntityMelee(player, domain.NorthEast); out != domain.Acted {
		t.Fatalf("melee = %s", out)
	}
	msgs := w.DrainMsgs()
	if !hasMsg(msgs, domain.GibMsg(at)) || !hasMsg(msgs, domain.DamageMsg(frail)) {
		t.Fatalf("msgs = %+v", msgs)
	}

	w.NextTick()
	if w.Exists(frail) {
		t.Fatal("dead mob survived CleanDead")
	}
	if loc, ok := w.Location(ring[0]); !ok || loc != at {
		t.Fatalf("ring at %v (%v), want dropped at %v", loc, ok, at)
	}
	if len(fxWithState(w, domain.AnimGib)) != 1 {
		t.Fatal("expected one gib fx")
	}
}

func TestAI_WakesAndAttacks(t *testing.T) {
	w := newTestWorld(t)
	player := spawnPlayer(t, w, origin)
	dummy := spawn(t, w, "dummy", origin.Step(domain.South, 3))

	w.NextTick()
	if b, _ := w.Brain(dummy); b.State.String() != "HUNTING" {
		t.Fatalf("dummy brain = %s after seeing the player", b.State)
	}

	// Два шага до соседства, затем удар. Сила манекена 0, но удар не слабее 1.
	for range 4 {
		w.NextTick()
	}
	if got := hp(t, w, player); got >= 30 {
		t.Fatalf("player hp = %d, dummy never attacked", got)
	}
	if loc, _ := w.Location(dummy); !loc.IsAdjacent(origin) {
		t.Fatalf("dummy at %v, want adjacent to player", loc)
	}
}

func TestWorldSpawns(t *testing.T) {
	w := NewWorld(Config{Seed: 3, SpawnInterval: 1}, testForms(t))
	for _, loc := range domain.SphereVolume(origin, 14).Points() {
		w.Terrains().Paint(loc, domain.TerrainFloor)
	}
	spawnPlayer(t, w, origin)

	w.NextTick() // тик 0 не спавнит
	if n := len(w.Entities()); n != 1 {
		t.Fatalf("entities after first tick = %d", n)
	}

	w.NextTick()
	var spawned []domain.Location
	for _, e := range w.Entities() {
		if d, _ := w.Desc(e); d.Form == "spawnling" {
			loc, _ := w.Location(e)
			spawned = append(spawned, loc)
		}
	}
	if len(spawned) != 1 {
		t.Fatalf("spawned = %v, want exactly one", spawned)
	}
	if d := origin.Distance(spawned[0]); d < spawnRingMin || d > spawnRingMax {
		t.Fatalf("spawn at distance %d", d)
	}
}
