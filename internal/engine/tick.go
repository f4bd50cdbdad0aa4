package engine

import (
	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/systems"
	"github.com/sirupsen/logrus"
)

const (
	spawnRingMin  = 8
	spawnRingMax  = 12
	spawnMaxTries = 16
)

// NextTick продвигает мир на один ход после ввода игрока.
// Порядок шагов фиксирован: спавн, анимации, ИИ, уборка мёртвых,
// тик, удаление истёкших эффектов.
func (w *World) NextTick() {
	w.generateWorldSpawns()
	w.TickAnims()

	w.aiMain()

	w.CleanDead()
	w.tick++

	w.expireFx()
}

// CleanDead убирает мёртвых. Всё, что они несли, падает на их клетку.
func (w *World) CleanDead() {
	for _, e := range w.registry.Entities() {
		h, ok := w.health.Get(e)
		if !ok || !h.IsDead() {
			continue
		}
		if loc, placed := w.spatial.Location(e); placed {
			for _, child := range w.spatial.Contents(e) {
				w.spatial.Place(child, loc)
			}
		}
		w.log("world").WithField("entity_id", e).Debug("Dead entity removed")
		w.removeEntity(e)
	}
}

// aiMain: сначала сердцебиение всех мобов (счётчики состояний), затем ходы
// ИИ в порядке очереди. Каждый моб ходит не больше раза за тик.
func (w *World) aiMain() {
	for _, e := range w.registry.Entities() {
		if w.brain.Has(e) && w.IsAlive(e) {
			w.heartbeat(e)
		}
	}

	for guard := w.turns.Len(); guard > 0; guard-- {
		next := w.turns.PeekNext()
		if next == nil || next.Priority > w.tick {
			break
		}
		e := next.Entity
		if !w.IsAlive(e) {
			w.turns.RemoveEntity(e)
			continue
		}

		w.runAI(e)

		b := w.brain.Ptr(e)
		if b.NextActionTick <= w.tick {
			b.Wait(w.tick, 1)
		}
		w.turns.UpdatePriority(e, b.NextActionTick)
	}
}

// heartbeat - то, что происходит с мобом каждый ход независимо от его
// скорости и бодрствования.
func (w *World) heartbeat(e types.EntityID) {
	if s, ok := w.statuses.Get(e); ok {
		s.Tick()
	}
}

func (w *World) runAI(e types.EntityID) {
	b, _ := w.brain.Get(e)
	self, ok := w.spatial.Location(e)
	if !ok {
		return
	}

	var target domain.Location
	hasTarget := false
	if player, ok := w.Player(); ok && w.IsAlive(player) {
		target, hasTarget = w.spatial.Location(player)
	}

	dir, action := systems.ComputeMobAction(w, self, b.State, target, hasTarget)
	switch action {
	case systems.AIWake:
		w.brain.Ptr(e).WakeUp()
		w.endTurn(e, false)
	case systems.AIMelee:
		if w.EntityMelee(e, dir) != domain.Acted {
			w.Idle(e)
		}
	case systems.AIStep:
		if w.EntityStep(e, dir) != domain.Acted {
			w.Idle(e)
		}
	default:
		w.Idle(e)
	}
}

// generateWorldSpawns раз в SpawnInterval ходов ставит моба на кольцо
// вокруг игрока, в клетку, которую игрок сейчас не видит.
func (w *World) generateWorldSpawns() {
	interval := w.cfg.SpawnInterval
	if interval == 0 || w.tick == 0 || w.tick%interval != 0 {
		return
	}
	player, ok := w.Player()
	if !ok {
		return
	}
	origin, ok := w.spatial.Location(player)
	if !ok {
		return
	}
	form, ok := w.forms.RandomMob(int(origin.Z), w.rng)
	if !ok {
		return
	}
	memory, _ := w.mapMemory.Get(player)

	for try := 0; try < spawnMaxTries; try++ {
		r := spawnRingMin + w.rng.IntN(spawnRingMax-spawnRingMin+1)
		dir := domain.Directions[w.rng.IntN(len(domain.Directions))]
		loc := origin.Step(dir, r).Step(dir.Rotate(2), w.rng.IntN(r))

		if memory.Seen.Has(loc) || !systems.CanEnter(w, loc) {
			continue
		}
		e := w.Spawn(form, loc)
		w.log("spawner").WithFields(logrus.Fields{
			"entity_id": e,
			"form":      form.Name,
			"loc":       loc,
		}).Info("World spawn")
		return
	}
}
