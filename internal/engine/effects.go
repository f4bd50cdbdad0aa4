package engine

import (
	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/systems"
	"github.com/sirupsen/logrus"
)

// ApplyEffectToEntity применяет эффект к конкретной сущности.
// source может быть NilEntityID.
func (w *World) ApplyEffectToEntity(effect domain.Effect, target, source types.EntityID) {
	switch effect.Kind {
	case domain.EffectHit:
		w.damage(target, effect, source)
	case domain.EffectConfuse:
		w.gainStatus(target, domain.StatusConfused, domain.ConfusionTurns)
		w.post(domain.TextMsg("%s в замешательстве.", w.Name(target)))
	default:
		w.log("effect_resolver").WithField("effect", effect).Panic("Unknown effect kind")
	}
}

// ApplyEffectTo применяет эффект к мобу в клетке. Пустая клетка - ничего.
func (w *World) ApplyEffectTo(effect domain.Effect, loc domain.Location, source types.EntityID) {
	if mob, ok := w.MobAt(loc); ok {
		w.ApplyEffectToEntity(effect, mob, source)
	}
}

// ApplyEffect применяет эффект к каждой клетке области по одному разу,
// в порядке клеток области.
func (w *World) ApplyEffect(effect domain.Effect, volume domain.Volume, source types.EntityID) {
	resolveLogger := w.log("effect_resolver").WithFields(logrus.Fields{
		"effect": effect,
		"source": source,
	})
	for _, loc := range volume.Points() {
		resolveLogger.WithField("loc", loc).Debug("Resolving effect at location")
		w.ApplyEffectTo(effect, loc, source)
	}
}

func (w *World) damage(target types.EntityID, hit domain.Effect, source types.EntityID) {
	health := w.health.Ptr(target)
	if health == nil || health.IsDead() {
		return
	}
	stats, _ := w.stats.Get(target)
	name := w.Name(target)

	attacker := ""
	if !source.IsNil() {
		attacker = w.Name(source)
	}
	res := systems.ApplyHit(hit, attacker, name, stats, health)

	w.post(domain.DamageMsg(target))
	w.post(domain.TextMsg("%s получает %d урона.", name, res.Damage))
	w.setAnim(target, domain.AnimMobHurt)

	if b := w.brain.Ptr(target); b != nil {
		b.WakeUp()
	}

	if res.Died {
		w.post(domain.TextMsg("%s погибает.", name))
		if loc, ok := w.spatial.Location(target); ok {
			w.post(domain.GibMsg(loc))
			w.SpawnFx(loc, domain.AnimGib)
		}
	}
}

func (w *World) gainStatus(e types.EntityID, st domain.Status, turns uint32) {
	s, ok := w.statuses.Get(e)
	if !ok {
		s = domain.Statuses{}
		w.statuses.Insert(e, s)
	}
	s.Apply(st, turns)
}
