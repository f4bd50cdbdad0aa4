package engine

import (
	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/systems"
	"github.com/sirupsen/logrus"
)

// HasAbility - предмет даёт способность и у него остались заряды.
func (w *World) HasAbility(item types.EntityID, a domain.Ability) bool {
	it, ok := w.item.Get(item)
	return ok && it.HasAbility(a)
}

// UseItemAbility применяет ненаправленную способность предмета.
// Проверка способности и зарядов идёт до любых изменений мира.
// Если способность не сработала (нет цели), заряд и ход всё равно тратятся.
func (w *World) UseItemAbility(e, item types.EntityID, a domain.Ability) domain.Outcome {
	if a.IsTargeted() || !w.HasAbility(item, a) || !w.holds(e, item) {
		return domain.CannotAct
	}
	origin, ok := w.spatial.Location(e)
	if !ok {
		return domain.CannotAct
	}

	w.castUntargeted(e, a, origin)
	w.drainCharge(item)
	w.endTurn(e, false)
	return domain.Acted
}

// UseTargetedItemAbility применяет направленную способность предмета.
func (w *World) UseTargetedItemAbility(e, item types.EntityID, a domain.Ability, dir domain.Dir6) domain.Outcome {
	if !a.IsTargeted() || !w.HasAbility(item, a) || !w.holds(e, item) {
		return domain.CannotAct
	}
	origin, ok := w.spatial.Location(e)
	if !ok {
		return domain.CannotAct
	}

	w.castTargeted(e, a, origin, dir)
	w.drainCharge(item)
	w.endTurn(e, false)
	return domain.Acted
}

// UseAbility применяет врождённую ненаправленную способность. Зарядов нет.
func (w *World) UseAbility(e types.EntityID, a domain.Ability) domain.Outcome {
	innate, ok := w.innate.Get(e)
	if a.IsTargeted() || !ok || !innate.Has(a) {
		return domain.CannotAct
	}
	origin, ok := w.spatial.Location(e)
	if !ok {
		return domain.CannotAct
	}

	w.castUntargeted(e, a, origin)
	w.endTurn(e, false)
	return domain.Acted
}

// UseTargetedAbility применяет врождённую направленную способность.
func (w *World) UseTargetedAbility(e types.EntityID, a domain.Ability, dir domain.Dir6) domain.Outcome {
	innate, ok := w.innate.Get(e)
	if !a.IsTargeted() || !ok || !innate.Has(a) {
		return domain.CannotAct
	}
	origin, ok := w.spatial.Location(e)
	if !ok {
		return domain.CannotAct
	}

	w.castTargeted(e, a, origin, dir)
	w.endTurn(e, false)
	return domain.Acted
}

// holds - предмет лежит в ячейке пользователя.
func (w *World) holds(e, item types.EntityID) bool {
	parent, _, ok := w.spatial.Parent(item)
	return ok && parent == e
}

func (w *World) castUntargeted(e types.EntityID, a domain.Ability, origin domain.Location) {
	castLogger := w.log("ability").WithFields(logrus.Fields{
		"caster":  e,
		"ability": a,
		"origin":  origin,
	})

	switch a {
	case domain.AbilityLightningBolt:
		var candidates []systems.Candidate
		for _, loc := range domain.SphereVolume(origin, domain.LightningRange).Points() {
			for _, x := range w.spatial.EntitiesAt(loc) {
				if x != e && w.IsMob(x) && w.IsAlive(x) {
					candidates = append(candidates, systems.Candidate{ID: x, Loc: loc})
				}
			}
		}

		nearest := systems.Nearest(origin, candidates)
		if len(nearest) == 0 {
			castLogger.Info("Lightning fizzled")
			w.post(domain.TextMsg("Заклинание рассеивается."))
			return
		}
		target := nearest[w.rng.IntN(len(nearest))]
		castLogger.WithField("target", target.ID).Info("Lightning strikes")
		w.post(domain.TextMsg("Раздаётся раскат грома."))
		w.ApplyEffect(domain.Hit(domain.LightningDamage, domain.DamageElectricity), domain.PointVolume(target.Loc), e)

	default:
		castLogger.Warn("Ability has no untargeted form")
	}
}

func (w *World) castTargeted(e types.EntityID, a domain.Ability, origin domain.Location, dir domain.Dir6) {
	castLogger := w.log("ability").WithFields(logrus.Fields{
		"caster":  e,
		"ability": a,
		"origin":  origin,
		"dir":     dir,
	})

	switch a {
	case domain.AbilityFireball:
		center := systems.ProjectedExplosionCenter(w, origin, dir, domain.FireballRange)
		volume := domain.SphereVolume(center, domain.FireballRadius)
		castLogger.WithField("center", center).Info("Fireball explodes")
		w.ApplyEffect(domain.Hit(domain.FireballDamage, domain.DamageFire), volume, e)

		for _, pt := range volume.Points() {
			fx := w.SpawnFx(pt, domain.AnimExplosion)
			w.anim.Ptr(fx).AnimStart += domain.FireballFlight
		}

		projectile := w.SpawnFx(center, domain.AnimFirespell)
		anim := w.anim.Ptr(projectile)
		anim.TweenFrom = origin
		anim.TweenStart = w.animTick
		anim.TweenDuration = domain.FireballFlight

		w.post(domain.ExplosionMsg(center))

	case domain.AbilityConfuse:
		center := systems.ProjectedExplosionCenter(w, origin, dir, domain.ConfuseRange)
		castLogger.WithField("center", center).Info("Confusion cast")
		w.ApplyEffect(domain.Confusion(), domain.PointVolume(center), e)

	default:
		castLogger.Warn("Ability has no targeted form")
	}
}

func (w *World) drainCharge(item types.EntityID) {
	it := w.item.Ptr(item)
	if it == nil || it.Charges <= 0 {
		return
	}
	it.Charges--
	if it.Charges == 0 {
		w.post(domain.TextMsg("%s разряжается.", w.Name(item)))
	}
}
