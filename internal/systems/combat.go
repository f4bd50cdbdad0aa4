package systems

import (
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// HitResult - что сделал удар с целью.
type HitResult struct {
	Damage   int32
	HPBefore int32
	HPAfter  int32
	Died     bool
}

// Mitigate считает урон после защиты цели.
// Физический урон снижается бронёй, но не ниже 1. Стихийный урон броню
// игнорирует и делится пополам при наличии сопротивления.
func Mitigate(amount int32, kind domain.DamageKind, target domain.Stats) int32 {
	if amount <= 0 {
		return 0
	}

	if kind == domain.DamagePhysical {
		return max(amount-target.Armor, 1)
	}
	if res := kind.Resistance(); res != 0 && target.Intrinsics.Has(res) {
		return max(amount/2, 1)
	}
	return amount
}

// ApplyHit применяет эффект Hit к здоровью цели.
func ApplyHit(hit domain.Effect, attacker, target string, stats domain.Stats, health *domain.Health) HitResult {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"attacker":    attacker,
		"target":      target,
		"damage_kind": hit.Damage,
	})

	damage := Mitigate(hit.Amount, hit.Damage, stats)

	res := HitResult{Damage: damage, HPBefore: health.HP}
	res.Died = health.TakeDamage(damage)
	res.HPAfter = health.HP

	combatLogger.WithFields(logrus.Fields{
		"base_damage":  hit.Amount,
		"armor":        stats.Armor,
		"final_damage": damage,
		"hp_before":    res.HPBefore,
		"hp_after":     res.HPAfter,
		"target_died":  res.Died,
	}).Info("Hit resolved.")

	return res
}

// MeleeHit - эффект рукопашного удара.
func MeleeHit(attacker domain.Stats) domain.Effect {
	return domain.Hit(max(attacker.Power, 1), domain.DamagePhysical)
}
