package systems

import (
	"testing"

	"github.com/bisarnacki/magog/internal/domain"
)

func TestMitigate(t *testing.T) {
	armored := domain.Stats{Armor: 4}
	fireproof := domain.Stats{Armor: 4, Intrinsics: domain.IntrinsicResistFire}

	tests := []struct {
		name   string
		amount int32
		kind   domain.DamageKind
		target domain.Stats
		want   int32
	}{
		{"physical minus armor", 10, domain.DamagePhysical, armored, 6},
		{"physical never below 1", 2, domain.DamagePhysical, armored, 1},
		{"elemental ignores armor", 12, domain.DamageElectricity, armored, 12},
		{"resisted element halved", 6, domain.DamageFire, fireproof, 3},
		{"resist is per element", 12, domain.DamageElectricity, fireproof, 12},
		{"resisted minimum 1", 1, domain.DamageFire, fireproof, 1},
		{"zero stays zero", 0, domain.DamagePhysical, domain.Stats{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mitigate(tt.amount, tt.kind, tt.target); got != tt.want {
				t.Errorf("Mitigate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestApplyHit(t *testing.T) {
	health := domain.Health{HP: 20, MaxHP: 20}

	res := ApplyHit(domain.Hit(5, domain.DamagePhysical), "Герой", "Орк", domain.Stats{}, &health)
	if health.HP != 15 || res.Damage != 5 || res.Died {
		t.Errorf("after first hit: hp=%d res=%+v", health.HP, res)
	}

	res = ApplyHit(domain.Hit(100, domain.DamageFire), "Герой", "Орк", domain.Stats{}, &health)
	if !res.Died || !health.IsDead() {
		t.Errorf("kill shot did not kill: %+v", res)
	}
	if res.HPBefore != 15 {
		t.Errorf("HPBefore = %d, want 15", res.HPBefore)
	}
}

func TestMeleeHit(t *testing.T) {
	if got := MeleeHit(domain.Stats{Power: 0}); got.Amount != 1 || got.Damage != domain.DamagePhysical {
		t.Errorf("MeleeHit(0) = %v", got)
	}
	if got := MeleeHit(domain.Stats{Power: 7}); got.Amount != 7 {
		t.Errorf("MeleeHit(7) = %v", got)
	}
}
