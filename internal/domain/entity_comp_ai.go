package domain

import "github.com/bisarnacki/magog/internal/core/types/enums"

// Wait откладывает следующий ход на ticks.
func (b *Brain) Wait(now, ticks uint64) {
	b.NextActionTick = now + ticks
}

// IsReady проверяет, настал ли ход.
func (b Brain) IsReady(now uint64) bool {
	return b.NextActionTick <= now
}

func (b Brain) IsPlayer() bool {
	return b.State == enums.BrainPlayer
}

// WakeUp переводит спящего моба в охоту.
func (b *Brain) WakeUp() {
	if b.State == enums.BrainAsleep {
		b.State = enums.BrainHunting
	}
}
