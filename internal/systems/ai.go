package systems

import (
	"github.com/bisarnacki/magog/internal/core/types/enums"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// AIAction - что решил сделать моб.
type AIAction uint8

const (
	AIIdle AIAction = iota
	AIWake
	AIMelee
	AIStep
)

func (a AIAction) String() string {
	switch a {
	case AIIdle:
		return "IDLE"
	case AIWake:
		return "WAKE"
	case AIMelee:
		return "MELEE"
	case AIStep:
		return "STEP"
	}
	return "UNKNOWN"
}

// ComputeMobAction решает, что делать мобу в этот ход.
// target - клетка игрока, hasTarget == false если игрока нет.
func ComputeMobAction(field Field, self domain.Location, state enums.BrainState, target domain.Location, hasTarget bool) (domain.Dir6, AIAction) {
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"mob_pos":   self,
		"state":     state,
	})

	if !hasTarget || self.Z != target.Z {
		aiLogger.Debug("No target on this level. Action: IDLE")
		return 0, AIIdle
	}

	dist := self.Distance(target)

	// 1. Спящий просыпается, если видит игрока рядом
	if state == enums.BrainAsleep {
		if dist <= domain.WakeRange && HasLineOfSight(field, self, target) {
			aiLogger.WithField("distance", dist).Debug("Target spotted. Action: WAKE")
			return 0, AIWake
		}
		return 0, AIIdle
	}

	// 2. Рядом - бьём
	if dist == 1 {
		dir := domain.DirTowards(self, target)
		aiLogger.WithField("dir", dir).Debug("Target adjacent. Action: MELEE")
		return dir, AIMelee
	}

	// 3. Идём к цели, при заторе пробуем соседние направления
	dir, ok := smartStep(field, self, target)
	if !ok {
		aiLogger.Debug("Path is blocked. Action: IDLE")
		return 0, AIIdle
	}
	aiLogger.WithField("dir", dir).Debug("Pursuing target. Action: STEP")
	return dir, AIStep
}

func smartStep(field Field, self, target domain.Location) (domain.Dir6, bool) {
	best := domain.DirTowards(self, target)
	dist := self.Distance(target)

	for _, dir := range []domain.Dir6{best, best.Rotate(1), best.Rotate(-1)} {
		next := self.Step(dir, 1)
		if next.Distance(target) > dist {
			continue
		}
		if CanEnter(field, next) {
			return dir, true
		}
	}
	return 0, false
}
