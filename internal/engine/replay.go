package engine

import (
	"fmt"
	"time"

	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/forms"
	"github.com/bisarnacki/magog/pkg/dungeon"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// RunReplay заново строит мир по журналу и выполняет все его команды.
// Каждая команда должна прийти на том же ходу мира, что и при записи.
func RunReplay(session *domain.ReplaySession, reg *forms.Registry, lvl *dungeon.Level) (*World, error) {
	cfg := Config{Seed: session.Seed, SpawnInterval: session.SpawnInterval}
	world, err := BuildWorld(cfg, reg, lvl)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	inst := NewInstance(world, nil, time.Second, &domain.ReplaySession{Seed: session.Seed})

	for n, act := range session.Actions {
		if world.Tick() != act.Tick {
			return nil, fmt.Errorf("replay: action %d (%s) recorded at tick %d, world is at %d", n, act.Action, act.Tick, world.Tick())
		}
		if _, err := inst.Execute(domain.InternalCommand{
			Action:  act.Action,
			Token:   act.Token,
			Payload: act.Payload,
		}); err != nil {
			return nil, fmt.Errorf("replay: action %d (%s): %w", n, act.Action, err)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "replay",
		"seed":      session.Seed,
		"actions":   len(session.Actions),
		"tick":      world.Tick(),
	}).Info("Replay finished")
	return world, nil
}
