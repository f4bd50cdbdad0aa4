package engine

import (
	"fmt"

	"github.com/bisarnacki/magog/internal/forms"
	"github.com/bisarnacki/magog/pkg/dungeon"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// PlayerForm - имя формы игрока в реестре.
const PlayerForm = "player"

// BuildWorld создает мир по уровню: размечает карту, ставит сущности и игрока.
// Порядок создания сущностей фиксирован, поэтому одинаковые сид и уровень
// дают одинаковые идентификаторы.
func BuildWorld(cfg Config, reg *forms.Registry, lvl *dungeon.Level) (*World, error) {
	if !lvl.HasStart {
		return nil, fmt.Errorf("level has no start position")
	}
	playerForm, ok := reg.Named(PlayerForm)
	if !ok {
		return nil, fmt.Errorf("forms: no %q form", PlayerForm)
	}

	w := NewWorld(cfg, reg)

	// 1. Карта
	lvl.Paint(w.Terrains())

	// 2. Игрок раньше остальных: его обзор нужен спавнам.
	w.SpawnPlayer(lvl.Start, playerForm)

	// 3. Обитатели уровня
	if err := lvl.Populate(w); err != nil {
		return nil, fmt.Errorf("populate level: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "world_builder",
		"seed":      cfg.Seed,
		"cells":     len(lvl.Cells),
		"entities":  len(w.Entities()),
	}).Info("World built")
	return w, nil
}
