package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config - параметры процесса из окружения. Флаги командной строки
// перекрывают их в cmd/server.
type Config struct {
	// Seed - мастер-зерно мира. 0 - взять от текущего времени.
	Seed  uint64 `env:"MAGOG_SEED" envDefault:"0"`
	Shard uint8  `env:"MAGOG_SHARD" envDefault:"0"`

	Port int    `env:"MAGOG_PORT" envDefault:"8080"`
	DB   string `env:"MAGOG_DB" envDefault:"~/.magog/saves.db"`
	// Forms - путь к YAML с формами. Пусто - встроенный набор.
	Forms string `env:"MAGOG_FORMS"`

	SpawnInterval uint64 `env:"MAGOG_SPAWN_INTERVAL" envDefault:"100"`
	FrameMS       int    `env:"MAGOG_FRAME_MS" envDefault:"30"`
	ReplayDir     string `env:"MAGOG_REPLAY_DIR" envDefault:"replays"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load читает конфигурацию из окружения.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.FrameMS <= 0 {
		return fmt.Errorf("frame interval must be positive, got %dms", c.FrameMS)
	}
	return nil
}

// ResolveSeed возвращает Seed или зерно от часов, если Seed не задан.
func (c Config) ResolveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// FrameInterval - период часов анимации.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameMS) * time.Millisecond
}

// DBPath раскрывает "~/" в пути к базе сохранений.
func (c Config) DBPath() string {
	if rest, ok := strings.CutPrefix(c.DB, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return rest
		}
		return filepath.Join(home, rest)
	}
	return c.DB
}
