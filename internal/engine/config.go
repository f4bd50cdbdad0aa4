package engine

import "github.com/bisarnacki/magog/internal/config"

// Config хранит параметры симуляции
type Config struct {
	// Seed - мастер-зерно. От него зависят спавны, ИИ и разброс эффектов.
	Seed    uint64
	ShardId uint8
	// SpawnInterval - раз во сколько ходов мир подбрасывает нового моба.
	// 0 отключает спавн.
	SpawnInterval uint64
}

// NewConfig создает конфиг по умолчанию
func NewConfig(seed uint64) Config {
	return Config{
		Seed:          seed,
		ShardId:       0,
		SpawnInterval: 100,
	}
}

// ConfigFrom берет симуляционную часть из конфига процесса.
func ConfigFrom(c config.Config) Config {
	return Config{
		Seed:          c.ResolveSeed(),
		ShardId:       c.Shard,
		SpawnInterval: c.SpawnInterval,
	}
}
