package domain

// Параметры симуляции
const (
	// FxHorizon - через сколько ходов удаляется сущность-эффект.
	// Заведомо больше любой визуальной анимации.
	FxHorizon = 300

	// FovRangeUnderground - дальность обзора в подземелье.
	FovRangeUnderground = 7
	// SectorWidth - ширина сектора поверхности и дальность обзора на ней.
	SectorWidth = 40

	// ConfusionTurns - длительность замешательства.
	ConfusionTurns = 40

	// RegenInterval - каждые столько ходов ожидания восстанавливается 1 HP.
	RegenInterval = 5

	// WakeRange - на каком расстоянии спящий моб замечает игрока.
	WakeRange = 7
)

// Параметры способностей
const (
	LightningRange  = 4
	LightningDamage = 12

	FireballRange  = 9
	FireballRadius = 1
	FireballDamage = 6
	// FireballFlight - длительность полёта снаряда в тиках анимации.
	FireballFlight = 8

	ConfuseRange = 9
)
