package engine

import (
	"math/rand/v2"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/ecs"
	"github.com/bisarnacki/magog/internal/forms"
	"github.com/bisarnacki/magog/internal/spatial"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// World - единственная точка изменения состояния игры.
// Не потокобезопасен: все вызовы идут из одной горутины (см. Instance).
type World struct {
	cfg   Config
	forms *forms.Registry

	registry  *ecs.Registry
	desc      *ecs.Store[domain.Desc]
	baseStats *ecs.Store[domain.Stats]
	stats     *ecs.Store[domain.Stats]
	health    *ecs.Store[domain.Health]
	brain     *ecs.Store[domain.Brain]
	mapMemory *ecs.Store[domain.MapMemory]
	anim      *ecs.Store[domain.Anim]
	statuses  *ecs.Store[domain.Statuses]
	item      *ecs.Store[domain.Item]
	innate    *ecs.Store[domain.Innate]

	spatial *spatial.Index
	terrain *TerrainMap
	turns   *TurnManager

	pcg *rand.PCG
	rng *rand.Rand

	// tick - логическое время, сохраняется. animTick - время отрисовки,
	// игровая логика его только записывает в Anim.
	tick     uint64
	animTick uint64

	player types.EntityID
	msgs   []domain.Msg
}

// NewWorld создаёт пустой мир: тик 0, ни одной сущности, игрока нет.
func NewWorld(cfg Config, reg *forms.Registry) *World {
	w := newEmptyWorld(cfg, reg)
	w.pcg = rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)
	w.rng = rand.New(w.pcg)

	logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"seed":      cfg.Seed,
		"shard":     cfg.ShardId,
	}).Info("World created")
	return w
}

func newEmptyWorld(cfg Config, reg *forms.Registry) *World {
	w := &World{
		cfg:       cfg,
		forms:     reg,
		registry:  ecs.NewRegistry(cfg.ShardId),
		desc:      ecs.NewStore[domain.Desc](),
		baseStats: ecs.NewStore[domain.Stats](),
		stats:     ecs.NewStore[domain.Stats](),
		health:    ecs.NewStore[domain.Health](),
		brain:     ecs.NewStore[domain.Brain](),
		mapMemory: ecs.NewStore[domain.MapMemory](),
		anim:      ecs.NewStore[domain.Anim](),
		statuses:  ecs.NewStore[domain.Statuses](),
		item:      ecs.NewStore[domain.Item](),
		innate:    ecs.NewStore[domain.Innate](),
		spatial:   spatial.New(),
		terrain:   NewTerrainMap(),
		turns:     NewTurnManager(),
	}
	for _, t := range []ecs.Table{
		w.desc, w.baseStats, w.stats, w.health, w.brain,
		w.mapMemory, w.anim, w.statuses, w.item, w.innate,
	} {
		w.registry.Register(t)
	}
	return w
}

func (w *World) Tick() uint64     { return w.tick }
func (w *World) AnimTick() uint64 { return w.animTick }

// Forms - реестр форм, из которого мир создаёт сущности.
func (w *World) Forms() *forms.Registry { return w.forms }

// Config возвращает параметры, с которыми создан мир.
func (w *World) Config() Config { return w.cfg }

// Player возвращает игрока, если он есть.
func (w *World) Player() (types.EntityID, bool) {
	if w.player.IsNil() || !w.registry.IsAlive(w.player) {
		return types.NilEntityID, false
	}
	return w.player, true
}

// Terrains даёт доступ к карте местности для разметки.
func (w *World) Terrains() *TerrainMap { return w.terrain }

// Terrain - местность клетки.
func (w *World) Terrain(loc domain.Location) domain.Terrain {
	return w.terrain.Terrain(loc)
}

// Exists - идентификатор выдан этим миром и сущность не удалена.
func (w *World) Exists(e types.EntityID) bool {
	return w.registry.IsAlive(e)
}

// IsAlive - сущность существует и, если у неё есть здоровье, жива.
func (w *World) IsAlive(e types.EntityID) bool {
	if !w.registry.IsAlive(e) {
		return false
	}
	if h, ok := w.health.Get(e); ok {
		return !h.IsDead()
	}
	return true
}

// IsMob - сущность с мозгом: игрок или ИИ.
func (w *World) IsMob(e types.EntityID) bool {
	return w.brain.Has(e)
}

// MobAt - первый моб в клетке.
func (w *World) MobAt(loc domain.Location) (types.EntityID, bool) {
	for _, e := range w.spatial.EntitiesAt(loc) {
		if w.IsMob(e) {
			return e, true
		}
	}
	return types.NilEntityID, false
}

// EntitiesAt - сущности в клетке в порядке появления.
func (w *World) EntitiesAt(loc domain.Location) []types.EntityID {
	return w.spatial.EntitiesAt(loc)
}

// Entities - все живые идентификаторы в порядке индексов.
func (w *World) Entities() []types.EntityID {
	return w.registry.Entities()
}

// Location - клетка сущности. Для предмета в инвентаре - клетка носителя.
func (w *World) Location(e types.EntityID) (domain.Location, bool) {
	return w.spatial.Position(e)
}

// Contents - что держит сущность, по порядку ячеек.
func (w *World) Contents(e types.EntityID) []types.EntityID {
	return w.spatial.Contents(e)
}

func (w *World) Desc(e types.EntityID) (domain.Desc, bool)           { return w.desc.Get(e) }
func (w *World) Stats(e types.EntityID) (domain.Stats, bool)         { return w.stats.Get(e) }
func (w *World) Health(e types.EntityID) (domain.Health, bool)       { return w.health.Get(e) }
func (w *World) Brain(e types.EntityID) (domain.Brain, bool)         { return w.brain.Get(e) }
func (w *World) Anim(e types.EntityID) (domain.Anim, bool)           { return w.anim.Get(e) }
func (w *World) Item(e types.EntityID) (domain.Item, bool)           { return w.item.Get(e) }
func (w *World) MapMemory(e types.EntityID) (domain.MapMemory, bool) { return w.mapMemory.Get(e) }

// HasStatus - у сущности действует состояние st.
func (w *World) HasStatus(e types.EntityID, st domain.Status) bool {
	s, ok := w.statuses.Get(e)
	return ok && s.Has(st)
}

// Name - имя для сообщений.
func (w *World) Name(e types.EntityID) string {
	if d, ok := w.desc.Get(e); ok {
		return d.Name
	}
	return e.String()
}

// EntityView - то, что нужно отрисовщику о сущности.
type EntityView struct {
	ID    types.EntityID
	Name  string
	Glyph types.Glyph
	Anim  domain.Anim
	Loc   domain.Location
}

func (w *World) EntityView(e types.EntityID) (EntityView, bool) {
	if !w.registry.IsAlive(e) {
		return EntityView{}, false
	}
	v := EntityView{ID: e}
	if d, ok := w.desc.Get(e); ok {
		v.Name = d.Name
		v.Glyph = d.Glyph
	}
	if a, ok := w.anim.Get(e); ok {
		v.Anim = a
	}
	v.Loc, _ = w.spatial.Position(e)
	return v, true
}

// TurnQueue - снимок очереди ходов для отладки.
func (w *World) TurnQueue() []TurnEntry {
	return w.turns.DebugDump()
}

// post добавляет сообщение в очередь для клиента.
func (w *World) post(m domain.Msg) {
	w.msgs = append(w.msgs, m)
}

// DrainMsgs забирает накопленные сообщения.
func (w *World) DrainMsgs() []domain.Msg {
	out := w.msgs
	w.msgs = nil
	return out
}

func (w *World) log(component string) *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": component,
		"tick":      w.tick,
	})
}
