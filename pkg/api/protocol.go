package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой "снимок" мира, видимого игроком, и отправляется
// после каждого хода мира и по команде INIT.
type ServerResponse struct {
	// Type тип сообщения. "UPDATE" для снимка, "ERROR" для отказа в команде.
	Type string `json:"type"`

	// Tick номер хода мира. Растёт только при ходе.
	Tick uint64 `json:"tick"`

	// AnimTick часы анимации на момент снимка. Нужны клиенту для твинов.
	AnimTick uint64 `json:"animTick"`

	// MyEntityID ID сущности, которой управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Map срез видимых и запомненных клеток.
	Map []TileView `json:"map,omitempty"`

	// Entities срез видимых сущностей.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs новые сообщения с прошлого снимка.
	Logs []LogEntry `json:"logs,omitempty"`

	// Events вспышки для отрисовщика: взрывы, попадания, брызги.
	Events []EventView `json:"events,omitempty"`

	// Inventory то, что держит игрок.
	Inventory []ItemView `json:"inventory,omitempty"`

	// Error текст ошибки для Type == "ERROR".
	Error string `json:"error,omitempty"`
}

// Position клетка гекса в осевых координатах.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// TileView это DTO для одной клетки карты.
type TileView struct {
	Pos     Position `json:"pos"`
	Terrain string   `json:"terrain"`

	// Fov - SEEN или REMEMBERED. Невидимые клетки не отправляются.
	Fov string `json:"fov"`

	// Light освещённость от 0 до 1.
	Light float32 `json:"light"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Pos   Position `json:"pos"`
	Glyph string   `json:"glyph"`
	Color string   `json:"color"`

	// Anim - состояние анимации (MOB, MOB_HURT, EXPLOSION, ...).
	Anim      string `json:"anim"`
	AnimStart uint64 `json:"animStart"`

	// Tween заполняется, если сущность летит из одной клетки в другую.
	Tween *TweenView `json:"tween,omitempty"`

	Stats *StatsView `json:"stats,omitempty"`
}

// TweenView - перелёт снаряда.
type TweenView struct {
	From     Position `json:"from"`
	Start    uint64   `json:"start"`
	Duration uint64   `json:"duration"`
}

// StatsView это DTO для характеристик существа.
type StatsView struct {
	HP    int32 `json:"hp"`
	MaxHP int32 `json:"maxHp"`
	Power int32 `json:"power,omitempty"`
	Armor int32 `json:"armor,omitempty"`
}

// ItemView представляет предмет для клиента.
type ItemView struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Slot      string   `json:"slot"`
	Charges   int32    `json:"charges,omitempty"`
	Abilities []string `json:"abilities,omitempty"`
}

// EventView - событие мира без текста.
type EventView struct {
	Kind     string    `json:"kind"` // EXPLOSION, DAMAGE, GIB
	Pos      *Position `json:"pos,omitempty"`
	EntityID string    `json:"entityId,omitempty"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID сессии. Сервер подставляет его сам после рукопожатия.
	Token string `json:"token,omitempty"`

	// Action название действия: INIT, STEP, MELEE, IDLE, USE, ZAP, CAST, PICKUP, EQUIP.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для STEP и MELEE.
type DirectionPayload struct {
	Dir string `json:"dir"` // N, NE, SE, S, SW, NW
}

// ItemPayload используется для EQUIP и USE.
type ItemPayload struct {
	ItemID string `json:"itemId"`
}

// ZapPayload - применить способность предмета, с направлением или без.
type ZapPayload struct {
	ItemID  string `json:"itemId"`
	Ability string `json:"ability"`
	Dir     string `json:"dir,omitempty"`
}

// CastPayload - врождённая способность.
type CastPayload struct {
	Ability string `json:"ability"`
	Dir     string `json:"dir,omitempty"`
}
