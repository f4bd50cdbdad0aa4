package engine

import (
	"strconv"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/pkg/api"
)

// IDString - EntityID в том виде, в каком его видит клиент.
func IDString(e types.EntityID) string {
	return strconv.FormatUint(uint64(e), 10)
}

func toPosition(l domain.Location) api.Position {
	return api.Position{X: int(l.X), Y: int(l.Y), Z: int(l.Z)}
}

// BuildState создает "снимок" мира глазами игрока.
// Без игрока видна вся размеченная карта и все сущности на ней.
func BuildState(w *World, logs []api.LogEntry, events []api.EventView) *api.ServerResponse {
	resp := &api.ServerResponse{
		Type:     "UPDATE",
		Tick:     w.Tick(),
		AnimTick: w.AnimTick(),
		Logs:     logs,
		Events:   events,
	}

	player, hasPlayer := w.Player()
	if hasPlayer {
		resp.MyEntityID = IDString(player)
	}

	// 1. Карта: запомненные клетки, а без игрока - все размеченные.
	var known []domain.Location
	if memory, ok := w.MapMemory(player); hasPlayer && ok {
		known = memory.Remembered.Sorted()
	} else {
		for _, c := range w.Terrains().Cells() {
			known = append(known, c.Loc)
		}
	}
	for _, loc := range known {
		fov := w.FovStatus(loc)
		if fov == FovNone {
			continue
		}
		resp.Map = append(resp.Map, api.TileView{
			Pos:     toPosition(loc),
			Terrain: w.Terrain(loc).String(),
			Fov:     fov.String(),
			Light:   w.Light(loc),
		})
	}

	// 2. Сущности в поле зрения. Содержимое инвентарей не показываем.
	for _, e := range w.Entities() {
		loc, placed := w.spatial.Location(e)
		if !placed || w.FovStatus(loc) != FovSeen {
			continue
		}
		if view, ok := w.toEntityView(e, player); ok {
			resp.Entities = append(resp.Entities, view)
		}
	}

	// 3. Инвентарь игрока.
	if hasPlayer {
		resp.Inventory = w.inventoryView(player)
	}
	return resp
}

// toEntityView конвертирует сущность в DTO. Параметры боя видны только владельцу.
func (w *World) toEntityView(e, observer types.EntityID) (api.EntityView, bool) {
	ev, ok := w.EntityView(e)
	if !ok {
		return api.EntityView{}, false
	}

	view := api.EntityView{
		ID:        IDString(e),
		Name:      ev.Name,
		Pos:       toPosition(ev.Loc),
		Glyph:     string(rune(ev.Glyph.Char())),
		Color:     ev.Glyph.HexColor(),
		Anim:      ev.Anim.State.String(),
		AnimStart: ev.Anim.AnimStart,
	}
	if ev.Glyph == 0 {
		view.Glyph = "?"
		view.Color = "#FFFFFF"
	}
	if ev.Anim.TweenDuration > 0 {
		view.Tween = &api.TweenView{
			From:     toPosition(ev.Anim.TweenFrom),
			Start:    ev.Anim.TweenStart,
			Duration: uint64(ev.Anim.TweenDuration),
		}
	}

	if h, ok := w.Health(e); ok {
		view.Stats = &api.StatsView{HP: h.HP, MaxHP: h.MaxHP}
		if e == observer {
			st, _ := w.Stats(e)
			view.Stats.Power = st.Power
			view.Stats.Armor = st.Armor
		}
	}
	return view, true
}

func (w *World) inventoryView(holder types.EntityID) []api.ItemView {
	var out []api.ItemView
	for _, item := range w.Contents(holder) {
		_, slot, _ := w.spatial.Parent(item)
		view := api.ItemView{
			ID:   IDString(item),
			Name: w.Name(item),
			Slot: slot.String(),
		}
		if it, ok := w.Item(item); ok {
			view.Charges = it.Charges
			for _, a := range it.Abilities {
				view.Abilities = append(view.Abilities, a.String())
			}
		}
		out = append(out, view)
	}
	return out
}
