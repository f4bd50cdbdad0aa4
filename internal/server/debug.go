package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bisarnacki/magog/internal/engine"
	"github.com/bisarnacki/magog/internal/infrastructure/storage"
	"github.com/bisarnacki/magog/pkg/api"
	"github.com/bisarnacki/magog/pkg/logger"
)

const debugTimeout = 2 * time.Second

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
	Slots   *storage.Slots
}

func NewDebugHandler(s *engine.GameService, slots *storage.Slots) *DebugHandler {
	return &DebugHandler{Service: s, Slots: slots}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
	mux.HandleFunc("/debug/queue", h.handleTurnQueue)
	mux.HandleFunc("/debug/save", h.handleSave)
	mux.HandleFunc("/debug/slots", h.handleSlots)
}

// DebugEntity - сущность со скрытыми параметрами ИИ.
type DebugEntity struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Pos        *api.Position `json:"pos,omitempty"` // nil - в инвентаре
	HP         int32         `json:"hp,omitempty"`
	Brain      string        `json:"brain,omitempty"`
	NextAction uint64        `json:"next_action_tick,omitempty"`
}

// /debug/entities - дамп всех сущностей мира
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	dump := make([]DebugEntity, 0)
	err := h.do(r.Context(), func(world *engine.World) {
		for _, e := range world.Entities() {
			d := DebugEntity{ID: engine.IDString(e), Name: world.Name(e)}
			if loc, ok := world.Location(e); ok {
				d.Pos = &api.Position{X: int(loc.X), Y: int(loc.Y), Z: int(loc.Z)}
			}
			if hp, ok := world.Health(e); ok {
				d.HP = hp.HP
			}
			if b, ok := world.Brain(e); ok {
				d.Brain = b.State.String()
				d.NextAction = b.NextActionTick
			}
			dump = append(dump, d)
		}
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, dump)
}

// /debug/queue - просмотр очереди ходов
func (h *DebugHandler) handleTurnQueue(w http.ResponseWriter, r *http.Request) {
	// TurnQueue - это куча, порядок в слайсе может не соответствовать порядку извлечения,
	// но для дебага сойдет.
	var dump []engine.TurnEntry
	err := h.do(r.Context(), func(world *engine.World) {
		dump = world.TurnQueue()
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, dump)
}

// POST /debug/save?name=... - сохранить мир в слот
func (h *DebugHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	if h.Slots == nil {
		http.Error(w, "save slots are disabled", http.StatusNotFound)
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "debug"
	}

	var (
		id      string
		saveErr error
	)
	err := h.do(r.Context(), func(world *engine.World) {
		id, saveErr = h.Slots.SaveSlot(r.Context(), name, world)
	})
	if err == nil {
		err = saveErr
	}
	if err != nil {
		logger.Log.WithError(err).WithField("component", "debug").Error("Save failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"id": id, "name": name})
}

// /debug/slots - список сохранений
func (h *DebugHandler) handleSlots(w http.ResponseWriter, r *http.Request) {
	if h.Slots == nil {
		http.Error(w, "save slots are disabled", http.StatusNotFound)
		return
	}
	list, err := h.Slots.ListSlots(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, list)
}

func (h *DebugHandler) do(ctx context.Context, fn func(w *engine.World)) error {
	ctx, cancel := context.WithTimeout(ctx, debugTimeout)
	defer cancel()
	return h.Service.Instance.Do(ctx, fn)
}

func writeJSON(w http.ResponseWriter, data any) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	json.NewEncoder(w).Encode(data)
}
