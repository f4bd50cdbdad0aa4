package storage

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/bisarnacki/magog/internal/engine"
	"github.com/bisarnacki/magog/internal/forms"
	"github.com/google/uuid"
)

// ErrSlotNotFound - сохранения с таким ID нет.
var ErrSlotNotFound = errors.New("save slot not found")

// Slots хранит сохранения миров в SQLite.
type Slots struct {
	db *sql.DB
}

// SlotInfo - запись о сохранении без тела.
type SlotInfo struct {
	ID        string
	Name      string
	Tick      uint64
	Seed      uint64
	Size      int
	CreatedAt time.Time
}

// OpenSlots открывает или создает базу сохранений. Родительский каталог
// создается при необходимости.
func OpenSlots(ctx context.Context, dbPath string) (*Slots, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("slots: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("slots: cannot open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("slots: cannot connect to database: %w", err)
	}

	s := &Slots{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("slots: migration failed: %w", err)
	}
	return s, nil
}

func (s *Slots) migrate(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			tick INTEGER NOT NULL,
			seed TEXT NOT NULL,
			body BLOB NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_saves_created ON saves(created_at DESC);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close закрывает соединение с базой.
func (s *Slots) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSlot сохраняет мир под именем и возвращает ID нового сохранения.
func (s *Slots) SaveSlot(ctx context.Context, name string, w *engine.World) (string, error) {
	body, err := Encode(w)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	// seed хранится текстом: uint64 не помещается в INTEGER SQLite.
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO saves (id, name, tick, seed, body, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, name, int64(w.Tick()), fmt.Sprint(w.Config().Seed), body, time.Now().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("slots: cannot save %q: %w", name, err)
	}
	return id, nil
}

// LoadSlot восстанавливает мир из сохранения.
func (s *Slots) LoadSlot(ctx context.Context, id string, reg *forms.Registry) (*engine.World, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, "SELECT body FROM saves WHERE id = ?", id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("slots: %s: %w", id, ErrSlotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("slots: cannot read %s: %w", id, err)
	}
	return Load(bytes.NewReader(body), reg)
}

// ListSlots возвращает сохранения, новые первыми.
func (s *Slots) ListSlots(ctx context.Context) ([]SlotInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, tick, seed, length(body), created_at FROM saves ORDER BY created_at DESC, rowid DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("slots: cannot list: %w", err)
	}
	defer rows.Close()

	var out []SlotInfo
	for rows.Next() {
		var (
			info    SlotInfo
			tick    int64
			seed    string
			created int64
		)
		if err := rows.Scan(&info.ID, &info.Name, &tick, &seed, &info.Size, &created); err != nil {
			return nil, fmt.Errorf("slots: cannot scan: %w", err)
		}
		info.Tick = uint64(tick)
		if _, err := fmt.Sscan(seed, &info.Seed); err != nil {
			return nil, fmt.Errorf("slots: bad seed %q: %w", seed, err)
		}
		info.CreatedAt = time.Unix(0, created)
		out = append(out, info)
	}
	return out, rows.Err()
}
