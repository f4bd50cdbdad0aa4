package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bisarnacki/magog/internal/domain"
	"github.com/google/uuid"
)

const (
	MagicHeader string = `MGRP` // 4 байта
	Version1    uint32 = 1
)

// ReplayFileHeader - это точное представление заголовка журнала в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic         [4]byte // 4 байта
	Version       uint32  // 4 байта
	Seed          uint64  // 8 байт
	SpawnInterval uint64  // 8 байт
	Timestamp     int64   // 8 байт
	IDLen         uint8   // 1 байт
	MapLen        uint8   // 1 байт
	ActionCount   uint32  // 4 байта
}

// ActionHeader - заголовок каждой записи действия.
type ActionHeader struct {
	Tick       uint64 // 8
	Token      uint64 // 8
	ActionType uint8  // 1
	PayloadLen uint16 // 2
}

// ReplayService хранит журналы партий в каталоге.
type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) (*ReplayService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("replay: cannot create directory %s: %w", dir, err)
	}
	return &ReplayService{SaveDir: dir}, nil
}

// Save пишет журнал в файл и возвращает путь к нему. Пустой ID заменяется на UUID.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	filename := fmt.Sprintf("replay_%d_%s_%s.mgrp", session.Seed, session.Map, session.ID)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := WriteJournal(bw, session); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}
	return path, nil
}

// WriteJournal пишет журнал в бинарном формате.
func WriteJournal(w io.Writer, s *domain.ReplaySession) error {
	if len(s.ID) > 255 || len(s.Map) > 255 {
		return fmt.Errorf("id or map name too long")
	}

	// 1. Подготавливаем и пишем ГЛОБАЛЬНЫЙ ЗАГОЛОВОК
	header := ReplayFileHeader{
		Version:       Version1,
		Seed:          s.Seed,
		SpawnInterval: s.SpawnInterval,
		Timestamp:     s.Timestamp,
		IDLen:         uint8(len(s.ID)),
		MapLen:        uint8(len(s.Map)),
		ActionCount:   uint32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader) // Копируем строку в массив [4]byte

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := io.WriteString(w, s.ID+s.Map); err != nil {
		return fmt.Errorf("failed to write header strings: %w", err)
	}

	// 2. Пишем действия
	for _, act := range s.Actions {
		payloadLen := len(act.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("payload too long: %d", payloadLen)
		}

		actHeader := ActionHeader{
			Tick:       act.Tick,
			Token:      uint64(act.Token),
			ActionType: uint8(act.Action),
			PayloadLen: uint16(payloadLen),
		}

		// Пишем заголовок действия одной командой
		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}
		if payloadLen > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
