package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadJournal(bufio.NewReader(f))
}

// ReadJournal читает журнал, записанный WriteJournal.
func ReadJournal(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	names := make([]byte, int(header.IDLen)+int(header.MapLen))
	if _, err := io.ReadFull(r, names); err != nil {
		return nil, fmt.Errorf("failed to read header strings: %w", err)
	}

	session := &domain.ReplaySession{
		ID:            string(names[:header.IDLen]),
		Map:           string(names[header.IDLen:]),
		Seed:          header.Seed,
		SpawnInterval: header.SpawnInterval,
		Timestamp:     header.Timestamp,
		Actions:       make([]domain.ReplayAction, 0, min(header.ActionCount, 1<<16)),
	}

	// 2. Читаем Actions
	for i := range header.ActionCount {
		var ah ActionHeader
		if err := binary.Read(r, binary.LittleEndian, &ah); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}

		act := domain.ReplayAction{
			Tick:   ah.Tick,
			Token:  types.EntityID(ah.Token),
			Action: domain.ActionType(ah.ActionType),
		}
		if ah.PayloadLen > 0 {
			act.Payload = make(json.RawMessage, ah.PayloadLen)
			if _, err := io.ReadFull(r, act.Payload); err != nil {
				return nil, fmt.Errorf("action %d payload: %w", i, err)
			}
		}

		session.Actions = append(session.Actions, act)
	}

	return session, nil
}
