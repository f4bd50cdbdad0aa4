package api

import (
	"errors"
	"fmt"
	"strings"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func validDir(s string) bool {
	switch strings.ToUpper(s) {
	case "N", "NE", "SE", "S", "SW", "NW":
		return true
	}
	return false
}

func (p DirectionPayload) Validate() error {
	if p.Dir == "" {
		return errors.New("dir is required")
	}
	if !validDir(p.Dir) {
		return fmt.Errorf("unknown direction %q", p.Dir)
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.ItemID == "" {
		return errors.New("itemId is required")
	}
	return nil
}

func (p ZapPayload) Validate() error {
	if p.ItemID == "" {
		return errors.New("itemId is required")
	}
	if p.Ability == "" {
		return errors.New("ability is required")
	}
	if p.Dir != "" && !validDir(p.Dir) {
		return fmt.Errorf("unknown direction %q", p.Dir)
	}
	return nil
}

func (p CastPayload) Validate() error {
	if p.Ability == "" {
		return errors.New("ability is required")
	}
	if p.Dir != "" && !validDir(p.Dir) {
		return fmt.Errorf("unknown direction %q", p.Dir)
	}
	return nil
}
