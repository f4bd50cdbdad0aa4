package main

import (
	"fmt"

	"github.com/bisarnacki/magog/internal/engine"
	"github.com/bisarnacki/magog/internal/infrastructure/storage"
	"github.com/bisarnacki/magog/pkg/dungeon"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded command journal",
	Long: `Rebuild the world from the journal's seed and level, execute every
recorded command at its recorded tick and print the final state digest.
Two runs of the same journal always print the same digest.

Examples:
  magog replay replays/replay_42_cave_<id>.mgrp`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := loadForms(cfg)
	if err != nil {
		return err
	}

	session, err := (&storage.ReplayService{}).Load(args[0])
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}
	lvl, err := dungeon.Builtin(session.Map)
	if err != nil {
		return err
	}

	world, err := engine.RunReplay(session, reg, lvl)
	if err != nil {
		return err
	}
	digest, err := storage.Digest(world)
	if err != nil {
		return err
	}

	fmt.Printf("journal: %s\n", session.ID)
	fmt.Printf("seed:    %d\n", session.Seed)
	fmt.Printf("level:   %s\n", session.Map)
	fmt.Printf("actions: %d\n", len(session.Actions))
	fmt.Printf("tick:    %d\n", world.Tick())
	fmt.Printf("digest:  %s\n", digest)
	return nil
}
