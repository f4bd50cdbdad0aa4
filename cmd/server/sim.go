package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bisarnacki/magog/internal/agent"
	"github.com/bisarnacki/magog/internal/engine"
	"github.com/bisarnacki/magog/internal/infrastructure/storage"
	"github.com/spf13/cobra"
)

var (
	flagSimTicks   uint64
	flagSimSave    string
	flagSimJournal bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with an autopilot player",
	Long: `Build a fresh world and let the autopilot play it until the given
world tick or the player's death. Prints the final tick and state digest.

Examples:
  magog sim --seed 42 --ticks 1000
  magog sim --seed 42 --save before-boss
  magog sim --seed 42 --journal    # Write a replayable journal`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 200, "World tick to stop at")
	simCmd.Flags().StringVar(&flagSimSave, "save", "", "Save the final world to a slot with this name")
	simCmd.Flags().BoolVar(&flagSimJournal, "journal", false, "Write the command journal to MAGOG_REPLAY_DIR")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := loadForms(cfg)
	if err != nil {
		return err
	}
	world, err := newWorld(cfg, reg, flagLevel)
	if err != nil {
		return err
	}

	inst := engine.NewInstance(world, nil, time.Second, nil)
	inst.Replay.Map = flagLevel

	start := time.Now()
	if err := agent.NewBot("sim", nil).Play(inst, flagSimTicks); err != nil {
		return fmt.Errorf("sim: %w", err)
	}

	digest, err := storage.Digest(world)
	if err != nil {
		return err
	}
	_, alive := world.Player()
	fmt.Printf("seed:    %d\n", world.Config().Seed)
	fmt.Printf("tick:    %d\n", world.Tick())
	fmt.Printf("actions: %d\n", len(inst.Replay.Actions))
	fmt.Printf("alive:   %t\n", alive)
	fmt.Printf("digest:  %s\n", digest)
	fmt.Printf("elapsed: %s\n", time.Since(start).Round(time.Millisecond))

	if flagSimJournal {
		replays, err := storage.NewReplayService(cfg.ReplayDir)
		if err != nil {
			return err
		}
		path, err := replays.Save(inst.Replay)
		if err != nil {
			return err
		}
		fmt.Printf("journal: %s\n", path)
	}

	if flagSimSave != "" {
		ctx := context.Background()
		slots, err := storage.OpenSlots(ctx, cfg.DBPath())
		if err != nil {
			return err
		}
		defer slots.Close()
		id, err := slots.SaveSlot(ctx, flagSimSave, world)
		if err != nil {
			return err
		}
		fmt.Printf("slot:    %s\n", id)
	}
	return nil
}
