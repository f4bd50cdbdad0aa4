package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bisarnacki/magog/internal/agent"
	"github.com/bisarnacki/magog/internal/engine"
	"github.com/bisarnacki/magog/internal/infrastructure/storage"
	"github.com/bisarnacki/magog/internal/server"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	flagServeSlot string
	flagServeBot  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the websocket game server",
	Long: `Start an HTTP server with the websocket endpoint /ws.

All connected sessions observe and control the same player.
On shutdown the command journal is written to MAGOG_REPLAY_DIR.

Examples:
  magog serve                      # Fresh cave on :8080
  magog serve --level meadow       # Another built-in level
  magog serve --slot <id>          # Continue a saved world
  magog serve --bot                # Let the autopilot play`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeSlot, "slot", "", "Save slot ID to continue from")
	serveCmd.Flags().BoolVar(&flagServeBot, "bot", false, "Attach the autopilot as a session")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := loadForms(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slots, err := storage.OpenSlots(ctx, cfg.DBPath())
	if err != nil {
		return err
	}
	defer slots.Close()

	var world *engine.World
	if flagServeSlot != "" {
		world, err = slots.LoadSlot(ctx, flagServeSlot, reg)
	} else {
		world, err = newWorld(cfg, reg, flagLevel)
	}
	if err != nil {
		return err
	}

	svc := engine.NewService(world, cfg.FrameInterval(), nil)
	// Журнал воспроизводим только для мира, построенного с нуля.
	if flagServeSlot == "" {
		svc.Instance.Replay.Map = flagLevel
	}

	loopDone := make(chan struct{})
	go func() {
		svc.Instance.Run(ctx)
		close(loopDone)
	}()

	if flagServeBot {
		go agent.NewBot("autopilot", svc).Run(ctx)
	}

	srvErr := server.New(svc, slots, cfg.Port).Run(ctx)
	stop()
	<-loopDone
	logger.Log.Info("Shutting down...")

	if svc.Instance.Replay.Map != "" && len(svc.Instance.Replay.Actions) > 0 {
		replays, err := storage.NewReplayService(cfg.ReplayDir)
		if err != nil {
			return err
		}
		path, err := replays.Save(svc.Instance.Replay)
		if err != nil {
			return err
		}
		logger.Log.WithField("path", path).Info("Replay saved")
	}

	logger.Log.Info("Done.")
	return srvErr
}
