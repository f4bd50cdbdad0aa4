// magog - сервер и утилиты тикового гекс-рогалика.
//
// Usage:
//
//	magog serve              - Start the websocket server
//	magog sim                - Run a headless game with an autopilot player
//	magog replay <file>      - Re-run a recorded command journal
//	magog slots              - List saved worlds
//	magog version            - Print build information
//
// Global flags override the MAGOG_* environment:
//
//	--seed <value>  - Master seed (0 = from the clock)
//	--db <path>     - Save slots database
//	--forms <path>  - YAML forms file (default: embedded set)
//	--port <port>   - HTTP port for serve
//	--level <name>  - Built-in level (cave, meadow)
package main

import (
	"fmt"
	"os"

	"github.com/bisarnacki/magog/internal/config"
	"github.com/bisarnacki/magog/internal/engine"
	"github.com/bisarnacki/magog/internal/forms"
	"github.com/bisarnacki/magog/internal/version"
	"github.com/bisarnacki/magog/pkg/dungeon"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   uint64
	flagDBPath string
	flagForms  string
	flagPort   int
	flagLevel  string
)

func init() {
	logger.Init()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "magog",
	Short: "Magog - a deterministic hex roguelike server",
	Long: `Magog runs a tick-driven hex roguelike world.

Available commands:
  serve    - Websocket server for the browser client
  sim      - Headless run with an autopilot player
  replay   - Re-run a recorded command journal and print its digest
  slots    - List saved worlds
  version  - Build information

Examples:
  magog serve --port 8080 --level cave
  magog sim --seed 42 --ticks 500 --save run42
  magog replay replays/replay_42_cave_<id>.mgrp
  magog slots`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.String())
	},
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Master seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to save slots database (default from MAGOG_DB)")
	rootCmd.PersistentFlags().StringVar(&flagForms, "forms", "", "Path to YAML forms file (default: embedded)")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "HTTP port (default from MAGOG_PORT)")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "cave", "Built-in level name")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig читает окружение и накладывает поверх флаги.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.DB = flagDBPath
	}
	if flags.Changed("forms") {
		cfg.Forms = flagForms
	}
	if flags.Changed("port") {
		cfg.Port = flagPort
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	logger.Log.Info(version.String())
	return cfg, nil
}

func loadForms(cfg config.Config) (*forms.Registry, error) {
	if cfg.Forms == "" {
		return forms.Default(), nil
	}
	return forms.LoadFile(cfg.Forms)
}

// newWorld строит свежий мир на встроенном уровне.
func newWorld(cfg config.Config, reg *forms.Registry, levelName string) (*engine.World, error) {
	lvl, err := dungeon.Builtin(levelName)
	if err != nil {
		return nil, err
	}
	simCfg := engine.ConfigFrom(cfg)
	logger.Log.Infof("Using master seed %d on level %q", simCfg.Seed, levelName)
	return engine.BuildWorld(simCfg, reg, lvl)
}
