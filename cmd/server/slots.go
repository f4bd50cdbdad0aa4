package main

import (
	"context"
	"fmt"

	"github.com/bisarnacki/magog/internal/infrastructure/storage"
	"github.com/spf13/cobra"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List saved worlds",
	Long: `List the save slots stored in the SQLite database, newest first.

Examples:
  magog slots
  magog slots --db ./saves.db`,
	Args: cobra.NoArgs,
	RunE: runSlots,
}

func runSlots(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	slots, err := storage.OpenSlots(ctx, cfg.DBPath())
	if err != nil {
		return err
	}
	defer slots.Close()

	list, err := slots.ListSlots(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No saved worlds yet.")
		fmt.Println()
		fmt.Println("Run 'magog sim --save <name>' to create one.")
		return nil
	}

	fmt.Printf("  %-36s  %-16s  %-8s  %-20s  %s\n", "ID", "Name", "Tick", "Seed", "Date")
	fmt.Printf("  %-36s  %-16s  %-8s  %-20s  %s\n", "--", "----", "----", "----", "----")
	for _, s := range list {
		fmt.Printf("  %-36s  %-16s  %-8d  %-20d  %s\n", s.ID, s.Name, s.Tick, s.Seed, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
