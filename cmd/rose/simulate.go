package main

import (
	"fmt"

	"github.com/Veraticus/gilded-rose/internal/common"
	"github.com/Veraticus/gilded-rose/internal/inventory"
	"github.com/Veraticus/gilded-rose/internal/model"
	"github.com/Veraticus/gilded-rose/internal/report"
	"github.com/spf13/cobra"
)

func simulateCmd() *cobra.Command {
	var (
		days int
		file string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Print how stock ages over a number of days",
		Long: `Simulate ages an inventory in memory and prints every day's values.
Nothing is written to the stock ledger.

Without --file the shop's standard opening stock is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("days") {
				days = cfg.Simulate.Days
			}
			if days < 0 {
				return common.NewUserError(fmt.Sprintf("--days must not be negative, got %d", days), nil)
			}
			if file == "" {
				file = cfg.Inventory.File
			}

			items, err := loadSimulationItems(file)
			if err != nil {
				return err
			}

			common.LogDebug("simulating inventory", common.Fields{
				"items": len(items),
				"days":  days,
				"file":  file,
			})
			return report.Simulate(cmd.OutOrStdout(), items, days)
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 2, "number of days to simulate")
	cmd.Flags().StringVarP(&file, "file", "f", "", "inventory YAML file (default: standard stock)")

	return cmd
}

func loadSimulationItems(file string) ([]model.Item, error) {
	if file == "" {
		return inventory.Default(), nil
	}

	items, err := inventory.LoadFile(file)
	if err != nil {
		return nil, common.NewUserError("could not read inventory file", err)
	}
	return items, nil
}
