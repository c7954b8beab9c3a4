package main

import (
	"fmt"
	"os"

	"github.com/Veraticus/gilded-rose/internal/cli"
	"github.com/Veraticus/gilded-rose/internal/common"
	"github.com/Veraticus/gilded-rose/internal/inventory"
	"github.com/Veraticus/gilded-rose/internal/model"
	"github.com/spf13/cobra"
)

func stockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Manage the stock ledger",
		Long:  `Import, list and export the stock kept in the ledger between runs.`,
	}

	cmd.AddCommand(importStockCmd())
	cmd.AddCommand(listStockCmd())
	cmd.AddCommand(exportStockCmd())

	return cmd
}

func importStockCmd() *cobra.Command {
	var useDefault bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the ledger with an inventory file",
		Long: `Import replaces every item in the ledger with the items from a YAML inventory
file and resets the day counter to 0. Use --default to load the standard stock.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []model.Item
			switch {
			case useDefault:
				items = inventory.Default()
			case len(args) == 1:
				loaded, err := inventory.LoadFile(args[0])
				if err != nil {
					return common.NewUserError("could not read inventory file", err)
				}
				items = loaded
			default:
				return common.NewUserError("pass an inventory file or --default", nil)
			}

			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ReplaceStock(cmd.Context(), items); err != nil {
				return fmt.Errorf("failed to import stock: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Imported %d items", len(items))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&useDefault, "default", false, "import the standard opening stock")

	return cmd
}

func listStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stocked items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			stock, err := store.GetStock(ctx)
			if err != nil {
				return fmt.Errorf("failed to get stock: %w", err)
			}
			if len(stock) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("No stock found. Use 'rose stock import' to add some."))
				return nil
			}

			day, err := store.CurrentDay(ctx)
			if err != nil {
				return fmt.Errorf("failed to get current day: %w", err)
			}

			return cli.WriteStockTable(cmd.OutOrStdout(), day, stock)
		},
	}
}

func exportStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the ledger's stock as an inventory file",
		Long:  `Export writes the current stock as YAML to the given file, or to stdout.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			stock, err := store.GetStock(ctx)
			if err != nil {
				return fmt.Errorf("failed to get stock: %w", err)
			}
			if len(stock) == 0 {
				return common.NewUserError("nothing to export", common.ErrEmptyInventory)
			}

			if len(args) == 0 {
				return inventory.Write(cmd.OutOrStdout(), model.Items(stock))
			}

			f, err := os.Create(args[0])
			if err != nil {
				return common.NewUserError("could not create export file", err)
			}
			if err := inventory.Write(f, model.Items(stock)); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close export file: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Exported %d items to %s", len(stock), args[0])))
			return nil
		},
	}
}
