package main

import (
	"context"
	"fmt"
	"io"

	"github.com/Veraticus/gilded-rose/internal/cli"
	"github.com/Veraticus/gilded-rose/internal/common"
	"github.com/Veraticus/gilded-rose/internal/engine"
	"github.com/Veraticus/gilded-rose/internal/model"
	"github.com/Veraticus/gilded-rose/internal/service"
	"github.com/spf13/cobra"
)

func advanceCmd() *cobra.Command {
	var (
		days  int
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Age the stock ledger",
		Long: `Advance ages every item in the ledger one day at a time and saves each day,
so 'rose history' can show how an item changed. An interrupted run keeps every
day that finished.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if days < 1 {
				return common.NewUserError(fmt.Sprintf("--days must be at least 1, got %d", days), nil)
			}

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
				return common.NewUserError("no stock to age, use 'rose stock import' first", common.ErrEmptyInventory)
			}

			startDay, err := store.CurrentDay(ctx)
			if err != nil {
				return fmt.Errorf("failed to get current day: %w", err)
			}

			var progress *cli.DayProgress
			if days > 1 && !quiet {
				progress = cli.NewDayProgress(cmd.ErrOrStderr(), days)
			}
			onDay := func() {
				if progress != nil {
					progress.Step()
				}
			}

			if err := ageLedger(ctx, cmd.ErrOrStderr(), store, stock, startDay, days, onDay); err != nil {
				return err
			}
			if progress != nil {
				progress.Finish()
			}

			common.LogInfo("Aged stock", common.Fields{
				"from_day": startDay,
				"to_day":   startDay + days,
				"items":    len(stock),
			})

			if quiet {
				return nil
			}
			return cli.WriteStockTable(cmd.OutOrStdout(), startDay+days, stock)
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 1, "number of days to age the stock")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the stock table or progress")

	return cmd
}

// ageLedger ages stock in place and saves every day after startDay. When ctx
// is cancelled between days it warns on w and returns the context error; the
// days already saved stay in the ledger.
func ageLedger(ctx context.Context, w io.Writer, store service.Storage, stock []model.StockItem, startDay, days int, onDay func()) error {
	aging := engine.New(model.Items(stock))

	for d := 1; d <= days; d++ {
		if err := ctx.Err(); err != nil {
			saved := startDay + d - 1
			common.LogInfo("Stopping early", common.Fields{"saved_through_day": saved})
			fmt.Fprintln(w, cli.FormatWarning(fmt.Sprintf("Stopped early, stock saved through day %d", saved)))
			return err
		}

		aging.AdvanceOneDay()
		for i, item := range aging.Items() {
			stock[i].Item = item
		}

		day := startDay + d
		if err := store.SaveDay(ctx, day, stock); err != nil {
			common.LogError(err, "Failed to save day", common.Fields{"day": day})
			return fmt.Errorf("failed to save day %d: %w", day, err)
		}

		if onDay != nil {
			onDay()
		}
	}

	return nil
}
