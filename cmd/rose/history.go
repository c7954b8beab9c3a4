package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Veraticus/gilded-rose/internal/cli"
	"github.com/Veraticus/gilded-rose/internal/common"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <item-id>",
		Short: "Show how one stocked item aged",
		Long:  `History prints the sellIn and quality recorded for an item on every saved day.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("invalid item id %q", args[0]), err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			item, err := store.GetStockItem(ctx, id)
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError(fmt.Sprintf("no stocked item with id %d", id), err)
			}
			if err != nil {
				return fmt.Errorf("failed to get item: %w", err)
			}

			history, err := store.GetHistory(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get history: %w", err)
			}

			return cli.WriteHistoryTable(cmd.OutOrStdout(), *item, history)
		},
	}
}
