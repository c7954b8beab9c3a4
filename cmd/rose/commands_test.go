package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/gilded-rose/internal/common"
	"github.com/Veraticus/gilded-rose/internal/config"
	"github.com/Veraticus/gilded-rose/internal/inventory"
	"github.com/Veraticus/gilded-rose/internal/model"
	"github.com/Veraticus/gilded-rose/internal/storage"
	"github.com/Veraticus/gilded-rose/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTestLedger points the commands at a fresh ledger file seeded with items.
func useTestLedger(t *testing.T, items ...model.Item) string {
	t.Helper()

	dbPath := testutil.SetupTestDBFile(t, items)
	viper.Set(config.KeyDatabasePath, dbPath)
	t.Cleanup(func() {
		viper.Set(config.KeyDatabasePath, config.DefaultDatabasePath)
	})
	return dbPath
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeInventory(t *testing.T, items []model.Item) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stock.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, inventory.Write(f, items))
	require.NoError(t, f.Close())
	return path
}

func TestSimulateCmd_DefaultStock(t *testing.T) {
	out, err := runCommand(t, simulateCmd(), "--days", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "-------- day 0 --------")
	assert.Contains(t, out, "-------- day 1 --------")
	assert.NotContains(t, out, "-------- day 2 --------")
	assert.Contains(t, out, "Conjured Mana Cake, 2, 4")
}

func TestSimulateCmd_UsesConfiguredDays(t *testing.T) {
	viper.Set(config.KeySimulateDays, 3)
	t.Cleanup(func() {
		viper.Set(config.KeySimulateDays, config.DefaultSimulateDays)
	})

	out, err := runCommand(t, simulateCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "-------- day 3 --------")
}

func TestSimulateCmd_FromFile(t *testing.T) {
	path := writeInventory(t, []model.Item{model.NewItem("Backstage passes to a TAFKAL80ETC concert", 5, 2)})

	out, err := runCommand(t, simulateCmd(), "--file", path, "--days", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Backstage passes to a TAFKAL80ETC concert, 3, 8\n\n"), out)
}

func TestSimulateCmd_Errors(t *testing.T) {
	_, err := runCommand(t, simulateCmd(), "--days", "-1")
	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)

	_, err = runCommand(t, simulateCmd(), "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStockImportListAdvanceHistory(t *testing.T) {
	dbPath := useTestLedger(t)

	out, err := runCommand(t, stockCmd(), "import", "--default")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 9 items")

	out, err = runCommand(t, stockCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Stock on day 0")
	assert.Contains(t, out, "Elixir of the Mongoose")

	out, err = runCommand(t, advanceCmd(), "--days", "3", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = runCommand(t, advanceCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Stock on day 4")

	ctx := context.Background()
	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer store.Close()

	day, err := store.CurrentDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, day)

	stock, err := store.GetStock(ctx)
	require.NoError(t, err)

	expected := inventory.Default()
	for i := 0; i < 4; i++ {
		for i := range expected {
			ageOnce(&expected[i])
		}
	}
	assert.Equal(t, expected, model.Items(stock))

	out, err = runCommand(t, historyCmd(), "2")
	require.NoError(t, err)
	assert.Contains(t, out, "History for Aged Brie (#2)")
}

// ageOnce restates the daily rules independently of the engine.
func ageOnce(item *model.Item) {
	switch model.Classify(item.Name) {
	case model.CategorySulfuras:
		item.Quality = 80
		return
	case model.CategoryAgedBrie:
		if item.SellIn <= 0 {
			item.Quality += 2
		} else {
			item.Quality++
		}
	case model.CategoryBackstagePass:
		switch {
		case item.SellIn <= 0:
			item.Quality = 0
		case item.SellIn < 6:
			item.Quality += 3
		case item.SellIn < 11:
			item.Quality += 2
		default:
			item.Quality++
		}
	case model.CategoryConjured:
		if item.SellIn <= 0 {
			item.Quality -= 4
		} else {
			item.Quality -= 2
		}
	default:
		if item.SellIn <= 0 {
			item.Quality -= 2
		} else {
			item.Quality--
		}
	}
	item.Quality = min(50, max(item.Quality, 0))
	item.SellIn--
}

func TestStockImportFromFileAndExport(t *testing.T) {
	useTestLedger(t)

	items := []model.Item{
		model.NewItem("Aged Brie", 2, 49),
		model.NewItem("Conjured Mana Cake", 1, 10),
	}
	path := writeInventory(t, items)

	_, err := runCommand(t, stockCmd(), "import", path)
	require.NoError(t, err)

	_, err = runCommand(t, advanceCmd(), "--days", "2", "--quiet")
	require.NoError(t, err)

	out, err := runCommand(t, stockCmd(), "export")
	require.NoError(t, err)

	exported, err := inventory.Load(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, []model.Item{
		model.NewItem("Aged Brie", 0, 50),
		model.NewItem("Conjured Mana Cake", -1, 4),
	}, exported)

	exportPath := filepath.Join(t.TempDir(), "export.yaml")
	out, err = runCommand(t, stockCmd(), "export", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 items")

	fromFile, err := inventory.LoadFile(exportPath)
	require.NoError(t, err)
	assert.Equal(t, exported, fromFile)
}

func TestStockCommands_EmptyLedger(t *testing.T) {
	useTestLedger(t)

	out, err := runCommand(t, stockCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No stock found")

	_, err = runCommand(t, advanceCmd())
	assert.ErrorIs(t, err, common.ErrEmptyInventory)

	_, err = runCommand(t, stockCmd(), "export")
	assert.ErrorIs(t, err, common.ErrEmptyInventory)

	_, err = runCommand(t, stockCmd(), "import")
	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)
}

func TestAdvanceCmd_RejectsNonPositiveDays(t *testing.T) {
	useTestLedger(t)

	_, err := runCommand(t, advanceCmd(), "--days", "0")
	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)
}

func TestHistoryCmd_SeededLedger(t *testing.T) {
	useTestLedger(t,
		model.NewItem("+5 Dexterity Vest", 10, 20),
		model.NewItem("Conjured Mana Cake", 1, 10),
	)

	_, err := runCommand(t, advanceCmd(), "--days", "2", "--quiet")
	require.NoError(t, err)

	out, err := runCommand(t, historyCmd(), "2")
	require.NoError(t, err)
	assert.Contains(t, out, "History for Conjured Mana Cake (#2)")

	var rows []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 3 && fields[0] != "Day" {
			rows = append(rows, strings.Join(fields, " "))
		}
	}
	assert.Equal(t, []string{"0 1 10", "1 0 8", "2 -1 4"}, rows)
}

func TestHistoryCmd_Errors(t *testing.T) {
	useTestLedger(t)

	_, err := runCommand(t, historyCmd(), "abc")
	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)

	_, err = runCommand(t, historyCmd(), "99")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRootCmd_Wiring(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"simulate", "stock", "advance", "history", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}

	for _, flag := range []string{"config", "log-level", "log-format", "db"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing --%s flag", flag)
	}

	days := simulateCmd().Flag("days")
	require.NotNil(t, days)
	assert.Equal(t, "2", days.DefValue)
}

func TestVersionCmd(t *testing.T) {
	out, err := runCommand(t, versionCmd())
	require.NoError(t, err)
	assert.Equal(t, "rose dev\n", out)
}

func TestAgeLedger_StopsWhenCancelled(t *testing.T) {
	store := testutil.SetupTestDB(t, inventory.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stock, err := store.GetStock(ctx)
	require.NoError(t, err)

	var out bytes.Buffer
	err = ageLedger(ctx, &out, store, stock, 0, 5, cancel)
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, out.String(), "Stopped early, stock saved through day 1")

	day, err := store.CurrentDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, day)

	history, err := store.GetHistory(context.Background(), stock[0].ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestAgeLedger_SaveFailure(t *testing.T) {
	store := testutil.SetupTestDB(t, []model.Item{model.NewItem("Aged Brie", 2, 0)})
	ctx := context.Background()

	stock, err := store.GetStock(ctx)
	require.NoError(t, err)
	stock[0].ID = 999

	err = ageLedger(ctx, &bytes.Buffer{}, store, stock, 0, 3, nil)
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to save day 1")

	day, err := store.CurrentDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, day)
}

func TestErrorMessage(t *testing.T) {
	inner := fmt.Errorf("open stock.yaml: %w", os.ErrNotExist)
	err := fmt.Errorf("wrapped: %w", common.NewUserError("could not read inventory file", inner))

	msg := errorMessage(err)
	assert.Contains(t, msg, "could not read inventory file")
	assert.NotContains(t, msg, "stock.yaml")

	assert.Contains(t, errorMessage(errors.New("failed to get stock: disk I/O error")), "failed to get stock: disk I/O error")
}
