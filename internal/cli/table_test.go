package cli

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/Veraticus/gilded-rose/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStockTable(t *testing.T) {
	stock := []model.StockItem{
		{ID: 1, Position: 0, Item: model.NewItem("Aged Brie", 2, 0)},
		{ID: 2, Position: 1, Item: model.NewItem("Sulfuras, Hand of Ragnaros", -1, 80)},
		{ID: 3, Position: 2, Item: model.NewItem("Backstage passes to a TAFKAL80ETC concert", 5, 49)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStockTable(&buf, 4, stock))

	out := buf.String()
	assert.Contains(t, out, "Stock on day 4")
	assert.Contains(t, out, "Backstage Pass")
	assert.Contains(t, out, "Sulfuras, Hand of Ragnaros")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.GreaterOrEqual(t, len(lines), 5, "title, header, rule and one line per item")
}

func TestWriteStockTable_ColouredCellsStayAligned(t *testing.T) {
	previous := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(previous) })

	stock := []model.StockItem{
		{ID: 1, Item: model.NewItem("+5 Dexterity Vest", 10, 20)},
		{ID: 2, Item: model.NewItem("Aged Brie", -3, 50)},
		{ID: 3, Item: model.NewItem("Sulfuras, Hand of Ragnaros", 0, 80)},
		{ID: 4, Item: model.NewItem("Conjured Mana Cake", 0, 0)},
		{ID: 12, Item: model.NewItem("Elixir of the Mongoose", 5, 7)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStockTable(&buf, 1, stock))
	require.NotEqual(t, buf.String(), ansi.Strip(buf.String()), "expected colour codes in output")

	lines := strings.Split(strings.TrimRight(ansi.Strip(buf.String()), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), len(stock)+3)

	// Header, rule and every item row start the Quality column at one offset.
	tableLines := lines[len(lines)-len(stock)-2:]
	want := strings.LastIndex(tableLines[0], " ") + 1
	for _, line := range tableLines {
		assert.Equal(t, want, strings.LastIndex(line, " ")+1, "line %q", line)
	}

	// SellIn is the second-to-last column.
	sellInStart := func(line string) int {
		trimmed := strings.TrimRight(line[:strings.LastIndex(line, " ")], " ")
		return strings.LastIndex(trimmed, " ") + 1
	}
	for _, line := range tableLines {
		assert.Equal(t, sellInStart(tableLines[0]), sellInStart(line), "line %q", line)
	}
}

func TestWriteHistoryTable(t *testing.T) {
	item := model.StockItem{ID: 7, Item: model.NewItem("Conjured Mana Cake", 1, 2)}
	history := []model.HistoryEntry{
		{ItemID: 7, Day: 0, SellIn: 3, Quality: 6},
		{ItemID: 7, Day: 1, SellIn: 2, Quality: 4},
		{ItemID: 7, Day: 2, SellIn: 1, Quality: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHistoryTable(&buf, item, history))

	out := buf.String()
	assert.Contains(t, out, "History for Conjured Mana Cake (#7)")
	var rows [][]string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); len(fields) == 3 && err == nil {
			rows = append(rows, fields)
		}
	}
	assert.Equal(t, [][]string{
		{"0", "3", "6"},
		{"1", "2", "4"},
		{"2", "1", "2"},
	}, rows)
}

func TestDayProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewDayProgress(&buf, 3)
	for i := 0; i < 3; i++ {
		p.Step()
	}
	p.Finish()

	assert.Contains(t, buf.String(), "3/3")
}
