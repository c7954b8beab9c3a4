package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Veraticus/gilded-rose/internal/model"
	"github.com/charmbracelet/lipgloss"
)

const columnGap = "  "

// cell is one table entry. The style, when set, is applied after padding so
// colour codes never count towards column width.
type cell struct {
	text  string
	style *lipgloss.Style
}

func plainCell(text string) cell {
	return cell{text: text}
}

func styledCell(text string, style lipgloss.Style) cell {
	return cell{text: text, style: &style}
}

// WriteStockTable renders the ledger as an aligned table.
func WriteStockTable(w io.Writer, day int, stock []model.StockItem) error {
	if _, err := fmt.Fprintln(w, FormatTitle(fmt.Sprintf("Stock on day %d", day))); err != nil {
		return err
	}

	rows := make([][]cell, 0, len(stock))
	for _, item := range stock {
		category := item.Category()
		rows = append(rows, []cell{
			plainCell(strconv.FormatInt(item.ID, 10)),
			plainCell(item.Name),
			plainCell(category.DisplayName()),
			sellInCell(item.Item),
			qualityCell(item.Item),
		})
	}

	return writeTable(w, []string{"ID", "Name", "Category", "SellIn", "Quality"}, rows, true)
}

// WriteHistoryTable renders the per-day values recorded for one item.
func WriteHistoryTable(w io.Writer, item model.StockItem, history []model.HistoryEntry) error {
	if _, err := fmt.Fprintln(w, FormatTitle(fmt.Sprintf("History for %s (#%d)", item.Name, item.ID))); err != nil {
		return err
	}

	rows := make([][]cell, 0, len(history))
	for _, entry := range history {
		rows = append(rows, []cell{
			plainCell(strconv.Itoa(entry.Day)),
			plainCell(strconv.Itoa(entry.SellIn)),
			plainCell(strconv.Itoa(entry.Quality)),
		})
	}

	return writeTable(w, []string{"Day", "SellIn", "Quality"}, rows, false)
}

// writeTable pads every cell to its column width, measured on the unstyled
// text, and only then styles it.
func writeTable(w io.Writer, header []string, rows [][]cell, rule bool) error {
	widths := make([]int, len(header))
	for i, title := range header {
		widths[i] = lipgloss.Width(title)
	}
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], lipgloss.Width(c.text))
		}
	}

	var b strings.Builder

	headerCells := make([]cell, len(header))
	for i, title := range header {
		headerCells[i] = styledCell(title, TableHeaderStyle)
	}
	writeRow(&b, widths, headerCells)

	if rule {
		ruleCells := make([]cell, len(header))
		for i, width := range widths {
			ruleCells[i] = plainCell(strings.Repeat("-", width))
		}
		writeRow(&b, widths, ruleCells)
	}

	for _, row := range rows {
		writeRow(&b, widths, row)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, widths []int, row []cell) {
	last := len(row) - 1
	for i, c := range row {
		text := c.text
		if i < last {
			text += strings.Repeat(" ", widths[i]-lipgloss.Width(text))
		}
		if c.style != nil {
			text = c.style.Render(text)
		}
		b.WriteString(text)
		if i < last {
			b.WriteString(columnGap)
		}
	}
	b.WriteString("\n")
}

func sellInCell(item model.Item) cell {
	value := strconv.Itoa(item.SellIn)
	switch {
	case item.Category() == model.CategorySulfuras:
		return styledCell(value, LegendaryStyle)
	case item.SellIn <= 0:
		return styledCell(value, ErrorStyle)
	default:
		return plainCell(value)
	}
}

func qualityCell(item model.Item) cell {
	value := strconv.Itoa(item.Quality)
	switch {
	case item.Category() == model.CategorySulfuras:
		return styledCell(value, LegendaryStyle)
	case item.Quality == model.MinQuality:
		return styledCell(value, SubtleStyle)
	case item.Quality == model.MaxQuality:
		return styledCell(value, SuccessStyle)
	default:
		return plainCell(value)
	}
}
