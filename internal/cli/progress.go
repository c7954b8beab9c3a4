package cli

import (
	"fmt"
	"io"

	"github.com/Veraticus/gilded-rose/internal/common"
	"github.com/schollz/progressbar/v3"
)

// DayProgress reports progress while a ledger is aged over several days.
type DayProgress struct {
	bar *progressbar.ProgressBar
}

// NewDayProgress creates a progress bar for the given number of days.
func NewDayProgress(w io.Writer, days int) *DayProgress {
	bar := progressbar.NewOptions(days,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[magenta][bold]Aging stock...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				common.LogWarn(err, "Failed to write newline after progress bar", nil)
			}
		}),
	)

	return &DayProgress{bar: bar}
}

// Step records one aged day.
func (p *DayProgress) Step() {
	if err := p.bar.Add(1); err != nil {
		common.LogWarn(err, "Failed to update progress bar", nil)
	}
}

// Finish completes the bar.
func (p *DayProgress) Finish() {
	if err := p.bar.Finish(); err != nil {
		common.LogWarn(err, "Failed to finish progress bar", nil)
	}
}
