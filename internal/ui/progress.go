package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// progressLabelWidth aligns the bars of consecutive seeding steps.
const progressLabelWidth = 14

// ProgressBar renders batch progress for one seeding step. Updates
// come from a single goroutine; the bar redraws in place on a TTY and
// stays silent until completion otherwise.
type ProgressBar struct {
	ui      *UI
	bar     progress.Model
	label   string
	total   int64
	current int64
}

// NewProgressBar creates a progress bar for total units of work.
func (u *UI) NewProgressBar(label string, total int64) *ProgressBar {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	return &ProgressBar{
		ui:    u,
		bar:   bar,
		label: label,
		total: total,
	}
}

// Update advances the bar to current units and redraws it.
func (p *ProgressBar) Update(current int64) {
	p.current = current

	if !p.ui.shouldStyle() {
		return
	}

	pct := float64(p.current) / float64(p.total)
	if pct > 1 {
		pct = 1
	}

	labelStyle := lipgloss.NewStyle().Width(progressLabelWidth)
	countStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	fmt.Fprintf(os.Stdout, "\r\033[K  %s %s %s",
		labelStyle.Render(p.label),
		p.bar.ViewAs(pct),
		countStyle.Render(fmt.Sprintf("%d/%d", p.current, p.total)),
	)
}

// Complete replaces the bar with a success line.
func (p *ProgressBar) Complete() {
	if !p.ui.shouldStyle() {
		fmt.Printf("%s: %d/%d done\n", p.label, p.current, p.total)
		return
	}

	labelStyle := lipgloss.NewStyle().Width(progressLabelWidth)

	fmt.Fprintf(os.Stdout, "\r\033[K  %s %s %s\n",
		StyleSuccess.Render(SymbolSuccess),
		labelStyle.Render(p.label),
		StyleSuccess.Render(fmt.Sprintf("%d/%d complete", p.total, p.total)),
	)
}

// Fail replaces the bar with an error line.
func (p *ProgressBar) Fail(err error) {
	if !p.ui.shouldStyle() {
		fmt.Printf("%s: FAILED after %d/%d: %v\n", p.label, p.current, p.total, err)
		return
	}

	labelStyle := lipgloss.NewStyle().Width(progressLabelWidth)

	fmt.Fprintf(os.Stdout, "\r\033[K  %s %s %s\n",
		StyleError.Render(SymbolError),
		labelStyle.Render(p.label),
		StyleError.Render(err.Error()),
	)
}
