package ui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// spinnerFrames cycle while an indeterminate operation runs.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a label while an indeterminate operation (venue
// seeding, table truncation) runs. On a non-TTY it degrades to a
// single "label... result" line.
type Spinner struct {
	ui    *UI
	label string

	done chan struct{}
	wg   sync.WaitGroup
	stop sync.Once

	started bool
}

// NewSpinner creates a spinner with the given label.
func (u *UI) NewSpinner(label string) *Spinner {
	return &Spinner{
		ui:    u,
		label: label,
		done:  make(chan struct{}),
	}
}

// Start begins the animation. Starting twice is a no-op.
func (s *Spinner) Start() {
	if s.started {
		return
	}
	s.started = true

	if !s.ui.shouldStyle() {
		fmt.Printf("%s...", s.label)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		style := lipgloss.NewStyle().Foreground(ColorPrimary)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				fmt.Fprintf(os.Stdout, "\r%s %s...", style.Render(spinnerFrames[frame]), s.label)
				frame = (frame + 1) % len(spinnerFrames)
			}
		}
	}()
}

// halt stops the animation goroutine and clears its line.
func (s *Spinner) halt() {
	s.stop.Do(func() { close(s.done) })
	s.wg.Wait()

	if s.ui.shouldStyle() {
		fmt.Fprint(os.Stdout, "\r\033[K")
	}
}

// Success stops the spinner and prints the label with a result message.
func (s *Spinner) Success(msg string) {
	if !s.started {
		return
	}
	s.halt()

	if !s.ui.shouldStyle() {
		fmt.Printf(" %s\n", msg)
		return
	}
	fmt.Fprintf(os.Stdout, "%s %s... %s\n", StyleSuccess.Render(SymbolSuccess), s.label, msg)
}

// Error stops the spinner and prints the label with an error message.
func (s *Spinner) Error(msg string) {
	if !s.started {
		return
	}
	s.halt()

	if !s.ui.shouldStyle() {
		fmt.Printf(" %s\n", msg)
		return
	}
	fmt.Fprintf(os.Stdout, "%s %s... %s\n", StyleError.Render(SymbolError), s.label, StyleError.Render(msg))
}
