package console

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const defaultSpinnerLabel = "Consulting the AI oracle"

// spinnerJoinTimeout bounds how long Stop waits for the render goroutine.
const spinnerJoinTimeout = 500 * time.Millisecond

var (
	spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Spinner animates a single-line progress indicator while a narration call
// is in flight. Start and Stop must be called from the same goroutine.
type Spinner struct {
	out      io.Writer
	label    string
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// StartLoading begins a spinner on the UI's output. An empty label uses the
// default. The caller must Stop it before writing anything else.
func (u *UI) StartLoading(label string) *Spinner {
	s := newSpinner(u.out, label)
	s.start()
	return s
}

func newSpinner(out io.Writer, label string) *Spinner {
	if label == "" {
		label = defaultSpinnerLabel
	}
	return &Spinner{
		out:   out,
		label: label,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

func (s *Spinner) start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		frame := 0
		dots := 0
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				dots = dots%3 + 1
				text := spinnerStyle.Render(fmt.Sprintf("%s %s%s",
					spinnerFrames[frame%len(spinnerFrames)], s.label, strings.Repeat(".", dots)))
				fmt.Fprintf(s.out, "\r%-*s", screenWidth-1, text)
				frame++
			}
		}
	}()
}

// Stop halts the animation and clears the line. The wait for the render
// goroutine is bounded; Stop never blocks indefinitely.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	select {
	case <-s.done:
	case <-time.After(spinnerJoinTimeout):
	}
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", screenWidth))
}
