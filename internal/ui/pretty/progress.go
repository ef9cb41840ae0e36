package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

const (
	progressBarWidth = 20
	minProgressWidth = 40
)

// Progress renders a single-line progress bar that is redrawn in place.
// It is a no-op unless enabled.
type Progress struct {
	mu      sync.Mutex
	out     io.Writer
	styles  *Styles
	width   int
	enabled bool
	drawn   bool
}

// NewProgress creates a progress renderer for out. Rendering is enabled
// only when out is a terminal.
func NewProgress(out io.Writer, styles *Styles) *Progress {
	return &Progress{
		out:     out,
		styles:  styles,
		width:   TerminalWidth(out),
		enabled: IsTerminal(out),
	}
}

// NewForcedProgress creates a progress renderer that always draws, using
// the given line width.
func NewForcedProgress(out io.Writer, styles *Styles, width int) *Progress {
	return &Progress{out: out, styles: styles, width: max(width, minProgressWidth), enabled: true}
}

// Enabled reports whether the renderer draws anything.
func (p *Progress) Enabled() bool {
	return p.enabled
}

// Update redraws the bar. It matches the runner's progress callback.
func (p *Progress) Update(fraction float64, message string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	fraction = min(max(fraction, 0), 1)
	filled := int(fraction * progressBarWidth)
	bar := p.styles.ProgressFill.Render(strings.Repeat("█", filled)) +
		p.styles.ProgressEmpty.Render(strings.Repeat("░", progressBarWidth-filled))

	prefix := fmt.Sprintf("%3d%% ", int(fraction*100))
	room := p.width - len(prefix) - progressBarWidth - 2
	line := prefix + bar + "  " + truncate(message, max(room, 1))

	fmt.Fprint(p.out, "\r\033[K"+line)
	p.drawn = true
}

// Clear erases the bar if one was drawn.
func (p *Progress) Clear() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.drawn {
		fmt.Fprint(p.out, "\r\033[K")
		p.drawn = false
	}
}

// TerminalWidth returns the column count of out, or a default when out is
// not a terminal.
func TerminalWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
