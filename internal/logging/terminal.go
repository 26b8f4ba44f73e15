package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// StatusView pins a single status line to the bottom of a terminal while
// everything written through it scrolls above. On a non-TTY it is a plain
// pass-through writer and the status line is never drawn.
type StatusView struct {
	mu     sync.Mutex
	output io.Writer
	width  int
	height int
	isTTY  bool
	status string
}

// NewStatusView creates a status view over output
func NewStatusView(output io.Writer) *StatusView {
	sv := &StatusView{output: output}

	if f, ok := output.(*os.File); ok {
		sv.isTTY = term.IsTerminal(int(f.Fd()))
		if sv.isTTY {
			sv.width, sv.height, _ = term.GetSize(int(f.Fd()))
		}
	}

	if sv.width == 0 {
		sv.width = 80
	}
	if sv.height == 0 {
		sv.height = 24
	}

	return sv
}

// IsTTY returns whether the output is a terminal
func (sv *StatusView) IsTTY() bool {
	return sv.isTTY
}

// Status returns the current status text
func (sv *StatusView) Status() string {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return sv.status
}

// SetStatus replaces the status line, truncated to the terminal width
func (sv *StatusView) SetStatus(text string) {
	sv.mu.Lock()
	defer sv.mu.Unlock()

	if len(text) > sv.width && sv.width > 3 {
		text = text[:sv.width-3] + "..."
	}
	sv.status = text

	if sv.isTTY {
		sv.redraw()
	}
}

// Write implements io.Writer for the scrolling area
func (sv *StatusView) Write(p []byte) (int, error) {
	sv.mu.Lock()
	defer sv.mu.Unlock()

	if !sv.isTTY {
		return sv.output.Write(p)
	}

	if _, err := sv.output.Write(p); err != nil {
		return 0, err
	}
	sv.redraw()
	return len(p), nil
}

// Setup reserves the bottom line for the status
func (sv *StatusView) Setup() {
	if !sv.isTTY {
		return
	}
	// Scroll region excludes the last line
	fmt.Fprintf(sv.output, "\033[1;%dr", sv.height-1)
	fmt.Fprint(sv.output, "\033[1;1H")
	sv.redraw()
}

// Teardown restores the full-screen scroll region and clears the status
func (sv *StatusView) Teardown() {
	if !sv.isTTY {
		return
	}
	fmt.Fprintf(sv.output, "\033[1;%dr", sv.height)
	fmt.Fprintf(sv.output, "\033[%d;1H\033[2K", sv.height)
}

// redraw must be called with mu held
func (sv *StatusView) redraw() {
	fmt.Fprint(sv.output, "\033[s")
	fmt.Fprintf(sv.output, "\033[%d;1H\033[2K", sv.height)
	fmt.Fprintf(sv.output, "\033[7m%s\033[0m", padRight(sv.status, sv.width))
	fmt.Fprint(sv.output, "\033[u")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
