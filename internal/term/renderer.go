package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
)

const (
	escapeHome       = "\x1b[H"
	escapeClear      = "\x1b[2J"
	escapeHideCursor = "\x1b[?25l"
	escapeShowCursor = "\x1b[?25h"
)

// Half block characters combine two display rows into one text line.
const (
	blockEmpty  = ' '
	blockUpper  = '▀'
	blockLower  = '▄'
	blockFull   = '█'
	borderLines = 2
)

// Renderer draws the display as text, two pixel rows per line.
type Renderer struct {
	w io.Writer
}

// NewRenderer returns a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Start clears the screen and hides the cursor.
func (r *Renderer) Start() error {
	if _, err := io.WriteString(r.w, escapeClear+escapeHideCursor); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	return nil
}

// Stop shows the cursor again and moves it below the display.
func (r *Renderer) Stop() error {
	lines := machine.DisplayHeight/2 + borderLines + 1
	if _, err := fmt.Fprintf(r.w, "\x1b[%d;1H%s", lines, escapeShowCursor); err != nil {
		return fmt.Errorf("restoring screen: %w", err)
	}
	return nil
}

// Render draws a full frame at the top left of the terminal.
func (r *Renderer) Render(display [machine.DisplayHeight][machine.DisplayWidth]bool) error {
	if _, err := io.WriteString(r.w, Frame(display)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Frame returns the text representation of the display including a border.
// Lines end with a carriage return as the terminal is in raw mode.
func Frame(display [machine.DisplayHeight][machine.DisplayWidth]bool) string {
	var sb strings.Builder
	border := strings.Repeat("─", machine.DisplayWidth)

	sb.WriteString(escapeHome)
	sb.WriteString("┌" + border + "┐\r\n")

	for row := 0; row < machine.DisplayHeight; row += 2 {
		sb.WriteString("│")
		for col := range machine.DisplayWidth {
			sb.WriteRune(halfBlock(display[row][col], display[row+1][col]))
		}
		sb.WriteString("│\r\n")
	}

	sb.WriteString("└" + border + "┘\r\n")
	return sb.String()
}

func halfBlock(upper, lower bool) rune {
	switch {
	case upper && lower:
		return blockFull
	case upper:
		return blockUpper
	case lower:
		return blockLower
	default:
		return blockEmpty
	}
}
