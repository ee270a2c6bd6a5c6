package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
)

func TestHalfBlock(t *testing.T) {
	assert.Equal(t, blockEmpty, halfBlock(false, false))
	assert.Equal(t, blockUpper, halfBlock(true, false))
	assert.Equal(t, blockLower, halfBlock(false, true))
	assert.Equal(t, blockFull, halfBlock(true, true))
}

func TestFrame(t *testing.T) {
	var display [machine.DisplayHeight][machine.DisplayWidth]bool
	display[0][0] = true
	display[1][0] = true
	display[0][1] = true
	display[3][63] = true

	frame := Frame(display)
	assert.True(t, strings.HasPrefix(frame, escapeHome))

	lines := strings.Split(strings.TrimPrefix(frame, escapeHome), "\r\n")
	assert.Len(t, lines, machine.DisplayHeight/2+borderLines+1) // trailing empty element

	first := []rune(lines[1])
	assert.Len(t, first, machine.DisplayWidth+2)
	assert.Equal(t, blockFull, first[1])
	assert.Equal(t, blockUpper, first[2])
	assert.Equal(t, blockEmpty, first[3])

	second := []rune(lines[2])
	assert.Equal(t, blockLower, second[machine.DisplayWidth])
}

func TestRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	assert.NoError(t, r.Start())
	assert.Contains(t, buf.String(), escapeHideCursor)

	buf.Reset()
	assert.NoError(t, r.Render([machine.DisplayHeight][machine.DisplayWidth]bool{}))
	assert.Equal(t, Frame([machine.DisplayHeight][machine.DisplayWidth]bool{}), buf.String())

	buf.Reset()
	assert.NoError(t, r.Stop())
	assert.Contains(t, buf.String(), escapeShowCursor)
}
