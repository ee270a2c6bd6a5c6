package instruction

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, "cls"},
		{0x00EE, "ret"},
		{0x1234, "jp $234"},
		{0xB234, "jp V0, $234"},
		{0x2234, "call $234"},
		{0x3234, "se V2, $34"},
		{0x5230, "se V2, V3"},
		{0x4234, "sne V2, $34"},
		{0x9230, "sne V2, V3"},
		{0x6234, "ld V2, $34"},
		{0x8230, "ld V2, V3"},
		{0xA234, "ld I, $234"},
		{0x7234, "add V2, $34"},
		{0x8234, "add V2, V3"},
		{0x8231, "or V2, V3"},
		{0x8232, "and V2, V3"},
		{0x8233, "xor V2, V3"},
		{0x8235, "sub V2, V3"},
		{0x8237, "subn V2, V3"},
		{0x8206, "shr V2"},
		{0x8236, "shr V2, V3"},
		{0x820E, "shl V2"},
		{0xC234, "rnd V2, $34"},
		{0xD235, "drw V2, V3, $5"},
		{0xE29E, "skp V2"},
		{0xE2A1, "sknp V2"},
		{0xF207, "ld V2, DT"},
		{0xF20A, "ld V2, K"},
		{0xF215, "ld DT, V2"},
		{0xF218, "ld ST, V2"},
		{0xF21E, "add I, V2"},
		{0xF229, "ld F, V2"},
		{0xF233, "ld B, V2"},
		{0xF255, "ld [I], V2"},
		{0xF265, "ld V2, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			ins, err := Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ins.String())
		})
	}
}

func TestIsSkip(t *testing.T) {
	assert.True(t, IsSkip(SkipEqualLiteral{}))
	assert.True(t, IsSkip(SkipNotEqual{}))
	assert.True(t, IsSkip(SkipIfPressed{}))
	assert.True(t, IsSkip(SkipIfNotPressed{}))
	assert.False(t, IsSkip(Jump{}))
	assert.False(t, IsSkip(SetLiteral{}))
}
