package colorutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRGBYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]RGB{"c": {R: 0, G: 0, B: 255}})
	require.NoError(t, err)
	assert.Equal(t, "c: [0, 0, 255]\n", string(out))

	var decoded map[string]RGB
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, RGB{B: 255}, decoded["c"])
}

func TestRGBYAML_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "too few", input: "c: [1, 2]"},
		{name: "out of range", input: "c: [1, 2, 300]"},
		{name: "not a sequence", input: "c: red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var decoded map[string]RGB
			assert.Error(t, yaml.Unmarshal([]byte(tt.input), &decoded))
		})
	}
}

func TestPaletteAt(t *testing.T) {
	assert.Equal(t, Palette[0], PaletteAt(0))
	assert.Equal(t, Palette[1], PaletteAt(len(Palette)+1))
	assert.Equal(t, uint8(255), RGB{R: 255}.RGBA().A)
}
