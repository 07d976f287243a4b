package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGB
		ok   bool
	}{
		{"white", "#FFFFFF", RGB{255, 255, 255}, true},
		{"black", "#000000", RGB{0, 0, 0}, true},
		{"no hash", "808080", RGB{128, 128, 128}, true},
		{"lowercase", "#dc143c", RGB{220, 20, 60}, true},
		{"short", "#FFF", RGB{}, false},
		{"garbage", "#GGGGGG", RGB{}, false},
		{"empty", "", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHex(tt.hex)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNameForHex_ExactMatches(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#FFFFFF", "wit"},
		{"#000000", "zwart"},
		{"#808080", "grijs"},
		{"#F5F5DC", "beige"},
		{"#8B7355", "camel"},
		{"#DC143C", "rood"},
		{"#D2691E", "terracotta"},
		{"#8B4513", "bruin"},
		{"#000080", "marineblauw"},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			assert.Equal(t, tt.want, NameForHex(tt.hex))
		})
	}
}

func TestNameForHex_Nearest(t *testing.T) {
	// Slightly off-white should still land on wit.
	assert.Equal(t, "wit", NameForHex("#FEFEFE"))
	// Very dark gray lands on the darkest reference, antraciet.
	assert.Equal(t, "antraciet", NameForHex("#1A1A1A"))
}

func TestNameForHex_Unparseable(t *testing.T) {
	assert.Equal(t, "wit", NameForHex("not-a-color"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"hex to dutch", "#000000", "zwart"},
		{"bare hex to dutch", "8B4513", "bruin"},
		{"bare hex lowercase", "8b4513", "bruin"},
		{"english to dutch", "black", "zwart"},
		{"english grey variant", "Grey", "grijs"},
		{"dutch passthrough", "Zwart", "zwart"},
		{"unknown passthrough", "oker", "oker"},
		{"empty", "", ""},
		// Six hex-digit letters parse as a color, a quirk shared with
		// the clients this vocabulary serves.
		{"hexlike word parses as hex", "facade", "roze"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestTemperature(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
		want   string
	}{
		{"cool majority", []string{"zwart", "wit", "beige"}, "koel"},
		{"warm majority", []string{"camel", "bruin", "zwart"}, "warm"},
		{"tie is neutral", []string{"zwart", "camel"}, "neutraal"},
		{"empty is neutral", nil, "neutraal"},
		{"compound names match", []string{"marineblauw", "lichtblauw"}, "koel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Temperature(tt.colors))
		})
	}
}

func TestIsWarmIsCool(t *testing.T) {
	assert.True(t, IsWarm("camel"))
	assert.True(t, IsCool("navy"))
	assert.False(t, IsWarm("navy"))
	assert.False(t, IsCool("terracotta"))
	// beige is warm only; wit is cool only.
	assert.True(t, IsWarm("beige"))
	assert.False(t, IsCool("beige"))
}
