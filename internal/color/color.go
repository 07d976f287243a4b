// Package color maps client color values onto the canonical Dutch color
// vocabulary used by the profile pipeline.
//
// Colors reach the server in two shapes: hex values from curated mood
// photos and free-text names (Dutch or English) from quiz answers. Both
// are reduced to Dutch names here so downstream analysis works on a
// single vocabulary.
package color

import (
	"math"
	"strconv"
	"strings"

	"github.com/fitfi/fitfi-server/internal/normalize"
)

// RGB is a color in 8-bit RGB space.
type RGB struct {
	R, G, B int
}

// namedColor pairs a reference hex value with its Dutch name.
// Kept as a slice so nearest-match ties resolve deterministically.
type namedColor struct {
	hex  string
	name string
	rgb  RGB
}

//nolint:gochecknoglobals // Static palette reference table
var palette = buildPalette([]struct{ hex, name string }{
	{"#FFFFFF", "wit"},
	{"#000000", "zwart"},
	{"#808080", "grijs"},
	{"#F5F5DC", "beige"},
	{"#8B7355", "camel"},
	{"#2C3E50", "donkerblauw"},
	{"#ECF0F1", "off-white"},
	{"#34495E", "slate"},
	{"#1C1C1C", "antraciet"},
	{"#DC143C", "rood"},
	{"#D2691E", "terracotta"},
	{"#F4A460", "zandkleur"},
	{"#8B4513", "bruin"},
	{"#000080", "marineblauw"},
	{"#C41E3A", "rood"},
	{"#00CED1", "turquoise"},
	{"#FFB6C1", "roze"},
	{"#DDA0DD", "lila"},
	{"#87CEEB", "lichtblauw"},
	{"#F0E68C", "geel"},
	{"#FF6347", "oranje"},
	{"#FFD700", "goud"},
	{"#4169E1", "kobaltblauw"},
})

// englishToDutch maps English color names onto the Dutch vocabulary.
//
//nolint:gochecknoglobals // Static lookup table
var englishToDutch = map[string]string{
	"black":  "zwart",
	"white":  "wit",
	"gray":   "grijs",
	"grey":   "grijs",
	"beige":  "beige",
	"camel":  "camel",
	"brown":  "bruin",
	"navy":   "navy",
	"blue":   "blauw",
	"red":    "rood",
	"green":  "groen",
	"yellow": "geel",
	"orange": "oranje",
	"pink":   "roze",
	"purple": "paars",
}

// Temperature classification vocabularies. A color matches by substring
// so compound names ("marineblauw", "off-white") classify too.
//
//nolint:gochecknoglobals // Static lookup tables
var (
	warmColors = []string{"beige", "camel", "bruin", "rood", "oranje", "geel"}
	coolColors = []string{"zwart", "wit", "grijs", "navy", "blauw", "paars"}
)

func buildPalette(entries []struct{ hex, name string }) []namedColor {
	out := make([]namedColor, 0, len(entries))
	for _, e := range entries {
		rgb, ok := ParseHex(e.hex)
		if !ok {
			continue
		}
		out = append(out, namedColor{hex: e.hex, name: e.name, rgb: rgb})
	}
	return out
}

// ParseHex parses a "#RRGGBB" or "RRGGBB" value.
func ParseHex(hex string) (RGB, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: int(v >> 16 & 0xFF),
		G: int(v >> 8 & 0xFF),
		B: int(v & 0xFF),
	}, true
}

// Distance is the Euclidean distance between two colors in RGB space.
func Distance(a, b RGB) float64 {
	dr := float64(a.R - b.R)
	dg := float64(a.G - b.G)
	db := float64(a.B - b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// NameForHex returns the Dutch name of the reference color nearest to hex.
// Unparseable input maps to the first reference entry.
func NameForHex(hex string) string {
	target, ok := ParseHex(hex)
	if !ok {
		return palette[0].name
	}

	closest := palette[0]
	minDistance := math.Inf(1)
	for _, c := range palette {
		if d := Distance(target, c.rgb); d < minDistance {
			minDistance = d
			closest = c
		}
	}
	return closest.name
}

// Normalize reduces any client color value to a canonical Dutch name:
// English names go through the translation table, hex values (with or
// without the leading '#') through nearest-reference matching, and
// everything else is token-normalized as-is.
func Normalize(raw string) string {
	t := normalize.Token(raw)
	if t == "" {
		return ""
	}
	if dutch, ok := englishToDutch[t]; ok {
		return dutch
	}
	if _, ok := ParseHex(t); ok {
		return NameForHex(t)
	}
	return t
}

// IsWarm reports whether the (normalized) color matches the warm vocabulary.
func IsWarm(color string) bool {
	return matchesAny(color, warmColors)
}

// IsCool reports whether the (normalized) color matches the cool vocabulary.
func IsCool(color string) bool {
	return matchesAny(color, coolColors)
}

func matchesAny(color string, vocab []string) bool {
	for _, v := range vocab {
		if strings.Contains(color, v) {
			return true
		}
	}
	return false
}

// Temperature classifies a set of normalized colors as "warm", "koel",
// or "neutraal" by majority vote.
func Temperature(colors []string) string {
	warmCount, coolCount := 0, 0
	for _, c := range colors {
		if IsWarm(c) {
			warmCount++
		}
		if IsCool(c) {
			coolCount++
		}
	}

	if coolCount > warmCount {
		return "koel"
	}
	if warmCount > coolCount {
		return "warm"
	}
	return "neutraal"
}
