// Package icons maps symbolic icon keys to terminal-renderable glyphs.
//
// The key set is closed: categories persist a key string, and anything not in
// the table renders as the fallback glyph rather than failing.
package icons

import "sort"

// FallbackKey is the key whose glyph stands in for unknown icons.
const FallbackKey = "layers"

var glyphs = map[string]string{
	"utensils":       "🍴",
	"shopping-bag":   "🛍",
	"home":           "🏠",
	"car":            "🚗",
	"plane":          "✈",
	"film":           "🎬",
	"gamepad-2":      "🎮",
	"music":          "🎵",
	"camera":         "📷",
	"map-pin":        "📍",
	"briefcase":      "💼",
	"coffee":         "☕",
	"beer":           "🍺",
	"wine":           "🍷",
	"dumbbell":       "🏋",
	"heart":          "❤",
	"stethoscope":    "🩺",
	"graduation-cap": "🎓",
	"book":           "📖",
	"file-text":      "📄",
	"credit-card":    "💳",
	"wallet":         "👛",
	"piggy-bank":     "🐖",
	"gift":           "🎁",
	"paw-print":      "🐾",
	"baby":           "👶",
	"smartphone":     "📱",
	"tv":             "📺",
	"wifi":           "📶",
	"zap":            "⚡",
	"activity":       "📈",
	"bike":           "🚲",
	"trees":          "🌲",
	"airplay":        "🖥",
	"layers":         "▤",
}

// Palette is the set of colors offered when creating a category.
var Palette = []string{
	"#FF6B6B", "#FF9F43", "#F1C40F", "#2ECC71", "#1ABC9C", "#3498DB",
	"#9B59B6", "#E84393", "#2D3436", "#636E72", "#A29BFE", "#FAB1A0",
	"#00B894", "#00CEC9", "#0984E3", "#6C5CE7", "#D63031", "#E17055",
	"#FDCB6E", "#55E6C1", "#7ED6DF", "#E056FD", "#686DE0", "#30336B",
}

// Glyph returns the glyph for key, falling back for unknown keys.
func Glyph(key string) string {
	if g, ok := glyphs[key]; ok {
		return g
	}
	return glyphs[FallbackKey]
}

// Valid reports whether key belongs to the closed icon set.
func Valid(key string) bool {
	_, ok := glyphs[key]
	return ok
}

// Names returns all icon keys in a stable order for pickers.
func Names() []string {
	names := make([]string, 0, len(glyphs))
	for name := range glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
