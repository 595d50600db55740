package almanac

import (
	"fmt"
	"strings"

	"github.com/smokyabdulrahman/lunar-almanac/internal/lunar"
)

// GlyphSet selects how the moon is drawn.
type GlyphSet int

const (
	Emoji GlyphSet = iota
	ASCII
)

// GlyphSetNames lists the accepted glyph set names, in GlyphSet order.
var GlyphSetNames = []string{"emoji", "ascii"}

// glyphs holds the full, new, waxing and waning glyphs of each set. Every
// glyph occupies two terminal columns.
var glyphs = [...][4]string{
	Emoji: {"🌕", "🌑", "🌔", "🌘"},
	ASCII: {"()", "..", " )", "( "},
}

// ParseGlyphSet parses "emoji" or "ascii".
func ParseGlyphSet(s string) (GlyphSet, error) {
	for i, name := range GlyphSetNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return GlyphSet(i), nil
		}
	}
	return Emoji, fmt.Errorf("invalid glyph set %q: must be one of %s", s, strings.Join(GlyphSetNames, ", "))
}

func (g GlyphSet) String() string {
	if g < 0 || int(g) >= len(GlyphSetNames) {
		return fmt.Sprintf("GlyphSet(%d)", int(g))
	}
	return GlyphSetNames[g]
}

// Glyph returns the moon glyph for f. Full and New phases get their own
// glyphs; every other day is drawn waxing or waning by its phase.
func Glyph(f lunar.Facts, set GlyphSet) string {
	if set < 0 || int(set) >= len(glyphs) {
		set = Emoji
	}
	g := glyphs[set]
	switch {
	case f.Phase == lunar.Full:
		return g[0]
	case f.Phase == lunar.New:
		return g[1]
	case f.Phase.Waxing():
		return g[2]
	default:
		return g[3]
	}
}
