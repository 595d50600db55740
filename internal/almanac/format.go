package almanac

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/smokyabdulrahman/lunar-almanac/internal/lunar"
)

// Format constants for status-line modes.
const (
	FormatGlyph         = "glyph"
	FormatTitle         = "title"
	FormatTithi         = "tithi"
	FormatGlyphAndTitle = "glyph-and-title"
	FormatAge           = "age"
	FormatIllumination  = "illumination"
	FormatGlyphAndIllum = "glyph-and-illumination"
	FormatFull          = "full"
)

// Formats lists the built-in format modes.
var Formats = []string{
	FormatGlyph,
	FormatTitle,
	FormatTithi,
	FormatGlyphAndTitle,
	FormatAge,
	FormatIllumination,
	FormatGlyphAndIllum,
	FormatFull,
}

// FormatData is the data passed to custom Go templates.
type FormatData struct {
	Date         string // e.g. "2026-10-18"
	Glyph        string // e.g. "🌔"
	Title        string // display title, e.g. "Purnima (Full Moon)"
	Tithi        string // paksha and tithi, e.g. "Shukla Ashtami"
	TithiName    string // e.g. "Ashtami"
	Paksha       string // "Shukla" or "Krishna"
	Phase        string // e.g. "Waxing Crescent"
	Age          string // one decimal, e.g. "7.4"
	Illumination string // e.g. "50%"
	Number       int    // tithi number 1-30
	Ekadashi     bool
	FullMoon     bool
	NewMoon      bool
}

// Data builds the template data for f.
func Data(f lunar.Facts, glyphs GlyphSet) FormatData {
	return FormatData{
		Date:         f.Date.String(),
		Glyph:        Glyph(f, glyphs),
		Title:        f.DisplayTitle,
		Tithi:        Tithi(f),
		TithiName:    f.TithiName,
		Paksha:       f.Paksha.String(),
		Phase:        f.Phase.String(),
		Age:          FormatAgeDays(f.Age),
		Illumination: FormatPercent(f.Illumination),
		Number:       f.TithiNumber(),
		Ekadashi:     f.IsEkadashi,
		FullMoon:     f.IsFullMoon,
		NewMoon:      f.IsNewMoon,
	}
}

// FormatOutput renders f for a one-line display according to mode.
//
// If mode contains "{{", it is treated as a custom Go template string over
// FormatData, e.g. "{{.Glyph}} {{.Tithi}} {{.Illumination}}".
func FormatOutput(f lunar.Facts, mode string, glyphs GlyphSet) string {
	if strings.Contains(mode, "{{") {
		return formatCustom(mode, Data(f, glyphs))
	}

	glyph := Glyph(f, glyphs)
	switch mode {
	case FormatGlyph:
		return glyph
	case FormatTitle:
		return f.DisplayTitle
	case FormatTithi:
		return Tithi(f)
	case FormatGlyphAndTitle:
		return fmt.Sprintf("%s %s", glyph, f.DisplayTitle)
	case FormatAge:
		return FormatAgeDays(f.Age) + "d"
	case FormatIllumination:
		return FormatPercent(f.Illumination)
	case FormatGlyphAndIllum:
		return fmt.Sprintf("%s %s", glyph, FormatPercent(f.Illumination))
	case FormatFull:
		return fmt.Sprintf("%s %s (%s)", glyph, f.DisplayTitle, FormatPercent(f.Illumination))
	default:
		return fmt.Sprintf("%s %s", glyph, f.DisplayTitle)
	}
}

// Tithi returns the paksha-qualified tithi name, e.g. "Krishna Amavasya",
// without the full/new moon title override.
func Tithi(f lunar.Facts) string {
	return f.Paksha.String() + " " + f.TithiName
}

// FormatAgeDays formats a moon age with one decimal place.
func FormatAgeDays(age float64) string {
	return fmt.Sprintf("%.1f", age)
}

// FormatPercent formats an illumination percentage, e.g. "87%".
func FormatPercent(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// Badges returns the highlight labels that apply to f.
func Badges(f lunar.Facts) []string {
	var out []string
	if f.IsFullMoon {
		out = append(out, FullMoon.String())
	}
	if f.IsNewMoon {
		out = append(out, NewMoon.String())
	}
	if f.IsEkadashi {
		out = append(out, Ekadashi.String())
	}
	return out
}

// Abbrev shortens a tithi name to at most n runes for grid cells.
func Abbrev(name string, n int) string {
	r := []rune(name)
	if len(r) <= n {
		return name
	}
	return string(r[:n])
}

// formatCustom executes a user-provided Go template string against the FormatData.
func formatCustom(tmpl string, data FormatData) string {
	t, err := template.New("custom").Parse(tmpl)
	if err != nil {
		return fmt.Sprintf("template-err: %v", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Sprintf("template-err: %v", err)
	}

	return buf.String()
}
