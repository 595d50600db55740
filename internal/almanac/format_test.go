package almanac

import (
	"strings"
	"testing"
	"time"

	"github.com/smokyabdulrahman/lunar-almanac/internal/calendar"
	"github.com/smokyabdulrahman/lunar-almanac/internal/lunar"
)

// helper: a waxing day (Shukla Ashtami, age 7.37, 50% lit).
func formatTestFacts() lunar.Facts {
	return lunar.Compute(calendar.MustNew(2026, time.October, 18))
}

func TestFormatOutput_AllBuiltinModes(t *testing.T) {
	f := formatTestFacts()

	tests := []struct {
		mode string
		want string
	}{
		{FormatGlyph, "🌔"},
		{FormatTitle, "Shukla Ashtami"},
		{FormatTithi, "Shukla Ashtami"},
		{FormatGlyphAndTitle, "🌔 Shukla Ashtami"},
		{FormatAge, "7.4d"},
		{FormatIllumination, "50%"},
		{FormatGlyphAndIllum, "🌔 50%"},
		{FormatFull, "🌔 Shukla Ashtami (50%)"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got := FormatOutput(f, tt.mode, Emoji)
			if got != tt.want {
				t.Errorf("FormatOutput(%q) = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

func TestFormatOutput_ASCIIGlyphs(t *testing.T) {
	f := formatTestFacts()

	got := FormatOutput(f, FormatGlyphAndTitle, ASCII)
	if got != " ) Shukla Ashtami" {
		t.Errorf("ascii glyph-and-title = %q, want %q", got, " ) Shukla Ashtami")
	}
}

func TestFormatOutput_UnknownModeDefaultsToGlyphAndTitle(t *testing.T) {
	f := formatTestFacts()

	got := FormatOutput(f, "nonexistent-format", Emoji)
	if got != "🌔 Shukla Ashtami" {
		t.Errorf("unknown mode = %q, want %q", got, "🌔 Shukla Ashtami")
	}
}

func TestFormatOutput_TitleVersusTithiOnFullMoon(t *testing.T) {
	f := lunar.Compute(calendar.MustNew(2026, time.October, 26))

	if got := FormatOutput(f, FormatTitle, Emoji); got != lunar.FullMoonTitle {
		t.Errorf("title = %q, want %q", got, lunar.FullMoonTitle)
	}
	// Age 15.37 is past the paksha boundary, so the plain tithi is Krishna.
	if got := FormatOutput(f, FormatTithi, Emoji); got != "Krishna Pratipada" {
		t.Errorf("tithi = %q, want %q", got, "Krishna Pratipada")
	}
}

func TestFormatOutput_CustomTemplate(t *testing.T) {
	f := formatTestFacts()

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{
			"glyph and tithi",
			"{{.Glyph}} {{.Tithi}}",
			"🌔 Shukla Ashtami",
		},
		{
			"age and illumination",
			"{{.Age}}d {{.Illumination}}",
			"7.4d 50%",
		},
		{
			"tithi number",
			"#{{.Number}} {{.TithiName}} ({{.Paksha}})",
			"#8 Ashtami (Shukla)",
		},
		{
			"conditional",
			"{{if .Ekadashi}}fast{{else}}{{.Phase}}{{end}}",
			"Waxing Crescent",
		},
		{
			"date",
			"{{.Date}}",
			"2026-10-18",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatOutput(f, tt.tmpl, Emoji)
			if got != tt.want {
				t.Errorf("FormatOutput(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}
}

func TestFormatOutput_InvalidTemplate(t *testing.T) {
	f := formatTestFacts()

	got := FormatOutput(f, "{{.Glyph", Emoji)
	if !strings.HasPrefix(got, "template-err:") {
		t.Errorf("invalid template = %q, want template-err prefix", got)
	}
}

func TestFormatOutput_TemplateBadField(t *testing.T) {
	f := formatTestFacts()

	got := FormatOutput(f, "{{.NoSuchField}}", Emoji)
	if !strings.HasPrefix(got, "template-err:") {
		t.Errorf("bad field template = %q, want template-err prefix", got)
	}
}

func TestFormatAgeDays(t *testing.T) {
	tests := []struct {
		age  float64
		want string
	}{
		{0, "0.0"},
		{7.37471, "7.4"},
		{14.95, "14.9"},
		{29.5, "29.5"},
	}
	for _, tt := range tests {
		if got := FormatAgeDays(tt.age); got != tt.want {
			t.Errorf("FormatAgeDays(%v) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0); got != "0%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
	if got := FormatPercent(100); got != "100%" {
		t.Errorf("FormatPercent(100) = %q", got)
	}
}

func TestBadges(t *testing.T) {
	tests := []struct {
		day  int
		want []string
	}{
		{7, []string{"Ekadashi"}},
		{11, []string{"New Moon"}},
		{18, nil},
		{26, []string{"Full Moon"}},
	}
	for _, tt := range tests {
		f := lunar.Compute(calendar.MustNew(2026, time.October, tt.day))
		got := Badges(f)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("Badges(Oct %d) = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestAbbrev(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Chaturdashi", 4, "Chat"},
		{"Navami", 6, "Navami"},
		{"Navami", 10, "Navami"},
		{"", 3, ""},
	}
	for _, tt := range tests {
		if got := Abbrev(tt.in, tt.n); got != tt.want {
			t.Errorf("Abbrev(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
