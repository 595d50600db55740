package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/smokyabdulrahman/lunar-almanac/internal/almanac"
	"github.com/smokyabdulrahman/lunar-almanac/internal/lunar"
	"gopkg.in/yaml.v3"
)

// dayView is the structured output for one day.
type dayView struct {
	Date         string  `json:"date" yaml:"date"`
	Weekday      string  `json:"weekday" yaml:"weekday"`
	Glyph        string  `json:"glyph" yaml:"glyph"`
	Title        string  `json:"title" yaml:"title"`
	Paksha       string  `json:"paksha" yaml:"paksha"`
	Tithi        string  `json:"tithi" yaml:"tithi"`
	TithiNumber  int     `json:"tithi_number" yaml:"tithi_number"`
	Phase        string  `json:"phase" yaml:"phase"`
	Age          float64 `json:"age" yaml:"age"`
	Illumination int     `json:"illumination" yaml:"illumination"`
	FullMoon     bool    `json:"full_moon" yaml:"full_moon"`
	NewMoon      bool    `json:"new_moon" yaml:"new_moon"`
	Ekadashi     bool    `json:"ekadashi" yaml:"ekadashi"`
}

func newDayView(f lunar.Facts, glyphs almanac.GlyphSet) dayView {
	return dayView{
		Date:         f.Date.String(),
		Weekday:      f.Date.Weekday().String(),
		Glyph:        almanac.Glyph(f, glyphs),
		Title:        f.DisplayTitle,
		Paksha:       f.Paksha.String(),
		Tithi:        f.TithiName,
		TithiNumber:  f.TithiNumber(),
		Phase:        f.Phase.String(),
		Age:          math.Round(f.Age*100) / 100,
		Illumination: f.Illumination,
		FullMoon:     f.IsFullMoon,
		NewMoon:      f.IsNewMoon,
		Ekadashi:     f.IsEkadashi,
	}
}

func newDayViews(facts []lunar.Facts, glyphs almanac.GlyphSet) []dayView {
	out := make([]dayView, len(facts))
	for i, f := range facts {
		out[i] = newDayView(f, glyphs)
	}
	return out
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, mode string, v any) error {
	switch mode {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}

// currentAlmanac returns the almanac prepared for this invocation.
func currentAlmanac() *almanac.Almanac {
	if lunarAlmanac == nil {
		lunarAlmanac = almanac.New(nil)
	}
	return lunarAlmanac
}
