package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/smokyabdulrahman/lunar-almanac/internal/almanac"
	"github.com/smokyabdulrahman/lunar-almanac/internal/calendar"
	"github.com/smokyabdulrahman/lunar-almanac/internal/display"
	"github.com/smokyabdulrahman/lunar-almanac/internal/lunar"
	"github.com/spf13/cobra"
)

func newDayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "Show the lunar details of a date",
		Long:  "Display moon age, phase, illumination, paksha and tithi for one date.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := calendar.Parse(args[0])
			if err != nil {
				return err
			}
			return showDay(cmd, d)
		},
	}
}

// runToday is the default action: the detail view for today or --date.
func runToday(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	return renderDay(cmd.OutOrStdout(), s, s.Date)
}

func showDay(cmd *cobra.Command, d calendar.Date) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	return renderDay(cmd.OutOrStdout(), s, d)
}

func renderDay(w io.Writer, s settings, d calendar.Date) error {
	f := currentAlmanac().Day(d)
	logger.Debug().Stringer("facts", f).Msg("day computed")

	if s.structured() {
		return writeStructured(w, s.Output, newDayView(f, s.Glyphs))
	}

	printDayRich(w, f, s.Glyphs, d.Equal(s.Today))
	return nil
}

// printDayRich renders the colored terminal detail view for one day.
func printDayRich(w io.Writer, f lunar.Facts, glyphs almanac.GlyphSet, isToday bool) {
	heading := f.Date.Format("Monday, January 2, 2006")
	if isToday {
		heading += display.Dim(" (today)")
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Bold(heading))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s  %s\n", almanac.Glyph(f, glyphs), styleTitle(f, f.DisplayTitle))
	fmt.Fprintf(w, "  %s\n", display.Gray(fmt.Sprintf("%s · %s Paksha", f.Phase, f.Paksha)))
	fmt.Fprintln(w)

	rows := [][2]string{
		{"Tithi", fmt.Sprintf("%s (%d/30)", almanac.Tithi(f), f.TithiNumber())},
		{"Moon Age", almanac.FormatAgeDays(f.Age) + " days"},
		{"Illumination", almanac.FormatPercent(f.Illumination)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s  %s\n", display.Gray(padRight(r[0], 12)), r[1])
	}

	if badges := styledBadges(f); badges != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s\n", badges)
	}

	fmt.Fprintln(w)
}

// styleTitle colors text by the highlight that applies to f.
func styleTitle(f lunar.Facts, text string) string {
	return display.Apply(highlightStyle(f), text)
}

// highlightStyle returns the grid style for the events on f.
func highlightStyle(f lunar.Facts) display.Style {
	var s display.Style
	if f.IsFullMoon {
		s |= display.StyleFullMoon
	}
	if f.IsNewMoon {
		s |= display.StyleNewMoon
	}
	if f.IsEkadashi {
		s |= display.StyleEkadashi
	}
	return s
}

// styledBadges renders the event badges of f, e.g. "[Ekadashi]".
func styledBadges(f lunar.Facts) string {
	badges := almanac.Badges(f)
	parts := make([]string, len(badges))
	for i, b := range badges {
		var style display.Style
		switch b {
		case almanac.FullMoon.String():
			style = display.StyleFullMoon
		case almanac.NewMoon.String():
			style = display.StyleNewMoon
		case almanac.Ekadashi.String():
			style = display.StyleEkadashi
		}
		parts[i] = display.Apply(style, "["+b+"]")
	}
	return strings.Join(parts, " ")
}

// padRight pads a string to the given width with spaces.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
