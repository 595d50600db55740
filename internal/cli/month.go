package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/smokyabdulrahman/lunar-almanac/internal/almanac"
	"github.com/smokyabdulrahman/lunar-almanac/internal/calendar"
	"github.com/smokyabdulrahman/lunar-almanac/internal/display"
	"github.com/smokyabdulrahman/lunar-almanac/internal/lunar"
	"github.com/spf13/cobra"
)

// monthCellWidth fits a six-letter tithi abbreviation.
const monthCellWidth = 6

func newMonthCmd() *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show a month as a lunar calendar grid",
		Long: "Display a seven-column calendar of a month with the moon glyph and tithi\n" +
			"of every day. Full moons, new moons and Ekadashis are highlighted.\n" +
			"Defaults to the month of --date (or today); --offset moves by whole months.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonth(cmd, args, offset)
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Months to move from the selected month (e.g. -1 for previous, 1 for next)")

	return cmd
}

// monthView is the structured output for the month command.
type monthView struct {
	Month         string      `json:"month" yaml:"month"`
	Title         string      `json:"title" yaml:"title"`
	WeekStart     string      `json:"week_start" yaml:"week_start"`
	LeadingBlanks int         `json:"leading_blanks" yaml:"leading_blanks"`
	Days          []dayView   `json:"days" yaml:"days"`
	Events        []eventView `json:"events" yaml:"events"`
}

type eventView struct {
	Event string `json:"event" yaml:"event"`
	Date  string `json:"date" yaml:"date"`
	Title string `json:"title" yaml:"title"`
}

func runMonth(cmd *cobra.Command, args []string, offset int) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	m := s.Date.CalendarMonth()
	if len(args) > 0 {
		m, err = calendar.ParseMonth(args[0])
		if err != nil {
			return err
		}
	}
	m = m.Add(offset)

	facts := currentAlmanac().Month(m)
	events := almanac.Events(facts)
	logger.Debug().Stringer("month", m).Int("events", len(events)).Msg("month computed")

	if s.structured() {
		out := monthView{
			Month:         m.String(),
			Title:         m.Title(),
			WeekStart:     s.WeekStart.String(),
			LeadingBlanks: m.LeadingBlanks(s.WeekStart),
			Days:          newDayViews(facts, s.Glyphs),
			Events:        []eventView{},
		}
		for _, o := range events {
			out.Events = append(out.Events, eventView{
				Event: o.Event.String(),
				Date:  o.Facts.Date.String(),
				Title: o.Facts.DisplayTitle,
			})
		}
		return writeStructured(cmd.OutOrStdout(), s.Output, out)
	}

	printMonthRich(cmd.OutOrStdout(), m, facts, events, s)
	return nil
}

// printMonthRich renders the month grid, legend and event list.
func printMonthRich(w io.Writer, m calendar.Month, facts []lunar.Facts, events []almanac.Occurrence, s settings) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Bold(m.Title()))
	fmt.Fprintln(w)

	grid := display.NewGrid(calendar.WeekdayLabels(s.WeekStart), monthCellWidth)
	for i := 0; i < m.LeadingBlanks(s.WeekStart); i++ {
		grid.AddBlank()
	}
	for _, f := range facts {
		grid.AddCell(monthCell(f, s))
	}
	fmt.Fprint(w, grid.Render())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s\n", legend(s.Glyphs))

	if s.Explicit && m.Contains(s.Date) {
		f := facts[s.Date.Day()-1]
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s  %s  %s %s %s\n",
			display.Reverse(s.Date.Format("Mon 02")),
			almanac.Glyph(f, s.Glyphs),
			styleTitle(f, f.DisplayTitle),
			display.Gray("·"),
			display.Gray(fmt.Sprintf("%s, age %s days, %s lit",
				f.Phase, almanac.FormatAgeDays(f.Age), almanac.FormatPercent(f.Illumination))))
	}

	if len(events) > 0 {
		fmt.Fprintln(w)
		for _, o := range events {
			fmt.Fprintf(w, "  %s  %s\n",
				o.Facts.Date.Format("Mon 02"),
				display.Apply(highlightStyle(o.Facts), eventLabel(o)))
		}
	}
	fmt.Fprintln(w)
}

// monthCell builds the grid cell for one day: day number, glyph and a
// short tithi label.
func monthCell(f lunar.Facts, s settings) display.Cell {
	day := strconv.Itoa(f.Date.Day())
	if f.IsEkadashi {
		day += "*"
	}

	label := almanac.Abbrev(f.TithiName, monthCellWidth)
	switch {
	case f.IsNewMoon:
		label = "New"
	case f.IsFullMoon:
		label = "Full"
	}

	style := highlightStyle(f)
	if f.Date.Equal(s.Today) {
		style |= display.StyleToday
	}
	if s.Explicit && f.Date.Equal(s.Date) {
		style |= display.StyleSelected
	}

	return display.Cell{
		Lines: []string{day, almanac.Glyph(f, s.Glyphs), label},
		Style: style,
	}
}

// legend explains the glyphs and highlight colors.
func legend(glyphs almanac.GlyphSet) string {
	full := lunar.FromAge(15)
	newMoon := lunar.FromAge(0)
	return fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		almanac.Glyph(full, glyphs), display.Apply(display.StyleFullMoon, "Full Moon"),
		almanac.Glyph(newMoon, glyphs), display.Apply(display.StyleNewMoon, "New Moon"),
		almanac.Glyph(lunar.FromAge(7), glyphs)+"/"+almanac.Glyph(lunar.FromAge(22), glyphs), "Waxing/Waning",
		"*", display.Apply(display.StyleEkadashi, "Ekadashi"))
}

func eventLabel(o almanac.Occurrence) string {
	if o.Event == almanac.Ekadashi {
		return fmt.Sprintf("%s (%s)", o.Event, o.Facts.Paksha)
	}
	return o.Event.String()
}
