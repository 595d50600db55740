package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/smokyabdulrahman/lunar-almanac/internal/almanac"
	"github.com/smokyabdulrahman/lunar-almanac/internal/calendar"
	"github.com/smokyabdulrahman/lunar-almanac/internal/config"
	"github.com/smokyabdulrahman/lunar-almanac/internal/display"
	"github.com/smokyabdulrahman/lunar-almanac/internal/lunar"
	"github.com/spf13/cobra"
)

// pakshaDays is the length of the fortnight view.
const pakshaDays = 15

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [days]",
		Short: "Show lunar details for consecutive days",
		Long:  "Display a table of consecutive days starting at --date (or today).\nThe default length comes from the days config key (default: 7).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, 0)
		},
	}
}

func newWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show lunar details for the next 7 days",
		Long:  "Alias for 'list 7'.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, 7)
		},
	}
}

func newFortnightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fortnight",
		Short: "Show lunar details for the next 15 days",
		Long:  "Alias for 'list 15': one paksha worth of days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, pakshaDays)
		},
	}
}

// listView is the structured output for the list command.
type listView struct {
	Start string    `json:"start" yaml:"start"`
	Days  []dayView `json:"days" yaml:"days"`
}

// runList is the handler for the list subcommand. A fixedDays > 0
// overrides both the argument and the configured length.
func runList(cmd *cobra.Command, args []string, fixedDays int) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	days := s.Days
	switch {
	case fixedDays > 0:
		days = fixedDays
	case len(args) > 0:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < config.MinDays || n > config.MaxDays {
			return fmt.Errorf("invalid number of days: %q (must be between %d and %d)", args[0], config.MinDays, config.MaxDays)
		}
		days = n
	}

	facts := currentAlmanac().Range(s.Date, days)

	if s.structured() {
		return writeStructured(cmd.OutOrStdout(), s.Output, listView{
			Start: s.Date.String(),
			Days:  newDayViews(facts, s.Glyphs),
		})
	}

	printListRich(cmd.OutOrStdout(), facts, s, fmt.Sprintf("Lunar Almanac · %d Days", days))
	return nil
}

// printListRich renders facts as a table with highlighted event rows.
func printListRich(w io.Writer, facts []lunar.Facts, s settings, title string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Bold(title))
	fmt.Fprintln(w)

	fmt.Fprint(w, factsTable(facts, s.Glyphs, s.Today).Render())
	fmt.Fprintln(w)
}

// factsTable builds the day table shared by list and next.
func factsTable(facts []lunar.Facts, glyphs almanac.GlyphSet, today calendar.Date) *display.Table {
	tbl := display.NewTable([]string{"Date", "Moon", "Tithi", "Phase", "Age", "Lit"})

	for i, f := range facts {
		tbl.AddRow([]string{
			f.Date.Format("Mon 02 Jan 2006"),
			almanac.Glyph(f, glyphs),
			f.DisplayTitle,
			f.Phase.String(),
			almanac.FormatAgeDays(f.Age),
			almanac.FormatPercent(f.Illumination),
		})

		if style := highlightStyle(f); style != 0 {
			tbl.SetRowStyle(i, func(text string) string { return display.Apply(style, text) })
		}

		// Highlight today's row.
		if f.Date.Equal(today) {
			tbl.SetHighlightRow(i)
		}
	}

	return tbl
}
