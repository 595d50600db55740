package cli

import (
	"fmt"
	"strings"

	"github.com/smokyabdulrahman/lunar-almanac/internal/almanac"
	"github.com/smokyabdulrahman/lunar-almanac/internal/display"
	"github.com/spf13/cobra"
)

// maxNextCount bounds --count; at two cycles per search it covers decades.
const maxNextCount = 100

func newNextCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "next <full|new|ekadashi>",
		Short: "Show upcoming full moons, new moons or Ekadashis",
		Long: "List the next occurrences of an event on or after --date (or today).\n\n" +
			"Valid events: " + strings.Join(almanac.EventNames, ", ") + " (also purnima, amavasya).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNext(cmd, args[0], count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, fmt.Sprintf("Number of occurrences to show (1-%d)", maxNextCount))

	return cmd
}

// nextView is the structured output for the next command.
type nextView struct {
	Event       string     `json:"event" yaml:"event"`
	From        string     `json:"from" yaml:"from"`
	Occurrences []nextItem `json:"occurrences" yaml:"occurrences"`
}

type nextItem struct {
	dayView `yaml:",inline"`
	InDays  int `json:"in_days" yaml:"in_days"`
}

func runNext(cmd *cobra.Command, name string, count int) error {
	ev, err := almanac.ParseEvent(name)
	if err != nil {
		return err
	}
	if count < 1 || count > maxNextCount {
		return fmt.Errorf("invalid --count %d: must be between 1 and %d", count, maxNextCount)
	}

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	found := currentAlmanac().Next(s.Date, ev, count)
	if len(found) == 0 {
		return fmt.Errorf("no %s found after %s", ev, s.Date)
	}
	if len(found) < count {
		logger.Warn().Int("requested", count).Int("found", len(found)).Msgf("fewer %s occurrences than requested", ev)
	}

	if s.structured() {
		out := nextView{Event: ev.String(), From: s.Date.String()}
		for _, f := range found {
			out.Occurrences = append(out.Occurrences, nextItem{
				dayView: newDayView(f, s.Glyphs),
				InDays:  f.Date.DaysSince(s.Date),
			})
		}
		return writeStructured(cmd.OutOrStdout(), s.Output, out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Boldf("Next %s", ev))
	fmt.Fprintln(w)

	for _, f := range found {
		in := f.Date.DaysSince(s.Date)
		when := display.Gray(fmt.Sprintf("in %d days", in))
		switch in {
		case 0:
			when = display.Green("today")
		case 1:
			when = display.Gray("tomorrow")
		}
		line := fmt.Sprintf("  %s  %-16s %s  %s",
			almanac.Glyph(f, s.Glyphs), f.Date.Format("Mon 02 Jan 2006"), padRight(f.DisplayTitle, 20), when)
		fmt.Fprintln(w, display.Apply(highlightStyle(f), line))
	}
	fmt.Fprintln(w)
	return nil
}
