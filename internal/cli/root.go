package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/smokyabdulrahman/lunar-almanac/internal/almanac"
	"github.com/smokyabdulrahman/lunar-almanac/internal/cache"
	"github.com/smokyabdulrahman/lunar-almanac/internal/calendar"
	"github.com/smokyabdulrahman/lunar-almanac/internal/config"
	"github.com/smokyabdulrahman/lunar-almanac/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Global flags shared across all subcommands.
var (
	FlagDate      string
	FlagWeekStart string
	FlagGlyphs    string
	FlagJSON      bool
	FlagOutput    string
	FlagVerbose   bool
)

// loadedConfig holds the config loaded during PersistentPreRunE.
// Available to all subcommand handlers.
var loadedConfig *config.Config

// lunarAlmanac serves the facts for every command of one invocation.
var lunarAlmanac *almanac.Almanac

// logger writes diagnostics to the command's stderr.
var logger = zerolog.Nop()

// NewRootCmd creates the root command for the lunar-almanac CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lunar-almanac",
		Short: "Lunar tithi almanac CLI",
		Long: "A terminal almanac of the lunar cycle: moon age, phase, illumination,\n" +
			"paksha and tithi for any date, month grids and upcoming full moons,\n" +
			"new moons and Ekadashis.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = logging.New(cmd.ErrOrStderr(), FlagVerbose)

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			loadedConfig = cfg
			lunarAlmanac = almanac.New(cache.New(0))

			logger.Debug().Str("command", cmd.CommandPath()).Msg("config loaded")
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if lunarAlmanac == nil {
				return
			}
			s := lunarAlmanac.Stats()
			logger.Debug().Int("entries", s.Entries).Int("hits", s.Hits).Int("misses", s.Misses).Msg("cache stats")
		},
		// Default action: show the detail view for today or --date.
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Register global persistent flags.
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&FlagDate, "date", "", "Date to show as YYYY-MM-DD (default: today)")
	pf.StringVar(&FlagWeekStart, "week-start", "", "First day of the week: sunday or monday (overrides config)")
	pf.StringVar(&FlagGlyphs, "glyphs", "", "Moon glyphs: emoji or ascii (overrides config)")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON (shorthand for --output json)")
	pf.StringVarP(&FlagOutput, "output", "o", "", "Output format: text, json or yaml (overrides config)")
	pf.BoolVarP(&FlagVerbose, "verbose", "v", false, "Log debug information to stderr")

	// Register subcommands.
	rootCmd.AddCommand(newDayCmd())
	rootCmd.AddCommand(newMonthCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newWeekCmd())
	rootCmd.AddCommand(newFortnightCmd())
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newTithisCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// PrintVersion prints the version string in the expected format.
func PrintVersion(version string) string {
	return fmt.Sprintf("lunar-almanac %s\n", version)
}

// effectiveConfig returns the merged configuration values,
// applying the priority: CLI flags > config file > defaults.
// It uses cobra's Changed() to detect whether a flag was explicitly set.
func effectiveConfig(cmd *cobra.Command) *config.Config {
	merged := config.Config{}
	if loadedConfig != nil {
		merged = *loadedConfig
	}

	defaults := config.Defaults()

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	if flagWasSet(flags, root, "week-start") {
		merged.WeekStart = FlagWeekStart
	}
	if merged.WeekStart == "" {
		merged.WeekStart = defaults.WeekStart
	}

	if flagWasSet(flags, root, "glyphs") {
		merged.Glyphs = FlagGlyphs
	}
	if merged.Glyphs == "" {
		merged.Glyphs = defaults.Glyphs
	}

	// Output: --json > --output > config > default ("text").
	switch {
	case flagWasSet(flags, root, "json") && FlagJSON:
		merged.Output = "json"
	case flagWasSet(flags, root, "output"):
		merged.Output = FlagOutput
	}
	if merged.Output == "" {
		merged.Output = defaults.Output
	}

	if merged.Format == "" {
		merged.Format = defaults.Format
	}
	if merged.Days == nil {
		merged.Days = defaults.Days
	}

	return &merged
}

// flagWasSet checks if a flag was explicitly set on either the local or persistent flag set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}

// settings are the typed values every command works from.
type settings struct {
	Date      calendar.Date
	Today     calendar.Date
	Explicit  bool // the date came from --date
	WeekStart time.Weekday
	Glyphs    almanac.GlyphSet
	Output    string
	Format    string
	Days      int
}

// resolveSettings parses the merged configuration into typed settings.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	cfg := effectiveConfig(cmd)

	s := settings{
		Today:  calendar.Today(),
		Output: cfg.Output,
		Format: cfg.Format,
		Days:   cfg.DaysOrDefault(7),
	}
	s.Date = s.Today

	if FlagDate != "" {
		d, err := calendar.Parse(FlagDate)
		if err != nil {
			return settings{}, fmt.Errorf("invalid --date: %w", err)
		}
		s.Date = d
		s.Explicit = true
	}

	ws, err := calendar.ParseWeekday(cfg.WeekStart)
	if err != nil {
		return settings{}, fmt.Errorf("invalid week start: %w", err)
	}
	if ws != time.Sunday && ws != time.Monday {
		return settings{}, fmt.Errorf("invalid week start %q: must be sunday or monday", cfg.WeekStart)
	}
	s.WeekStart = ws

	g, err := almanac.ParseGlyphSet(cfg.Glyphs)
	if err != nil {
		return settings{}, err
	}
	s.Glyphs = g

	switch s.Output {
	case "text", "json", "yaml":
	default:
		return settings{}, fmt.Errorf("invalid output %q: must be text, json or yaml", s.Output)
	}

	logger.Debug().
		Stringer("date", s.Date).
		Stringer("week_start", s.WeekStart).
		Stringer("glyphs", s.Glyphs).
		Str("output", s.Output).
		Msg("settings resolved")

	return s, nil
}

// structured reports whether s selects a machine-readable output.
func (s settings) structured() bool {
	return s.Output == "json" || s.Output == "yaml"
}
