package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/smokyabdulrahman/lunar-almanac/internal/almanac"
	"github.com/smokyabdulrahman/lunar-almanac/internal/cache"
	"github.com/smokyabdulrahman/lunar-almanac/internal/calendar"
	"github.com/smokyabdulrahman/lunar-almanac/internal/config"
	"github.com/smokyabdulrahman/lunar-almanac/internal/logging"
	flag "github.com/spf13/pflag"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v1.0.0"
var version = "dev"

// formatDescriptions documents the built-in status-line formats.
var formatDescriptions = []struct {
	Name    string
	Example string
}{
	{almanac.FormatGlyph, "🌔"},
	{almanac.FormatTitle, "Shukla Ashtami"},
	{almanac.FormatTithi, "Shukla Ashtami"},
	{almanac.FormatGlyphAndTitle, "🌔 Shukla Ashtami"},
	{almanac.FormatAge, "7.4d"},
	{almanac.FormatIllumination, "50%"},
	{almanac.FormatGlyphAndIllum, "🌔 50%"},
	{almanac.FormatFull, "🌔 Shukla Ashtami (50%)"},
}

// options holds the parsed command-line flags.
type options struct {
	Date    string
	Format  string
	Glyphs  string
	Verbose bool
}

func main() {
	var opts options
	flag.StringVar(&opts.Date, "date", "", "Date to show as YYYY-MM-DD (default: today)")
	flag.StringVar(&opts.Format, "format", "", "Display format: "+strings.Join(almanac.Formats, ", ")+", or a custom Go template (e.g. '{{.Glyph}} {{.Tithi}}'). Template fields: .Date, .Glyph, .Title, .Tithi, .TithiName, .Paksha, .Phase, .Age, .Illumination, .Number, .Ekadashi, .FullMoon, .NewMoon")
	flag.StringVar(&opts.Glyphs, "glyphs", "", "Moon glyphs: emoji or ascii (default: from config, else emoji)")
	flag.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log debug information to stderr")
	showVersion := flag.Bool("version", false, "Print version and exit")
	listFormats := flag.Bool("list-formats", false, "Print supported display formats and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("tmux-lunar %s\n", version)
		return
	}

	if *listFormats {
		printFormats(os.Stdout)
		return
	}

	logger := logging.Init(opts.Verbose)
	if err := run(os.Stdout, opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// printFormats prints the table of built-in display formats.
func printFormats(w io.Writer) {
	fmt.Fprintln(w, "Supported display formats:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-24s %s\n", "Format", "Example")
	fmt.Fprintf(w, "  %-24s %s\n", "──────", "───────")
	for _, f := range formatDescriptions {
		fmt.Fprintf(w, "  %-24s %s\n", f.Name, f.Example)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use --format <name> or a Go template such as '{{.Glyph}} {{.Title}}'.")
}

// run prints one status-line segment for the requested date. Flags win
// over the config file; an unreadable config is logged and ignored so the
// status bar keeps rendering.
func run(w io.Writer, opts options, logger zerolog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("ignoring config")
		cfg = &config.Config{}
	}

	date := calendar.Today()
	if opts.Date != "" {
		date, err = calendar.Parse(opts.Date)
		if err != nil {
			return err
		}
	}

	format := opts.Format
	if format == "" {
		format = cfg.Format
	}
	if format != "" {
		if err := config.ValidateFormat(format); err != nil {
			return err
		}
	}

	glyphName := opts.Glyphs
	if glyphName == "" {
		glyphName = cfg.Glyphs
	}
	glyphs := almanac.Emoji
	if glyphName != "" {
		glyphs, err = almanac.ParseGlyphSet(glyphName)
		if err != nil {
			return err
		}
	}

	f := almanac.New(cache.New(1)).Day(date)
	logger.Debug().
		Stringer("date", date).
		Str("format", format).
		Stringer("glyphs", glyphs).
		Float64("age", f.Age).
		Msg("rendering status")

	fmt.Fprint(w, almanac.FormatOutput(f, format, glyphs))
	return nil
}
