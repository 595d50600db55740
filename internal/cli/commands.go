package cli

import (
	"fmt"
	"strings"

	"github.com/smokyabdulrahman/lunar-almanac/internal/config"
	"github.com/smokyabdulrahman/lunar-almanac/internal/display"
	"github.com/smokyabdulrahman/lunar-almanac/internal/lunar"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or modify configuration",
		Long:  "Display current configuration, or use subcommands to modify it.\nWhen run without subcommands, shows the current configuration.",
		RunE:  runConfigShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Long: fmt.Sprintf("Set a configuration value. Valid keys: %s\n\nExamples:\n  lunar-almanac config set week_start monday\n  lunar-almanac config set glyphs ascii\n  lunar-almanac config set output json\n  lunar-almanac config set days 30\n  lunar-almanac config set format '{{.Glyph}} {{.Tithi}}'",
			strings.Join(config.ValidKeys, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset config to defaults",
		Long:  "Delete the config file and restore all settings to defaults.",
		RunE:  runConfigReset,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print config file path",
		RunE:  runConfigPath,
	})

	return cmd
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  Configuration (%s)\n\n", path)

	defaults := config.Defaults()
	for _, key := range config.ValidKeys {
		val, _ := cfg.Get(key)
		shown := val
		if shown == "" {
			def, _ := defaults.Get(key)
			shown = display.Dim(fmt.Sprintf("(not set, default: %s)", def))
		}
		fmt.Fprintf(w, "  %-12s %s\n", key, shown)
	}
	return nil
}

// runConfigSet sets a config key to the given value.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	stored, _ := cfg.Get(key)
	logger.Debug().Str("key", key).Str("value", stored).Msg("config saved")
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, stored)
	return nil
}

// runConfigReset deletes the config file.
func runConfigReset(cmd *cobra.Command, args []string) error {
	if err := config.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults.")
	return nil
}

// runConfigPath prints the config file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// tithiRow is one entry of the tithi table.
type tithiRow struct {
	Number   int    `json:"number" yaml:"number"`
	Paksha   string `json:"paksha" yaml:"paksha"`
	Name     string `json:"name" yaml:"name"`
	Ekadashi bool   `json:"ekadashi" yaml:"ekadashi"`
}

// tithiTable lists the thirty tithis of a lunar month in order, Shukla
// first. Each entry is computed by the engine at the middle of its tithi.
func tithiTable() []tithiRow {
	rows := make([]tithiRow, 0, 2*len(lunar.TithiNames))
	for half := 0; half < 2; half++ {
		for i := range lunar.TithiNames {
			f := lunar.FromAge(float64(half*len(lunar.TithiNames)+i) + 0.5)
			rows = append(rows, tithiRow{
				Number:   f.TithiNumber(),
				Paksha:   f.Paksha.String(),
				Name:     f.TithiName,
				Ekadashi: f.IsEkadashi,
			})
		}
	}
	return rows
}

func newTithisCmd() *cobra.Command {
	var paksha string

	cmd := &cobra.Command{
		Use:   "tithis",
		Short: "List the thirty tithis of the lunar month",
		Long:  "Print the table of tithis: fifteen in Shukla (waxing) paksha, fifteen in Krishna (waning) paksha.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}

			rows := tithiTable()
			if paksha != "" {
				p, err := lunar.ParsePaksha(paksha)
				if err != nil {
					return err
				}
				filtered := rows[:0]
				for _, r := range rows {
					if r.Paksha == p.String() {
						filtered = append(filtered, r)
					}
				}
				rows = filtered
			}

			if s.structured() {
				return writeStructured(cmd.OutOrStdout(), s.Output, rows)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Tithis of the lunar month:")
			fmt.Fprintln(w)
			tbl := display.NewTable([]string{"#", "Paksha", "Tithi"})
			for i, r := range rows {
				tbl.AddRow([]string{fmt.Sprintf("%d", r.Number), r.Paksha, r.Name})
				if r.Ekadashi {
					tbl.SetRowStyle(i, display.Magenta)
				}
			}
			fmt.Fprint(w, tbl.Render())
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Ekadashi, the eleventh tithi of each paksha, is highlighted.")
			return nil
		},
	}

	cmd.Flags().StringVar(&paksha, "paksha", "", "Only show one paksha: shukla or krishna")

	return cmd
}
