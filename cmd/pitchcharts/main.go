// Command pitchcharts renders the built-in pitch charts to files, exports
// their datasets and serves them over HTTP.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/midbel/pitchcharts"
	"github.com/midbel/pitchcharts/internal/config"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "pitchcharts",
	Short:         "Render the responsive pitch charts",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		file, _ := cmd.Flags().GetString("config")
		if file != "" {
			cfg, err = config.LoadFromFile(file)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		logger = cfg.Logging.Logger(os.Stderr)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pitchcharts %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in charts",
	Run: func(cmd *cobra.Command, args []string) {
		for _, n := range charts.Names() {
			ch, _ := charts.Lookup(n)
			fmt.Printf("%-8s %s\n", ch.Name, ch.Caption)
		}
	},
}

// selectCharts returns the named charts, or every built-in chart when no
// name is given.
func selectCharts(names []string) ([]charts.Chart, error) {
	if len(names) == 0 {
		names = charts.Names()
	}
	var list []charts.Chart
	for _, n := range names {
		ch, err := charts.Lookup(n)
		if err != nil {
			return nil, err
		}
		list = append(list, ch)
	}
	return list, nil
}
