// Package cli provides the command-line interface for course-sidebar.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jh3/course-sidebar/internal/config"
)

// Version information (set at build time).
var Version = "0.1.0"

var cfgFile string

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "course-sidebar",
		Short: "Build the sidebar navigation for the JS Course site",
		Long: `course-sidebar assembles the sidebar tree of a Starlight course site and
writes it as JSON or YAML for the site's astro config to import.

Groups are either autogenerated from a content directory, listed by hand, or
generated as numbered sessions ("<category>/sesi1".."sesiN").`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default: ./course-sidebar.yaml or %s)", config.Path()))
	rootCmd.PersistentFlags().String("definition", "", "YAML sidebar definition (default: built-in JS Course)")
	rootCmd.PersistentFlags().String("content-dir", "", "Starlight content directory (default: "+config.DefaultContentDir+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newSessionsCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newPickCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// getConfig retrieves the config from the command context.
func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return config.DefaultConfig()
}

// getLogger retrieves the logger from the command context.
func getLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
