package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"monkey/colors"
	"monkey/internal/config"
	"monkey/internal/logs"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X monkey/internal/cli.Version=...".
var Version = "0.1.0"

// app carries state shared by every command of one invocation.
type app struct {
	cfgFile  string
	envFile  string
	logLevel string
	noColor  bool

	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
}

// NewRootCmd builds the monkey command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "monkey",
		Short: "Front-end tools for the Monkey language",
		Long: `monkey tokenizes and parses Monkey source code.

Without a subcommand it starts the interactive REPL.

Examples:
  monkey
  monkey parse main.mk lib.mk
  monkey parse -e "let add = fn(a, b) { a + b };" --format yaml
  monkey tokens -e "x != 10"`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runREPL(cmd.Context(), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./monkey.toml)")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotenv file loaded before reading MONKEY_* variables")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newREPLCmd(a),
		newParseCmd(a),
		newTokensCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command tree against os.Args.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		colors.RED.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// setup loads configuration, applies global flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile, a.envFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logs.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logs.SetLevel(level)
	colors.SetEnabled(cfg.Color)

	logger, closer, err := logs.New(cmd.ErrOrStderr(), cfg.LogFile)
	if err != nil {
		return err
	}

	a.cfg, a.logger, a.closer = cfg, logger, closer
	a.logger.Debug("configuration loaded", "mode", cfg.Mode, "format", cfg.Format, "log_file", cfg.LogFile)
	return nil
}

func (a *app) teardown() error {
	if a.closer == nil {
		return nil
	}
	if err := a.closer.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// version needs no configuration
		PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return nil },
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "monkey version %s\n", Version)
		},
	}
}
