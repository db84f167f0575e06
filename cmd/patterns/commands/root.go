package commands

import (
	"fmt"

	"github.com/dyluth/patterns/internal/config"
	"github.com/dyluth/patterns/internal/logging"
	"github.com/dyluth/patterns/internal/printer"
	"github.com/dyluth/patterns/pkg/prototype"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version string
	commit  string
	date    string

	configPath string
	verbose    bool

	// Populated by PersistentPreRunE for every subcommand
	cfg    *config.PatternsConfig
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Patterns - runnable catalogue of classic design patterns",
	Long: `Patterns is a small catalogue of classic object-oriented design patterns,
each implemented as an idiomatic Go package with a command that exercises it.

Implemented patterns:
  prototype         clone values without knowing their concrete variant
  abstract-factory  create families of related UI products`,
	Version: version,
	// Prevent silent success when unknown flags are passed to root command
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
	PersistentPreRunE:  setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to patterns.yml (optional unless set explicitly)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// setup loads configuration and installs the logger before any subcommand runs
func setup(cmd *cobra.Command, args []string) error {
	printer.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOrDefault(configPath)
	}
	if err != nil {
		return printer.ErrorWithContext(
			"invalid configuration",
			err.Error(),
			map[string]string{"Config": configPath},
			[]string{"Run 'patterns init --force' to write a fresh patterns.yml"},
		)
	}

	logger, err = logging.New(cfg.Logging.Level, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	prototype.SetLogger(logger.Named("prototype"))

	logger.Debug("configuration loaded",
		zap.String("path", configPath),
		zap.String("variant", cfg.Prototype.Variant),
		zap.String("platform", cfg.Factory.Platform))
	return nil
}
