package commands

import (
	"github.com/dyluth/patterns/internal/printer"
	"github.com/dyluth/patterns/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	forceInit bool
	initDir   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default patterns.yml",
	Long: `Write a default patterns.yml configuration.

Use --force to replace an existing patterns.yml (WARNING: destroys existing configuration).`,
	Args: cobra.NoArgs,
	// init must work even when the existing patterns.yml is broken
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		printer.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		return nil
	},
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Force reinitialization (replaces existing patterns.yml)")
	initCmd.Flags().StringVarP(&initDir, "dir", "d", ".", "Directory to initialize")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := scaffold.Initialize(initDir, forceInit); err != nil {
		return printer.Error(
			"initialization failed",
			err.Error(),
			nil,
		)
	}

	scaffold.PrintSuccess()
	if initDir != "." {
		printer.Info("\nWritten to: %s\n", initDir)
	}
	return nil
}
