package commands

import (
	"errors"
	"fmt"

	"github.com/dyluth/patterns/internal/printer"
	"github.com/dyluth/patterns/pkg/abstractfactory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	factoryPlatform string
	factoryTitle    string
	factoryMessage  string
)

var factoryCmd = &cobra.Command{
	Use:   "factory",
	Short: "Create an alert and its snapshot from one UI family",
	Long: `Select a UI factory for a platform, create an alert with it, and take a
snapshot of that alert with the same factory.

Snapshots are placeholders: no rendering or screen capture takes place.

Examples:
  # Use the platform from patterns.yml
  patterns factory

  # Desktop family with custom content
  patterns factory --platform desktop --title Saved --message "All changes saved"`,
	Args: cobra.NoArgs,
	RunE: runFactory,
}

func init() {
	factoryCmd.Flags().StringVarP(&factoryPlatform, "platform", "p", "", "UI family: mobile or desktop (default from config)")
	factoryCmd.Flags().StringVar(&factoryTitle, "title", "Hello", "Alert title")
	factoryCmd.Flags().StringVar(&factoryMessage, "message", "", "Alert message (default names the family)")

	rootCmd.AddCommand(factoryCmd)
}

func runFactory(cmd *cobra.Command, args []string) error {
	platform := abstractfactory.Platform(cfg.Factory.Platform)
	if cmd.Flags().Changed("platform") {
		platform = abstractfactory.Platform(factoryPlatform)
	}

	factory, err := abstractfactory.ForPlatform(platform)
	if err != nil {
		if errors.Is(err, abstractfactory.ErrUnknownPlatform) {
			return printer.Error(
				"unknown platform",
				fmt.Sprintf("No UI factory exists for platform '%s'", platform),
				[]string{"Use --platform mobile", "Use --platform desktop"},
			)
		}
		return err
	}

	message := factoryMessage
	if message == "" {
		message = fmt.Sprintf("This alert was built by the %s factory", factory.Platform())
	}

	printer.Step("Creating alert with the %s factory\n", factory.Platform())
	alert := factory.CreateAlert()
	alert.SetContent(factoryTitle, message)

	printer.Step("Taking snapshot\n")
	snap, err := factory.Snapshot(alert)
	if err != nil {
		return fmt.Errorf("failed to snapshot alert: %w", err)
	}

	logger.Info("alert created",
		zap.String("platform", string(factory.Platform())),
		zap.String("style", string(alert.Style())))

	printer.Println()
	printer.Heading("Alert")
	printer.Println(alert.ContentView())
	printer.Println()
	printer.Heading("Snapshot")
	printer.Field("platform", 8, snap.Platform)
	printer.Field("style", 8, snap.Style)
	printer.Field("title", 8, snap.Title)
	printer.Field("empty", 8, snap.Empty())
	return nil
}
