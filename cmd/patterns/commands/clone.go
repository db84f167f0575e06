package commands

import (
	"encoding/json"
	"fmt"

	"github.com/dyluth/patterns/internal/config"
	"github.com/dyluth/patterns/internal/printer"
	"github.com/dyluth/patterns/pkg/prototype"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cloneVariant     string
	cloneIntValue    int
	cloneStringValue string
	cloneBoolValue   bool
	cloneDepth       int
	cloneJSON        bool
)

var cloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone a prototype and compare the copy with its source",
	Long: `Build a prototype from patterns.yml, apply any flag overrides, and clone it.

With --depth greater than 1 the clone is itself cloned repeatedly, and the
final copy is compared with the original source.

Equality follows the base contract: only the int and string fields take part.
"identical" additionally compares the variant and every extended field.

Examples:
  # Clone the configured prototype
  patterns clone

  # Clone an extended prototype with custom values
  patterns clone --variant extended --int 2 --string Value2

  # Clone of a clone of a clone, as JSON
  patterns clone --depth 3 --json`,
	Args: cobra.NoArgs,
	RunE: runClone,
}

func init() {
	cloneCmd.Flags().StringVar(&cloneVariant, "variant", "", "Prototype variant: base or extended (default from config)")
	cloneCmd.Flags().IntVar(&cloneIntValue, "int", prototype.DefaultIntValue, "Int field of the source")
	cloneCmd.Flags().StringVar(&cloneStringValue, "string", prototype.DefaultStringValue, "String field of the source")
	cloneCmd.Flags().BoolVar(&cloneBoolValue, "bool", prototype.DefaultBoolValue, "Bool field of the source (extended only)")
	cloneCmd.Flags().IntVar(&cloneDepth, "depth", 1, "Number of successive clones to make")
	cloneCmd.Flags().BoolVar(&cloneJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(cloneCmd)
}

// cloneResult is the JSON shape printed by --json
type cloneResult struct {
	Source    prototype.State `json:"source"`
	Clone     prototype.State `json:"clone"`
	Depth     int             `json:"depth"`
	Equal     bool            `json:"equal"`
	Identical bool            `json:"identical"`
}

func runClone(cmd *cobra.Command, args []string) error {
	if cloneDepth < 1 {
		return printer.Error(
			"invalid depth",
			fmt.Sprintf("Depth must be at least 1, got %d", cloneDepth),
			[]string{"Use --depth 1 for a single clone"},
		)
	}

	protoCfg := sourceConfig(cmd)
	if err := protoCfg.Validate(); err != nil {
		return printer.ErrorWithContext(
			"invalid prototype",
			err.Error(),
			map[string]string{"Variant": protoCfg.Variant},
			[]string{
				fmt.Sprintf("Choose one of the registered variants: %v", prototype.Variants()),
				"Only the extended variant accepts --bool",
			},
		)
	}

	source, err := protoCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build prototype: %w", err)
	}

	clone := source.Copy()
	for i := 1; i < cloneDepth; i++ {
		clone = clone.Copy()
	}

	result := cloneResult{
		Source:    source.State(),
		Clone:     clone.State(),
		Depth:     cloneDepth,
		Equal:     clone.Equal(source),
		Identical: prototype.Identical(clone, source),
	}

	logger.Info("prototype cloned",
		zap.String("variant", string(source.Variant())),
		zap.Int("depth", cloneDepth),
		zap.Bool("equal", result.Equal))

	if cloneJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result to JSON: %w", err)
		}
		printer.Println(string(data))
		return nil
	}

	printState("Source", result.Source)
	printer.Println()
	printState(fmt.Sprintf("Clone (depth %d)", result.Depth), result.Clone)
	printer.Println()

	if result.Equal {
		printer.Success("Prototype is equal to the copied object\n")
	} else {
		printer.Warning("Prototype differs from the copied object\n")
	}
	if result.Identical {
		printer.Success("Variant and all fields match\n")
	} else {
		printer.Warning("Copy is equal but not identical\n")
	}
	return nil
}

// sourceConfig merges the configured prototype with any flags set on cmd
func sourceConfig(cmd *cobra.Command) *config.PrototypeConfig {
	base := cfg.Prototype
	out := &config.PrototypeConfig{
		Variant:     base.Variant,
		IntValue:    base.IntValue,
		StringValue: base.StringValue,
		BoolValue:   base.BoolValue,
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		out.Variant = cloneVariant
		if !flags.Changed("bool") {
			// Re-derived from the new variant during validation
			out.BoolValue = nil
		}
	}
	if flags.Changed("int") {
		v := cloneIntValue
		out.IntValue = &v
	}
	if flags.Changed("string") {
		s := cloneStringValue
		out.StringValue = &s
	}
	if flags.Changed("bool") {
		b := cloneBoolValue
		out.BoolValue = &b
	}
	return out
}

func printState(title string, s prototype.State) {
	printer.Heading(title)
	printer.Field("variant", 7, s.Variant)
	printer.Field("int", 7, s.IntValue)
	printer.Field("string", 7, fmt.Sprintf("%q", s.StringValue))
	if s.BoolValue != nil {
		printer.Field("bool", 7, *s.BoolValue)
	}
}
