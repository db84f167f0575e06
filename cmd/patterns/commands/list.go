package commands

import (
	"fmt"

	"github.com/dyluth/patterns/internal/catalog"
	"github.com/dyluth/patterns/internal/filter"
	"github.com/dyluth/patterns/internal/printer"
	"github.com/spf13/cobra"
)

var (
	listOutputFormat string
	listName         string
	listCategory     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the implemented patterns",
	Long: `List every pattern in the catalogue.

Output Formats:
  default - Human-readable table
  jsonl   - Line-delimited JSON, one pattern per line

Filters:
  --name      - Filter by pattern name (glob pattern: "proto*", "*factory")
  --category  - Filter by category (creational, structural, behavioral)`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var showCmd = &cobra.Command{
	Use:   "show PATTERN",
	Short: "Describe one pattern",
	Long: `Describe one pattern from the catalogue.

PATTERN may be the full name or a unique prefix of at least 3 characters
(e.g., "proto" for prototype).`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	listCmd.Flags().StringVarP(&listOutputFormat, "output", "o", "default", "Output format: default or jsonl")
	listCmd.Flags().StringVar(&listName, "name", "", "Filter by pattern name (glob pattern)")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category (exact match)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	criteria := filter.Criteria{
		NameGlob: listName,
		Category: catalog.Category(listCategory),
	}
	entries := criteria.Apply(catalog.All())

	switch listOutputFormat {
	case "default":
		catalog.FormatTable(cmd.OutOrStdout(), entries)
		return nil
	case "jsonl":
		return catalog.FormatJSONL(cmd.OutOrStdout(), entries)
	default:
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", listOutputFormat),
			[]string{"Valid formats: default, jsonl"},
		)
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	entry, err := catalog.Resolve(args[0])
	if err != nil {
		switch {
		case catalog.IsAmbiguousError(err):
			return printer.Error(
				"ambiguous pattern name",
				catalog.FormatAmbiguousError(err.(*catalog.AmbiguousError)),
				nil,
			)
		case catalog.IsNotFoundError(err):
			return printer.Error(
				"pattern not found",
				err.Error(),
				[]string{"Run 'patterns list' to see every pattern"},
			)
		default:
			return printer.Error("invalid pattern name", err.Error(), nil)
		}
	}

	catalog.FormatDetail(cmd.OutOrStdout(), entry)
	return nil
}
