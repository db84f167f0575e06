package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const maxIntentLength = 60

// FormatTable writes entries as a formatted table to the provided writer.
// Returns the number of entries formatted.
func FormatTable(w io.Writer, list []Entry) int {
	if len(list) == 0 {
		fmt.Fprintln(w, "No patterns found")
		return 0
	}

	fmt.Fprintf(w, "%-18s %-12s %-8s %s\n", "NAME", "CATEGORY", "COMMAND", "INTENT")
	fmt.Fprintf(w, "%-18s %-12s %-8s %s\n",
		"------------------", "------------", "--------", strings.Repeat("-", maxIntentLength))

	for _, e := range list {
		fmt.Fprintf(w, "%-18s %-12s %-8s %s\n", e.Name, e.Category, e.Command, truncate(e.Intent, maxIntentLength))
	}

	noun := "pattern"
	if len(list) != 1 {
		noun = "patterns"
	}
	fmt.Fprintf(w, "\n%d %s\n", len(list), noun)

	return len(list)
}

// FormatJSONL writes entries as line-delimited JSON to the provided writer.
func FormatJSONL(w io.Writer, list []Entry) error {
	for _, e := range list {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal pattern to JSON: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}
	return nil
}

// FormatDetail writes a single entry with its full intent.
func FormatDetail(w io.Writer, e Entry) {
	fmt.Fprintf(w, "%s (%s)\n\n", e.Name, e.Category)
	fmt.Fprintf(w, "  Intent:  %s\n", e.Intent)
	fmt.Fprintf(w, "  Package: %s\n", e.Package)
	fmt.Fprintf(w, "  Try:     patterns %s\n", e.Command)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
