package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wolverin0/crystal-fork-sub001/internal/theme"
)

// header renders tabwriter column titles. Cells are styled one by one
// since lipgloss expands tabs.
func header(columns ...string) string {
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = theme.HeaderStyle.Render(c)
	}
	return strings.Join(cells, "\t")
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
