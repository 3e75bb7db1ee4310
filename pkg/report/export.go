package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// WriteJSON writes the report as an indented JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report %s: %w", r.ID, err)
	}
	return nil
}

// WriteCSV writes one row per timed call: index, seconds, args, output.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "seconds", "args", "output"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range r.Entries {
		row := []string{
			fmt.Sprintf("%d", e.Index),
			fmt.Sprintf("%.6f", e.Seconds),
			formatArgs(e.Args),
			formatValue(e.Output),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %d: %w", e.Index, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// RenderTable renders the report as a human-readable table.
func (r *Report) RenderTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Seconds", "Args", "Output")

	for _, e := range r.Entries {
		table.Append(
			fmt.Sprintf("%d", e.Index),
			fmt.Sprintf("%.4f", e.Seconds),
			formatArgs(e.Args),
			formatValue(e.Output),
		)
	}
	table.Render()

	fmt.Fprintf(w, "\n%d calls, %.4f seconds total\n", len(r.Entries), r.TotalSeconds)
}

func formatArgs(args []any) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = formatValue(a)
	}
	return strings.Join(parts, ", ")
}

func formatValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
