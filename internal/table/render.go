// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"strings"

	"github.com/pdiddy/ado-pipeline-doc/pkg/types"
)

// column is one table column: its header text, alignment separator, and the
// accessor into a row record.
type column struct {
	name      string
	separator string
	cell      func(types.RowRecord) string
}

// columns fixes the documentation column order. The required column is
// centered; everything else is left-aligned.
var columns = []column{
	{"required", ":-:", func(r types.RowRecord) string { return r.Required }},
	{"name", ":--", func(r types.RowRecord) string { return r.Name }},
	{"type", ":--", func(r types.RowRecord) string { return r.Type }},
	{"displayName", ":--", func(r types.RowRecord) string { return r.DisplayName }},
	{"values", ":--", func(r types.RowRecord) string { return r.Values }},
	{"default", ":--", func(r types.RowRecord) string { return r.Default }},
}

// Render produces the markdown table lines: header, alignment separator,
// one line per row. Optional columns unused across the whole parameter set
// are dropped from every line, so all rows keep an identical column set.
// Marker bracketing is the file sink's concern, not the renderer's.
func Render(rows []types.RowRecord, usage types.ColumnUsage) []string {
	cols := surviving(usage)

	header := make([]string, len(cols))
	separator := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.name
		separator[i] = c.separator
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, pipeRow(header), pipeRow(separator))

	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = c.cell(row)
		}
		lines = append(lines, pipeRow(cells))
	}

	return lines
}

// surviving filters the fixed column order down to the columns in use.
func surviving(usage types.ColumnUsage) []column {
	cols := make([]column, 0, len(columns))
	for _, c := range columns {
		switch c.name {
		case "displayName":
			if !usage.DisplayName {
				continue
			}
		case "values":
			if !usage.Values {
				continue
			}
		case "default":
			if !usage.Default {
				continue
			}
		}
		cols = append(cols, c)
	}
	return cols
}

func pipeRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
