// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table turns pipeline parameter specs into markdown pipe-table
// lines: the builder projects each spec into a row and tracks which optional
// columns are in use, the renderer emits the final line sequence.
package table

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ado-pipeline-doc/pkg/types"
)

// lineBreak is the inline break marker substituted for newlines so a
// pretty-printed composite value fits in one table cell.
const lineBreak = "<br/>"

// BuildRows projects specs into row records, in input order, and reports
// which optional columns any row populates. indent is the YAML indent for
// pretty-printed cells; values <= 0 fall back to types.DefaultIndent.
//
// A parameter without a usable name or type aborts the whole build with
// KindMissingRequiredField: a partially documented parameter table is worse
// than none.
func BuildRows(specs []types.ParameterSpec, indent int) ([]types.RowRecord, types.ColumnUsage, error) {
	if indent <= 0 {
		indent = types.DefaultIndent
	}

	rows := make([]types.RowRecord, 0, len(specs))
	var usage types.ColumnUsage

	for i, spec := range specs {
		row, err := buildRow(spec, i, indent)
		if err != nil {
			return nil, types.ColumnUsage{}, err
		}

		if row.DisplayName != "" {
			usage.DisplayName = true
		}
		if !isEmpty(spec.Values) {
			usage.Values = true
		}
		if row.Required == "" {
			usage.Default = true
		}

		rows = append(rows, row)
	}

	return rows, usage, nil
}

// buildRow populates a single record from one spec. Each spec gets a fresh
// record; there is no shared template to mutate.
func buildRow(spec types.ParameterSpec, pos, indent int) (types.RowRecord, error) {
	if spec.Name == "" || spec.Type == "" {
		return types.RowRecord{}, types.NewError(types.KindMissingRequiredField,
			fmt.Sprintf("parameter %d (name %q) is missing 'name' or 'type'", pos, spec.Name))
	}

	row := types.RowRecord{
		Required:    "Yes",
		Name:        spec.Name,
		Type:        spec.Type,
		DisplayName: spec.DisplayName,
	}

	// A present default always fills the cell, but only a non-empty one
	// clears the required flag and keeps the default column alive.
	if spec.Default != nil {
		if !isEmpty(spec.Default) {
			row.Required = ""
		}
		if spec.Type == types.TypeObject {
			pretty, err := prettyCell(spec.Default, indent)
			if err != nil {
				return types.RowRecord{}, fmt.Errorf("rendering default of %s: %w", spec.Name, err)
			}
			row.Default = pretty
		} else {
			row.Default = fmt.Sprintf("%v", spec.Default)
		}
	}

	// Present values are always pretty-printed, even when empty; emptiness
	// only decides whether the column survives.
	if spec.Values != nil {
		pretty, err := prettyCell(spec.Values, indent)
		if err != nil {
			return types.RowRecord{}, fmt.Errorf("rendering values of %s: %w", spec.Name, err)
		}
		row.Values = pretty
	}

	return row, nil
}

// prettyCell serializes v back to YAML and collapses it to a single line
// suitable for a table cell.
func prettyCell(v any, indent int) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	pretty := strings.TrimSpace(buf.String())
	return strings.ReplaceAll(pretty, "\n", lineBreak), nil
}

// isEmpty reports whether an optional YAML value counts as empty for the
// required flag and column-usage tracking. A false boolean, a zero number,
// an empty string, and an empty sequence or mapping are all empty: such a
// parameter stays marked required even though its cell shows the value.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case string:
		return val == ""
	case bool:
		return !val
	case int:
		return val == 0
	case int64:
		return val == 0
	case uint64:
		return val == 0
	case float64:
		return val == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	}
	return false
}
