// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/ado-pipeline-doc/pkg/types"
)

func TestBuildRows(t *testing.T) {
	tests := []struct {
		name      string
		specs     []types.ParameterSpec
		wantRows  []types.RowRecord
		wantUsage types.ColumnUsage
		wantKind  types.Kind
	}{
		{
			name: "parameter without default is required",
			specs: []types.ParameterSpec{
				{Name: "environment", Type: "string"},
			},
			wantRows: []types.RowRecord{
				{Required: "Yes", Name: "environment", Type: "string"},
			},
		},
		{
			name: "parameter with default is not required",
			specs: []types.ParameterSpec{
				{Name: "replicas", Type: "number", Default: 3},
			},
			wantRows: []types.RowRecord{
				{Required: "", Name: "replicas", Type: "number", Default: "3"},
			},
			wantUsage: types.ColumnUsage{Default: true},
		},
		{
			name: "display name marks its column used",
			specs: []types.ParameterSpec{
				{Name: "environment", Type: "string", DisplayName: "Target environment"},
			},
			wantRows: []types.RowRecord{
				{Required: "Yes", Name: "environment", Type: "string", DisplayName: "Target environment"},
			},
			wantUsage: types.ColumnUsage{DisplayName: true},
		},
		{
			name: "values list is pretty-printed on one line",
			specs: []types.ParameterSpec{
				{Name: "environment", Type: "string", Values: []any{"dev", "staging", "prod"}},
			},
			wantRows: []types.RowRecord{
				{Required: "Yes", Name: "environment", Type: "string", Values: "- dev<br/>- staging<br/>- prod"},
			},
			wantUsage: types.ColumnUsage{Values: true},
		},
		{
			name: "object default is pretty-printed",
			specs: []types.ParameterSpec{
				{Name: "resources", Type: "object", Default: map[string]any{"cpu": 2, "memory": "4Gi"}},
			},
			wantRows: []types.RowRecord{
				{Required: "", Name: "resources", Type: "object", Default: "cpu: 2<br/>memory: 4Gi"},
			},
			wantUsage: types.ColumnUsage{Default: true},
		},
		{
			name: "non-object default keeps its plain form",
			specs: []types.ParameterSpec{
				{Name: "verbose", Type: "boolean", Default: true},
			},
			wantRows: []types.RowRecord{
				{Required: "", Name: "verbose", Type: "boolean", Default: "true"},
			},
			wantUsage: types.ColumnUsage{Default: true},
		},
		{
			name: "falsy defaults stay required but keep their cell value",
			specs: []types.ParameterSpec{
				{Name: "dryRun", Type: "boolean", Default: false},
				{Name: "retries", Type: "number", Default: 0},
				{Name: "suffix", Type: "string", Default: ""},
				{Name: "extras", Type: "object", Default: map[string]any{}},
			},
			wantRows: []types.RowRecord{
				{Required: "Yes", Name: "dryRun", Type: "boolean", Default: "false"},
				{Required: "Yes", Name: "retries", Type: "number", Default: "0"},
				{Required: "Yes", Name: "suffix", Type: "string", Default: ""},
				{Required: "Yes", Name: "extras", Type: "object", Default: "{}"},
			},
		},
		{
			name: "empty values list does not mark the column",
			specs: []types.ParameterSpec{
				{Name: "environment", Type: "string", Values: []any{}},
			},
			wantRows: []types.RowRecord{
				{Required: "Yes", Name: "environment", Type: "string", Values: "[]"},
			},
		},
		{
			name: "input order is preserved",
			specs: []types.ParameterSpec{
				{Name: "zeta", Type: "string"},
				{Name: "alpha", Type: "string"},
				{Name: "mid", Type: "string"},
			},
			wantRows: []types.RowRecord{
				{Required: "Yes", Name: "zeta", Type: "string"},
				{Required: "Yes", Name: "alpha", Type: "string"},
				{Required: "Yes", Name: "mid", Type: "string"},
			},
		},
		{
			name: "missing name aborts the build",
			specs: []types.ParameterSpec{
				{Name: "ok", Type: "string"},
				{Type: "string"},
			},
			wantKind: types.KindMissingRequiredField,
		},
		{
			name: "missing type aborts the build",
			specs: []types.ParameterSpec{
				{Name: "broken"},
			},
			wantKind: types.KindMissingRequiredField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, usage, err := BuildRows(tt.specs, types.DefaultIndent)

			if tt.wantKind != types.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, types.KindOf(err), "error: %v", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, rows)
			assert.Equal(t, tt.wantUsage, usage)
		})
	}
}

func TestBuildRowsNestedObjectDefault(t *testing.T) {
	specs := []types.ParameterSpec{
		{
			Name: "resources",
			Type: "object",
			Default: map[string]any{
				"limits": map[string]any{"cpu": 2},
			},
		},
	}

	rows, usage, err := BuildRows(specs, 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "limits:<br/>  cpu: 2", rows[0].Default)
	assert.True(t, usage.Default)
}

func TestFalsyDefaultRendersWhenColumnSurvives(t *testing.T) {
	specs := []types.ParameterSpec{
		{Name: "retries", Type: "number", Default: 0},
		{Name: "replicas", Type: "number", Default: 3},
	}

	rows, usage, err := BuildRows(specs, types.DefaultIndent)
	require.NoError(t, err)
	require.True(t, usage.Default, "the non-empty default keeps the column alive")

	lines := Render(rows, usage)
	assert.Contains(t, lines, "| Yes | retries | number | 0 |")
	assert.Contains(t, lines, "|  | replicas | number | 3 |")
}

func TestBuildRowsValuesNeverEmbedRawNewlines(t *testing.T) {
	specs := []types.ParameterSpec{
		{Name: "env", Type: "string", Values: []any{"dev", "prod"}},
		{Name: "cfg", Type: "object", Values: map[string]any{"a": 1, "b": []any{"x", "y"}}},
	}

	rows, _, err := BuildRows(specs, types.DefaultIndent)
	require.NoError(t, err)

	for _, row := range rows {
		assert.NotContains(t, row.Values, "\n", "cell for %s must be a single line", row.Name)
		assert.True(t, strings.Contains(row.Values, "<br/>"), "multi-line source for %s should carry break markers", row.Name)
	}
}
