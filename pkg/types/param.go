// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the domain types shared by the pipeline stages:
// parameter specs as parsed from the pipeline YAML, the derived table
// rows, and the error taxonomy.
package types

// Azure DevOps parameter data types. Pipelines cannot enforce an object's
// structure, so Object defaults are rendered as pretty-printed YAML.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
)

// ParameterSpec is one entry of the pipeline's parameters list, as parsed
// from the source YAML. Name and Type are required; the rest is optional
// metadata. Unknown keys on a parameter record are ignored. A spec is
// read-only input to the row builder.
type ParameterSpec struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	DisplayName string `yaml:"displayName"`
	Default     any    `yaml:"default"`
	Values      any    `yaml:"values"`
}

// RowRecord is the projection of one ParameterSpec into the documentation
// columns. All cells are already stringified; Values and Default may hold
// pretty-printed YAML with line breaks replaced by <br/>.
type RowRecord struct {
	Required    string
	Name        string
	Type        string
	DisplayName string
	Values      string
	Default     string
}

// ColumnUsage records which optional columns are populated by at least one
// row. It is computed once over the full parameter list; the renderer drops
// unused columns uniformly across header and rows.
type ColumnUsage struct {
	DisplayName bool
	Values      bool
	Default     bool
}
