// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package params loads an Azure DevOps pipeline YAML file and extracts its
// parameters list.
package params

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ado-pipeline-doc/pkg/types"
)

// pipelineDoc is the slice of the pipeline schema this tool cares about.
// Everything else in the file (stages, jobs, triggers, ...) is ignored.
type pipelineDoc struct {
	Parameters []types.ParameterSpec `yaml:"parameters"`
}

// Load reads the pipeline YAML at path and returns its parameter list in
// source order. Failures are tagged with the matching taxonomy kind so the
// caller can report them without inspecting message text.
func Load(path string) ([]types.ParameterSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, types.WrapError(types.KindConfigNotFound,
				fmt.Sprintf("the file %s was not found", path), err)
		case errors.Is(err, fs.ErrPermission):
			return nil, types.WrapError(types.KindAccessDenied,
				fmt.Sprintf("permission denied for file %s", path), err)
		default:
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	// Decode into a generic mapping first: a null document and a document
	// without parameters are distinct failure modes.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, types.WrapError(types.KindMalformedConfig,
			fmt.Sprintf("error parsing YAML file %s", path), err)
	}
	if raw == nil {
		return nil, types.NewError(types.KindEmptyConfig,
			fmt.Sprintf("YAML file %s is empty or contains null data", path))
	}

	var doc pipelineDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, types.WrapError(types.KindMalformedConfig,
			fmt.Sprintf("error parsing YAML file %s", path), err)
	}
	if len(doc.Parameters) == 0 {
		return nil, types.NewError(types.KindNoParameters,
			fmt.Sprintf("YAML file %s has no parameters", path))
	}

	return doc.Parameters, nil
}
