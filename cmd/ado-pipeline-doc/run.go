// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"

	"github.com/pdiddy/ado-pipeline-doc/internal/merge"
	"github.com/pdiddy/ado-pipeline-doc/internal/params"
	"github.com/pdiddy/ado-pipeline-doc/internal/table"
	"github.com/pdiddy/ado-pipeline-doc/pkg/types"
)

// run executes the whole pipeline: load parameters, build rows, render the
// table, then print or merge. Any failure aborts before the target document
// is touched.
func run(yamlFile string, cfg types.DocConfig, stdout io.Writer) error {
	specs, err := params.Load(yamlFile)
	if err != nil {
		return err
	}

	rows, usage, err := table.BuildRows(specs, cfg.Indent)
	if err != nil {
		return err
	}

	lines := table.Render(rows, usage)

	if cfg.MarkdownFile == "" {
		return merge.Print(stdout, lines)
	}
	return merge.Merge(cfg.MarkdownFile, lines)
}
