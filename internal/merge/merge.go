// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge persists rendered table lines: either to a writer as-is, or
// spliced into a markdown document between two marker lines. The splice is a
// plain three-way text split (prefix / marked span / suffix); the target is
// never parsed as markdown, so hand-written content around the markers is
// preserved byte for byte.
//
// The tool assumes it is the only writer of the target document during a
// run; the temp-file-then-rename step below guards against a crash mid-write,
// not against concurrent writers.
package merge

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/ado-pipeline-doc/pkg/types"
)

// Marker lines bracketing the generated region in a target document. These
// are a compatibility contract with previously written documents and must
// never change.
const (
	StartMarker = "<!-- ADOPipelineDoc Start -->"
	EndMarker   = "<!-- ADOPipelineDoc End -->"
)

// Print writes the table lines to w, newline-joined with a trailing newline.
// Console output carries no markers.
func Print(w io.Writer, lines []string) error {
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// Merge splices the marker-bracketed table block into the document at path.
//
// A missing target is created with just the block. An existing target must
// carry either both markers (the span from the start marker through the end
// of the end-marker line is replaced) or neither (the block is appended
// after the existing content). One marker without the other is an error:
// overwriting up to a guessed boundary could destroy hand-written content.
func Merge(path string, lines []string) error {
	block := strings.Join(wrap(lines), "\n")

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return writeAtomic(path, block+"\n")
		}
		if errors.Is(err, fs.ErrPermission) {
			return types.WrapError(types.KindAccessDenied,
				fmt.Sprintf("permission denied for file %s", path), err)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	merged, err := splice(string(content), block, path)
	if err != nil {
		return err
	}
	return writeAtomic(path, merged)
}

// splice performs the three-way split of existing content around the
// marker span.
func splice(content, block, path string) (string, error) {
	start := strings.Index(content, StartMarker)
	end := strings.Index(content, EndMarker)

	switch {
	case start == -1 && end >= 0:
		return "", types.NewError(types.KindDanglingEndMarker,
			fmt.Sprintf("no start marker found in %s", path))
	case start >= 0 && end == -1:
		return "", types.NewError(types.KindDanglingStartMarker,
			fmt.Sprintf("no end marker found in %s", path))
	case start == -1 && end == -1:
		return content + "\n" + block, nil
	default:
		return content[:start] + block + content[end+len(EndMarker):], nil
	}
}

// wrap brackets the table lines with the marker lines.
func wrap(lines []string) []string {
	wrapped := make([]string, 0, len(lines)+2)
	wrapped = append(wrapped, StartMarker)
	wrapped = append(wrapped, lines...)
	return append(wrapped, EndMarker)
}

// writeAtomic writes content to a temp file in the target's directory and
// renames it into place, so a crash mid-write never leaves a truncated
// document behind.
func writeAtomic(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return types.WrapError(types.KindAccessDenied,
				fmt.Sprintf("permission denied for file %s", path), err)
		}
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}

	_, werr := tmp.WriteString(content)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmp.Name())
		if werr == nil {
			werr = cerr
		}
		return fmt.Errorf("writing %s: %w", tmp.Name(), werr)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		if errors.Is(err, fs.ErrPermission) {
			return types.WrapError(types.KindAccessDenied,
				fmt.Sprintf("permission denied for file %s", path), err)
		}
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
