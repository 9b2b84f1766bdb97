package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tocmd/tocmd/internal/parser"
)

// Render builds the TOC block: the marker line followed by one nested
// ordered-list link per entry. The list marker is always "1." and indent
// is four spaces per level; markdown renderers number the list themselves.
func Render(entries []parser.TocEntry) string {
	var b strings.Builder
	b.WriteString(parser.TocMarker)
	b.WriteString("\n")
	for _, e := range entries {
		b.WriteString(strings.Repeat("    ", e.Level))
		fmt.Fprintf(&b, "1. [%s](#%s)\n", e.Title, e.Anchor)
	}
	return b.String()
}

// Assemble joins the rendered TOC and the rewritten body with one blank line
func Assemble(toc, body string) string {
	return toc + "\n" + body
}

// OutputName derives the destination path when none is given: the suffix
// goes before the last "." anywhere in the path, or at the end when the
// path has no dot at all
func OutputName(input, suffix string) string {
	if i := strings.LastIndex(input, "."); i != -1 {
		return input[:i] + suffix + input[i:]
	}
	return input + suffix
}

// WriteFile writes the document atomically: a temp file in the destination
// directory that is renamed into place, so a failed run never leaves a
// partial output file
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}
