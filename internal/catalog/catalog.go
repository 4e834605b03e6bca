// Package catalog enumerates candidate matrix files in a directory and maps
// 1-based menu choices onto them.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrInvalidSelection is returned by Pick for choices outside 1..Len().
var ErrInvalidSelection = errors.New("catalog: invalid selection")

// Catalog is a sorted list of file names inside Dir.
type Catalog struct {
	Dir   string
	Files []string
}

// List returns the regular files in dir whose name ends in ext, sorted by
// name. Names in exclude are left out, which keeps the output file from being
// offered as an input.
func List(dir, ext string, exclude ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: list %s: %w", dir, err)
	}

	var out []string
	for _, ent := range entries {
		name := ent.Name()
		if !ent.Type().IsRegular() || !strings.HasSuffix(name, ext) {
			continue
		}
		if slices.Contains(exclude, name) {
			continue
		}
		out = append(out, name)
	}
	slices.Sort(out)

	return out, nil
}

// Load builds a Catalog for dir.
func Load(dir, ext string, exclude ...string) (*Catalog, error) {
	files, err := List(dir, ext, exclude...)
	if err != nil {
		return nil, err
	}

	return &Catalog{Dir: dir, Files: files}, nil
}

// Len returns the number of files.
func (c *Catalog) Len() int { return len(c.Files) }

// Pick returns the file name for a 1-based choice.
func (c *Catalog) Pick(choice int) (string, error) {
	if choice < 1 || choice > len(c.Files) {
		return "", fmt.Errorf("%w: %d (choose 1..%d)", ErrInvalidSelection, choice, len(c.Files))
	}

	return c.Files[choice-1], nil
}

// Path joins Dir and name.
func (c *Catalog) Path(name string) string { return filepath.Join(c.Dir, name) }
