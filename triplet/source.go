// SPDX-License-Identifier: MIT
// Package triplet: file sources.
//
// ParseFile maps the file system failure onto the error taxonomy:
//   - fs.ErrNotExist → ErrSourceNotFound,
//   - anything else (permissions, directories, I/O) → ErrInvalidFormat.
//
// With WithMmap(true) the file is mapped read-only (mmap-go) and scanned from
// memory; empty files are not mapped.

package triplet

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/sparsecalc/matrix"
)

// ParseFile opens path and builds a Matrix from its lines.
func ParseFile(path string, opts ...Option) (*matrix.Matrix, *Report, error) {
	o := gatherOptions(opts...)

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, sourceError(path, err)
	}
	defer f.Close()

	if !o.mmap {
		m, rep, err := Parse(f, opts...)
		if err != nil {
			return nil, rep, fmt.Errorf("%s: %w", path, err)
		}

		return m, rep, nil
	}

	return parseMapped(f, path, opts...)
}

// parseMapped scans a read-only mapping of f.
func parseMapped(f *os.File, path string, opts ...Option) (*matrix.Matrix, *Report, error) {
	st, err := f.Stat()
	if err != nil {
		return nil, nil, sourceError(path, err)
	}
	if st.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s: is a directory", ErrInvalidFormat, path)
	}
	if st.Size() == 0 {
		return ParseString("", opts...)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: mmap: %w", ErrInvalidFormat, path, err)
	}
	defer data.Unmap()

	m, rep, err := Parse(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, rep, fmt.Errorf("%s: %w", path, err)
	}

	return m, rep, nil
}

func sourceError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}

	return fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
}
