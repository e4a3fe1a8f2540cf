// SPDX-License-Identifier: MIT

package lbfile

import (
	"fmt"
	"os"

	"github.com/katalvlaran/letterbox/grid"
)

// SaveFile encodes g and writes it to path, replacing any existing file.
func SaveFile(path string, g *grid.Grid) error {
	e, err := Encode(g)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lbfile: create %s: %w", path, err)
	}
	if err := Write(f, e); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("lbfile: close %s: %w", path, err)
	}

	return nil
}

// LoadFile reads and decodes the grid stored at path.
func LoadFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lbfile: open %s: %w", path, err)
	}
	defer f.Close()

	e, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("lbfile: read %s: %w", path, err)
	}

	return Decode(e)
}
