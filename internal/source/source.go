// Package source reads borehole fixture files for the command line.
//
// A borehole file is TOML:
//
//	id = "BH01"
//
//	[[interval]]
//	top = 0.0
//	base = 1.2
//	code = "101"
//	description = "Firm brown sandy CLAY"
//
// Intervals are numbered in file order and passed on unvalidated; the layout
// pipeline drops and reports bad ones.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/tsawler/borelog"
	"github.com/tsawler/borelog/model"
)

// ErrMalformed is returned for a file that is not a valid borehole file.
var ErrMalformed = errors.New("malformed borehole file")

type fileInterval struct {
	Top         float64 `toml:"top"`
	Base        float64 `toml:"base"`
	Code        string  `toml:"code"`
	Description string  `toml:"description"`
}

type file struct {
	ID        string         `toml:"id"`
	Intervals []fileInterval `toml:"interval"`
}

// Parse decodes a borehole file. name is used as the ID when the file has
// none.
func Parse(name string, data []byte) (borelog.Borehole, error) {
	var f file
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return borelog.Borehole{}, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
	}

	b := borelog.Borehole{
		ID:        f.ID,
		Intervals: make([]model.Interval, len(f.Intervals)),
	}
	if b.ID == "" {
		b.ID = name
	}
	for i, iv := range f.Intervals {
		b.Intervals[i] = model.Interval{
			Top:         iv.Top,
			Base:        iv.Base,
			Code:        iv.Code,
			Description: iv.Description,
			SourceIndex: i,
		}
	}
	return b, nil
}

// Load reads the borehole file at path.
func Load(path string) (borelog.Borehole, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return borelog.Borehole{}, fmt.Errorf("reading borehole file: %w", err)
	}
	return Parse(IDFromPath(path), data)
}

// LoadAll reads every path, stopping at the first error.
func LoadAll(paths []string) ([]borelog.Borehole, error) {
	boreholes := make([]borelog.Borehole, 0, len(paths))
	for _, p := range paths {
		b, err := Load(p)
		if err != nil {
			return nil, err
		}
		boreholes = append(boreholes, b)
	}
	return boreholes, nil
}

// IDFromPath returns the file name without its extension.
func IDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
