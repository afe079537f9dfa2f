package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/tsawler/borelog"
	"github.com/tsawler/borelog/export"
	"github.com/tsawler/borelog/font"
	"github.com/tsawler/borelog/geometry"
	"github.com/tsawler/borelog/layout"
	"github.com/tsawler/borelog/pages"
	"github.com/tsawler/borelog/text"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.toml"

// Measurer names accepted in the [font] section.
const (
	MeasurerCells    = "cells"
	MeasurerBasic    = "basic"
	MeasurerStandard = "standard"
)

// ErrInvalidConfig is returned for a file that parses but cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// File is the on-disk configuration.
type File struct {
	Page     geometry.Config      `toml:"page"`
	Text     layout.PlannerConfig `toml:"text"`
	Overflow pages.OverflowConfig `toml:"overflow"`
	Font     Font                 `toml:"font"`
	Export   Export               `toml:"export"`

	// Workers bounds concurrent layouts in batch mode; 0 uses every CPU
	Workers int `toml:"workers"`
}

// Font selects how description text is measured.
type Font struct {
	// Measurer is "cells" for fixed-width cells, "basic" for the 7x13 bitmap
	// face or "standard" for a standard PDF font
	Measurer string `toml:"measurer"`

	// CellWidth is the width of one cell in mm for the cells measurer
	CellWidth float64 `toml:"cell_width"`

	// Name and Size select the standard font, e.g. "Helvetica" at 8pt
	Name string  `toml:"name"`
	Size float64 `toml:"size"`
}

// Export holds output defaults for the command line.
type Export struct {
	Format      string `toml:"format"`
	PrettyPrint bool   `toml:"pretty_print"`
	IncludeText bool   `toml:"include_text"`
}

// Default returns the configuration used when no file exists.
func Default() File {
	return File{
		Page:     geometry.DefaultConfig(),
		Text:     layout.DefaultPlannerConfig(),
		Overflow: pages.DefaultOverflowConfig(),
		Font: Font{
			Measurer:  MeasurerCells,
			CellWidth: text.DefaultCellWidth,
			Name:      "Helvetica",
			Size:      text.DefaultFontSize,
		},
		Export: Export{
			Format:      export.FormatJSON.String(),
			PrettyPrint: true,
			IncludeText: true,
		},
	}
}

// DefaultPath returns ~/.borelog/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".borelog", FileName), nil
}

// Load reads and parses the file at path. A missing file yields the
// defaults.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return File{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	cfg := Default()
	// a [[page.columns]] table replaces the template rather than extending it
	cfg.Page.Columns = nil

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return File{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return File{}, fmt.Errorf("parsing config at %d:%d: %w", row, col, err)
		}
		return File{}, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.Page.Columns) == 0 {
		cfg.Page.Columns = geometry.DefaultColumns()
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Measurer builds the text measurer named in the [font] section.
func (f File) Measurer() (text.Measurer, error) {
	switch f.Font.Measurer {
	case "", MeasurerCells:
		m := text.NewCellMeasurer()
		if f.Font.CellWidth > 0 {
			m.CellWidth = f.Font.CellWidth
		}
		return m, nil
	case MeasurerBasic:
		return text.NewBasicFaceMeasurer(), nil
	case MeasurerStandard:
		m, err := text.NewStandardMeasurer(f.Font.Name, f.Font.Size)
		if err != nil {
			return nil, fmt.Errorf("%w: %v; font.name must be one of %s",
				ErrInvalidConfig, err, strings.Join(font.Names(), ", "))
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: unknown font.measurer %q", ErrInvalidConfig, f.Font.Measurer)
	}
}

// Options converts the file into layout options.
func (f File) Options() (borelog.Options, error) {
	m, err := f.Measurer()
	if err != nil {
		return borelog.Options{}, err
	}
	return borelog.Options{
		Geometry: f.Page.WithScale(f.Page.Scale),
		Planner:  f.Text,
		Overflow: f.Overflow,
		Measurer: m,
	}, nil
}

// ExportConfig converts the [export] section into exporter settings.
func (f File) ExportConfig() (export.Config, error) {
	format, err := export.ParseFormat(f.Export.Format)
	if err != nil {
		return export.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg := export.ConfigFor(format)
	cfg.PrettyPrint = f.Export.PrettyPrint && format == export.FormatJSON
	cfg.IncludeText = f.Export.IncludeText
	return cfg, nil
}
