package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/borelog/export"
	"github.com/tsawler/borelog/geometry"
	"github.com/tsawler/borelog/text"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, geometry.DefaultConfig(), cfg.Page)
	assert.Equal(t, 3.5, cfg.Text.LineHeight)
	assert.Equal(t, 15.0, cfg.Overflow.HeaderHeight)
	assert.Equal(t, MeasurerCells, cfg.Font.Measurer)
	assert.Equal(t, "json", cfg.Export.Format)
	assert.Zero(t, cfg.Workers)
}

func TestParse_OverridesDefaults(t *testing.T) {
	data := []byte(`
workers = 4

[page]
scale = 100
header_height = 77

[page.margins]
top = 12

[text]
line_height = 4.0

[overflow]
entry_gap = 6

[font]
measurer = "basic"

[export]
format = "csv"
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.Page.Scale)
	assert.Equal(t, 77.0, cfg.Page.HeaderHeight)
	assert.Equal(t, 12.0, cfg.Page.Margins.Top)
	assert.Equal(t, 10.0, cfg.Page.Margins.Bottom, "unset keys keep defaults")
	assert.Equal(t, geometry.A4Width, cfg.Page.PageWidth)
	assert.Equal(t, geometry.DefaultColumns(), cfg.Page.Columns)
	assert.Equal(t, 4.0, cfg.Text.LineHeight)
	assert.Equal(t, 5.0, cfg.Text.MinHeight)
	assert.Equal(t, 6.0, cfg.Overflow.EntryGap)
	assert.Equal(t, MeasurerBasic, cfg.Font.Measurer)
	assert.Equal(t, "csv", cfg.Export.Format)
	assert.Equal(t, 4, cfg.Workers)
}

func TestParse_ColumnsReplaceTemplate(t *testing.T) {
	data := []byte(`
[[page.columns]]
name = "Legend"
fraction = 0.4

[[page.columns]]
name = "Description"
fraction = 0.6
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	require.Len(t, cfg.Page.Columns, 2)
	assert.Equal(t, geometry.ColumnLegend, cfg.Page.Columns[0].Name)
	assert.Equal(t, 0.6, cfg.Page.Columns[1].Fraction)
	assert.NoError(t, cfg.Page.Validate())
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("[page]\nscael = 100\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "scael")
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("[page\nscale = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Page.Scale = 200
	cfg.Export.Format = "tsv"
	require.NoError(t, Save(path, cfg))

	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_ReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("bogus = true\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestFile_Measurer(t *testing.T) {
	cfg := Default()
	cfg.Font.CellWidth = 2

	m, err := cfg.Measurer()
	require.NoError(t, err)
	assert.Equal(t, 8.0, m.Measure("abcd"))

	cfg.Font.Measurer = MeasurerBasic
	m, err = cfg.Measurer()
	require.NoError(t, err)
	assert.IsType(t, &text.FaceMeasurer{}, m)

	cfg.Font.Measurer = MeasurerStandard
	m, err = cfg.Measurer()
	require.NoError(t, err)
	assert.IsType(t, &text.StandardMeasurer{}, m)

	cfg.Font.Name = "Papyrus"
	_, err = cfg.Measurer()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Times-Roman", "error lists the valid font names")

	cfg.Font.Measurer = "helvetica"
	_, err = cfg.Measurer()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFile_Options(t *testing.T) {
	cfg := Default()
	cfg.Page.Scale = 100

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, 100.0, opts.Geometry.Scale)
	assert.Equal(t, cfg.Text, opts.Planner)
	assert.NotNil(t, opts.Measurer)

	// the options own their column template
	opts.Geometry.Columns[0].Fraction = 1
	assert.Equal(t, 0.10, cfg.Page.Columns[0].Fraction)
}

func TestFile_ExportConfig(t *testing.T) {
	cfg := Default()
	cfg.Export.Format = "jsonl"

	ec, err := cfg.ExportConfig()
	require.NoError(t, err)
	assert.Equal(t, export.FormatJSONL, ec.Format)
	assert.False(t, ec.PrettyPrint)

	cfg.Export.Format = "xml"
	_, err = cfg.ExportConfig()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
