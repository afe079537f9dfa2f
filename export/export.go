package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tsawler/borelog/geometry"
	"github.com/tsawler/borelog/model"
)

// ErrUnsupportedFormat is returned for an unknown format name or value.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format defines the available export formats
type Format int

const (
	// FormatJSON exports the layout as a single JSON document
	FormatJSON Format = iota
	// FormatJSONL exports one JSON object per text box
	FormatJSONL
	// FormatCSV exports comma-separated values
	FormatCSV
	// FormatTSV exports tab-separated values
	FormatTSV
)

// String returns a human-readable representation of the export format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatJSONL:
		return "jsonl"
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatJSONL:
		return ".jsonl"
	case FormatCSV:
		return ".csv"
	case FormatTSV:
		return ".tsv"
	default:
		return ".txt"
	}
}

// ParseFormat maps a format name such as "csv" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "jsonl", "ndjson":
		return FormatJSONL, nil
	case "csv":
		return FormatCSV, nil
	case "tsv":
		return FormatTSV, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Config holds configuration options for export
type Config struct {
	// Format specifies the export format
	Format Format

	// IncludeText includes the wrapped description lines
	IncludeText bool

	// IncludeHeader includes a header row in CSV/TSV exports
	IncludeHeader bool

	// PrettyPrint indents JSON output
	PrettyPrint bool

	// Delimiter separates CSV fields; TSV always uses a tab
	Delimiter rune

	// Precision is the number of decimals for lengths in CSV/TSV (default: 3)
	Precision int
}

// DefaultConfig returns sensible defaults for export configuration
func DefaultConfig() Config {
	return Config{
		Format:        FormatJSON,
		IncludeText:   true,
		IncludeHeader: true,
		PrettyPrint:   true,
		Delimiter:     ',',
		Precision:     3,
	}
}

// ConfigFor returns the default configuration with format f.
func ConfigFor(f Format) Config {
	config := DefaultConfig()
	config.Format = f
	if f == FormatJSONL {
		config.PrettyPrint = false
	}
	return config
}

// Exporter writes layouts in one format.
type Exporter struct {
	config Config
}

// NewExporter creates an exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{config: DefaultConfig()}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config Config) *Exporter {
	return &Exporter{config: config}
}

// Record is one text box in flat form.
type Record struct {
	Borehole string `json:"borehole,omitempty"`
	Sheet    string `json:"sheet"`
	Kind     string `json:"kind"`

	// Page is the page number, or the originating page for overflow entries
	Page int `json:"page"`

	SourceIndex  int     `json:"source_index"`
	Code         string  `json:"code"`
	IntervalTop  float64 `json:"interval_top"`
	IntervalBase float64 `json:"interval_base"`

	// SegmentTop and SegmentBase are the part of the interval on this page.
	// Overflow entries repeat the interval bounds.
	SegmentTop  float64 `json:"segment_top"`
	SegmentBase float64 `json:"segment_base"`

	Class         string  `json:"class,omitempty"`
	LegendVisible bool    `json:"legend_visible"`
	LegendYTop    float64 `json:"legend_y_top"`
	LegendYBottom float64 `json:"legend_y_bottom"`

	// LegendBox and TextBox are the drawable rectangles in page-local mm;
	// nil when nothing is drawn. JSON formats only.
	LegendBox *model.BBox `json:"legend_box,omitempty"`
	TextBox   *model.BBox `json:"text_box,omitempty"`

	Caption  string  `json:"caption,omitempty"`
	CaptionY float64 `json:"caption_y,omitempty"`

	TextVisible  bool     `json:"text_visible"`
	TextYTop     float64  `json:"text_y_top"`
	TextYBottom  float64  `json:"text_y_bottom"`
	LineCount    int      `json:"line_count"`
	VisibleLines int      `json:"visible_lines"`
	Abbreviated  bool     `json:"abbreviated,omitempty"`
	Reference    string   `json:"reference,omitempty"`
	RightToLeft  bool     `json:"right_to_left,omitempty"`
	Lines        []string `json:"lines,omitempty"`
}

// Document is the JSON form of a whole layout.
type Document struct {
	Borehole     string          `json:"borehole,omitempty"`
	DepthPerPage float64         `json:"depth_per_page"`
	TotalDepth   float64         `json:"total_depth"`
	Sheets       []SheetDocument `json:"sheets"`
}

// SheetDocument is one sheet of a Document.
type SheetDocument struct {
	Kind    string         `json:"kind"`
	Label   string         `json:"label"`
	Origin  int            `json:"origin"`
	Top     float64        `json:"top,omitempty"`
	Bottom  float64        `json:"bottom,omitempty"`
	ToeY    float64        `json:"toe_y,omitempty"`
	Columns []model.Column `json:"columns,omitempty"`
	Skipped []int          `json:"skipped,omitempty"`
	Records []Record       `json:"records"`
}

// Export writes layout to w.
func (e *Exporter) Export(layout *model.Layout, w io.Writer) error {
	switch e.config.Format {
	case FormatJSON:
		return e.exportJSON(layout, w)
	case FormatJSONL:
		return e.exportJSONL(layout, w)
	case FormatCSV, FormatTSV:
		return e.exportCSV(layout, w)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, e.config.Format)
	}
}

// ExportToFile writes layout to a file
func (e *Exporter) ExportToFile(layout *model.Layout, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := e.Export(layout, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportToString writes layout to a string
func (e *Exporter) ExportToString(layout *model.Layout) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(layout, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Records flattens layout into one record per text box in sheet order.
func (e *Exporter) Records(layout *model.Layout) []Record {
	var records []Record
	for _, sheet := range layout.Sheets {
		records = append(records, e.sheetRecords(layout.Borehole, sheet)...)
	}
	return records
}

// Document converts layout into its JSON document form.
func (e *Exporter) Document(layout *model.Layout) Document {
	doc := Document{
		Borehole:     layout.Borehole,
		DepthPerPage: layout.DepthPerPage,
		TotalDepth:   layout.TotalDepth,
		Sheets:       make([]SheetDocument, 0, len(layout.Sheets)),
	}

	for _, sheet := range layout.Sheets {
		sd := SheetDocument{
			Kind:    sheet.Kind().String(),
			Label:   sheet.Label(),
			Origin:  sheet.Origin(),
			Records: e.sheetRecords(layout.Borehole, sheet),
		}
		switch s := sheet.(type) {
		case *model.Page:
			sd.Top = s.Top
			sd.Bottom = s.Bottom
			sd.ToeY = s.ToeY
			sd.Columns = s.Columns
		case *model.OverflowPage:
			sd.Columns = []model.Column{s.Column}
			for _, iv := range s.Skipped {
				sd.Skipped = append(sd.Skipped, iv.SourceIndex)
			}
		}
		doc.Sheets = append(doc.Sheets, sd)
	}

	return doc
}

func (e *Exporter) sheetRecords(borehole string, sheet model.Sheet) []Record {
	var records []Record

	switch s := sheet.(type) {
	case *model.Page:
		for _, row := range s.Rows {
			iv := row.Segment.Interval
			rec := Record{
				Borehole:      borehole,
				Sheet:         s.Label(),
				Kind:          s.Kind().String(),
				Page:          s.Number,
				SourceIndex:   iv.SourceIndex,
				Code:          iv.Code,
				IntervalTop:   iv.Top,
				IntervalBase:  iv.Base,
				SegmentTop:    row.Segment.Top,
				SegmentBase:   row.Segment.Base,
				Class:         row.Class.String(),
				LegendVisible: row.Legend.Visible,
				LegendYTop:    row.Legend.YTop,
				LegendYBottom: row.Legend.YBottom,
			}
			if r, ok := s.Rect(geometry.ColumnLegend, row.Legend.YBottom, row.Legend.YTop); ok {
				rec.LegendBox = &r
			}
			if r, ok := s.Rect(geometry.ColumnDescription, row.Text.YBottom, row.Text.YTop); ok && row.Text.Visible {
				rec.TextBox = &r
			}
			e.fillText(&rec, row.Text)
			records = append(records, rec)
		}

	case *model.OverflowPage:
		for _, entry := range s.Entries {
			iv := entry.Interval
			rec := Record{
				Borehole:     borehole,
				Sheet:        s.Label(),
				Kind:         s.Kind().String(),
				Page:         s.SourcePage,
				SourceIndex:  iv.SourceIndex,
				Code:         iv.Code,
				IntervalTop:  iv.Top,
				IntervalBase: iv.Base,
				SegmentTop:   iv.Top,
				SegmentBase:  iv.Base,
				Caption:      entry.Caption,
				CaptionY:     entry.CaptionY,
			}
			if r, ok := s.Rect(entry.Box.YBottom, entry.Box.YTop); ok {
				rec.TextBox = &r
			}
			e.fillText(&rec, entry.Box)
			records = append(records, rec)
		}
	}

	return records
}

func (e *Exporter) fillText(rec *Record, box model.TextBox) {
	rec.TextVisible = box.Visible
	rec.TextYTop = box.YTop
	rec.TextYBottom = box.YBottom
	rec.LineCount = len(box.Lines)
	rec.VisibleLines = box.VisibleLines
	rec.Abbreviated = box.Abbreviated
	rec.Reference = box.Reference
	rec.RightToLeft = box.RightToLeft
	if e.config.IncludeText {
		rec.Lines = box.Lines
	}
}

func (e *Exporter) newEncoder(w io.Writer) *json.Encoder {
	encoder := json.NewEncoder(w)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	return encoder
}

func (e *Exporter) exportJSON(layout *model.Layout, w io.Writer) error {
	if err := e.newEncoder(w).Encode(e.Document(layout)); err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	return nil
}

func (e *Exporter) exportJSONL(layout *model.Layout, w io.Writer) error {
	encoder := e.newEncoder(w)
	for i, rec := range e.Records(layout) {
		if err := encoder.Encode(rec); err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}
	}
	return nil
}

// csvColumns lists the CSV/TSV columns; "text" is present only with IncludeText.
var csvColumns = []string{
	"borehole", "sheet", "kind", "page", "source_index", "code",
	"interval_top", "interval_base", "segment_top", "segment_base", "class",
	"legend_visible", "legend_y_top", "legend_y_bottom", "caption", "caption_y",
	"text_visible", "text_y_top", "text_y_bottom", "line_count", "visible_lines",
	"abbreviated", "reference", "right_to_left",
}

// Columns returns the CSV/TSV header for the current configuration.
func (e *Exporter) Columns() []string {
	columns := append([]string(nil), csvColumns...)
	if e.config.IncludeText {
		columns = append(columns, "text")
	}
	return columns
}

func (e *Exporter) exportCSV(layout *model.Layout, w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.config.Delimiter
	if e.config.Format == FormatTSV {
		csvWriter.Comma = '\t'
	}
	if csvWriter.Comma == 0 {
		csvWriter.Comma = ','
	}

	if e.config.IncludeHeader {
		if err := csvWriter.Write(e.Columns()); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
	}

	for i, rec := range e.Records(layout) {
		if err := csvWriter.Write(e.csvRow(rec)); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func (e *Exporter) csvRow(rec Record) []string {
	num := func(v float64) string {
		return strconv.FormatFloat(v, 'f', e.config.Precision, 64)
	}

	row := []string{
		rec.Borehole,
		rec.Sheet,
		rec.Kind,
		strconv.Itoa(rec.Page),
		strconv.Itoa(rec.SourceIndex),
		rec.Code,
		num(rec.IntervalTop),
		num(rec.IntervalBase),
		num(rec.SegmentTop),
		num(rec.SegmentBase),
		rec.Class,
		strconv.FormatBool(rec.LegendVisible),
		num(rec.LegendYTop),
		num(rec.LegendYBottom),
		rec.Caption,
		num(rec.CaptionY),
		strconv.FormatBool(rec.TextVisible),
		num(rec.TextYTop),
		num(rec.TextYBottom),
		strconv.Itoa(rec.LineCount),
		strconv.Itoa(rec.VisibleLines),
		strconv.FormatBool(rec.Abbreviated),
		rec.Reference,
		strconv.FormatBool(rec.RightToLeft),
	}
	if e.config.IncludeText {
		row = append(row, strings.Join(rec.Lines, " "))
	}
	return row
}
