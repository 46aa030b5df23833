package display

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/harrison/telegram-analyzer/internal/filelock"
	"github.com/harrison/telegram-analyzer/internal/models"
	"github.com/spf13/afero"
)

var (
	// ErrValidation marks render options rejected before any I/O happens.
	ErrValidation = errors.New("invalid output options")
	// ErrOutputWrite marks a failure creating the output directory or file.
	ErrOutputWrite = errors.New("output write failed")
)

// Format selects where a report goes.
type Format string

const (
	FormatConsole Format = "console"
	FormatText    Format = "txt"
	FormatCSV     Format = "csv"
)

// ParseFormat validates and normalizes an output format name.
// An empty name selects the console; "stdout" and "text" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "console", "stdout":
		return FormatConsole, nil
	case "txt", "text":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: invalid format '%s': must be one of: console (or stdout), txt, csv", ErrValidation, s)
	}
}

// Extension returns the file extension written for the format.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatCSV:
		return ".csv"
	default:
		return ""
	}
}

// Layout fixes the column order of a report.
type Layout int

const (
	// LabelFirst renders "label<TAB>count".
	LabelFirst Layout = iota
	// CountFirst renders "count<TAB>label".
	CountFirst
)

// RenderOptions configures a Renderer.
type RenderOptions struct {
	Format    Format `validate:"required,oneof=console txt csv"`
	OutputDir string `validate:"required_unless=Format console"`
}

var validate = validator.New()

// Validate checks the options without touching the filesystem.
func (o RenderOptions) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var messages []string
	for _, e := range validationErrors {
		switch {
		case e.Field() == "OutputDir":
			messages = append(messages, fmt.Sprintf("format '%s' requires an output directory", o.Format))
		case e.Field() == "Format" && e.Tag() == "required":
			messages = append(messages, "format is required")
		default:
			messages = append(messages, fmt.Sprintf("invalid format '%v': must be one of: console, txt, csv", e.Value()))
		}
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
}

// Report is one analysis result ready to be rendered.
type Report struct {
	BaseName    string // File name without extension, e.g. "urls_count"
	LabelHeader string // CSV header of the label column, e.g. "URL"
	Layout      Layout
	Rows        []models.AnalysisRow
	Summary     string
}

// Renderer writes reports to the console or to files in an output directory.
// Rows are written in the order given; the renderer never sorts.
type Renderer struct {
	opts RenderOptions
	fs   afero.Fs
	out  io.Writer
}

// NewRenderer validates opts and returns a renderer writing console output to
// out and files to fs.
func NewRenderer(opts RenderOptions, fs afero.Fs, out io.Writer) (*Renderer, error) {
	if opts.Format == "" {
		opts.Format = FormatConsole
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{opts: opts, fs: fs, out: out}, nil
}

// NewConsoleRenderer returns a renderer printing every report to out.
func NewConsoleRenderer(out io.Writer) *Renderer {
	return &Renderer{opts: RenderOptions{Format: FormatConsole}, out: out}
}

// Render writes the report and returns the written file path, or "" when the
// report went to the console.
func (r *Renderer) Render(report Report) (string, error) {
	switch r.opts.Format {
	case FormatText:
		return r.writeFile(report, textContent(report))
	case FormatCSV:
		return r.writeFile(report, csvContent(report))
	default:
		if _, err := io.WriteString(r.out, textContent(report)); err != nil {
			return "", fmt.Errorf("%w: %v", ErrOutputWrite, err)
		}
		return "", nil
	}
}

func (r *Renderer) writeFile(report Report, content string) (string, error) {
	if err := r.fs.MkdirAll(r.opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("%w: create directory %s: %v", ErrOutputWrite, r.opts.OutputDir, err)
	}

	path := filepath.Join(r.opts.OutputDir, report.BaseName+r.opts.Format.Extension())
	if err := filelock.LockAndWrite(r.fs, path, []byte(content)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return path, nil
}

// textContent renders tab-separated rows followed by the summary line.
func textContent(report Report) string {
	var sb strings.Builder
	for _, row := range report.Rows {
		left, right := columns(report.Layout, row.Label, strconv.Itoa(row.Count))
		sb.WriteString(left)
		sb.WriteString("\t")
		sb.WriteString(right)
		sb.WriteString("\n")
	}
	sb.WriteString(report.Summary)
	sb.WriteString("\n")
	return sb.String()
}

// csvContent renders a quoted header, one quoted line per row and a quoted
// summary row with an empty second field.
func csvContent(report Report) string {
	var sb strings.Builder

	left, right := columns(report.Layout, report.LabelHeader, "Count")
	writeCSVLine(&sb, left, right)

	for _, row := range report.Rows {
		left, right := columns(report.Layout, row.Label, strconv.Itoa(row.Count))
		writeCSVLine(&sb, left, right)
	}

	writeCSVLine(&sb, report.Summary, "")
	return sb.String()
}

func columns(layout Layout, label, count string) (string, string) {
	if layout == CountFirst {
		return count, label
	}
	return label, count
}

func writeCSVLine(sb *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(quoteCSV(f))
	}
	sb.WriteString("\n")
}

// quoteCSV always quotes a field, doubling embedded quotes.
func quoteCSV(s string) string {
	return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
}
