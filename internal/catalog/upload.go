package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"linksight/internal/domain"
)

const (
	// MaxUploadRows caps the CSV rows, header included, accepted per upload.
	MaxUploadRows = 3000
	// DefaultPreviewRows is the preview size when the caller names none.
	DefaultPreviewRows = 10
	// MaxPreviewRows bounds a single preview request.
	MaxPreviewRows = 100

	sniffLen = 1024
)

var uploadTypes = []string{"text/plain", "text/csv"}

// Table is a validated CSV upload. The first row is the header.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Preview is the head of a Table.
type Preview struct {
	Name      string     `json:"name" yaml:"name"`
	Columns   []string   `json:"columns" yaml:"columns"`
	Rows      [][]string `json:"rows" yaml:"rows"`
	TotalRows int        `json:"total_rows" yaml:"total_rows"`
}

// ReadCSV validates and parses an uploaded file. Only plain text or CSV
// content is accepted, judged from the first bytes, and the file may hold
// at most MaxUploadRows rows. name is reduced to its base name.
func ReadCSV(name string, r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, domain.New(domain.CodeUploadUnreadable, "Failed to read uploaded file").WithCause(err)
	}
	if len(data) == 0 {
		return nil, domain.New(domain.CodeUploadEmpty, "Uploaded file is empty").WithField("file")
	}

	mime := mimetype.Detect(data[:min(len(data), sniffLen)])
	if !mime.Is(uploadTypes[0]) && !mime.Is(uploadTypes[1]) {
		return nil, domain.New(domain.CodeUploadType, "LinkSight currently only handles CSV files").
			WithField("file").
			WithDetail("mime", mime.String())
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.New(domain.CodeUploadMalformed, "Uploaded file is not valid CSV").
				WithField("file").
				WithCause(err)
		}
		records = append(records, record)
		if len(records) > MaxUploadRows {
			return nil, domain.New(domain.CodeUploadTooManyRows,
				fmt.Sprintf("LinkSight can only handle max %d rows at the moment", MaxUploadRows)).
				WithField("file").
				WithDetail("limit", MaxUploadRows)
		}
	}
	if len(records) == 0 {
		return nil, domain.New(domain.CodeUploadEmpty, "Uploaded file has no rows").WithField("file")
	}

	return &Table{
		Name:    filepath.Base(name),
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}

// ReadCSVFile opens path and validates it like an upload.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // Path is supplied by the operator
	if err != nil {
		return nil, domain.New(domain.CodeUploadUnreadable, "Failed to open file").
			WithDetail("path", path).
			WithCause(err)
	}
	defer f.Close()

	return ReadCSV(path, f)
}

// Preview returns the header and at most n leading rows. n is clamped to
// zero below and to the row count above.
func (t *Table) Preview(n int) Preview {
	n = max(0, min(n, len(t.Rows)))
	rows := make([][]string, n)
	copy(rows, t.Rows[:n])

	return Preview{
		Name:      t.Name,
		Columns:   t.Columns,
		Rows:      rows,
		TotalRows: len(t.Rows),
	}
}

// Column returns the index of the header matching name, ignoring case and
// surrounding whitespace.
func (t *Table) Column(name string) (int, bool) {
	for i, col := range t.Columns {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i, true
		}
	}
	return -1, false
}

// Value returns the trimmed cell at row and column, or "" when the row is
// shorter than the header.
func (t *Table) Value(row, column int) string {
	if row < 0 || row >= len(t.Rows) || column < 0 || column >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][column])
}
