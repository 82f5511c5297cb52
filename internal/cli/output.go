package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"linksight/internal/catalog"
	"linksight/internal/domain"
	"linksight/internal/matcher"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatYML  = "yml"
)

// RenderDatasets writes datasets in the requested format. Unknown formats
// fall back to a table.
func RenderDatasets(w io.Writer, datasets []*domain.Dataset, format string) error {
	return render(w, format, "datasets", datasets, func() error {
		return renderDatasetsTable(w, datasets)
	})
}

// RenderPreview writes the head of an uploaded table.
func RenderPreview(w io.Writer, preview catalog.Preview, format string) error {
	return render(w, format, "preview", preview, func() error {
		return renderPreviewTable(w, preview)
	})
}

// RenderMatches writes address matches, one row per candidate location.
func RenderMatches(w io.Writer, matches []matcher.Match, format string) error {
	if matches == nil {
		matches = []matcher.Match{}
	}
	return render(w, format, "matches", matches, func() error {
		return renderMatchesTable(w, matches)
	})
}

// render encodes value as JSON, or as YAML under key, and hands every other
// format to asTable.
func render(w io.Writer, format, key string, value interface{}, asTable func() error) error {
	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case formatYAML, formatYML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]interface{}{key: value}); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return asTable()
	}
}

func renderDatasetsTable(w io.Writer, datasets []*domain.Dataset) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Name", "Description", "Featured"})

	for _, d := range datasets {
		description := d.Description
		if r := []rune(description); len(r) > 50 {
			description = string(r[:47]) + "..."
		}

		featured := ""
		if d.Featured {
			featured = "*"
		}

		t.AppendRow(table.Row{d.ID, d.Name, description, featured})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func renderPreviewTable(w io.Writer, preview catalog.Preview) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := make(table.Row, len(preview.Columns))
	for i, col := range preview.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, record := range preview.Rows {
		row := make(table.Row, len(record))
		for i, cell := range record {
			row[i] = cell
		}
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d of %d rows", len(preview.Rows), preview.TotalRows)})

	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func renderMatchesTable(w io.Writer, matches []matcher.Match) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Row", "Interlevel", "Location", "Code", "Score"})

	for _, m := range matches {
		t.AppendRow(table.Row{m.Index, m.Interlevel, m.Name, m.Code, m.Score})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}
