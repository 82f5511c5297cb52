package matcher

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"linksight/internal/domain"
)

var referenceColumns = []string{"code", "interlevel", "location", "province_code", "city_municipality_code"}

// LoadReference reads reference locations from CSV. The header must name
// code, interlevel and location; province_code and city_municipality_code
// are optional.
func LoadReference(r io.Reader) ([]Location, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, domain.New(domain.CodeMatchReference, "Reference file has no header").WithCause(err)
	}

	index := make(map[string]int, len(referenceColumns))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range referenceColumns[:3] {
		if _, ok := index[required]; !ok {
			return nil, domain.New(domain.CodeMatchReference,
				fmt.Sprintf("Reference file is missing the %q column", required))
		}
	}

	cell := func(record []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var locations []Location
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.New(domain.CodeMatchReference, "Reference file is not valid CSV").
				WithDetail("line", line).
				WithCause(err)
		}

		loc := Location{
			Code:                 cell(record, "code"),
			Interlevel:           cell(record, "interlevel"),
			Name:                 cell(record, "location"),
			ProvinceCode:         cell(record, "province_code"),
			CityMunicipalityCode: cell(record, "city_municipality_code"),
		}
		if loc.Code == "" || loc.Name == "" {
			continue
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// LoadReferenceFile reads reference locations from a CSV file.
func LoadReferenceFile(path string) ([]Location, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from trusted configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open reference file: %w", err)
	}
	defer f.Close()

	locations, err := LoadReference(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return locations, nil
}
