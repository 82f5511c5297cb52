package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"linksight/internal/catalog"
	"linksight/internal/domain"
	"linksight/internal/matcher"
)

var (
	addressesFile = filepath.Join("..", "..", "data", "addresses.csv")
	referenceFile = filepath.Join("..", "..", "data", "psgc_reference.csv")
)

func TestPreviewCmd(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out, err := runCLI(t, "preview", addressesFile, "--rows", "2")
		require.NoError(t, err)

		assert.Contains(t, out, "BARANGAY")
		assert.Contains(t, out, "Alasas")
		assert.Contains(t, out, "Barangay No. 1 San Lorenzo")
		assert.NotContains(t, out, "Batac City")
		assert.Contains(t, out, "2 OF 3 ROWS")
	})

	t.Run("json", func(t *testing.T) {
		out, err := runCLI(t, "preview", addressesFile, "-o", "json")
		require.NoError(t, err)

		var preview catalog.Preview
		require.NoError(t, json.Unmarshal([]byte(out), &preview))
		assert.Equal(t, "addresses.csv", preview.Name)
		assert.Equal(t, []string{"barangay", "city_municipality", "province"}, preview.Columns)
		assert.Len(t, preview.Rows, 3)
		assert.Equal(t, 3, preview.TotalRows)
	})

	t.Run("rows out of range", func(t *testing.T) {
		_, err := runCLI(t, "preview", addressesFile, "--rows", "0")
		assert.True(t, domain.HasCode(err, domain.CodeUploadPreviewRows))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runCLI(t, "preview", filepath.Join(t.TempDir(), "missing.csv"))
		assert.True(t, domain.HasCode(err, domain.CodeUploadUnreadable))
	})
}

func TestMatchCmd(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, err := runCLI(t, "match", addressesFile, "--reference", referenceFile, "-o", "json")
		require.NoError(t, err)

		var matches []matcher.Match
		require.NoError(t, json.Unmarshal([]byte(out), &matches))
		require.Len(t, matches, 9)
		assert.Equal(t, "Pampanga", matches[0].Name)
		assert.Equal(t, 100, matches[0].Score)
		assert.Equal(t, 2, matches[len(matches)-1].Index)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := runCLI(t, "match", addressesFile, "--reference", referenceFile, "-o", "yaml")
		require.NoError(t, err)

		var doc struct {
			Matches []matcher.Match `yaml:"matches"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
		assert.Len(t, doc.Matches, 9)
	})

	t.Run("table", func(t *testing.T) {
		out, err := runCLI(t, "match", addressesFile, "--reference", referenceFile)
		require.NoError(t, err)

		assert.Contains(t, out, "INTERLEVEL")
		assert.Contains(t, out, "City of San Fernando")
		assert.Contains(t, out, "035416001")
	})

	t.Run("missing reference", func(t *testing.T) {
		_, err := runCLI(t, "match", addressesFile, "--reference", filepath.Join(t.TempDir(), "missing.csv"))
		assert.ErrorContains(t, err, "failed to open reference file")
	})
}
