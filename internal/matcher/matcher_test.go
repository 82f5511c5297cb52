package matcher

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linksight/internal/catalog"
	"linksight/internal/domain"
)

const referenceCSV = `code,interlevel,location,province_code,city_municipality_code
012800000,Prov,Ilocos Norte,012800000,
012805000,City,Batac City,012800000,012805000
012812000,City,Laoag City,012800000,012812000
012805001,Bgy,Ablan Pob.,012800000,012805000
012812001,Bgy,Barangay No. 1 San Lorenzo,012800000,012812000
012812002,Bgy,Barangay No. 2 Santa Joaquina,012800000,012812000
013300000,Prov,La Union,013300000,
013314000,City,San Fernando City,013300000,013314000
035400000,Prov,Pampanga,035400000,
035416000,City,City of San Fernando,035400000,035416000
035416001,Bgy,Alasas,035400000,035416000
035416002,Bgy,Baliti,035400000,035416000
`

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	reference, err := LoadReference(strings.NewReader(referenceCSV))
	require.NoError(t, err)
	return New(reference, nil)
}

func codesOf(matches []Match) []string {
	codes := make([]string, 0, len(matches))
	for _, m := range matches {
		codes = append(codes, m.Code)
	}
	return codes
}

func TestMatcher_Match_AllLevelsExact(t *testing.T) {
	m := newTestMatcher(t)

	matches := m.Match(7, map[string]string{
		"province":          "Pampanga",
		"city_municipality": "City of San Fernando",
		"barangay":          "Alasas",
	})

	assert.Equal(t, []string{"035400000", "035416000", "035416001"}, codesOf(matches))
	for _, match := range matches {
		assert.Equal(t, 7, match.Index)
		assert.Equal(t, ExactScore, match.Score)
	}
}

func TestMatcher_Match_FuzzyCityAndMissingProvince(t *testing.T) {
	m := newTestMatcher(t)

	matches := m.Match(1, map[string]string{
		"city_municipality": "Laoag",
		"barangay":          "Barangay No. 1 San Lorenzo",
	})

	require.Len(t, matches, 3)
	assert.Equal(t, "Laoag City", matches[0].Name)
	assert.Equal(t, 90, matches[0].Score)
	assert.Equal(t, "012812001", matches[1].Code)
	assert.Equal(t, ExactScore, matches[1].Score)

	// The province is recovered from the codes the lower levels carry.
	assert.Equal(t, "Ilocos Norte", matches[2].Name)
	assert.Equal(t, "Prov", matches[2].Interlevel)
	assert.Equal(t, ExactScore, matches[2].Score)
}

func TestMatcher_Match_MissingBarangayGetsPlaceholder(t *testing.T) {
	m := newTestMatcher(t)

	matches := m.Match(2, map[string]string{
		"province":          "Ilocos Norte",
		"city_municipality": "Batac City",
	})

	require.Len(t, matches, 3)
	assert.Equal(t, []string{"012800000", "012805000", ""}, codesOf(matches))

	placeholder := matches[2]
	assert.Equal(t, "Bgy", placeholder.Interlevel)
	assert.Equal(t, "012805000", placeholder.CityMunicipalityCode)
	assert.Empty(t, placeholder.Name)
	assert.Zero(t, placeholder.Score)
	assert.Equal(t, 2, placeholder.Index)
}

func TestMatcher_Match_NoCandidates(t *testing.T) {
	m := newTestMatcher(t)

	assert.Empty(t, m.Match(0, map[string]string{"province": "Atlantis"}))
	assert.Empty(t, m.Match(0, map[string]string{}))
}

func TestMatcher_Match_NarrowsToParent(t *testing.T) {
	m := newTestMatcher(t)

	// "San Fernando City" exists under La Union; under Pampanga only the
	// "City of San Fernando" spelling is a candidate.
	matches := m.Match(0, map[string]string{
		"province":          "Pampanga",
		"city_municipality": "San Fernando City",
	})

	for _, match := range matches {
		assert.NotEqual(t, "013314000", match.Code)
	}
	assert.Contains(t, codesOf(matches), "035416000")
}

func TestMatcher_Match_CapsDistinctNames(t *testing.T) {
	var reference []Location
	for i := 1; i <= 12; i++ {
		reference = append(reference, Location{
			Code:       "B" + strconv.Itoa(i),
			Interlevel: "Bgy",
			Name:       "Santa Cruz " + strconv.Itoa(i),
		})
	}
	m := New(reference, nil)

	matches := m.Match(0, map[string]string{"barangay": "Santa Cruz"})

	require.Len(t, matches, MaxMatches)
	assert.Equal(t, "Santa Cruz 1", matches[0].Name)
	assert.Equal(t, "Santa Cruz 10", matches[MaxMatches-1].Name)
	for _, match := range matches {
		assert.GreaterOrEqual(t, match.Score, ScoreCutoff)
	}
}

func TestMatcher_Match_SameNameInSeveralPlaces(t *testing.T) {
	m := New([]Location{
		{Code: "B1", Interlevel: "Bgy", Name: "Poblacion", CityMunicipalityCode: "X1"},
		{Code: "B2", Interlevel: "Bgy", Name: "Poblacion", CityMunicipalityCode: "X2"},
		{Code: "B3", Interlevel: "Bgy", Name: "Poblacion East", CityMunicipalityCode: "X2"},
	}, nil)

	matches := m.Match(0, map[string]string{"barangay": "Poblacion"})

	assert.Equal(t, []string{"B1", "B2"}, codesOf(matches), "exact matches replace near ones")
}

func TestMatcher_MatchTable(t *testing.T) {
	m := newTestMatcher(t)

	table, err := catalog.ReadCSVFile(filepath.Join("..", "..", "data", "addresses.csv"))
	require.NoError(t, err)

	matches, err := m.MatchTable(table)
	require.NoError(t, err)

	byIndex := make(map[int][]Match)
	for _, match := range matches {
		byIndex[match.Index] = append(byIndex[match.Index], match)
	}
	assert.Len(t, byIndex, 3)
	assert.Equal(t, []string{"035400000", "035416000", "035416001"}, codesOf(byIndex[0]))
	assert.Len(t, byIndex[1], 3)
	assert.Len(t, byIndex[2], 3)
}

func TestMatcher_MatchTable_NeedsInterlevelColumn(t *testing.T) {
	m := newTestMatcher(t)

	table, err := catalog.ReadCSV("sales.csv", strings.NewReader("sku,amount\nA1,10\n"))
	require.NoError(t, err)

	_, err = m.MatchTable(table)
	assert.True(t, domain.HasCode(err, domain.CodeMatchColumn))
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
