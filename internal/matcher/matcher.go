// Package matcher links free-text addresses to reference location codes.
//
// A dataset row names a location at several administrative levels
// (interlevels), from province down to barangay. Each level is matched
// against the reference locations of that level, narrowed to the children
// of whatever the level above matched. Levels left blank or unmatched are
// filled in afterwards from the codes the other levels found.
package matcher

import (
	"slices"
	"strings"

	"linksight/internal/catalog"
	"linksight/internal/domain"
)

const (
	// MaxMatches caps the distinct location names kept per interlevel.
	MaxMatches = 10
	// ScoreCutoff is the lowest Score accepted as a match.
	ScoreCutoff = 80
	// ExactScore marks an exact match.
	ExactScore = 100
)

// Interlevel names.
const (
	LevelProvince         = "province"
	LevelCityMunicipality = "city_municipality"
	LevelBarangay         = "barangay"
)

// Interlevel maps one administrative level onto a dataset column and the
// reference interlevel labels that belong to it.
type Interlevel struct {
	Name            string
	DatasetField    string
	ReferenceFields []string
}

// DefaultInterlevels matches PSGC data from province down to barangay.
var DefaultInterlevels = []Interlevel{
	{Name: LevelProvince, DatasetField: "province", ReferenceFields: []string{"Prov", "Dist"}},
	{Name: LevelCityMunicipality, DatasetField: "city_municipality", ReferenceFields: []string{"City", "Mun", "SubMun"}},
	{Name: LevelBarangay, DatasetField: "barangay", ReferenceFields: []string{"Bgy"}},
}

// Location is one row of the reference table.
type Location struct {
	Code                 string `json:"code" yaml:"code"`
	Interlevel           string `json:"interlevel" yaml:"interlevel"`
	Name                 string `json:"location" yaml:"location"`
	ProvinceCode         string `json:"province_code,omitempty" yaml:"province_code,omitempty"`
	CityMunicipalityCode string `json:"city_municipality_code,omitempty" yaml:"city_municipality_code,omitempty"`
}

// codeFor returns the location's code at the given level. Levels without a
// code column, such as barangay, report false.
func (l Location) codeFor(level string) (string, bool) {
	switch level {
	case LevelProvince:
		return l.ProvinceCode, true
	case LevelCityMunicipality:
		return l.CityMunicipalityCode, true
	default:
		return "", false
	}
}

func (l *Location) setCode(level, code string) {
	switch level {
	case LevelProvince:
		l.ProvinceCode = code
	case LevelCityMunicipality:
		l.CityMunicipalityCode = code
	}
}

// Match is a candidate reference location for one dataset row.
type Match struct {
	Index    int `json:"index" yaml:"index"`
	Location `yaml:",inline"`
	Score int `json:"score" yaml:"score"`
}

// Matcher matches dataset rows against a fixed reference table.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	reference   []Location
	interlevels []Interlevel
}

// New creates a matcher. Interlevels run from the highest level down.
func New(reference []Location, interlevels []Interlevel) *Matcher {
	if len(interlevels) == 0 {
		interlevels = DefaultInterlevels
	}
	return &Matcher{
		reference:   reference,
		interlevels: interlevels,
	}
}

// Match returns the candidate locations for one dataset row, keyed by each
// interlevel's DatasetField. Every match carries index.
func (m *Matcher) Match(index int, row map[string]string) []Match {
	var (
		matches  []Match
		missing  []Interlevel
		codes    []string
		previous Interlevel
	)

	for _, level := range m.interlevels {
		query := strings.TrimSpace(row[level.DatasetField])
		if query == "" {
			missing = append(missing, level)
			continue
		}

		found := bestMatches(query, m.subset(level, codes, previous))
		if len(found) == 0 {
			missing = append(missing, level)
			continue
		}

		codes = codes[:0:0]
		for _, f := range found {
			codes = append(codes, f.Code)
		}
		matches = append(matches, found...)
		previous = level
	}

	matches = m.fillMissing(missing, matches)
	for i := range matches {
		matches[i].Index = index
	}
	return matches
}

// MatchTable matches every row of an uploaded table. The table must carry
// at least one interlevel column.
func (m *Matcher) MatchTable(table *catalog.Table) ([]Match, error) {
	columns := make(map[string]int, len(m.interlevels))
	for _, level := range m.interlevels {
		if idx, ok := table.Column(level.DatasetField); ok {
			columns[level.DatasetField] = idx
		}
	}
	if len(columns) == 0 {
		fields := make([]string, 0, len(m.interlevels))
		for _, level := range m.interlevels {
			fields = append(fields, level.DatasetField)
		}
		return nil, domain.New(domain.CodeMatchColumn,
			"File needs at least one of the columns: "+strings.Join(fields, ", ")).
			WithField("file")
	}

	var matches []Match
	for i := range table.Rows {
		row := make(map[string]string, len(columns))
		for field, idx := range columns {
			row[field] = table.Value(i, idx)
		}
		matches = append(matches, m.Match(i, row)...)
	}
	return matches, nil
}

// subset returns the reference locations of level, restricted to children
// of the codes matched at the previous level when there are any.
func (m *Matcher) subset(level Interlevel, codes []string, previous Interlevel) []Location {
	var out []Location
	for _, loc := range m.reference {
		if !slices.Contains(level.ReferenceFields, loc.Interlevel) {
			continue
		}
		if len(codes) > 0 {
			parent, _ := loc.codeFor(previous.Name)
			if !slices.Contains(codes, parent) {
				continue
			}
		}
		out = append(out, loc)
	}
	return out
}

// bestMatches scores each distinct location name against query and keeps
// the MaxMatches best at or above ScoreCutoff. Exact matches, when present,
// replace everything else.
func bestMatches(query string, candidates []Location) []Match {
	var names []string
	byName := make(map[string][]Location)
	for _, loc := range candidates {
		if _, seen := byName[loc.Name]; !seen {
			names = append(names, loc.Name)
		}
		byName[loc.Name] = append(byName[loc.Name], loc)
	}

	type scored struct {
		name  string
		score int
	}
	var hits []scored
	for _, name := range names {
		if s := Score(query, name); s >= ScoreCutoff {
			hits = append(hits, scored{name: name, score: s})
		}
	}
	slices.SortStableFunc(hits, func(a, b scored) int { return b.score - a.score })
	if len(hits) > MaxMatches {
		hits = hits[:MaxMatches]
	}

	if len(hits) > 0 && hits[0].score == ExactScore {
		exact := 0
		for exact < len(hits) && hits[exact].score == ExactScore {
			exact++
		}
		hits = hits[:exact]
	}

	var out []Match
	for _, hit := range hits {
		for _, loc := range byName[hit.name] {
			out = append(out, Match{Location: loc, Score: hit.score})
		}
	}
	return out
}

// fillMissing adds rows for interlevels that were blank or unmatched. Levels
// with a code column take the reference location the other matches point
// at. The lowest level gets placeholders carrying the parent code so the
// row can still be joined later.
func (m *Matcher) fillMissing(missing []Interlevel, matches []Match) []Match {
	for _, level := range missing {
		if _, ok := (Location{}).codeFor(level.Name); !ok {
			parent, ok := m.nextHigher(level)
			if !ok || len(level.ReferenceFields) == 0 {
				continue
			}

			seen := make(map[string]bool)
			for _, existing := range slices.Clone(matches) {
				code, _ := existing.codeFor(parent.Name)
				if code == "" || seen[code] {
					continue
				}
				seen[code] = true

				placeholder := Match{Location: Location{Interlevel: level.ReferenceFields[0]}}
				placeholder.setCode(parent.Name, code)
				matches = append(matches, placeholder)
			}
			continue
		}

		codes := make(map[string]bool)
		for _, existing := range matches {
			if code, _ := existing.codeFor(level.Name); code != "" {
				codes[code] = true
			}
		}
		for _, loc := range m.reference {
			if codes[loc.Code] {
				matches = append(matches, Match{Location: loc, Score: ExactScore})
			}
		}
	}
	return matches
}

// nextHigher walks up from the lowest interlevel and returns the first one
// that is not level.
func (m *Matcher) nextHigher(level Interlevel) (Interlevel, bool) {
	for i := len(m.interlevels) - 1; i >= 0; i-- {
		if m.interlevels[i].Name != level.Name {
			return m.interlevels[i], true
		}
	}
	return Interlevel{}, false
}
