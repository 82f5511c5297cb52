package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "identical", a: "Pampanga", b: "Pampanga", want: 100},
		{name: "case and punctuation", a: "Barangay No. 1 San Lorenzo", b: "barangay no 1 san lorenzo", want: 100},
		{name: "one letter short", a: "Pampang", b: "Pampanga", want: 93},
		{name: "prefix of a longer name", a: "Laoag", b: "Laoag City", want: 90},
		{name: "empty query", a: "", b: "Pampanga", want: 0},
		{name: "punctuation only", a: "...", b: "Pampanga", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.a, tt.b))
			assert.Equal(t, tt.want, Score(tt.b, tt.a), "score is symmetric")
		})
	}
}

func TestScore_Thresholds(t *testing.T) {
	assert.GreaterOrEqual(t, Score("City of San Fernando", "San Fernando City"), ScoreCutoff, "word order")
	assert.Less(t, Score("Atlantis", "La Union"), ScoreCutoff)
	assert.Less(t, Score("Laoag", "Batac City"), ScoreCutoff)
	assert.Less(t, Score("Alasas", "Baliti"), ScoreCutoff)
}

func TestLCS(t *testing.T) {
	assert.Equal(t, 3, lcs([]rune("abcde"), []rune("ace")))
	assert.Equal(t, 0, lcs([]rune("abc"), []rune("")))
	assert.Equal(t, 4, lcs([]rune("niño"), []rune("niño")))
}
