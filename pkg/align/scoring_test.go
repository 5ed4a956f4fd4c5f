package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoring_Score(t *testing.T) {
	sc := DefaultScoring()

	assert.Equal(t, 2.0, sc.Score('A', 'A'))
	assert.Equal(t, 2.0, sc.Score('a', 'A'), "comparison is case-insensitive")
	assert.Equal(t, -1.0, sc.Score('A', 'T'))
}

func TestSimilar(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want bool
	}{
		{"identical", 'W', 'W', true},
		{"small hydrophobic", 'A', 'V', true},
		{"aromatic", 'F', 'Y', true},
		{"sulfur", 'C', 'M', true},
		{"hydroxyl", 'S', 'T', true},
		{"positive", 'K', 'R', true},
		{"negative", 'D', 'E', true},
		{"amide", 'N', 'Q', true},
		{"across groups", 'K', 'D', false},
		{"proline is a singleton", 'P', 'G', false},
		{"case insensitive", 'k', 'R', true},
		{"ungrouped symbol", 'X', 'A', false},
		{"ungrouped identical", 'X', 'X', true},
		{"gap never similar", '-', 'A', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Similar(tt.a, tt.b))
			assert.Equal(t, tt.want, Similar(tt.b, tt.a), "similarity is symmetric")
		})
	}
}
