// Model for sequences and their annotated features.

package model

// Feature is an annotated region of a sequence: 0-indexed inclusive span in
// the original, unaligned coordinates, with a category label and an opaque
// display color. Features are supplied by the data sources; the engine only
// projects their coordinates.
type Feature struct {
	Type        string `json:"type"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Sequence is one protein or nucleic acid record.
type Sequence struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Sequence string    `json:"sequence"`
	Organism string    `json:"organism,omitempty"`
	Features []Feature `json:"features"`
	Source   string    `json:"source"`
}

// Length returns the number of symbols.
func (s *Sequence) Length() int { return len(s.Sequence) }

// Sequence types reported by DetectType.
const (
	TypeDNA     = "dna"
	TypeProtein = "protein"
)

// DetectType classifies a sequence as dna or protein. A sequence whose
// symbols are more than 90% nucleotide codes is called dna.
func DetectType(sequence string) string {
	if sequence == "" {
		return TypeProtein
	}
	count := 0
	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'A', 'T', 'G', 'C', 'U', 'N', 'a', 't', 'g', 'c', 'u', 'n':
			count++
		}
	}
	if float64(count)/float64(len(sequence)) > 0.9 {
		return TypeDNA
	}
	return TypeProtein
}
