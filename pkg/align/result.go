// Alignment request pipeline: align, build the index map, derive metrics.

package align

import "strings"

// Result is the complete outcome of one alignment request. It is built
// once and never mutated afterwards.
type Result struct {
	Reference    string  `json:"reference"`
	Query        string  `json:"query"`
	RefIndices   Indices `json:"ref_indices"`
	QueryIndices Indices `json:"query_indices"`
	Score        float64 `json:"score"`
	Identity     float64 `json:"identity"`
	Similarity   float64 `json:"similarity"`
	Length       int     `json:"length"`
}

// IndexMap rebuilds the coordinate map from the result's aligned sequences.
func (r *Result) IndexMap() IndexMap {
	return IndexMap{Ref: r.RefIndices, Query: r.QueryIndices}
}

// AlignSequences runs the full pipeline for one request: pairwise or
// circular alignment, index-map construction, identity and similarity.
func AlignSequences(ref, query string, circular bool, mode Mode, sc Scoring) (*Result, error) {
	var (
		aln      Alignment
		rotation int
		err      error
	)
	if circular {
		aln, rotation, err = AlignCircular(ref, query, mode, sc)
	} else {
		aln, err = Align(ref, query, mode, sc)
	}
	if err != nil {
		return nil, err
	}

	im := BuildIndexMap(aln, rotation, len(query))

	protein := !isNucleotide(ref) || !isNucleotide(query)
	identity, similarity := Metrics(aln.Ref, aln.Query, protein)

	return &Result{
		Reference:    aln.Ref,
		Query:        aln.Query,
		RefIndices:   im.Ref,
		QueryIndices: im.Query,
		Score:        aln.Score,
		Identity:     identity,
		Similarity:   similarity,
		Length:       aln.Length(),
	}, nil
}

// isNucleotide reports whether more than 90% of the symbols are nucleotide
// codes. Similarity groups are suppressed for nucleotide inputs.
func isNucleotide(seq string) bool {
	if seq == "" {
		return false
	}
	count := 0
	for i := 0; i < len(seq); i++ {
		if strings.IndexByte("ATGCUN", toUpper(seq[i])) >= 0 {
			count++
		}
	}
	return float64(count)/float64(len(seq)) > 0.9
}
