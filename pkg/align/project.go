// Coordinate projection between alignment columns and original sequence
// positions, plus identity/similarity metrics.

package align

import (
	"bytes"
	"encoding/json"
	"math"
)

// GapIndex marks an alignment column that is a gap on the given side.
const GapIndex = -1

// Side selects which sequence of an alignment a coordinate refers to.
type Side int

const (
	SideReference Side = iota
	SideQuery
)

// Indices holds one original-sequence position per alignment column, with
// GapIndex for gap columns. The JSON form uses null for gaps.
type Indices []int

func (x Indices) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range x {
		if i > 0 {
			buf.WriteByte(',')
		}
		if v == GapIndex {
			buf.WriteString("null")
		} else {
			b, _ := json.Marshal(v)
			buf.Write(b)
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (x *Indices) UnmarshalJSON(data []byte) error {
	var raw []*int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Indices, len(raw))
	for i, p := range raw {
		if p == nil {
			out[i] = GapIndex
		} else {
			out[i] = *p
		}
	}
	*x = out
	return nil
}

// IndexMap relates alignment columns to 0-indexed original positions on
// both sides. Present indices on each side are strictly increasing (modulo
// the rotation wrap on a circular query).
type IndexMap struct {
	Ref   Indices
	Query Indices
}

// BuildIndexMap walks the alignment columns once, advancing an independent
// position counter per side. Query positions are mapped back through the
// rotation offset of a circular alignment; pass rotation 0 for linear
// queries. queryLen is the length of the original, unaligned query.
func BuildIndexMap(aln Alignment, rotation, queryLen int) IndexMap {
	n := aln.Length()
	m := IndexMap{
		Ref:   make(Indices, 0, n),
		Query: make(Indices, 0, n),
	}

	refPos := aln.RefStart
	qryPos := aln.QueryStart
	for i := 0; i < n; i++ {
		if aln.Ref[i] == Gap {
			m.Ref = append(m.Ref, GapIndex)
		} else {
			m.Ref = append(m.Ref, refPos)
			refPos++
		}
		if aln.Query[i] == Gap {
			m.Query = append(m.Query, GapIndex)
		} else {
			orig := qryPos
			if queryLen > 0 {
				orig = (qryPos + rotation) % queryLen
			}
			m.Query = append(m.Query, orig)
			qryPos++
		}
	}
	return m
}

// Region is an externally supplied annotated span, inclusive on both ends,
// 0-indexed in the original unaligned sequence.
type Region struct {
	Start int
	End   int
}

// ProjectRegion returns the alignment column holding the region's start
// position on the given side. A miss reports ok=false rather than an
// error; the caller treats that as "not locatable".
func ProjectRegion(r Region, m IndexMap, side Side) (int, bool) {
	idx := m.Ref
	if side == SideQuery {
		idx = m.Query
	}
	for col, pos := range idx {
		if pos == r.Start {
			return col, true
		}
	}
	return 0, false
}

// Metrics computes identity and similarity percentages over the columns
// where both sides are non-gap, rounded to one decimal place. A zero
// denominator yields zero. Similarity groups only apply to protein
// alphabets; for nucleotides, similar means identical.
func Metrics(refAligned, queryAligned string, protein bool) (identity, similarity float64) {
	pairs, matches, similar := 0, 0, 0
	for i := 0; i < len(refAligned) && i < len(queryAligned); i++ {
		r, q := refAligned[i], queryAligned[i]
		if r == Gap || q == Gap {
			continue
		}
		pairs++
		if toUpper(r) == toUpper(q) {
			matches++
			similar++
		} else if protein && Similar(r, q) {
			similar++
		}
	}
	if pairs == 0 {
		return 0, 0
	}
	identity = round1(float64(matches) / float64(pairs) * 100)
	similarity = round1(float64(similar) / float64(pairs) * 100)
	return identity, similarity
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
