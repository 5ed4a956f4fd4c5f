// Affine-gap pairwise alignment (Gotoh three-state dynamic programming).

package align

import (
	"errors"
	"fmt"
	"math"
)

// Gap is the padding symbol used in aligned sequences.
const Gap byte = '-'

// Mode selects the alignment semantics.
type Mode int

const (
	// Global forces the optimal path to span both sequences end to end
	// (Needleman-Wunsch).
	Global Mode = iota
	// Local reports only the best-scoring segment (Smith-Waterman);
	// unaligned flanks are dropped, not gap-padded.
	Local
)

func (m Mode) String() string {
	if m == Local {
		return "local"
	}
	return "global"
}

// ParseMode maps the wire-level algorithm name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "global", "":
		return Global, nil
	case "local":
		return Local, nil
	}
	return Global, fmt.Errorf("unknown algorithm %q", s)
}

// ErrEmptySequence is returned when either input to an alignment is empty.
var ErrEmptySequence = errors.New("empty sequence")

// Alignment is a pair of equal-length gap-padded sequences. For local mode
// RefStart/QueryStart give the original position of the first column on each
// side; both are 0 in global mode.
type Alignment struct {
	Ref        string
	Query      string
	Score      float64
	RefStart   int
	QueryStart int
}

// Length returns the shared column count.
func (a Alignment) Length() int { return len(a.Ref) }

// Traceback states. stateM ends in an aligned pair, stateX in a gap on the
// query side (a reference symbol is consumed), stateY in a gap on the
// reference side. stateStop marks the path origin.
const (
	stateM uint8 = iota
	stateX
	stateY
	stateStop
)

var negInf = math.Inf(-1)

// Align computes an optimal global or local alignment of ref and query.
//
// Three flat (m+1)x(n+1) score grids track the best score ending in each
// state, with one predecessor grid per state for the traceback. Ties are
// broken deterministically: an aligned pair beats a gap in the query, which
// beats a gap in the reference, and opening a gap beats extending one of
// equal score. Runs in O(mn) time and space.
func Align(ref, query string, mode Mode, sc Scoring) (Alignment, error) {
	if len(ref) == 0 || len(query) == 0 {
		return Alignment{}, fmt.Errorf("align %s: %w", mode, ErrEmptySequence)
	}

	m, n := len(ref), len(query)
	w := n + 1
	size := (m + 1) * w

	gm := make([]float64, size) // best ending in an aligned pair
	gx := make([]float64, size) // best ending in a query-side gap
	gy := make([]float64, size) // best ending in a reference-side gap
	tm := make([]uint8, size)
	tx := make([]uint8, size)
	ty := make([]uint8, size)

	gx[0], gy[0] = negInf, negInf
	tm[0] = stateStop

	for i := 1; i <= m; i++ {
		at := i * w
		gy[at] = negInf
		if mode == Local {
			gm[at], gx[at] = 0, negInf
			tm[at] = stateStop
			continue
		}
		gm[at] = negInf
		gx[at] = sc.GapOpen + float64(i-1)*sc.GapExtend
		if i == 1 {
			tx[at] = stateM
		} else {
			tx[at] = stateX
		}
	}
	for j := 1; j <= n; j++ {
		gx[j] = negInf
		if mode == Local {
			gm[j], gy[j] = 0, negInf
			tm[j] = stateStop
			continue
		}
		gm[j] = negInf
		gy[j] = sc.GapOpen + float64(j-1)*sc.GapExtend
		if j == 1 {
			ty[j] = stateM
		} else {
			ty[j] = stateY
		}
	}

	bestScore, bestI, bestJ := 0.0, 0, 0

	for i := 1; i <= m; i++ {
		row := i * w
		diag := (i - 1) * w
		for j := 1; j <= n; j++ {
			at := row + j

			prev, from := best3(gm[diag+j-1], gx[diag+j-1], gy[diag+j-1])
			v := prev + sc.Score(ref[i-1], query[j-1])
			if mode == Local && v <= 0 {
				gm[at] = 0
				tm[at] = stateStop
			} else {
				gm[at] = v
				tm[at] = from
			}

			up := diag + j
			if open, ext := gm[up]+sc.GapOpen, gx[up]+sc.GapExtend; open >= ext {
				gx[at] = open
				tx[at] = stateM
			} else {
				gx[at] = ext
				tx[at] = stateX
			}

			left := at - 1
			if open, ext := gm[left]+sc.GapOpen, gy[left]+sc.GapExtend; open >= ext {
				gy[at] = open
				ty[at] = stateM
			} else {
				gy[at] = ext
				ty[at] = stateY
			}

			if mode == Local && gm[at] > bestScore {
				bestScore, bestI, bestJ = gm[at], i, j
			}
		}
	}

	if mode == Local {
		if bestScore == 0 {
			// Nothing scores above zero; the best local alignment is empty.
			return Alignment{Score: 0}, nil
		}
		refAln, qryAln, ri, qi := tracebackLocal(ref, query, gm, tm, tx, ty, w, bestI, bestJ)
		return Alignment{Ref: refAln, Query: qryAln, Score: bestScore, RefStart: ri, QueryStart: qi}, nil
	}

	end := m*w + n
	score, state := best3(gm[end], gx[end], gy[end])
	refAln, qryAln := tracebackGlobal(ref, query, tm, tx, ty, w, state, m, n)
	return Alignment{Ref: refAln, Query: qryAln, Score: score}, nil
}

// best3 picks the maximum of the three state scores, preferring the aligned
// pair, then the query-side gap, then the reference-side gap.
func best3(vm, vx, vy float64) (float64, uint8) {
	if vm >= vx && vm >= vy {
		return vm, stateM
	}
	if vx >= vy {
		return vx, stateX
	}
	return vy, stateY
}

func tracebackGlobal(ref, query string, tm, tx, ty []uint8, w int, state uint8, i, j int) (string, string) {
	r := make([]byte, 0, len(ref)+len(query))
	q := make([]byte, 0, len(ref)+len(query))

	for i > 0 || j > 0 {
		at := i*w + j
		switch state {
		case stateM:
			r = append(r, ref[i-1])
			q = append(q, query[j-1])
			state = tm[at]
			i--
			j--
		case stateX:
			r = append(r, ref[i-1])
			q = append(q, Gap)
			state = tx[at]
			i--
		case stateY:
			r = append(r, Gap)
			q = append(q, query[j-1])
			state = ty[at]
			j--
		}
	}

	reverse(r)
	reverse(q)
	return string(r), string(q)
}

// tracebackLocal walks back from the best cell until it reaches a
// zero-clamped cell, then reports the aligned segment and its original
// start positions.
func tracebackLocal(ref, query string, gm []float64, tm, tx, ty []uint8, w, i, j int) (string, string, int, int) {
	r := make([]byte, 0, i+j)
	q := make([]byte, 0, i+j)

	state := stateM
	for {
		at := i*w + j
		if state == stateM && gm[at] == 0 {
			break
		}
		switch state {
		case stateM:
			r = append(r, ref[i-1])
			q = append(q, query[j-1])
			state = tm[at]
			i--
			j--
		case stateX:
			r = append(r, ref[i-1])
			q = append(q, Gap)
			state = tx[at]
			i--
		case stateY:
			r = append(r, Gap)
			q = append(q, query[j-1])
			state = ty[at]
			j--
		}
	}

	reverse(r)
	reverse(q)
	return string(r), string(q), i, j
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
