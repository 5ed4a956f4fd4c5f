// Scoring parameters and residue similarity classification.

package align

// Scoring holds the four alignment parameters. A gap of length L costs
// GapOpen + (L-1)*GapExtend.
type Scoring struct {
	Match     float64
	Mismatch  float64
	GapOpen   float64
	GapExtend float64
}

// DefaultScoring returns the parameters the service uses unless the caller
// overrides them.
func DefaultScoring() Scoring {
	return Scoring{
		Match:     2,
		Mismatch:  -1,
		GapOpen:   -10,
		GapExtend: -0.5,
	}
}

// Score compares two symbols case-insensitively.
func (s Scoring) Score(a, b byte) float64 {
	if toUpper(a) == toUpper(b) {
		return s.Match
	}
	return s.Mismatch
}

// Amino acid groups by physicochemical property. Membership is encoded as a
// group number per residue; 0 means no group.
var similarGroup = func() [256]uint8 {
	groups := []string{
		"GAVLI", // small hydrophobic
		"FYW",   // aromatic
		"CM",    // sulfur-containing
		"ST",    // hydroxyl
		"KRH",   // positive charge
		"DE",    // negative charge
		"NQ",    // amide
		"P",     // proline
	}
	var tab [256]uint8
	for n, g := range groups {
		for i := 0; i < len(g); i++ {
			tab[g[i]] = uint8(n + 1)
		}
	}
	return tab
}()

// Similar reports whether two residues are identical or belong to the same
// similarity group. Nucleotides and unknown symbols are only similar to
// themselves. Used for the similarity metric, never for alignment scoring.
func Similar(a, b byte) bool {
	a, b = toUpper(a), toUpper(b)
	if a == b {
		return true
	}
	ga, gb := similarGroup[a], similarGroup[b]
	return ga != 0 && ga == gb
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
