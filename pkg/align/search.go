// Pattern search over a raw or aligned sequence.

package align

import (
	"fmt"
	"regexp"
	"strings"
)

// Match is an inclusive [Start, End] span in the searched sequence.
type Match struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// PatternError reports a regex pattern that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid search pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Search finds all non-overlapping occurrences of pattern in sequence,
// scanning left to right and resuming after the end of each match.
// Matching is case-insensitive in both modes. In regex mode a pattern that
// fails to compile is reported as a *PatternError, and zero-width matches
// are skipped. An empty pattern or sequence yields no matches.
func Search(sequence, pattern string, useRegex bool) ([]Match, error) {
	if sequence == "" || pattern == "" {
		return nil, nil
	}

	if useRegex {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Err: err}
		}
		var matches []Match
		for _, loc := range re.FindAllStringIndex(sequence, -1) {
			if loc[1] == loc[0] {
				continue
			}
			matches = append(matches, Match{
				Start: loc[0],
				End:   loc[1] - 1,
				Text:  sequence[loc[0]:loc[1]],
			})
		}
		return matches, nil
	}

	seq := strings.ToUpper(sequence)
	pat := strings.ToUpper(pattern)
	var matches []Match
	for pos := 0; ; {
		i := strings.Index(seq[pos:], pat)
		if i < 0 {
			break
		}
		start := pos + i
		end := start + len(pat)
		matches = append(matches, Match{
			Start: start,
			End:   end - 1,
			Text:  sequence[start:end],
		})
		pos = end
	}
	return matches, nil
}
