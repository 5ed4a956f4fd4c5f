// FASTA and pasted-text parsing.

package model

import (
	"bufio"
	"strings"
)

// ParseFasta parses FASTA text into sequences. The full header line becomes
// the name and its first whitespace-separated token the ID. Text with no
// header at all is accepted as a single pasted sequence when it is purely
// alphabetic after stripping whitespace.
func ParseFasta(content string) []Sequence {
	var sequences []Sequence

	var (
		id, name string
		buf      strings.Builder
		inRecord bool
	)

	flush := func() {
		if !inRecord || buf.Len() == 0 {
			return
		}
		sequences = append(sequences, Sequence{
			ID:       id,
			Name:     name,
			Sequence: buf.String(),
			Source:   "fasta",
		})
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			header := strings.TrimSpace(line[1:])
			name = header
			id = header
			if fields := strings.Fields(header); len(fields) > 0 {
				id = fields[0]
			}
			buf.Reset()
			inRecord = true
			continue
		}
		if inRecord {
			buf.WriteString(line)
		}
	}
	flush()

	if len(sequences) == 0 {
		if clean := stripSpace(content); clean != "" && isAlpha(clean) {
			sequences = append(sequences, Sequence{
				ID:       "pasted",
				Name:     "Pasted sequence",
				Sequence: clean,
				Source:   "paste",
			})
		}
	}

	return sequences
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return s != ""
}
