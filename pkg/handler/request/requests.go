// Request payloads accepted by the API.

package request

// Scoring overrides the default alignment parameters.
type Scoring struct {
	Match     float64 `json:"match"`
	Mismatch  float64 `json:"mismatch"`
	GapOpen   float64 `json:"gap_open"`
	GapExtend float64 `json:"gap_extend"`
}

// Align is the body of POST /api/align and /api/align/async.
type Align struct {
	RefSequence   string   `json:"ref_sequence"`
	QuerySequence string   `json:"query_sequence"`
	IsCircular    bool     `json:"is_circular"`
	Algorithm     string   `json:"algorithm"` // global (default) or local
	Scoring       *Scoring `json:"scoring,omitempty"`
}

// ParseText is the body of POST /api/parse-text.
type ParseText struct {
	Text string `json:"text"`
}
