// Client for the UniProt REST API.

package uniprot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/yumyai/alignview/pkg/db"
	"github.com/yumyai/alignview/pkg/model"
)

const DefaultBaseURL = "https://rest.uniprot.org/uniprotkb"

// Display colors per UniProt feature type. Unlisted types fall back to grey.
var featureColors = map[string]string{
	"Chain":            "#3498db",
	"Domain":           "#9b59b6",
	"Region":           "#1abc9c",
	"Binding site":     "#e74c3c",
	"Active site":      "#e74c3c",
	"Site":             "#f39c12",
	"Modified residue": "#27ae60",
	"Helix":            "#e91e63",
	"Beta strand":      "#2196f3",
	"Turn":             "#4caf50",
	"Disulfide bond":   "#ff9800",
	"Signal":           "#00bcd4",
}

const defaultFeatureColor = "#95a5a6"

// Client fetches sequence records with their annotated features. When a
// store is attached, it is consulted before the network and updated after
// a successful fetch.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Store   *db.SequenceStore
}

// NewClient builds a client against the public UniProt endpoint.
func NewClient(store *db.SequenceStore) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Store:   store,
	}
}

// entry mirrors the fields of the UniProtKB JSON document this service reads.
type entry struct {
	PrimaryAccession string `json:"primaryAccession"`
	Sequence         struct {
		Value string `json:"value"`
	} `json:"sequence"`
	Organism struct {
		ScientificName string `json:"scientificName"`
	} `json:"organism"`
	ProteinDescription struct {
		RecommendedName struct {
			FullName struct {
				Value string `json:"value"`
			} `json:"fullName"`
		} `json:"recommendedName"`
	} `json:"proteinDescription"`
	Features []struct {
		Type        string `json:"type"`
		Description string `json:"description"`
		Location    struct {
			Start struct {
				Value int `json:"value"`
			} `json:"start"`
			End struct {
				Value int `json:"value"`
			} `json:"end"`
		} `json:"location"`
	} `json:"features"`
}

// Fetch returns the sequence record for a UniProt accession.
func (c *Client) Fetch(ctx context.Context, accession string) (*model.Sequence, error) {
	if c.Store != nil {
		if seq, err := c.Store.Get(ctx, accession); err == nil {
			return seq, nil
		}
	}

	url := fmt.Sprintf("%s/%s.json", c.BaseURL, accession)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build uniprot request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uniprot request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("uniprot entry %q: unexpected status %s", accession, resp.Status)
	}

	var e entry
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		return nil, fmt.Errorf("failed to decode uniprot entry %q: %w", accession, err)
	}

	seq := e.toSequence(accession)

	if c.Store != nil {
		// Cache write failures do not fail the fetch.
		_ = c.Store.Put(ctx, accession, seq)
	}
	return seq, nil
}

func (e *entry) toSequence(accession string) *model.Sequence {
	id := e.PrimaryAccession
	if id == "" {
		id = accession
	}
	name := e.ProteinDescription.RecommendedName.FullName.Value
	if name == "" {
		name = accession
	}

	features := make([]model.Feature, 0, len(e.Features))
	for _, f := range e.Features {
		color, ok := featureColors[f.Type]
		if !ok {
			color = defaultFeatureColor
		}
		desc := f.Description
		if desc == "" {
			desc = f.Type
		}
		features = append(features, model.Feature{
			Type: f.Type,
			// UniProt locations are 1-indexed inclusive.
			Start:       f.Location.Start.Value - 1,
			End:         f.Location.End.Value - 1,
			Description: desc,
			Color:       color,
		})
	}

	return &model.Sequence{
		ID:       id,
		Name:     name,
		Sequence: e.Sequence.Value,
		Organism: e.Organism.ScientificName,
		Features: features,
		Source:   "uniprot",
	}
}
