package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yumyai/alignview/pkg/handler/request"
	"github.com/yumyai/alignview/pkg/model"
)

// UniProtHandler fetches a sequence with its annotated features by accession.
func (sctx *ServiceContext) UniProtHandler(w http.ResponseWriter, r *http.Request) {
	accession := r.PathValue("accession")
	if accession == "" {
		writeError(w, http.StatusBadRequest, "accession required")
		return
	}

	seq, err := sctx.UniProt.Fetch(r.Context(), accession)
	if err != nil {
		writeError(w, http.StatusNotFound, "UniProt entry not found: "+accession)
		return
	}

	writeJSON(w, http.StatusOK, seq)
}

// ParseTextHandler parses pasted FASTA or raw sequence text.
func (sctx *ServiceContext) ParseTextHandler(w http.ResponseWriter, r *http.Request) {
	var req request.ParseText
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sequences := model.ParseFasta(req.Text)
	if len(sequences) == 0 {
		writeError(w, http.StatusBadRequest, "no valid sequences found")
		return
	}

	writeJSON(w, http.StatusOK, sequences)
}

// DetectTypeHandler classifies a sequence as dna or protein.
func (sctx *ServiceContext) DetectTypeHandler(w http.ResponseWriter, r *http.Request) {
	sequence := r.URL.Query().Get("sequence")

	writeJSON(w, http.StatusOK, map[string]string{
		"type": model.DetectType(sequence),
	})
}
