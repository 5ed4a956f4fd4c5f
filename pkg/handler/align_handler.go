package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/yumyai/alignview/pkg/align"
	"github.com/yumyai/alignview/pkg/handler/request"
)

// ErrorResponse is the JSON envelope for request failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func decodeAlignRequest(w http.ResponseWriter, r *http.Request) (request.Align, align.Mode, bool) {
	var req request.Align
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, align.Global, false
	}

	if req.RefSequence == "" || req.QuerySequence == "" {
		writeError(w, http.StatusBadRequest, "both sequences required")
		return req, align.Global, false
	}

	mode, err := align.ParseMode(req.Algorithm)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, align.Global, false
	}

	return req, mode, true
}

func scoringFor(req request.Align) align.Scoring {
	if req.Scoring == nil {
		return align.DefaultScoring()
	}
	return align.Scoring{
		Match:     req.Scoring.Match,
		Mismatch:  req.Scoring.Mismatch,
		GapOpen:   req.Scoring.GapOpen,
		GapExtend: req.Scoring.GapExtend,
	}
}

// AlignHandler runs one alignment synchronously and returns the result.
func (sctx *ServiceContext) AlignHandler(w http.ResponseWriter, r *http.Request) {
	req, mode, ok := decodeAlignRequest(w, r)
	if !ok {
		return
	}

	result, err := align.AlignSequences(req.RefSequence, req.QuerySequence, req.IsCircular, mode, scoringFor(req))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AlignAsyncHandler queues an alignment and returns the job immediately.
// Meant for circular alignments of longer sequences, where the rotation
// search makes the request too slow to hold open.
func (sctx *ServiceContext) AlignAsyncHandler(w http.ResponseWriter, r *http.Request) {
	req, mode, ok := decodeAlignRequest(w, r)
	if !ok {
		return
	}

	job := sctx.Jobs.NewJob()
	go func() {
		sctx.Jobs.SetRunning(job.ID)
		result, err := align.AlignSequences(req.RefSequence, req.QuerySequence, req.IsCircular, mode, scoringFor(req))
		if err != nil {
			sctx.Jobs.FailJob(job.ID, err)
			return
		}
		sctx.Jobs.CompleteJob(job.ID, result)
	}()

	writeJSON(w, http.StatusAccepted, job)
}

// AlignJobHandler reports the state of a queued alignment.
func (sctx *ServiceContext) AlignJobHandler(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("job_id")

	job, ok := sctx.Jobs.GetJob(jobID)
	if !ok {
		writeError(w, http.StatusNotFound, "no such job: "+jobID)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// SearchHandler finds pattern occurrences in a sequence.
func (sctx *ServiceContext) SearchHandler(w http.ResponseWriter, r *http.Request) {
	sequence := r.URL.Query().Get("sequence")
	pattern := r.URL.Query().Get("pattern")

	useRegex := false
	if raw := r.URL.Query().Get("regex"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "regex needs to be a bool-like string")
			return
		}
		useRegex = parsed
	}

	matches, err := align.Search(sequence, pattern, useRegex)
	if err != nil {
		var perr *align.PatternError
		if errors.As(err, &perr) {
			writeError(w, http.StatusBadRequest, perr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if matches == nil {
		matches = []align.Match{}
	}
	writeJSON(w, http.StatusOK, matches)
}
