package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumyai/alignview/pkg/align"
)

func newTestContext() *ServiceContext {
	return &ServiceContext{
		Jobs: NewAlignJobManager(),
	}
}

func newTestRouter(sctx *ServiceContext) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/align", sctx.AlignHandler)
	mux.HandleFunc("POST /api/align/async", sctx.AlignAsyncHandler)
	mux.HandleFunc("GET /api/align/jobs/{job_id}", sctx.AlignJobHandler)
	mux.HandleFunc("GET /api/search", sctx.SearchHandler)
	mux.HandleFunc("POST /api/parse-text", sctx.ParseTextHandler)
	mux.HandleFunc("GET /api/detect-type", sctx.DetectTypeHandler)
	mux.HandleFunc("GET /api/v1/health", HealthCheck)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAlignHandler(t *testing.T) {
	mux := newTestRouter(newTestContext())

	body := `{"ref_sequence":"ACDEFG","query_sequence":"ACDFG","algorithm":"global"}`
	rec := doRequest(t, mux, http.MethodPost, "/api/align", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var res align.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "ACDEFG", res.Reference)
	assert.Equal(t, "ACD-FG", res.Query)
	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, 6, res.Length)

	// The gap column comes over the wire as null.
	assert.Contains(t, rec.Body.String(), `"query_indices":[0,1,2,null,3,4]`)
}

func TestAlignHandler_ScoringOverride(t *testing.T) {
	mux := newTestRouter(newTestContext())

	// Cheap gaps flip the optimum from mismatching to gapping.
	body := `{"ref_sequence":"ACGT","query_sequence":"AGT",
		"scoring":{"match":1,"mismatch":-10,"gap_open":-1,"gap_extend":-1}}`
	rec := doRequest(t, mux, http.MethodPost, "/api/align", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var res align.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "A-GT", res.Query)
	assert.Equal(t, 2.0, res.Score)
}

func TestAlignHandler_BadRequests(t *testing.T) {
	mux := newTestRouter(newTestContext())

	tests := []struct {
		name string
		body string
	}{
		{"missing query", `{"ref_sequence":"ACGT"}`},
		{"missing ref", `{"query_sequence":"ACGT"}`},
		{"unknown algorithm", `{"ref_sequence":"ACGT","query_sequence":"ACGT","algorithm":"banded"}`},
		{"not json", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, mux, http.MethodPost, "/api/align", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestAlignAsyncHandler(t *testing.T) {
	sctx := newTestContext()
	mux := newTestRouter(sctx)

	body := `{"ref_sequence":"ACGT","query_sequence":"GTAC","is_circular":true}`
	rec := doRequest(t, mux, http.MethodPost, "/api/align/async", body)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var job AlignJob
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	require.NotEmpty(t, job.ID)

	deadline := time.Now().Add(5 * time.Second)
	for {
		rec = doRequest(t, mux, http.MethodGet, "/api/align/jobs/"+job.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))

		if job.Status == AlignJobCompleted {
			break
		}
		require.NotEqual(t, AlignJobFailed, job.Status, "job failed: %s", job.Error)
		require.True(t, time.Now().Before(deadline), "job did not finish in time")
		time.Sleep(10 * time.Millisecond)
	}

	require.NotNil(t, job.Result)
	assert.Equal(t, 8.0, job.Result.Score)
}

func TestAlignJobHandler_Unknown(t *testing.T) {
	mux := newTestRouter(newTestContext())

	rec := doRequest(t, mux, http.MethodGet, "/api/align/jobs/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchHandler(t *testing.T) {
	mux := newTestRouter(newTestContext())

	rec := doRequest(t, mux, http.MethodGet, "/api/search?sequence=ACGTACGT&pattern=ACGT", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var matches []align.Match
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, 3, matches[0].End)
	assert.Equal(t, 4, matches[1].Start)
	assert.Equal(t, 7, matches[1].End)
}

func TestSearchHandler_NoMatches(t *testing.T) {
	mux := newTestRouter(newTestContext())

	rec := doRequest(t, mux, http.MethodGet, "/api/search?sequence=ACGT&pattern=TTTT", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestSearchHandler_BadRegex(t *testing.T) {
	mux := newTestRouter(newTestContext())

	rec := doRequest(t, mux, http.MethodGet, "/api/search?sequence=ACGT&pattern=%5B&regex=true", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "invalid search pattern")
}

func TestSearchHandler_BadRegexFlag(t *testing.T) {
	mux := newTestRouter(newTestContext())

	rec := doRequest(t, mux, http.MethodGet, "/api/search?sequence=ACGT&pattern=A&regex=banana", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
