package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/Roof-ER21/roof-hr-sub004/internal/config"
	"github.com/Roof-ER21/roof-hr-sub004/internal/extract"
	"github.com/Roof-ER21/roof-hr-sub004/internal/match"
	"github.com/Roof-ER21/roof-hr-sub004/internal/model"
)

// stubRoster serves a fixed snapshot without touching a backing store.
type stubRoster struct {
	records []model.EmployeeRecord
	err     error
}

func (s *stubRoster) Snapshot(context.Context) ([]model.EmployeeRecord, error) {
	return s.records, s.err
}

func testAPIServer(t *testing.T, src *stubRoster) *apiServer {
	t.Helper()
	cfg = &config.Config{}
	cfg.Match.AutoMatchThreshold = 80
	cfg.Match.SuggestionThreshold = 75
	cfg.Match.MinCandidateScore = 40
	cfg.Match.MaxSuggestions = 5

	return &apiServer{
		extractor: extract.New(nil),
		matcher:   match.New(nil, match.Thresholds{}, nil),
		roster:    src,
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestHandleParse(t *testing.T) {
	api := testAPIServer(t, &stubRoster{})

	rr := postJSON(t, api.handleParse, "/v1/certificates/parse", map[string]string{
		"text": "INSURED\nJohn Doe\n123 Main St\nCOMMERCIAL GENERAL LIABILITY\n$1,000,000",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	var cert model.ParsedCertificate
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cert))
	assert.Equal(t, "John Doe", cert.InsuredName)
	assert.Equal(t, model.DocTypeGeneralLiability, cert.DocumentType)
}

func TestHandleParse_EmptyText(t *testing.T) {
	api := testAPIServer(t, &stubRoster{})

	rr := postJSON(t, api.handleParse, "/v1/certificates/parse", map[string]string{"text": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestHandleParse_BadBody(t *testing.T) {
	api := testAPIServer(t, &stubRoster{})

	req := httptest.NewRequest(http.MethodPost, "/v1/certificates/parse", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	api.handleParse(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleMatch(t *testing.T) {
	api := testAPIServer(t, &stubRoster{records: []model.EmployeeRecord{
		{ID: "e1", FirstName: "John", LastName: "Smith", Email: "john.smith@roofer.com", Active: true},
	}})

	rr := postJSON(t, api.handleMatch, "/v1/employees/match", map[string]string{"name": "John Smith"})

	assert.Equal(t, http.StatusOK, rr.Code)
	var result model.MatchResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, model.MatchExact, result.MatchType)
	assert.Equal(t, "e1", result.EmployeeID)
}

func TestHandleMatch_RosterUnavailable(t *testing.T) {
	api := testAPIServer(t, &stubRoster{err: errors.New("directory down")})

	rr := postJSON(t, api.handleMatch, "/v1/employees/match", map[string]string{"name": "John Smith"})
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestHandleProcess(t *testing.T) {
	api := testAPIServer(t, &stubRoster{records: []model.EmployeeRecord{
		{ID: "e1", FirstName: "John", LastName: "Doe", Email: "john.doe@roofer.com", Active: true},
	}})

	rr := postJSON(t, api.handleProcess, "/v1/certificates/process", map[string]string{
		"text": "INSURED\nJohn Doe\n123 Main St\nCOMMERCIAL GENERAL LIABILITY\n$1,000,000",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Certificate model.ParsedCertificate `json:"certificate"`
		Match       *model.MatchResult      `json:"match"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "John Doe", resp.Certificate.InsuredName)
	require.NotNil(t, resp.Match)
	assert.Equal(t, "e1", resp.Match.EmployeeID)
}

func TestHandleProcess_NoName(t *testing.T) {
	api := testAPIServer(t, &stubRoster{})

	rr := postJSON(t, api.handleProcess, "/v1/certificates/process", map[string]string{
		"text": extract.NoTextMarker,
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Certificate model.ParsedCertificate `json:"certificate"`
		Match       *model.MatchResult      `json:"match"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Certificate.TextUnavailable)
	assert.Nil(t, resp.Match)
}

func TestThrottle(t *testing.T) {
	// Burst of one: the second immediate request is rejected.
	limiter := rate.NewLimiter(rate.Limit(1), 1)
	handler := throttle(limiter)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestRequestID(t *testing.T) {
	handler := requestID(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}
