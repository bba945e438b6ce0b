package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dyluth/tailsum/pkg/sequence"
	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	solver, err := sequence.NewSolver(sequence.Default())
	require.NoError(t, err)
	return NewServer(solver, zap.NewNop())
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	s.Handler().ServeHTTP(w, req)
	return w
}

// =============================================================================
// Health / Alphabet
// =============================================================================

func TestHealth_ReturnsOK(t *testing.T) {
	w := do(t, newTestServer(t), "GET", "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
}

func TestAlphabet_ReturnsNumbersAndHits(t *testing.T) {
	w := do(t, newTestServer(t), "GET", "/v1/alphabet", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response alphabetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, sequence.DefaultNumbers(), response.Numbers)
	assert.Equal(t, sequence.DefaultHits(), response.Hits)
}

// =============================================================================
// Solve
// =============================================================================

func TestSolve_Found(t *testing.T) {
	w := do(t, newTestServer(t), "POST", "/v1/solve",
		`{"target":49,"req3rd":"hit","req2nd":"hit","reqLast":"hit"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res sequence.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Found)
	assert.Equal(t, 7, res.TotalLength)
	if diff := cmp.Diff([]int{13, 13, 16, 16, -3, -3, -3}, res.Sequence); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, sequence.Step{}, res.CumulativeSteps[0])
}

func TestSolve_OmittedConstraintsMeanAny(t *testing.T) {
	w := do(t, newTestServer(t), "POST", "/v1/solve", `{"target":20,"req2nd":7}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res sequence.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, []int{-3, 7, 16}, res.Sequence)
}

func TestSolve_NotFoundIsOK(t *testing.T) {
	w := do(t, newTestServer(t), "POST", "/v1/solve",
		`{"target":0,"req3rd":0,"req2nd":0,"reqLast":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"sequence":[],"body":[],"tail":[],"totalLength":0,"found":false,"cumulativeSteps":[]}`,
		w.Body.String())
}

func TestSolve_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing target", body: `{"reqLast":"hit"}`},
		{name: "invalid constraint", body: `{"target":1,"reqLast":"sometimes"}`},
		{name: "malformed json", body: `{"target":`},
		{name: "non-integer target", body: `{"target":"ten"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newTestServer(t), "POST", "/v1/solve", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.NotEmpty(t, response.Error)
		})
	}
}

// =============================================================================
// Middleware / Metrics
// =============================================================================

func TestRequestID(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, "GET", "/health", "")
	_, err := uuid.Parse(w.Header().Get(requestIDHeader))
	assert.NoError(t, err, "generated request id should be a UUID")

	w = httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	req.Header.Set(requestIDHeader, "caller-123")
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "caller-123", w.Header().Get(requestIDHeader))
}

func TestMetrics_CountsOutcomes(t *testing.T) {
	s := newTestServer(t)

	do(t, s, "POST", "/v1/solve", `{"target":49,"reqLast":"hit"}`)
	do(t, s, "POST", "/v1/solve", `{"target":10000}`)
	do(t, s, "POST", "/v1/solve", `{}`)

	w := do(t, s, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `tailsum_solve_total{outcome="found"} 1`)
	assert.Contains(t, body, `tailsum_solve_total{outcome="not_found"} 1`)
	assert.Contains(t, body, `tailsum_solve_rejected_total 1`)
	assert.Contains(t, body, `tailsum_solve_duration_seconds_count 2`)
	assert.Contains(t, body, `tailsum_solution_length_count 1`)
}

// =============================================================================
// Lifecycle
// =============================================================================

func TestServe_ShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx, ln)
	}()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}

	resp, err := client.Get(fmt.Sprintf("http://%s/health", ln.Addr()))
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	transport.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_InvalidAddress(t *testing.T) {
	err := newTestServer(t).Run(context.Background(), "not-an-address")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
