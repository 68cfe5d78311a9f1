package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlfq-sim/internal/metrics"
	"mlfq-sim/internal/responses"
	"mlfq-sim/internal/schedulers"
)

const twoProcesses = `{"processes":[{"label":"P1","burst":4,"arrival":0,"queue":1},{"label":"P2","burst":4,"arrival":0,"queue":1}]}`

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	reg := prometheus.NewRegistry()
	handler := NewSchedulerHandlerImpl(schedulers.NewRegistry(), metrics.NewRecorder(reg))
	return NewApp(handler, reg)
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestSchemes_ListsBuiltins(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodGet, "/api/v1/schemes", "")
	require.Equal(t, http.StatusOK, status)

	var schemes []responses.SchemeResponse
	require.NoError(t, json.Unmarshal(body, &schemes))
	require.Len(t, schemes, 3)
	assert.Equal(t, 1, schemes[0].Scheme)
	assert.Equal(t, "sjf", schemes[0].Queues[3].Policy)
	assert.Equal(t, 20, schemes[2].Queues[3].Quantum)
}

func TestMultilevelFeedbackQueue_RunsScheme(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/api/v1/mlfq/1", twoProcesses)
	require.Equal(t, http.StatusOK, status, string(body))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, 1, response.Scheme)
	assert.Equal(t, 8, response.TotalTime)
	assert.InDelta(t, 2.5, response.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 1.0, response.CpuUtilization, 1e-9)
	require.Len(t, response.Details, 2)
	assert.Equal(t, 5, response.Details[0].CompletionTime)
	assert.Equal(t, 8, response.Details[1].CompletionTime)
	assert.Empty(t, response.Trace, "trace is opt-in")
}

func TestMultilevelFeedbackQueue_TraceOptIn(t *testing.T) {
	body := `{"trace":true,"processes":[{"label":"P1","burst":2,"arrival":0,"queue":1}]}`
	status, data := doRequest(t, newTestApp(t), http.MethodPost, "/api/v1/mlfq/2", body)
	require.Equal(t, http.StatusOK, status)

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &response))
	assert.Equal(t, []responses.DispatchResponse{{Tick: 0, Label: "P1", Queue: 1, RunFor: 2, Finished: true}}, response.Trace)
}

func TestMultilevelFeedbackQueue_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"unknown scheme", "/api/v1/mlfq/4", twoProcesses, http.StatusNotFound},
		{"non-numeric scheme", "/api/v1/mlfq/abc", twoProcesses, http.StatusBadRequest},
		{"bad json", "/api/v1/mlfq/1", `{"processes":`, http.StatusBadRequest},
		{"no processes", "/api/v1/mlfq/1", `{"processes":[]}`, http.StatusBadRequest},
		{"duplicate labels", "/api/v1/mlfq/1", `{"processes":[{"label":"A","burst":1,"queue":1},{"label":"A","burst":1,"queue":1}]}`, http.StatusBadRequest},
		{"queue outside ladder", "/api/v1/mlfq/1", `{"processes":[{"label":"A","burst":1,"queue":5}]}`, http.StatusBadRequest},
	}
	app := newTestApp(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, status)

			var errResp responses.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestAllSchemes_OneResultPerScheme(t *testing.T) {
	status, body := doRequest(t, newTestApp(t), http.MethodPost, "/api/v1/all", twoProcesses)
	require.Equal(t, http.StatusOK, status)

	var results []responses.SchemeResult
	require.NoError(t, json.Unmarshal(body, &results))
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i+1, r.Scheme)
		assert.Empty(t, r.Error)
		require.NotNil(t, r.Result)
	}
}

func TestAllSchemes_ErrorsReportedInline(t *testing.T) {
	// queue 4 exists in every built-in ladder, queue 5 in none
	body := `{"processes":[{"label":"A","burst":1,"queue":5}]}`
	status, data := doRequest(t, newTestApp(t), http.MethodPost, "/api/v1/all", body)
	require.Equal(t, http.StatusOK, status)

	var results []responses.SchemeResult
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Nil(t, r.Result)
		assert.NotEmpty(t, r.Error)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)
	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/mlfq/3", twoProcesses)
	require.Equal(t, http.StatusOK, status)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/metrics", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `mlfq_runs_total{scheme="3"} 1`)
	assert.Contains(t, string(body), "mlfq_average_ticks")
}
