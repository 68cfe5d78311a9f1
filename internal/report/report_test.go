package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlfq-sim/internal/core"
	"mlfq-sim/internal/schedulers"
)

func runScheme(t *testing.T, schemeID int, procs ...core.Process) schedulers.Result {
	t.Helper()
	engine, err := schedulers.NewEngine(procs, schemeID)
	require.NoError(t, err)
	return engine.Run()
}

func TestWriteResults_TableAveragesAndTotal(t *testing.T) {
	// GIVEN the two-process scheme 1 run
	res := runScheme(t, 1, core.NewProcess("P1", 4, 0, 1), core.NewProcess("P2", 4, 0, 1))

	// WHEN it is rendered
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, res, Options{}))
	out := buf.String()

	// THEN the table, averages and total time are present
	assert.Contains(t, out, "SIMULATION RESULTS - scheme 1: RR(1) > RR(3) > RR(4) > SJF")
	for _, header := range []string{"Process", "BT", "AT", "Q", "WT", "CT", "RT", "TAT"} {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "P2")
	assert.Regexp(t, `Waiting Time \(WT\):\s+2\.50`, out)
	assert.Regexp(t, `Completion Time \(CT\):\s+6\.50`, out)
	assert.Regexp(t, `Response Time \(RT\):\s+0\.50`, out)
	assert.Regexp(t, `Turnaround Time \(TAT\):\s+6\.50`, out)
	assert.Regexp(t, `Total Simulation Time:\s+8\n`, out)
	assert.NotContains(t, out, "Gantt")
}

func TestWriteResults_Gantt(t *testing.T) {
	res := runScheme(t, 1, core.NewProcess("P1", 2, 3, 1))

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, res, Options{Gantt: true}))

	assert.Contains(t, buf.String(), "Gantt schedule")
	assert.Contains(t, buf.String(), "idle")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteResults_PropagatesWriteErrors(t *testing.T) {
	res := runScheme(t, 1, core.NewProcess("P1", 2, 0, 1))
	assert.EqualError(t, WriteResults(failingWriter{}, res, Options{}), "disk full")
}

func TestGanttChart_MergesAndFillsIdle(t *testing.T) {
	trace := []schedulers.Dispatch{
		{Tick: 2, Label: "A", Queue: 4, RunFor: 1},
		{Tick: 3, Label: "B", Queue: 4, RunFor: 1},
		{Tick: 4, Label: "B", Queue: 4, RunFor: 1},
		{Tick: 5, Label: "A", Queue: 4, RunFor: 2},
		{Tick: 9, Label: "A", Queue: 4, RunFor: 1},
	}

	assert.Equal(t, []GanttBlock{
		{Label: "idle", Start: 0, End: 2},
		{Label: "A", Start: 2, End: 3},
		{Label: "B", Start: 3, End: 5},
		{Label: "A", Start: 5, End: 7},
		{Label: "idle", Start: 7, End: 9},
		{Label: "A", Start: 9, End: 10},
	}, GanttChart(trace))
}

func TestWriteJSON(t *testing.T) {
	res := runScheme(t, 2, core.NewProcess("P1", 3, 0, 1))

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, schedulers.GenerateResponse(res, true)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2.0, decoded["scheme"])
	assert.Equal(t, 3.0, decoded["total_time"])
	assert.Len(t, decoded["details"], 1)
	assert.NotEmpty(t, decoded["trace"])
}
