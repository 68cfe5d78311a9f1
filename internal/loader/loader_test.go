package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlfq-sim/internal/core"
)

func TestParseProcesses_TextFormat(t *testing.T) {
	// GIVEN a descriptor file with comments, blank lines and padded fields
	input := strings.Join([]string{
		"# label; burst; arrival; queue",
		"",
		"P1;5;0;1",
		"  P2 ; 3 ; 2 ; 2  ",
		"\t",
		"P3;8;4;4;extra",
		"   # indented comment",
	}, "\n")

	// WHEN parsed
	procs, err := ParseProcesses(strings.NewReader(input))

	// THEN every record becomes a fresh process, in file order
	require.NoError(t, err)
	assert.Equal(t, []core.Process{
		core.NewProcess("P1", 5, 0, 1),
		core.NewProcess("P2", 3, 2, 2),
		core.NewProcess("P3", 8, 4, 4),
	}, procs)
}

func TestParseProcesses_ShortRecordsSkipped(t *testing.T) {
	procs, err := ParseProcesses(strings.NewReader("P1;5;0\nP2;1;0;1\n"))
	require.NoError(t, err)
	require.Len(t, procs, 1)
	assert.Equal(t, "P2", procs[0].Label)
}

func TestParseProcesses_MalformedNumberFailsWholeLoad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"word burst", "P1;5;0;1\nP2;five;0;1\n", "burst"},
		{"word arrival", "P1;5;x;1\n", "arrival"},
		{"fractional queue", "P1;5;0;1.5\n", "queue"},
		{"empty burst", "P1;;0;1\n", "burst"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			procs, err := ParseProcesses(strings.NewReader(tt.input))
			assert.Nil(t, procs)
			assert.ErrorIs(t, err, ErrInputFormat)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParseProcesses_ErrorNamesLine(t *testing.T) {
	_, err := ParseProcesses(strings.NewReader("# header\nP1;5;0;1\nP2;oops;0;1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoadProcesses_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mlfq001.txt")
	require.NoError(t, os.WriteFile(path, []byte("A;2;0;1\nB;4;1;3\n"), 0o644))

	procs, err := LoadProcesses(path)

	require.NoError(t, err)
	assert.Equal(t, []core.Process{core.NewProcess("A", 2, 0, 1), core.NewProcess("B", 4, 1, 3)}, procs)
}

func TestLoadProcesses_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.yaml")
	body := `processes:
  - label: A
    burst: 2
    arrival: 0
    queue: 1
  - label: B
    burst: 4
    arrival: 1
    queue: 3
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	procs, err := LoadProcesses(path)

	require.NoError(t, err)
	assert.Equal(t, []core.Process{core.NewProcess("A", 2, 0, 1), core.NewProcess("B", 4, 1, 3)}, procs)
}

func TestLoadProcesses_YAMLUnknownKeyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.yml")
	body := "processes:\n  - label: A\n    burst: 2\n    priority: 9\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := LoadProcesses(path)

	assert.ErrorIs(t, err, ErrInputFormat)
}

func TestLoadProcesses_MissingFile(t *testing.T) {
	_, err := LoadProcesses(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
