// Package loader reads process descriptors from text or YAML files.
package loader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"mlfq-sim/internal/core"
)

// ErrInputFormat is returned when a descriptor file cannot be parsed.
var ErrInputFormat = errors.New("malformed process descriptor")

const fieldSeparator = ";"

// descriptorFile is the YAML shape of a descriptor file.
type descriptorFile struct {
	Processes []descriptor `yaml:"processes"`
}

type descriptor struct {
	Label   string `yaml:"label"`
	Burst   int    `yaml:"burst"`
	Arrival int    `yaml:"arrival"`
	Queue   int    `yaml:"queue"`
}

// LoadProcesses reads descriptors from path. Files ending in .yaml or .yml
// are decoded as YAML; anything else uses the label;burst;arrival;queue
// text format.
func LoadProcesses(path string) ([]core.Process, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading process file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	}
	processes, err := ParseProcesses(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return processes, nil
}

// ParseProcesses reads the text format: one label;burst;arrival;queue record
// per line, fields trimmed. Blank lines are skipped, and so are comment
// lines: lines whose first non-blank character is #, indented ones included.
// Records with fewer than four fields are skipped; extra fields are ignored.
// A malformed number fails the whole load.
func ParseProcesses(r io.Reader) ([]core.Process, error) {
	processes := make([]core.Process, 0)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, fieldSeparator)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) < 4 {
			logrus.Warnf("line %d: expected 4 fields, got %d; skipping %q", lineNo, len(parts), line)
			continue
		}

		burst, err := parseField(lineNo, "burst", parts[1])
		if err != nil {
			return nil, err
		}
		arrival, err := parseField(lineNo, "arrival", parts[2])
		if err != nil {
			return nil, err
		}
		queue, err := parseField(lineNo, "queue", parts[3])
		if err != nil {
			return nil, err
		}
		processes = append(processes, core.NewProcess(parts[0], burst, arrival, queue))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading descriptors: %w", err)
	}
	logrus.Debugf("loaded %d process descriptors", len(processes))
	return processes, nil
}

func parseField(lineNo int, name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s %q is not an integer: %w", lineNo, name, value, ErrInputFormat)
	}
	return n, nil
}

// parseYAML decodes strictly: unknown keys are rejected.
func parseYAML(data []byte) ([]core.Process, error) {
	var file descriptorFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return make([]core.Process, 0), nil
		}
		return nil, fmt.Errorf("parsing process file: %v: %w", err, ErrInputFormat)
	}
	processes := make([]core.Process, len(file.Processes))
	for i, d := range file.Processes {
		processes[i] = core.NewProcess(d.Label, d.Burst, d.Arrival, d.Queue)
	}
	return processes, nil
}
