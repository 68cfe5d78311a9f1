// Package report renders simulation results for humans and machines.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"mlfq-sim/internal/schedulers"
)

const idleLabel = "idle"

// Options selects the optional report sections.
type Options struct {
	Gantt bool
}

// GanttBlock is a contiguous stretch of CPU time held by one process, or
// by nobody when Label is "idle".
type GanttBlock struct {
	Label string
	Start int
	End   int
}

var averageLabels = map[string]string{
	schedulers.MetricWaitingTime:    "Waiting Time (WT)",
	schedulers.MetricCompletionTime: "Completion Time (CT)",
	schedulers.MetricResponseTime:   "Response Time (RT)",
	schedulers.MetricTurnaroundTime: "Turnaround Time (TAT)",
}

// WriteResults renders the results table, the averages and the total
// simulation time of one run to w.
func WriteResults(w io.Writer, result schedulers.Result, opts Options) error {
	bw := bufio.NewWriter(w)

	outputTitle(bw, fmt.Sprintf("SIMULATION RESULTS - %s", result.Scheme))

	table := tablewriter.NewWriter(bw)
	table.SetHeader([]string{"Process", "BT", "AT", "Q", "WT", "CT", "RT", "TAT"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)
	for _, p := range result.Processes {
		table.Append([]string{
			p.Label,
			strconv.Itoa(p.Burst),
			strconv.Itoa(p.Arrival),
			strconv.Itoa(p.Queue),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.CompletionTime),
			strconv.Itoa(p.ResponseTime),
			strconv.Itoa(p.TurnaroundTime),
		})
	}
	table.Render()

	_, _ = fmt.Fprintln(bw, "Averages:")
	for _, name := range schedulers.MetricNames {
		_, _ = fmt.Fprintf(bw, "  %-24s %.2f\n", averageLabels[name]+":", result.Metrics[name])
	}
	_, _ = fmt.Fprintf(bw, "  %-24s %d\n", "Total Simulation Time:", result.TotalTime)
	_, _ = fmt.Fprintf(bw, "  %-24s %.2f%%\n", "CPU Utilization:", result.Cpu.Utilization()*100)

	if opts.Gantt {
		_, _ = fmt.Fprintln(bw)
		outputGantt(bw, GanttChart(result.Trace))
	}
	return bw.Flush()
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// GanttChart folds a dispatch trace into blocks, merging back-to-back slices
// of the same process and filling gaps with idle blocks.
func GanttChart(trace []schedulers.Dispatch) []GanttBlock {
	blocks := make([]GanttBlock, 0, len(trace))
	clock := 0
	for _, d := range trace {
		if d.Tick > clock {
			blocks = append(blocks, GanttBlock{Label: idleLabel, Start: clock, End: d.Tick})
		}
		end := d.Tick + d.RunFor
		if n := len(blocks); n > 0 && blocks[n-1].Label == d.Label && blocks[n-1].End == d.Tick {
			blocks[n-1].End = end
		} else {
			blocks = append(blocks, GanttBlock{Label: d.Label, Start: d.Tick, End: end})
		}
		clock = end
	}
	return blocks
}

func outputTitle(w io.Writer, title string) {
	rule := strings.Repeat("=", 60)
	_, _ = fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", rule, title, rule)
}

func outputGantt(w io.Writer, blocks []GanttBlock) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, b := range blocks {
		padding := strings.Repeat(" ", max(0, (8-len(b.Label))/2))
		_, _ = fmt.Fprint(w, padding, b.Label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, b := range blocks {
		_, _ = fmt.Fprint(w, b.Start, "\t")
		if i == len(blocks)-1 {
			_, _ = fmt.Fprint(w, b.End)
		}
	}
	_, _ = fmt.Fprintln(w)
}
