package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Games     int
	Seed      uint64
	MaxPieces uint
	Parallel  int
	Verbose   bool

	// Results
	Results       []Result
	TotalTime     time.Duration
	TotalPieces   uint
	TotalLines    uint
	TotalFrames   int64
	Tetrises      int
	ToppedOut     int
	Lines         IntStats
	SessionTime   Stats
	Shapes        [tetris.ShapeCount]int
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

// Finalize fills Min, Max and Avg from the session durations
func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}
	var total time.Duration
	s.Min, s.Max, total = summarize(s.Samples)
	s.Avg = total / time.Duration(len(s.Samples))
}

type IntStats struct {
	Min     uint
	Max     uint
	Avg     float64
	Samples []uint
}

// Finalize fills Min, Max and Avg from the per-session counts
func (s *IntStats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}
	var total uint
	s.Min, s.Max, total = summarize(s.Samples)
	s.Avg = float64(total) / float64(len(s.Samples))
}

// summarize returns the smallest, largest and summed sample; samples must not
// be empty.
func summarize[T uint | time.Duration](samples []T) (lo, hi, total T) {
	lo, hi = samples[0], samples[0]
	for _, sample := range samples {
		lo = min(lo, sample)
		hi = max(hi, sample)
		total += sample
	}
	return lo, hi, total
}

// Finalize aggregates Results into the report totals
func (r *Report) Finalize() {
	r.Lines.Samples = r.Lines.Samples[:0]
	r.SessionTime.Samples = r.SessionTime.Samples[:0]

	for _, res := range r.Results {
		r.TotalPieces += res.Pieces
		r.TotalLines += res.Lines
		r.TotalFrames += res.Frames
		r.Tetrises += res.Tetrises
		if res.ToppedOut {
			r.ToppedOut++
		}
		for shape, n := range res.Shapes {
			r.Shapes[shape] += n
		}
		r.Lines.Samples = append(r.Lines.Samples, res.Lines)
		r.SessionTime.Samples = append(r.SessionTime.Samples, res.Elapsed)
	}

	r.Lines.Finalize()
	r.SessionTime.Finalize()
}

func (r *Report) sessionTable() string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"Game", "Seed", "Lines", "Pieces", "Tetrises", "Frames", "Result", "Time"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, res := range r.Results {
		outcome := "survived"
		if res.ToppedOut {
			outcome = "topped out"
		}
		table.Append([]string{
			fmt.Sprintf("%d", res.Index),
			fmt.Sprintf("%d", res.Seed),
			humanize.Comma(int64(res.Lines)),
			humanize.Comma(int64(res.Pieces)),
			fmt.Sprintf("%d", res.Tetrises),
			humanize.Comma(res.Frames),
			outcome,
			res.Elapsed.Round(time.Microsecond).String(),
		})
	}
	table.Render()
	return sb.String()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Games:** {{.Games}}
- **First Seed:** {{.Seed}}
- **Max Pieces:** {{comma .MaxPieces}}
- **Parallel Sessions:** {{.Parallel}}

## Results
- **Survived:** {{usub .Games .ToppedOut}} / {{.Games}}
- **Total Pieces:** {{comma .TotalPieces}}
- **Total Lines:** {{comma .TotalLines}}
- **Tetrises:** {{comma .Tetrises}}
- **Frames Simulated:** {{comma .TotalFrames}}
- **Lines per Game:**
  - **Avg:** {{printf "%.1f" .Lines.Avg}}
  - **Min:** {{comma .Lines.Min}}
  - **Max:** {{comma .Lines.Max}}
- **Session Time:**
  - **Avg:** {{.SessionTime.Avg}}
  - **Min:** {{.SessionTime.Min}}
  - **Max:** {{.SessionTime.Max}}
- **Total Time:** {{.TotalTime}}

## Shapes Dealt
{{range $i, $n := .Shapes}}- {{shape $i}}: {{comma $n}}
{{end}}
## Memory Usage
- Heap Alloc:  {{bytes .MemStatsStart.HeapAlloc}} (start) -> {{bytes .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc: {{bytes (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} during the run
- Num GC:      {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .Verbose}}
## Sessions

{{table}}{{end}}`

	fm := template.FuncMap{
		"comma": func(v any) string {
			switch val := v.(type) {
			case int:
				return humanize.Comma(int64(val))
			case int64:
				return humanize.Comma(val)
			case uint:
				return humanize.Comma(int64(val))
			case uint64:
				return humanize.Comma(int64(val))
			default:
				return fmt.Sprint(v)
			}
		},
		"bytes": humanize.IBytes,
		"bsub": func(a, b uint64) uint64 {
			return a - b
		},
		"usub": func(a, b any) string {
			switch x := a.(type) {
			case int:
				return fmt.Sprint(x - b.(int))
			case uint32:
				return fmt.Sprint(x - b.(uint32))
			default:
				return "N/A"
			}
		},
		"shape": func(i int) string {
			return tetris.Shape(i).String()
		},
		"table": r.sessionTable,
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
