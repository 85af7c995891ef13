package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/shape"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Seed      uint64
	InputRate float64

	// Results
	TotalSteps     int64
	TotalTime      time.Duration
	StepTime       Stats
	Locks          int
	Lines          int
	GameOvers      int
	Holds          int
	Pieces         [shape.KindCount]int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Record tallies session events. Register it with Session.Subscribe.
func (r *Report) Record(e game.Event) {
	switch e.Kind {
	case game.Locked:
		r.Locks++
		r.Lines += e.Lines
		if int(e.Piece) < len(r.Pieces) {
			r.Pieces[e.Piece]++
		}
	case game.GameOver:
		r.GameOvers++
	case game.Held:
		r.Holds++
	}
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Input Rate:** {{printf "%.2f" .InputRate}}

## Performance Results
- **Total Steps:** {{.TotalSteps}}
- **Total Test Time:** {{.TotalTime}}
- **Step Time (Frame):**
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}

## Gameplay
- **Pieces Locked:** {{.Locks}}
- **Lines Cleared:** {{.Lines}}
- **Game Overs:** {{.GameOvers}}
- **Holds:** {{.Holds}}
{{range $i, $n := .Pieces}}- {{kind $i}}: {{$n}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"kind": func(i int) string {
			return shape.Kind(i).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
