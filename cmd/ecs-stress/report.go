package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"text/template"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/plus3/hades/ecs"
	"github.com/shirou/gopsutil/v3/process"
)

type Report struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`

	// Configuration
	Duration       time.Duration `json:"duration"`
	Entities       int           `json:"entities"`
	ComponentTypes int           `json:"component_types"`
	Systems        int           `json:"systems"`
	Churn          float64       `json:"churn"`
	Seed           uint64        `json:"seed"`

	// Results
	TotalUpdates   int64             `json:"total_updates"`
	TotalTime      time.Duration     `json:"total_time"`
	UpdateTime     Stats             `json:"update_time"`
	FinalEntities  int               `json:"final_entities"`
	Destroyed      int64             `json:"destroyed"`
	Toggled        int64             `json:"toggled"`
	DrawCalls      int64             `json:"draw_calls"`
	SystemStats    []ecs.SystemStats `json:"systems_detail"`
	Process        ProcessStats      `json:"process"`
	Memory         MemorySummary     `json:"memory"`
	GCPauseMetrics bool              `json:"-"`
	MemStatsStart  runtime.MemStats  `json:"-"`
	MemStatsEnd    runtime.MemStats  `json:"-"`
}

type Stats struct {
	Min     time.Duration   `json:"min"`
	Max     time.Duration   `json:"max"`
	Avg     time.Duration   `json:"avg"`
	Samples []time.Duration `json:"-"`
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

type MemorySummary struct {
	HeapAllocStart  uint64        `json:"heap_alloc_start"`
	HeapAllocEnd    uint64        `json:"heap_alloc_end"`
	TotalAllocDelta uint64        `json:"total_alloc_delta"`
	NumGC           uint32        `json:"num_gc"`
	GCPauseTotal    time.Duration `json:"gc_pause_total"`
}

func summarizeMemory(start, end *runtime.MemStats) MemorySummary {
	return MemorySummary{
		HeapAllocStart:  start.HeapAlloc,
		HeapAllocEnd:    end.HeapAlloc,
		TotalAllocDelta: end.TotalAlloc - start.TotalAlloc,
		NumGC:           end.NumGC - start.NumGC,
		GCPauseTotal:    time.Duration(end.PauseTotalNs - start.PauseTotalNs),
	}
}

// ProcessStats is what the operating system saw of the run.
type ProcessStats struct {
	CPUTime    time.Duration `json:"cpu_time"`
	CPUPercent float64       `json:"cpu_percent"`
	RSSStart   uint64        `json:"rss_start"`
	RSSEnd     uint64        `json:"rss_end"`
}

type processSample struct {
	cpu float64
	rss uint64
}

func sampleProcess() (*processSample, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	times, err := p.Times()
	if err != nil {
		return nil, err
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		return nil, err
	}
	return &processSample{cpu: times.User + times.System, rss: mem.RSS}, nil
}

// Since reports the CPU consumed between start and s over wall time elapsed.
func (s *processSample) Since(start *processSample, elapsed time.Duration) ProcessStats {
	cpu := time.Duration((s.cpu - start.cpu) * float64(time.Second))
	stats := ProcessStats{
		CPUTime:  cpu,
		RSSStart: start.rss,
		RSSEnd:   s.rss,
	}
	if elapsed > 0 {
		stats.CPUPercent = 100 * cpu.Seconds() / elapsed.Seconds()
	}
	return stats
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# ECS Stress Test Report

Run ` + "`{{.RunID}}`" + ` started {{.StartedAt.Format "2006-01-02 15:04:05"}}

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Entities:** {{.Entities}}
- **Component Types:** {{.ComponentTypes}}
- **Systems:** {{.Systems}}
- **Churn:** {{.Churn}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
- **Final Entities:** {{.FinalEntities}}
- **Destroyed / Replaced:** {{.Destroyed}}
- **Velocity Toggles:** {{.Toggled}}
- **Draw Calls:** {{.DrawCalls}}

## Systems
| System | Runs | Errors | Avg | Max |
|---|---|---|---|---|
{{range .SystemStats}}| {{.Name}} | {{.ExecutionCount}} | {{.ErrorCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Process
- CPU Time:       {{.Process.CPUTime}} ({{printf "%.1f" .Process.CPUPercent}}% of one core)
- RSS:            {{mb .Process.RSSStart}} MiB (start) -> {{mb .Process.RSSEnd}} MiB (end)

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
