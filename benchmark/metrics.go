// Package benchmark drives the public kernel operations across a fixed
// resolution sweep and records timing, throughput and memory metrics. It
// is a harness around the kernels, not part of them: it only invokes the
// public operations on randomly filled buffers.
package benchmark

import (
	"runtime"
	"time"
)

// PerformanceMetrics captures the outcome of one scenario.
type PerformanceMetrics struct {
	Scenario            Scenario      `json:"scenario"`
	Timestamp           time.Time     `json:"timestamp"`
	TotalDuration       time.Duration `json:"total_duration"`
	AvgDuration         time.Duration `json:"avg_duration"`
	MinDuration         time.Duration `json:"min_duration"`
	MaxDuration         time.Duration `json:"max_duration"`
	MegapixelsPerSecond float64       `json:"megapixels_per_second"`
	MemoryStats         MemoryMetrics `json:"memory_stats"`
	Iterations          int           `json:"iterations"`
}

// MemoryMetrics captures allocator state deltas around a scenario.
type MemoryMetrics struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	HeapAllocBytes  uint64 `json:"heap_alloc_bytes"`
	NumGC           uint32 `json:"num_gc"`
}

// captureMemory snapshots the runtime allocator counters.
func captureMemory() MemoryMetrics {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return MemoryMetrics{
		AllocBytes:      ms.Alloc,
		TotalAllocBytes: ms.TotalAlloc,
		SysBytes:        ms.Sys,
		HeapAllocBytes:  ms.HeapAlloc,
		NumGC:           ms.NumGC,
	}
}

// finalize derives the aggregate fields from the per-iteration samples.
func (m *PerformanceMetrics) finalize(samples []time.Duration, megapixels float64) {
	if len(samples) == 0 {
		return
	}
	m.Iterations = len(samples)
	m.MinDuration = samples[0]
	m.MaxDuration = samples[0]
	var total time.Duration
	for _, d := range samples {
		total += d
		if d < m.MinDuration {
			m.MinDuration = d
		}
		if d > m.MaxDuration {
			m.MaxDuration = d
		}
	}
	m.TotalDuration = total
	m.AvgDuration = total / time.Duration(len(samples))
	if m.AvgDuration > 0 {
		m.MegapixelsPerSecond = megapixels / m.AvgDuration.Seconds()
	}
}
