package analysis

import (
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/shirou/gopsutil/v4/process"
)

// computeMetrics derives the performance summary from per-worker wall-clock
// times and the serial-time estimate.
//
// Parallel time is the critical path: the slowest worker bounds the job, as
// every chunk must finish before the merge. Speedup compares the serial
// estimate against that critical path, and efficiency normalizes speedup by
// worker count. The load-balance ratio (fastest/slowest) is 1.0 for a
// perfectly even split and defined as 1.0 for a single worker, where
// imbalance is meaningless.
func computeMetrics(workerTimes map[int]time.Duration, estimatedSerial time.Duration, filesProcessed, workers int) Metrics {
	m := Metrics{
		EstimatedSerialTime: estimatedSerial.Seconds(),
		WorkerTimes:         make(map[int]float64, len(workerTimes)),
		Bottleneck:          Bottleneck{LoadBalanceRatio: 1.0},
	}
	for id, d := range workerTimes {
		m.WorkerTimes[id] = d.Seconds()
	}
	if len(workerTimes) == 0 {
		return m
	}

	entries := lo.Entries(workerTimes)
	slowest := lo.MaxBy(entries, func(a, b lo.Entry[int, time.Duration]) bool {
		return a.Value > b.Value
	})
	fastest := lo.MinBy(entries, func(a, b lo.Entry[int, time.Duration]) bool {
		return a.Value < b.Value
	})

	m.ParallelTime = slowest.Value.Seconds()
	m.Bottleneck.SlowestWorker = slowest.Key
	m.Bottleneck.FastestWorker = fastest.Key
	if len(workerTimes) > 1 && slowest.Value > 0 {
		m.Bottleneck.LoadBalanceRatio = fastest.Value.Seconds() / slowest.Value.Seconds()
	}

	if m.ParallelTime > 0 {
		m.Speedup = m.EstimatedSerialTime / m.ParallelTime
		m.Throughput = float64(filesProcessed) / m.ParallelTime
	}
	if workers > 0 {
		m.Efficiency = m.Speedup / float64(workers) * 100
	}
	m.MemoryRSSMB = residentMemoryMB()
	return m
}

// residentMemoryMB samples the engine's own RSS. Best effort; 0 when the
// platform does not expose it.
func residentMemoryMB() float64 {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0
	}
	info, err := proc.MemoryInfo()
	if err != nil || info == nil {
		return 0
	}
	return float64(info.RSS) / (1024 * 1024)
}
