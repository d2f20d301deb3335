package analysis

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
)

// Strategy is the execution plan for one job: the mode and the number of
// worker units that will run.
type Strategy struct {
	Mode    Mode
	Workers int
}

// SelectStrategy picks serial or parallel execution from the batch size.
// Batches below threshold run serially: for small batches the cost of
// spinning up and coordinating a pool exceeds any parallel gain. Larger
// batches get min(available cores, maxWorkers) workers.
func SelectStrategy(batchSize, threshold, maxWorkers int) Strategy {
	if batchSize < threshold {
		return Strategy{Mode: ModeSerial, Workers: 1}
	}
	workers := availableParallelism()
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if workers < 1 {
		workers = 1
	}
	return Strategy{Mode: ModeParallel, Workers: workers}
}

func availableParallelism() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
