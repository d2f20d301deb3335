package analysis

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeMetricsBottleneck(t *testing.T) {
	times := map[int]time.Duration{
		0: 2 * time.Second,
		1: 1 * time.Second,
	}
	m := computeMetrics(times, 3*time.Second, 200, 2)

	if !almostEqual(m.ParallelTime, 2.0) {
		t.Fatalf("parallel time = %v, want 2.0 (slowest worker)", m.ParallelTime)
	}
	if m.Bottleneck.SlowestWorker != 0 {
		t.Errorf("slowest worker = %d, want 0", m.Bottleneck.SlowestWorker)
	}
	if m.Bottleneck.FastestWorker != 1 {
		t.Errorf("fastest worker = %d, want 1", m.Bottleneck.FastestWorker)
	}
	if !almostEqual(m.Bottleneck.LoadBalanceRatio, 0.5) {
		t.Errorf("load balance ratio = %v, want 0.5", m.Bottleneck.LoadBalanceRatio)
	}
	if !almostEqual(m.Speedup, 1.5) {
		t.Errorf("speedup = %v, want 1.5", m.Speedup)
	}
	if !almostEqual(m.Throughput, 100) {
		t.Errorf("throughput = %v, want 100 files/sec", m.Throughput)
	}
}

func TestComputeMetricsSingleWorker(t *testing.T) {
	times := map[int]time.Duration{0: 4 * time.Second}
	m := computeMetrics(times, 4*time.Second, 40, 1)

	if !almostEqual(m.Bottleneck.LoadBalanceRatio, 1.0) {
		t.Errorf("single-worker load balance ratio = %v, want 1.0", m.Bottleneck.LoadBalanceRatio)
	}
	if !almostEqual(m.Speedup, 1.0) {
		t.Errorf("speedup = %v, want 1.0", m.Speedup)
	}
	if !almostEqual(m.Efficiency, 100) {
		t.Errorf("efficiency = %v, want 100", m.Efficiency)
	}
}

func TestComputeMetricsEfficiencyUnclamped(t *testing.T) {
	// Superlinear speedup must be reported as measured, not capped.
	times := map[int]time.Duration{0: time.Second, 1: time.Second}
	m := computeMetrics(times, 6*time.Second, 100, 2)

	if !almostEqual(m.Speedup, 6.0) {
		t.Fatalf("speedup = %v, want 6.0", m.Speedup)
	}
	if !almostEqual(m.Efficiency, 300) {
		t.Errorf("efficiency = %v, want 300 (unclamped)", m.Efficiency)
	}
}

func TestComputeMetricsNoWorkers(t *testing.T) {
	m := computeMetrics(nil, time.Second, 0, 0)
	if m.ParallelTime != 0 || m.Speedup != 0 {
		t.Errorf("empty worker times should yield zero metrics, got %+v", m)
	}
	if !almostEqual(m.Bottleneck.LoadBalanceRatio, 1.0) {
		t.Errorf("load balance ratio = %v, want 1.0 default", m.Bottleneck.LoadBalanceRatio)
	}
}
