package analysis

import "testing"

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name      string
		batchSize int
		wantMode  Mode
	}{
		{"empty-ish batch stays serial", 1, ModeSerial},
		{"just under threshold", 99, ModeSerial},
		{"at threshold goes parallel", 100, ModeParallel},
		{"large batch", 5000, ModeParallel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SelectStrategy(tt.batchSize, 100, 8)
			if s.Mode != tt.wantMode {
				t.Fatalf("mode = %s, want %s", s.Mode, tt.wantMode)
			}
			if tt.wantMode == ModeSerial && s.Workers != 1 {
				t.Errorf("serial workers = %d, want 1", s.Workers)
			}
			if tt.wantMode == ModeParallel {
				if s.Workers < 1 || s.Workers > 8 {
					t.Errorf("parallel workers = %d, want 1..8", s.Workers)
				}
			}
		})
	}
}

func TestSelectStrategyWorkerCap(t *testing.T) {
	s := SelectStrategy(1000, 100, 2)
	if s.Workers > 2 {
		t.Fatalf("workers = %d, want at most the configured cap of 2", s.Workers)
	}
}
