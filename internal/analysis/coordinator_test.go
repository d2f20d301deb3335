package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"sortd/internal/batch"
	"sortd/internal/classify"
	"sortd/internal/extract"
	"sortd/internal/logging"
)

func memFile(name, content string) batch.File {
	return batch.File{
		Name: name,
		Size: int64(len(content)),
		Opener: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func badFile(name string) batch.File {
	return batch.File{
		Name: name,
		Size: 1,
		Opener: func() (io.ReadCloser, error) {
			return nil, errors.New("simulated read failure")
		},
	}
}

func panicFile(name string) batch.File {
	return batch.File{
		Name: name,
		Size: 1,
		Opener: func() (io.ReadCloser, error) {
			panic("simulated worker crash")
		},
	}
}

func slowFile(name string, delay time.Duration) batch.File {
	return batch.File{
		Name: name,
		Size: 4,
		Opener: func() (io.ReadCloser, error) {
			time.Sleep(delay)
			return io.NopCloser(strings.NewReader("slow")), nil
		},
	}
}

func TestRunEmptyBatch(t *testing.T) {
	c := NewCoordinator(Options{})
	if _, err := c.Run(context.Background(), nil, false); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("error = %v, want ErrEmptyBatch", err)
	}
}

func TestRunNothingReadable(t *testing.T) {
	files := []batch.File{badFile("a.bin"), badFile("b.bin"), badFile("c.bin")}
	c := NewCoordinator(Options{})
	if _, err := c.Run(context.Background(), files, false); !errors.Is(err, ErrNothingReadable) {
		t.Fatalf("error = %v, want ErrNothingReadable", err)
	}
}

func TestRunSerialSmallBatch(t *testing.T) {
	files := []batch.File{
		memFile("report.pdf", "lorem ipsum"),
		memFile("photo.jpg", "jpeg bytes"),
		memFile("song.mp3", "audio bytes"),
	}
	c := NewCoordinator(Options{ParallelThreshold: 100})

	report, err := c.Run(context.Background(), files, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Mode != ModeSerial {
		t.Fatalf("mode = %s, want serial for a batch below threshold", report.Mode)
	}
	if report.WorkersUsed != 1 {
		t.Errorf("workers used = %d, want 1", report.WorkersUsed)
	}
	if report.FilesProcessed != 3 {
		t.Errorf("files processed = %d, want 3", report.FilesProcessed)
	}
	if got := report.Performance.Speedup; got < 0.99 || got > 1.01 {
		t.Errorf("serial speedup = %v, want 1.0", got)
	}
	if report.Degraded() {
		t.Errorf("clean serial run reported as degraded: %+v", report)
	}
}

func TestRunParallelCategoryCounts(t *testing.T) {
	var files []batch.File
	for i := 0; i < 100; i++ {
		files = append(files, memFile(fmt.Sprintf("doc-%d.pdf", i), fmt.Sprintf("lorem ipsum %d", i)))
	}
	for i := 0; i < 100; i++ {
		files = append(files, memFile(fmt.Sprintf("pic-%d.jpg", i), fmt.Sprintf("pixels %d", i)))
	}
	for i := 0; i < 50; i++ {
		files = append(files, memFile(fmt.Sprintf("tool-%d.py", i), fmt.Sprintf("print(%d)", i)))
	}

	c := NewCoordinator(Options{ParallelThreshold: 100, MaxWorkers: 8, SerialSampleSize: 10})
	report, err := c.Run(context.Background(), files, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.Mode != ModeParallel {
		t.Fatalf("mode = %s, want parallel at threshold", report.Mode)
	}
	if report.FilesProcessed != 250 {
		t.Fatalf("files processed = %d, want 250", report.FilesProcessed)
	}
	want := map[classify.Category]int{
		classify.CategoryDocuments: 100,
		classify.CategoryImages:    100,
		classify.CategoryCode:      50,
	}
	for cat, n := range want {
		if report.CategoryCounts[cat] != n {
			t.Errorf("count[%s] = %d, want %d", cat, report.CategoryCounts[cat], n)
		}
	}

	// The counts must partition the batch exactly.
	sum := 0
	listed := 0
	for cat, n := range report.CategoryCounts {
		sum += n
		listed += len(report.CategoryFiles[cat])
	}
	if sum != report.FilesProcessed || listed != report.FilesProcessed {
		t.Errorf("counts sum to %d, listings to %d, want both %d", sum, listed, report.FilesProcessed)
	}

	if len(report.DuplicateGroups) != 0 {
		t.Errorf("distinct contents produced %d duplicate groups", len(report.DuplicateGroups))
	}
	if n := len(report.Performance.WorkerTimes); n < 1 || n > report.WorkersUsed {
		t.Errorf("worker times has %d entries, want 1..%d", n, report.WorkersUsed)
	}
}

func TestRunFindsDuplicatesAcrossChunks(t *testing.T) {
	var files []batch.File
	files = append(files, memFile("first.txt", "shared payload"))
	for i := 0; i < 200; i++ {
		files = append(files, memFile(fmt.Sprintf("filler-%d.txt", i), fmt.Sprintf("filler %d", i)))
	}
	files = append(files, memFile("last.txt", "shared payload"))

	c := NewCoordinator(Options{ParallelThreshold: 100, MaxWorkers: 8, SerialSampleSize: 5})
	report, err := c.Run(context.Background(), files, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.DuplicateGroups) != 1 {
		t.Fatalf("duplicate groups = %d, want 1", len(report.DuplicateGroups))
	}
	group := report.DuplicateGroups[0]
	if len(group.Members) != 2 {
		t.Fatalf("group members = %d, want 2", len(group.Members))
	}
	names := map[string]bool{}
	for _, m := range group.Members {
		names[m.Name] = true
	}
	if !names["first.txt"] || !names["last.txt"] {
		t.Errorf("group members = %v, want first.txt and last.txt", group.Members)
	}
}

func TestRunUnreadableFileDegradesNotFails(t *testing.T) {
	files := []batch.File{
		memFile("a.txt", "alpha"),
		badFile("broken.pdf"),
		memFile("b.txt", "beta"),
	}
	c := NewCoordinator(Options{})

	report, err := c.Run(context.Background(), files, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.FilesProcessed != 3 {
		t.Errorf("files processed = %d, want 3 (unreadable files are still counted)", report.FilesProcessed)
	}
	if report.CategoryCounts[classify.CategoryDocuments] != 3 {
		t.Errorf("Documents = %d, want 3 (broken.pdf keeps its extension category)",
			report.CategoryCounts[classify.CategoryDocuments])
	}
	if len(report.FileErrors) != 1 || report.FileErrors[0].Name != "broken.pdf" {
		t.Errorf("file errors = %+v, want one entry for broken.pdf", report.FileErrors)
	}
	if len(report.DuplicateGroups) != 0 {
		t.Errorf("unreadable file must not enter duplicate analysis, got %+v", report.DuplicateGroups)
	}
}

func TestRunParallelChunkPanicIsolated(t *testing.T) {
	files := []batch.File{
		panicFile("boom-0.txt"), panicFile("boom-1.txt"),
		panicFile("boom-2.txt"), panicFile("boom-3.txt"),
		memFile("ok-0.txt", "zero"), memFile("ok-1.txt", "one"),
		memFile("ok-2.txt", "two"), memFile("ok-3.txt", "three"),
	}
	c := NewCoordinator(Options{SerialSampleSize: 1})
	c.opts.Logger = logging.NewNop()

	// Drive the parallel path directly so the chunk layout is fixed:
	// chunk 0 panics on its first file, chunk 1 is healthy.
	merged, _, abandoned := c.runParallel(context.Background(), logging.NewNop(), files[4:], 1)
	if merged.processed != 4 {
		t.Fatalf("healthy chunk processed = %d, want 4", merged.processed)
	}

	merged, _, abandoned = c.runParallel(context.Background(), logging.NewNop(), files, 2)
	if abandoned != 0 {
		t.Fatalf("abandoned = %d, want 0", abandoned)
	}
	if merged.failed != 1 {
		t.Fatalf("failed chunks = %d, want 1", merged.failed)
	}
	if merged.processed != 4 {
		t.Errorf("processed = %d, want 4 (only the healthy chunk contributes)", merged.processed)
	}
}

func TestRunParallelTimeoutAbandonsInFlightChunks(t *testing.T) {
	files := []batch.File{
		memFile("fast-0.txt", "a"), memFile("fast-1.txt", "b"),
		memFile("fast-2.txt", "c"), memFile("fast-3.txt", "d"),
		slowFile("slow-0.txt", 400*time.Millisecond),
		slowFile("slow-1.txt", 400*time.Millisecond),
		slowFile("slow-2.txt", 400*time.Millisecond),
		slowFile("slow-3.txt", 400*time.Millisecond),
	}
	c := NewCoordinator(Options{SerialSampleSize: 2})

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	merged, _, abandoned := c.runParallel(ctx, logging.NewNop(), files, 2)

	if abandoned != 1 {
		t.Fatalf("abandoned chunks = %d, want 1", abandoned)
	}
	if merged.processed != 4 {
		t.Errorf("processed = %d, want 4 (completed chunk only)", merged.processed)
	}
}

func TestRunContentRefinement(t *testing.T) {
	files := []batch.File{
		memFile("notes.txt", "Work Experience at Acme.\nEducation: somewhere good."),
		memFile("snippet.txt", "def main():\n    import os\n"),
		memFile("plain.txt", "just some words"),
	}
	c := NewCoordinator(Options{Extractor: extract.NewTextSniffer(64 * 1024)})

	report, err := c.Run(context.Background(), files, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.CategoryCounts[classify.CategoryResume] != 1 {
		t.Errorf("Resume = %d, want 1 (two indicators upgrade)", report.CategoryCounts[classify.CategoryResume])
	}
	if report.CategoryCounts[classify.CategoryCode] != 1 {
		t.Errorf("Code = %d, want 1 (source patterns upgrade)", report.CategoryCounts[classify.CategoryCode])
	}
	if report.CategoryCounts[classify.CategoryDocuments] != 1 {
		t.Errorf("Documents = %d, want 1", report.CategoryCounts[classify.CategoryDocuments])
	}
}

type fakeOrganizer struct {
	path       string
	err        error
	placements map[classify.Category][]batch.File
}

func (f *fakeOrganizer) Organize(_ context.Context, _ string, placements map[classify.Category][]batch.File) (string, error) {
	f.placements = placements
	return f.path, f.err
}

func TestRunOrganize(t *testing.T) {
	files := []batch.File{
		memFile("a.pdf", "alpha"),
		memFile("b.jpg", "beta"),
	}
	org := &fakeOrganizer{path: "/tmp/organized/job"}
	c := NewCoordinator(Options{Organizer: org})

	report, err := c.Run(context.Background(), files, true)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.OrganizedPath != org.path {
		t.Fatalf("organized path = %q, want %q", report.OrganizedPath, org.path)
	}
	if len(org.placements[classify.CategoryDocuments]) != 1 || len(org.placements[classify.CategoryImages]) != 1 {
		t.Errorf("placements = %+v, want one document and one image", org.placements)
	}
}

func TestRunOrganizeFailureIsNonFatal(t *testing.T) {
	files := []batch.File{memFile("a.pdf", "alpha")}
	org := &fakeOrganizer{err: errors.New("disk full")}
	c := NewCoordinator(Options{Organizer: org})

	report, err := c.Run(context.Background(), files, true)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.OrganizeError == "" {
		t.Fatal("organize error missing from report")
	}
	if report.OrganizedPath != "" {
		t.Errorf("organized path = %q, want empty after failure", report.OrganizedPath)
	}
	if report.FilesProcessed != 1 {
		t.Errorf("analysis results must survive organize failure, processed = %d", report.FilesProcessed)
	}
}

func TestRunDeterministicAcrossRepeats(t *testing.T) {
	var files []batch.File
	for i := 0; i < 150; i++ {
		files = append(files, memFile(fmt.Sprintf("f-%d.txt", i), fmt.Sprintf("content %d", i%40)))
	}
	c := NewCoordinator(Options{SerialSampleSize: 5})

	first, err := c.Run(context.Background(), files, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := 0; i < 3; i++ {
		next, err := c.Run(context.Background(), files, false)
		if err != nil {
			t.Fatalf("Run repeat %d: %v", i, err)
		}
		if next.FilesProcessed != first.FilesProcessed {
			t.Fatalf("repeat %d processed %d, first %d", i, next.FilesProcessed, first.FilesProcessed)
		}
		if len(next.DuplicateGroups) != len(first.DuplicateGroups) {
			t.Fatalf("repeat %d groups %d, first %d", i, len(next.DuplicateGroups), len(first.DuplicateGroups))
		}
		for cat, n := range first.CategoryCounts {
			if next.CategoryCounts[cat] != n {
				t.Fatalf("repeat %d count[%s] = %d, first %d", i, cat, next.CategoryCounts[cat], n)
			}
		}
	}
}
