package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sortd/internal/analysis"
	"sortd/internal/classify"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBlue   = "\x1b[34m"
	ansiYellow = "\x1b[33m"
)

var countPrinter = message.NewPrinter(language.English)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func sectionHeader(out io.Writer, title string, colorize bool) {
	line := fmt.Sprintf("== %s ==", title)
	if colorize {
		line = ansiBlue + line + ansiReset
	}
	fmt.Fprintln(out, line)
}

func printReport(out io.Writer, report *analysis.Report) {
	colorize := shouldColorize(out)

	sectionHeader(out, "Analysis", colorize)
	fmt.Fprintf(out, "  Job:        %s\n", report.JobID)
	fmt.Fprintf(out, "  Mode:       %s (%d workers)\n", report.Mode, report.WorkersUsed)
	fmt.Fprintf(out, "  Files:      %s\n", countPrinter.Sprintf("%d", report.FilesProcessed))
	if report.Degraded() {
		warn := fmt.Sprintf("  Degraded:   %d failed, %d abandoned chunks", report.FailedChunks, report.AbandonedChunks)
		if colorize {
			warn = ansiYellow + warn + ansiReset
		}
		fmt.Fprintln(out, warn)
	}
	fmt.Fprintln(out)

	printCategoryTable(out, report)
	fmt.Fprintln(out)
	printPerformance(out, report, colorize)

	if len(report.DuplicateGroups) > 0 {
		fmt.Fprintln(out)
		printDuplicates(out, report, colorize)
	}
	if len(report.FileErrors) > 0 {
		fmt.Fprintln(out)
		sectionHeader(out, "Skipped files", colorize)
		for _, fe := range report.FileErrors {
			fmt.Fprintf(out, "  %s: %s\n", fe.Name, fe.Error)
		}
	}
	if report.OrganizedPath != "" {
		fmt.Fprintf(out, "\nOrganized into %s\n", report.OrganizedPath)
	}
	if report.OrganizeError != "" {
		fmt.Fprintf(out, "\nOrganize failed: %s\n", report.OrganizeError)
	}
}

func printCategoryTable(out io.Writer, report *analysis.Report) {
	rows := make([][]string, 0, len(report.CategoryCounts))
	for _, category := range classify.Categories() {
		count := report.CategoryCounts[category]
		if count == 0 {
			continue
		}
		var total int64
		for _, entry := range report.CategoryFiles[category] {
			total += entry.Size
		}
		rows = append(rows, []string{
			category.String(),
			countPrinter.Sprintf("%d", count),
			humanize.Bytes(uint64(total)),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Category", "Files", "Size"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	))
}

func printPerformance(out io.Writer, report *analysis.Report, colorize bool) {
	sectionHeader(out, "Performance", colorize)
	perf := report.Performance
	fmt.Fprintf(out, "  Parallel time:    %.3fs\n", perf.ParallelTime)
	fmt.Fprintf(out, "  Serial estimate:  %.3fs\n", perf.EstimatedSerialTime)
	fmt.Fprintf(out, "  Speedup:          %.2fx\n", perf.Speedup)
	fmt.Fprintf(out, "  Efficiency:       %.1f%%\n", perf.Efficiency)
	fmt.Fprintf(out, "  Throughput:       %s files/sec\n", countPrinter.Sprintf("%.0f", perf.Throughput))
	if report.WorkersUsed > 1 {
		fmt.Fprintf(out, "  Load balance:     %.2f (slowest worker %d, fastest %d)\n",
			perf.Bottleneck.LoadBalanceRatio,
			perf.Bottleneck.SlowestWorker,
			perf.Bottleneck.FastestWorker)
	}
	if perf.MemoryRSSMB > 0 {
		fmt.Fprintf(out, "  Memory:           %.1f MB\n", perf.MemoryRSSMB)
	}
}

func printDuplicates(out io.Writer, report *analysis.Report, colorize bool) {
	sectionHeader(out, "Duplicates", colorize)
	rows := make([][]string, 0, len(report.DuplicateGroups))
	for _, group := range report.DuplicateGroups {
		names := make([]string, 0, len(group.Members))
		var size int64
		for _, m := range group.Members {
			names = append(names, m.Name)
			size = m.Size
		}
		rows = append(rows, []string{
			shortFingerprint(group.Fingerprint),
			countPrinter.Sprintf("%d", len(group.Members)),
			humanize.Bytes(uint64(size)),
			strings.Join(names, ", "),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Fingerprint", "Copies", "Size", "Files"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
	))
}

func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
