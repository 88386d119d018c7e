package cli

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

type BuildStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type printer interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Printf(format string, args ...any)
	Errorf(format string, args ...any)
}

type BuildError struct {
	Page    string
	Message string
	Details []string
}

// BuildReport collects steps, per-page errors and warnings while pages are
// rendered concurrently, then prints a summary. It is safe for concurrent use.
type BuildReport struct {
	mu          sync.Mutex
	out         printer
	steps       []*BuildStep
	warnings    []BuildError
	errors      []BuildError
	startTime   time.Time
	pageCount   int
	written     int
	outputDir   string
	hasFailures bool
}

func NewBuildReport(out printer, outputDir string) *BuildReport {
	return &BuildReport{
		out:       out,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *BuildReport) SetPageCount(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pageCount = count
}

func (r *BuildReport) PageWritten() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.written++
}

func (r *BuildReport) StartStep(name string) *BuildStep {
	r.mu.Lock()
	defer r.mu.Unlock()
	step := &BuildStep{
		Name:      name,
		StartTime: time.Now(),
	}
	r.steps = append(r.steps, step)
	return step
}

func (r *BuildReport) EndStep(step *BuildStep, success bool, err string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	step.EndTime = time.Now()
	step.Success = success
	step.Error = err
	if !success {
		r.hasFailures = true
	}
}

func (r *BuildReport) AddWarning(page string, message string, details []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, BuildError{
		Page:    page,
		Message: message,
		Details: details,
	})
}

func (r *BuildReport) AddError(page string, message string, details []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, BuildError{
		Page:    page,
		Message: message,
		Details: details,
	})
	r.hasFailures = true
}

func (r *BuildReport) Errors() []BuildError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]BuildError(nil), r.errors...)
}

func (r *BuildReport) Render() {
	r.mu.Lock()
	defer r.mu.Unlock()

	duration := time.Since(r.startTime)
	sortByPage(r.errors)
	sortByPage(r.warnings)

	if len(r.errors) == 0 && len(r.warnings) == 0 {
		r.renderMinimal(duration)
	} else {
		r.renderVerbose(duration)
	}
}

func (r *BuildReport) renderMinimal(duration time.Duration) {
	r.out.Printf("  "+r.out.Green("✓ ")+"%d pages found, %d written\n", r.pageCount, r.written)

	var failed []string
	for _, step := range r.steps {
		if !step.Success {
			failed = append(failed, "  "+r.out.Red("✗ ")+step.Name)
		}
	}

	if len(failed) == 0 {
		r.out.Printf("  "+r.out.Green("✓ ")+"Build complete in %s\n", formatDuration(duration))
	} else {
		r.out.Printf("\nFailed steps:\n")
		for _, line := range failed {
			r.out.Printf("%s\n", line)
		}
	}

	if r.outputDir != "" {
		r.out.Printf("\n  %s\n", r.out.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) renderVerbose(duration time.Duration) {
	r.out.Printf("  %d pages found, %d written\n\n", r.pageCount, r.written)

	for _, step := range r.steps {
		status := r.out.Green("✓")
		if !step.Success {
			status = r.out.Red("✗")
		}
		r.out.Printf("  %s %s\n", status, step.Name)
	}

	if len(r.errors) > 0 {
		r.out.Errorf("\n  "+r.out.Red("✗ ")+"Errors (%d):\n", len(r.errors))
		r.renderErrors(r.errors)
	}

	if len(r.warnings) > 0 {
		r.out.Printf("\n  "+r.out.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		r.renderErrors(r.warnings)
	}

	r.out.Printf("\n")
	if len(r.errors) > 0 {
		r.out.Errorf("  %s\n", r.out.Red(fmt.Sprintf("Build failed after %s", formatDuration(duration))))
	} else {
		r.out.Printf("  "+r.out.Green("✓ ")+"Build complete in %s\n", formatDuration(duration))
	}

	if r.outputDir != "" {
		r.out.Printf("\n  %s\n", r.out.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) renderErrors(errs []BuildError) {
	for _, err := range errs {
		r.out.Printf("  %s %s\n", r.out.Red("✗"), err.Page)
		r.out.Printf("    %s\n", err.Message)

		for _, detail := range deduplicateStrings(err.Details) {
			r.out.Printf("      • %s\n", detail)
		}
	}
}

func (r *BuildReport) HasFailures() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasFailures
}

func sortByPage(errs []BuildError) {
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Page < errs[j].Page })
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

// deduplicateStrings keeps the first occurrence of each item, in order,
// annotating repeated items with their count.
func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	counts := make(map[string]int)
	var order []string
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if n := counts[item]; n > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, n))
		} else {
			result = append(result, item)
		}
	}
	return result
}
