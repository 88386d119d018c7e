package cli

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReportMinimal(t *testing.T) {
	var out, errOut bytes.Buffer
	report := NewBuildReport(NewWriterOutput(&out, &errOut), "dist")
	report.SetPageCount(2)
	step := report.StartStep("Rendering pages")
	report.PageWritten()
	report.PageWritten()
	report.EndStep(step, true, "")

	report.Render()

	assert.False(t, report.HasFailures())
	assert.Contains(t, out.String(), "2 pages found, 2 written")
	assert.Contains(t, out.String(), "Build complete in")
	assert.Contains(t, out.String(), "Output: dist")
	assert.Empty(t, errOut.String())
}

func TestBuildReportVerboseWithErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	report := NewBuildReport(NewWriterOutput(&out, &errOut), "")
	report.SetPageCount(3)
	report.AddError("location/b", "Render failed", []string{"boom", "boom"})
	report.AddError("location/a", "Invalid record", []string{"name (required)"})
	report.AddWarning("assets", "Skipped", nil)

	report.Render()

	assert.True(t, report.HasFailures())
	assert.Contains(t, errOut.String(), "Errors (2)")
	assert.Contains(t, errOut.String(), "Build failed after")
	assert.Contains(t, out.String(), "boom (2 occurrences)")
	assert.Contains(t, out.String(), "Warnings (1)")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("location/a")), bytes.Index(out.Bytes(), []byte("location/b")))
}

func TestBuildReportConcurrentUse(t *testing.T) {
	report := NewBuildReport(NewWriterOutput(&bytes.Buffer{}, &bytes.Buffer{}), "")

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				report.AddError(fmt.Sprintf("page-%d", i), "failed", nil)
			} else {
				report.PageWritten()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, report.Errors(), 25)
}

func TestDeduplicateStrings(t *testing.T) {
	assert.Equal(t, []string{"a (2 occurrences)", "b"}, deduplicateStrings([]string{"a", "b", "a"}))
	assert.Equal(t, []string{"x"}, deduplicateStrings([]string{"x"}))
}

func TestOutputPrinting(t *testing.T) {
	var out, errOut bytes.Buffer
	o := NewWriterOutput(&out, &errOut)

	o.PrintHeader("pagesmith build")
	o.PrintSuccess("wrote %d pages", 3)
	o.PrintWarning("careful")
	o.PrintError("bad %s", "thing")
	o.PrintFile("dist/index.html")

	assert.Equal(t, "pagesmith build\n\n  ✓ wrote 3 pages\n  ⚠ careful\n    dist/index.html\n", out.String())
	assert.Equal(t, "  ✗ bad thing\n", errOut.String())
}
