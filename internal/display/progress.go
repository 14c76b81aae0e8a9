package display

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
)

// ProgressIndicator reports per-file progress of the index command
type ProgressIndicator struct {
	writer     io.Writer
	totalFiles int
	current    int
	records    int
	step       *color.Color
	done       *color.Color
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int, colorOutput bool) *ProgressIndicator {
	step := color.New(color.FgCyan)
	done := color.New(color.FgGreen)
	if colorOutput {
		step.EnableColor()
		done.EnableColor()
	} else {
		step.DisableColor()
		done.DisableColor()
	}
	return &ProgressIndicator{
		writer:     w,
		totalFiles: total,
		step:       step,
		done:       done,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Indexing %d fortune files:\n", p.totalFiles)
}

// Step displays progress for one file: [N/Total] name (records)
func (p *ProgressIndicator) Step(filename string, records int) {
	p.current++
	p.records += records
	fmt.Fprintln(p.writer, p.step.Sprintf("  [%d/%d] %s (%d fortunes)", p.current, p.totalFiles, filepath.Base(filename), records))
}

// Complete displays the summary line
func (p *ProgressIndicator) Complete() {
	fmt.Fprintf(p.writer, "%s Indexed %d fortunes in %d files\n", p.done.Sprint("✓"), p.records, p.current)
}
