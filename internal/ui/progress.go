package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps the progressbar library with our custom styling
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	phase string
	total int
}

// Phase represents a stage of a reconciliation run
type Phase string

const (
	PhaseLoading    Phase = "Loading"
	PhaseMapping    Phase = "Mapping"
	PhaseReordering Phase = "Reordering"
	PhaseExporting  Phase = "Exporting"
)

// RunPhases is the standard phase order of the reorder command
var RunPhases = []Phase{PhaseLoading, PhaseMapping, PhaseReordering, PhaseExporting}

// NewProgressBar creates a new progress bar for a specific phase
func NewProgressBar(phase Phase, total int) *ProgressBar {
	return NewProgressBarWithOutput(phase, total, os.Stdout)
}

// NewProgressBarWithOutput creates a new progress bar with custom output
func NewProgressBarWithOutput(phase Phase, total int, output io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(output),
		progressbar.OptionSetDescription(fmt.Sprintf("[%s]", phase)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionEnableColorCodes(true),
	)

	return &ProgressBar{
		bar:   bar,
		phase: string(phase),
		total: total,
	}
}

// Increment increments the progress bar by 1
func (pb *ProgressBar) Increment() error {
	return pb.bar.Add(1)
}

// SetTotal updates the total count of the progress bar
func (pb *ProgressBar) SetTotal(total int) {
	pb.total = total
	pb.bar.ChangeMax(total)
}

// Finish completes the progress bar
func (pb *ProgressBar) Finish() error {
	return pb.bar.Finish()
}

// Describe updates the description of the progress bar
func (pb *ProgressBar) Describe(description string) {
	pb.bar.Describe(fmt.Sprintf("[%s] %s", pb.phase, description))
}

// Phase returns the phase this bar tracks
func (pb *ProgressBar) Phase() string {
	return pb.phase
}

// Pipeline represents a multi-phase progress tracking system
type Pipeline struct {
	phases   []Phase
	current  int
	bars     []*ProgressBar
	disabled bool
	output   io.Writer
}

// NewPipeline creates a new pipeline progress tracker
func NewPipeline(phases []Phase) *Pipeline {
	return NewPipelineWithOutput(phases, os.Stdout)
}

// NewPipelineWithOutput creates a new pipeline with custom output
func NewPipelineWithOutput(phases []Phase, output io.Writer) *Pipeline {
	return &Pipeline{
		phases:  phases,
		current: -1,
		bars:    make([]*ProgressBar, 0, len(phases)),
		output:  output,
	}
}

// Disable routes every following bar to io.Discard
func (p *Pipeline) Disable() {
	p.disabled = true
}

// NextPhase finishes the current phase and returns a bar for the next one.
// Past the last phase it returns a discarding bar so callers never get nil.
func (p *Pipeline) NextPhase(total int) *ProgressBar {
	if p.current >= 0 && p.current < len(p.bars) {
		p.bars[p.current].Finish()
	}

	p.current++
	phase := Phase("Done")
	if p.current < len(p.phases) {
		phase = p.phases[p.current]
	}

	output := p.output
	if p.disabled || p.current >= len(p.phases) {
		output = io.Discard
	}

	bar := NewProgressBarWithOutput(phase, total, output)
	p.bars = append(p.bars, bar)
	return bar
}

// Finish completes all phases
func (p *Pipeline) Finish() {
	if p.current >= 0 && p.current < len(p.bars) {
		p.bars[p.current].Finish()
	}
}

// PrintSummary prints a message unless progress output is disabled
func (p *Pipeline) PrintSummary(message string) {
	if !p.disabled {
		fmt.Fprintln(p.output, message)
	}
}
