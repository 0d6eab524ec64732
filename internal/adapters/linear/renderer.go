// Package linear provides a synchronous, line based progress renderer.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/depsync/internal/ui/output"
	"go.trai.ch/depsync/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer by printing one line per stage event.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu     sync.Mutex
	stages map[string]stageState // spanID -> stage state
}

type stageState struct {
	name      string
	startTime time.Time
	depth     int
}

// NewRenderer creates a Renderer writing to w (stderr when nil).
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}

	return &Renderer{
		w:      w,
		output: output.NewANSI(w),
		stages: make(map[string]stageState),
	}
}

// Stop is a no-op; every line is written synchronously.
func (r *Renderer) Stop() error {
	return nil
}

// OnPlanEmit prints the applications about to be processed.
func (r *Renderer) OnPlanEmit(apps []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.w, "Planning to process %d application(s)\n", len(apps))
}

// OnStageStart prints a stage start message, indented below its parent.
func (r *Renderer) OnStageStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	depth := 0
	if parent, ok := r.stages[parentID]; ok {
		depth = parent.depth + 1
	}
	r.stages[spanID] = stageState{name: name, startTime: startTime, depth: depth}

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.w, "%s%s Starting...\n", indent(depth), prefix)
}

// OnStageComplete prints the completion status of a stage.
func (r *Renderer) OnStageComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stage, ok := r.stages[spanID]
	if !ok {
		return
	}
	delete(r.stages, spanID)

	duration := endTime.Sub(stage.startTime).Round(time.Millisecond)
	prefix := indent(stage.depth) + fmt.Sprintf("[%s]", stage.name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.w, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}

	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.w, "%s %s Completed in %v\n", prefix, symbol, duration)
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
