package prompt

import "go.trai.ch/depsync/internal/core/ports"

var (
	_ ports.Decider = AlwaysSkip{}
	_ ports.Decider = AlwaysAccept{}
)

// AlwaysSkip declines every question.
type AlwaysSkip struct{}

// Choose skips.
func (AlwaysSkip) Choose(string, []string) (int, bool) { return 0, false }

// Confirm declines.
func (AlwaysSkip) Confirm(string) bool { return false }

// Ask gives no answer.
func (AlwaysSkip) Ask(string) string { return "" }

// AlwaysAccept confirms every question. Selections and free text cannot be
// answered without an operator, so they are skipped.
type AlwaysAccept struct{}

// Choose skips.
func (AlwaysAccept) Choose(string, []string) (int, bool) { return 0, false }

// Confirm accepts.
func (AlwaysAccept) Confirm(string) bool { return true }

// Ask gives no answer.
func (AlwaysAccept) Ask(string) string { return "" }
