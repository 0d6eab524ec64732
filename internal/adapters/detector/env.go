// Package detector decides whether an operator is available to answer prompts.
package detector

import (
	"os"

	"golang.org/x/term"
)

// DecisionMode selects who answers the pipeline's questions.
type DecisionMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto DecisionMode = iota
	// ModeInteractive asks the operator on the console.
	ModeInteractive
	// ModeBatch answers with an automatic policy.
	ModeBatch
)

func (m DecisionMode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeBatch:
		return "batch"
	default:
		return "auto"
	}
}

var isTerminal = term.IsTerminal

// DetectEnvironment returns ModeBatch when stdin is not a TTY or CI is set.
func DetectEnvironment() DecisionMode {
	isTTY := isTerminal(int(os.Stdin.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeBatch
	}
	return ModeInteractive
}

// ResolveMode applies the --non-interactive flag to auto-detection.
func ResolveMode(autoDetected DecisionMode, nonInteractive bool) DecisionMode {
	if nonInteractive {
		return ModeBatch
	}
	if autoDetected == ModeAuto {
		return DetectEnvironment()
	}
	return autoDetected
}
