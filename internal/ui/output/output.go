// Package output builds termenv outputs with the colour profile and TTY handling
// shared by the logger, the progress renderer and operator prompts.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for interactive use.
// NO_COLOR forces Ascii; otherwise the terminal capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the color profile for CI and piped output.
// NO_COLOR forces Ascii; otherwise plain ANSI colours are used.
func ColorProfileANSI() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates a termenv.Output using the interactive profile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return newOutput(w, ColorProfile(), opts...)
}

// NewANSI creates a termenv.Output using the CI profile.
func NewANSI(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return newOutput(w, ColorProfileANSI(), opts...)
}

func newOutput(w io.Writer, profile termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profile),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
