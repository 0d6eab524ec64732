// Package prompt implements operator decisions on a console and as automatic policies.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/depsync/internal/ui/output"
	"go.trai.ch/depsync/internal/ui/style"
)

var _ ports.Decider = (*Console)(nil)

// Console asks questions on out and reads one answer line per question from in.
// A closed input answers every question with a skip.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	prompt lipgloss.Style
	option lipgloss.Style
}

// NewConsole creates a Console.
func NewConsole(in io.Reader, out io.Writer) *Console {
	renderer := lipgloss.NewRenderer(out)
	renderer.SetColorProfile(output.ColorProfile())

	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: style.Prompt.Renderer(renderer),
		option: style.Option.Renderer(renderer),
	}
}

// Choose lists options numbered from 1 and reads a selection.
// "s", non-numeric and out of range input all skip.
func (c *Console) Choose(question string, options []string) (int, bool) {
	_, _ = fmt.Fprintln(c.out, c.prompt.Render(question))
	for i, opt := range options {
		_, _ = fmt.Fprintln(c.out, c.option.Render(fmt.Sprintf("  %d) %s", i+1, opt)))
	}
	_, _ = fmt.Fprint(c.out, c.prompt.Render("Select a number, or s to skip:")+" ")

	answer := c.readLine()
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		return 0, false
	}
	return n - 1, true
}

// Confirm reads a y/n answer. Only "y" and "yes" confirm.
func (c *Console) Confirm(question string) bool {
	_, _ = fmt.Fprint(c.out, c.prompt.Render(question+" (y/n):")+" ")

	switch strings.ToLower(c.readLine()) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Ask reads a free text answer.
func (c *Console) Ask(question string) string {
	_, _ = fmt.Fprint(c.out, c.prompt.Render(question+":")+" ")
	return c.readLine()
}

func (c *Console) readLine() string {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		// EOF without content; keep the transcript on separate lines.
		_, _ = fmt.Fprintln(c.out)
	}
	return strings.TrimSpace(line)
}
