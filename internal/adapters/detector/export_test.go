package detector

// SetIsTerminal replaces the TTY probe and returns a restore function.
func SetIsTerminal(fn func(fd int) bool) func() {
	prev := isTerminal
	isTerminal = fn
	return func() { isTerminal = prev }
}
