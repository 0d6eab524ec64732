package ports

// Decider answers the questions the pipeline would otherwise ask an operator.
// Console and automatic implementations are interchangeable.
//
//go:generate mockgen -source=decider.go -destination=mocks/mock_decider.go -package=mocks
type Decider interface {
	// Choose presents options and returns the 0-based index of the selection.
	// ok is false when the operator skipped or gave invalid input.
	Choose(question string, options []string) (index int, ok bool)

	// Confirm asks a yes/no question.
	Confirm(question string) bool

	// Ask requests free text. An empty answer means no answer.
	Ask(question string) string
}
