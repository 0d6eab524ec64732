package ports

import "time"

// Renderer is the abstraction for progress output.
// It decouples span collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called once the inventory is known.
	OnPlanEmit(apps []string)

	// OnStageStart is called when a stage begins.
	// spanID: unique identifier for this stage
	// parentID: spanID of the enclosing stage (empty if root)
	OnStageStart(spanID, parentID, name string, startTime time.Time)

	// OnStageComplete is called when a stage finishes; err is nil on success.
	OnStageComplete(spanID string, endTime time.Time, err error)

	// Stop flushes any buffered output.
	Stop() error
}
