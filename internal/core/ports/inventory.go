// Package ports defines the core interfaces for the application.
package ports

import "context"

// Inventory lists the applications deployed on the platform.
//
//go:generate mockgen -source=inventory.go -destination=mocks/mock_inventory.go -package=mocks
type Inventory interface {
	// ListApplications returns every deployed application name.
	// Names may repeat across spaces and the order is unspecified; callers deduplicate.
	// An error means the top-level listing failed and the run cannot continue.
	ListApplications(ctx context.Context) ([]string, error)
}
