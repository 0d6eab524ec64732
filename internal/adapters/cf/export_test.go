package cf

import (
	"context"

	"go.trai.ch/depsync/internal/core/ports"
)

// NewInventoryWithRunner creates an Inventory backed by run.
func NewInventoryWithRunner(allOrgs bool, logger ports.Logger, run func(ctx context.Context, args ...string) (string, error)) *Inventory {
	return &Inventory{logger: logger, allOrgs: allOrgs, run: run}
}

// ResolveEnvironmentExported exposes resolveEnvironment.
func ResolveEnvironmentExported(sysEnv []string, overrides map[string]string) []string {
	return resolveEnvironment(sysEnv, overrides)
}
