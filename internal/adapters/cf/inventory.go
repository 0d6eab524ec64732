// Package cf lists deployed applications through the Cloud Foundry CLI.
package cf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Inventory = (*Inventory)(nil)

// runFunc invokes the CLI with args and returns its standard output.
type runFunc func(ctx context.Context, args ...string) (string, error)

// Inventory implements ports.Inventory by walking orgs, spaces and apps.
type Inventory struct {
	logger  ports.Logger
	allOrgs bool
	run     runFunc
}

// NewInventory creates an Inventory invoking the configured binary.
func NewInventory(cfg domain.CFConfig, logger ports.Logger) *Inventory {
	return &Inventory{
		logger:  logger,
		allOrgs: cfg.AllOrgs,
		run:     execRunner(cfg.Binary, resolveEnvironment(os.Environ(), cfg.Env)),
	}
}

// ListApplications returns every application name found. Names may repeat
// across spaces; the caller deduplicates.
func (i *Inventory) ListApplications(ctx context.Context) ([]string, error) {
	if !i.allOrgs {
		out, err := i.run(ctx, "apps")
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrInventoryFailed.Error())
		}
		return ParseTable(out, appsHeaderLines), nil
	}

	out, err := i.run(ctx, "orgs")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInventoryFailed.Error())
	}

	var apps []string
	for _, org := range ParseNames(out, orgsHeaderLines) {
		if ctx.Err() != nil {
			return nil, zerr.Wrap(ctx.Err(), domain.ErrInventoryFailed.Error())
		}
		apps = append(apps, i.listOrg(ctx, org)...)
	}
	return apps, nil
}

func (i *Inventory) listOrg(ctx context.Context, org string) []string {
	if _, err := i.run(ctx, "target", "-o", org); err != nil {
		i.warn(zerr.With(zerr.Wrap(err, domain.ErrTargetFailed.Error()), "org", org))
		return nil
	}

	out, err := i.run(ctx, "spaces")
	if err != nil {
		i.warn(zerr.With(zerr.Wrap(err, domain.ErrListingFailed.Error()), "org", org))
		return nil
	}

	var apps []string
	for _, space := range ParseNames(out, spacesHeaderLines) {
		apps = append(apps, i.listSpace(ctx, org, space)...)
	}
	return apps
}

func (i *Inventory) listSpace(ctx context.Context, org, space string) []string {
	if _, err := i.run(ctx, "target", "-o", org, "-s", space); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrTargetFailed.Error()), "org", org)
		i.warn(zerr.With(err, "space", space))
		return nil
	}

	out, err := i.run(ctx, "apps")
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrListingFailed.Error()), "org", org)
		i.warn(zerr.With(err, "space", space))
		return nil
	}

	apps := ParseTable(out, appsHeaderLines)
	i.logger.Info(fmt.Sprintf("found %d apps in %s/%s", len(apps), org, space))
	return apps
}

func (i *Inventory) warn(err error) {
	i.logger.Warn("skipping: " + err.Error() + describeMetadata(err))
}

// describeMetadata renders the metadata of every zerr error in the chain as key=value pairs.
func describeMetadata(err error) string {
	md := make(map[string]any)
	for current := err; current != nil; current = errors.Unwrap(current) {
		if z, ok := current.(*zerr.Error); ok {
			for k, v := range z.Metadata() {
				if _, seen := md[k]; !seen {
					md[k] = v
				}
			}
		}
	}

	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, fmt.Sprint(md[k]))
	}
	return b.String()
}

func execRunner(binary string, env []string) runFunc {
	return func(ctx context.Context, args ...string) (string, error) {
		cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec // binary is configured by the operator
		cmd.Env = env

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			err = zerr.With(err, "command", binary+" "+strings.Join(args, " "))
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				err = zerr.With(err, "stderr", msg)
			}
			return "", err
		}
		return stdout.String(), nil
	}
}

// resolveEnvironment overlays the configured variables on the process environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	env := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, overridden := overrides[k]; overridden {
			continue
		}
		env = append(env, entry)
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		env = append(env, k+"="+overrides[k])
	}
	return env
}
