// Package resolver maps application names to source-control projects.
package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// authenticator is implemented by searchers that know whether they carry credentials.
type authenticator interface {
	Authenticated() bool
}

// Resolver resolves applications with either a project search or an operator prompt.
type Resolver struct {
	searcher ports.ProjectSearcher
	decider  ports.Decider
	store    ports.AppStore
	logger   ports.Logger
	tracer   ports.Tracer
	strategy domain.ResolverStrategy

	anonymous bool
	warned    bool
}

// NewResolver creates a new Resolver with the given dependencies.
// An unauthenticated searcher is accepted; the first search logs a warning.
func NewResolver(
	searcher ports.ProjectSearcher,
	decider ports.Decider,
	store ports.AppStore,
	logger ports.Logger,
	tracer ports.Tracer,
	strategy domain.ResolverStrategy,
) *Resolver {
	a, ok := searcher.(authenticator)

	return &Resolver{
		searcher: searcher,
		decider:  decider,
		store:    store,
		logger:   logger,
		tracer:   tracer,
		strategy: strategy,

		anonymous: ok && !a.Authenticated(),
	}
}

// Resolve returns the project of app, or nil when it stays unresolved.
// Only search failures are returned as errors.
func (r *Resolver) Resolve(ctx context.Context, app string) (*domain.ProjectRef, error) {
	if r.strategy == domain.StrategyPrompt {
		return r.ask(app), nil
	}
	return r.search(ctx, app)
}

func (r *Resolver) search(ctx context.Context, app string) (*domain.ProjectRef, error) {
	if r.anonymous && !r.warned {
		r.logger.Warn("no GitLab token configured, private projects will not be visible")
		r.warned = true
	}

	projects, err := r.searcher.SearchProjects(ctx, app)
	if err != nil {
		return nil, err
	}

	var matches []domain.Project
	for _, p := range projects {
		if p.Name == app {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		ref := matches[0].Ref()
		return &ref, nil
	}

	labels := make([]string, len(matches))
	for i, p := range matches {
		labels[i] = p.Label()
	}

	idx, ok := r.decider.Choose(fmt.Sprintf("Multiple projects named %s found:", app), labels)
	if !ok || idx < 0 || idx >= len(matches) {
		return nil, nil
	}
	ref := matches[idx].Ref()
	return &ref, nil
}

func (r *Resolver) ask(app string) *domain.ProjectRef {
	answer := r.decider.Ask("Enter the Git URL or project path for " + app)
	if answer == "" {
		return nil
	}

	ref := domain.ParseProjectRef(answer)
	if !ref.Usable() {
		r.logger.Warn(fmt.Sprintf("ignoring %q for %s: no project path in reference", answer, app))
		return nil
	}
	return &ref
}

// ResolveMissing resolves every name without a record and saves the store once
// at the end of the pass. Failures for one name never stop the pass.
func (r *Resolver) ResolveMissing(ctx context.Context, names []string) (domain.ResolveReport, error) {
	var report domain.ResolveReport

	ctx, span := r.tracer.Start(ctx, "resolve")
	defer span.End()

	records, err := r.store.Load()
	if err != nil {
		span.RecordError(err)
		return report, err
	}

	for _, name := range names {
		if _, known := records[name]; known {
			report.Known = append(report.Known, name)
			continue
		}

		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return report, zerr.Wrap(err, "resolution interrupted")
		}

		ref, err := r.Resolve(ctx, name)
		if err != nil {
			r.logger.Error(err)
		}
		if ref == nil {
			r.logger.Warn("unresolved: no project found for " + name)
			report.Unresolved = append(report.Unresolved, name)
			continue
		}

		r.logger.Info(fmt.Sprintf("resolved %s to %s", name, ref))
		records[name] = *ref
		report.Resolved = append(report.Resolved, name)
	}

	span.SetAttribute("resolved", len(report.Resolved))
	span.SetAttribute("unresolved", len(report.Unresolved))

	if len(report.Resolved) == 0 {
		return report, nil
	}
	if err := r.store.Save(records); err != nil {
		span.RecordError(err)
		return report, err
	}
	return report, nil
}
