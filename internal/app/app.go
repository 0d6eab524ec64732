// Package app implements the application layer for depsync.
package app

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"go.trai.ch/depsync/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/depsync/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/depsync/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	renderer     ports.Renderer
	newPipeline  PipelineFactory
	detect       func() detector.DecisionMode

	in  io.Reader
	out io.Writer
}

// RunOptions holds the options shared by every command.
type RunOptions struct {
	ConfigPath     string
	NonInteractive bool
	JSONLogs       bool
}

// SyncOptions configures Sync and Fetch.
type SyncOptions struct {
	RunOptions
	// DryRun reports the new dependencies of every application without saving them.
	DryRun bool
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, logger ports.Logger, renderer ports.Renderer) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
		renderer:     renderer,
		newPipeline:  NewPipeline,
		detect:       detector.DetectEnvironment,
		in:           os.Stdin,
		out:          os.Stdout,
	}
}

// WithPipelineFactory replaces the production pipeline. This is primarily used for testing.
func (a *App) WithPipelineFactory(factory PipelineFactory) *App {
	a.newPipeline = factory
	return a
}

// WithIO sets where operator answers are read from and where prompts and tables are written.
func (a *App) WithIO(in io.Reader, out io.Writer) *App {
	a.in = in
	a.out = out
	return a
}

// WithDecisionMode pins the decision mode instead of detecting it from the terminal.
func (a *App) WithDecisionMode(mode detector.DecisionMode) *App {
	a.detect = func() detector.DecisionMode { return mode }
	return a
}

// run is one command invocation: the pipeline plus the tracer feeding the renderer.
type run struct {
	*Pipeline
	tracer ports.Tracer
	stop   func()
}

func (a *App) start(opts RunOptions) (*run, error) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(opts.JSONLogs)
	}

	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	r := &run{tracer: telemetry.Noop{}, stop: func() {}}
	if !opts.JSONLogs && a.renderer != nil {
		tracer := telemetry.NewOTelTracer(a.renderer)
		r.tracer = tracer
		r.stop = func() { _ = tracer.Shutdown(context.Background()) }
	}

	r.Pipeline, err = a.newPipeline(cfg, Environment{
		Logger:  a.logger,
		Tracer:  r.tracer,
		Decider: a.decider(opts.NonInteractive),
	})
	if err != nil {
		r.stop()
		return nil, zerr.Wrap(err, "failed to build pipeline")
	}
	return r, nil
}

// decider returns the console when an operator can answer, otherwise the batch
// policy: ambiguous matches are skipped and new dependencies accepted.
func (a *App) decider(nonInteractive bool) ports.Decider {
	if detector.ResolveMode(a.detect(), nonInteractive) == detector.ModeInteractive {
		return prompt.NewConsole(a.in, a.out)
	}
	return prompt.AlwaysAccept{}
}

// Sync lists the deployed applications, resolves the unknown ones and records the
// dependencies of every application with a project record.
func (a *App) Sync(ctx context.Context, opts SyncOptions) (domain.SyncReport, error) {
	var report domain.SyncReport

	r, err := a.start(opts.RunOptions)
	if err != nil {
		return report, err
	}
	defer r.stop()

	ctx, span := r.tracer.Start(ctx, "sync")
	defer span.End()

	names, err := a.inventory(ctx, r)
	if err != nil {
		span.RecordError(err)
		return report, zerr.Wrap(err, domain.ErrSyncFailed.Error())
	}
	report.Applications = names
	r.tracer.EmitPlan(ctx, names)

	report.Resolve, err = r.Resolver.ResolveMissing(ctx, names)
	if err != nil {
		span.RecordError(err)
		return report, zerr.Wrap(err, domain.ErrSyncFailed.Error())
	}

	records, err := a.loadStores(r)
	if err != nil {
		span.RecordError(err)
		return report, err
	}

	report.Results, err = a.processAll(ctx, r, records, slices.Sorted(maps.Keys(records)), opts.DryRun)
	a.writeSummary(report.Results)
	if err != nil {
		span.RecordError(err)
		return report, zerr.Wrap(err, domain.ErrSyncFailed.Error())
	}
	return report, nil
}

// Resolve lists the deployed applications and resolves the unknown ones.
func (a *App) Resolve(ctx context.Context, opts RunOptions) (domain.ResolveReport, error) {
	r, err := a.start(opts)
	if err != nil {
		return domain.ResolveReport{}, err
	}
	defer r.stop()

	names, err := a.inventory(ctx, r)
	if err != nil {
		return domain.ResolveReport{}, zerr.Wrap(err, domain.ErrSyncFailed.Error())
	}
	r.tracer.EmitPlan(ctx, names)

	report, err := r.Resolver.ResolveMissing(ctx, names)
	if err != nil {
		return report, zerr.Wrap(err, domain.ErrSyncFailed.Error())
	}
	return report, nil
}

// Fetch records the dependencies of the named applications, or of every recorded
// application when apps is empty. The inventory is not consulted.
func (a *App) Fetch(ctx context.Context, apps []string, opts SyncOptions) ([]domain.AppResult, error) {
	r, err := a.start(opts.RunOptions)
	if err != nil {
		return nil, err
	}
	defer r.stop()

	records, err := a.loadStores(r)
	if err != nil {
		return nil, err
	}

	names := dedupe(apps)
	if len(names) == 0 {
		names = slices.Sorted(maps.Keys(records))
	}
	r.tracer.EmitPlan(ctx, names)

	results, err := a.processAll(ctx, r, records, names, opts.DryRun)
	a.writeSummary(results)
	if err != nil {
		return results, zerr.Wrap(err, domain.ErrSyncFailed.Error())
	}
	return results, nil
}

func (a *App) inventory(ctx context.Context, r *run) ([]string, error) {
	ctx, span := r.tracer.Start(ctx, "inventory")
	defer span.End()

	names, err := r.Inventory.ListApplications(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	names = dedupe(names)
	span.SetAttribute("applications", len(names))
	a.logger.Info(fmt.Sprintf("found %d deployed application(s)", len(names)))
	return names, nil
}

// loadStores reads both stores once so that a corrupt store aborts the run
// before any project is fetched.
func (a *App) loadStores(r *run) (map[string]domain.ProjectRef, error) {
	records, err := r.Apps.Load()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSyncFailed.Error())
	}
	if _, err := r.Dependencies.Load(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSyncFailed.Error())
	}
	return records, nil
}

func (a *App) processAll(
	ctx context.Context,
	r *run,
	records map[string]domain.ProjectRef,
	names []string,
	dryRun bool,
) ([]domain.AppResult, error) {
	results := make([]domain.AppResult, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return results, zerr.Wrap(err, "run interrupted")
		}

		ref, ok := records[name]
		if !ok {
			a.logger.Error(zerr.With(domain.ErrUnknownApplication, "app", name))
			results = append(results, domain.AppResult{App: name, Skipped: "no project record"})
			continue
		}
		results = append(results, a.process(ctx, r, name, ref, dryRun))
	}
	return results, nil
}

func (a *App) process(ctx context.Context, r *run, name string, ref domain.ProjectRef, dryRun bool) domain.AppResult {
	result := domain.AppResult{App: name, Project: ref.String()}

	if !ref.Usable() {
		a.logger.Warn(fmt.Sprintf("skipping %s: record has no project id or path", name))
		result.Skipped = "unusable record"
		return result
	}

	tokens, err := r.Fetcher.Fetch(ctx, name, ref)
	if err != nil {
		a.logger.Error(err)
		result.Skipped = "file listing failed"
		return result
	}
	result.Found = tokens.Len()

	if dryRun {
		added, err := r.Ledger.Preview(name, tokens)
		if err != nil {
			a.logger.Error(zerr.With(err, "app", name))
			result.Skipped = "ledger unavailable"
			return result
		}
		for _, token := range added {
			a.logger.Info(fmt.Sprintf("%s: would add %s", name, token))
		}
		result.Added = added
		return result
	}

	added, err := r.Ledger.Merge(ctx, name, tokens)
	if err != nil {
		a.logger.Error(err)
		result.Skipped = "save failed"
		return result
	}
	result.Added = added
	return result
}

// dedupe drops repeated names, keeping the first occurrence.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
