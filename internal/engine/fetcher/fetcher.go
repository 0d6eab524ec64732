// Package fetcher collects the dependency tokens declared in a project.
package fetcher

import (
	"context"
	"fmt"

	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configures where declaration files are looked up.
type Options struct {
	// Dir is the directory scanned at any depth, relative to the project root.
	Dir string
	// Branch is the ref files are read from. When empty and UseDefaultBranch is
	// set, the project's default branch is looked up.
	Branch           string
	UseDefaultBranch bool
}

// Fetcher reads every file below Options.Dir and parses its tokens.
type Fetcher struct {
	browser  ports.RepositoryBrowser
	branches ports.BranchResolver
	logger   ports.Logger
	tracer   ports.Tracer
	opts     Options
}

// NewFetcher creates a new Fetcher. branches may be nil when default branch lookup is off.
func NewFetcher(
	browser ports.RepositoryBrowser,
	branches ports.BranchResolver,
	logger ports.Logger,
	tracer ports.Tracer,
	opts Options,
) *Fetcher {
	if opts.Dir == "" {
		opts.Dir = domain.DependenciesDirName
	}
	return &Fetcher{
		browser:  browser,
		branches: branches,
		logger:   logger,
		tracer:   tracer,
		opts:     opts,
	}
}

// Fetch returns the union of the tokens of all declaration files of ref.
// An error means the files could not be listed; single file failures are
// logged and skipped.
func (f *Fetcher) Fetch(ctx context.Context, app string, ref domain.ProjectRef) (domain.DependencySet, error) {
	ctx, span := f.tracer.Start(ctx, "fetch "+app)
	defer span.End()

	branch, err := f.branch(ctx, ref)
	if err != nil {
		err = zerr.With(err, "app", app)
		span.RecordError(err)
		return domain.NewDependencySet(), err
	}

	files, err := f.browser.ListFiles(ctx, ref, f.opts.Dir, branch)
	if err != nil {
		err = zerr.With(err, "app", app)
		span.RecordError(err)
		return domain.NewDependencySet(), err
	}

	tokens := domain.NewDependencySet()
	for _, path := range files {
		content, err := f.browser.RawFile(ctx, ref, path, branch)
		if err != nil {
			f.logger.Error(zerr.With(err, "app", app))
			continue
		}
		tokens.Union(domain.ParseDependencyTokens(string(content)))
	}

	span.SetAttribute("files", len(files))
	span.SetAttribute("tokens", tokens.Len())
	f.logger.Info(fmt.Sprintf("%s: %d file(s), %d dependencies", app, len(files), tokens.Len()))
	return tokens, nil
}

func (f *Fetcher) branch(ctx context.Context, ref domain.ProjectRef) (string, error) {
	if f.opts.Branch != "" || !f.opts.UseDefaultBranch || f.branches == nil {
		if f.opts.Branch == "" {
			return domain.DefaultBranch, nil
		}
		return f.opts.Branch, nil
	}

	branch, err := f.branches.DefaultBranch(ctx, ref)
	if err != nil {
		return "", err
	}
	if branch == "" {
		return domain.DefaultBranch, nil
	}
	return branch, nil
}
