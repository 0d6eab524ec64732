package app

import (
	"go.trai.ch/depsync/internal/adapters/cf"        //nolint:depguard // Wired in app layer
	"go.trai.ch/depsync/internal/adapters/gitclone"  //nolint:depguard // Wired in app layer
	"go.trai.ch/depsync/internal/adapters/gitlab"    //nolint:depguard // Wired in app layer
	"go.trai.ch/depsync/internal/adapters/jsonstore" //nolint:depguard // Wired in app layer
	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/depsync/internal/engine/fetcher"
	"go.trai.ch/depsync/internal/engine/ledger"
	"go.trai.ch/depsync/internal/engine/resolver"
)

// Environment holds the ambient components a pipeline is built around.
type Environment struct {
	Logger  ports.Logger
	Tracer  ports.Tracer
	Decider ports.Decider
}

// Pipeline holds the components of one run, built from the loaded configuration.
type Pipeline struct {
	Inventory    ports.Inventory
	Apps         ports.AppStore
	Dependencies ports.DependencyStore
	Resolver     *resolver.Resolver
	Fetcher      *fetcher.Fetcher
	Ledger       *ledger.Ledger
}

// PipelineFactory builds the pipeline for a configuration.
type PipelineFactory func(cfg *domain.Config, env Environment) (*Pipeline, error)

// NewPipeline builds the production pipeline: the cf inventory, the GitLab client
// (or a local clone browser) and the two JSON stores.
func NewPipeline(cfg *domain.Config, env Environment) (*Pipeline, error) {
	client := gitlab.NewClient(cfg.GitLab)

	var browser ports.RepositoryBrowser = client
	if cfg.Fetcher.Mode == domain.FetchModeClone {
		browser = gitclone.NewBrowser(cfg.Fetcher.WorkDir, cfg.GitLab)
	}

	apps := jsonstore.NewAppStore(cfg.Stores.Apps)
	deps := jsonstore.NewDependencyStore(cfg.Stores.Dependencies)

	return &Pipeline{
		Inventory:    cf.NewInventory(cfg.CF, env.Logger),
		Apps:         apps,
		Dependencies: deps,
		Resolver: resolver.NewResolver(
			client, env.Decider, apps, env.Logger, env.Tracer, cfg.Resolver.Strategy,
		),
		Fetcher: fetcher.NewFetcher(browser, client, env.Logger, env.Tracer, fetcher.Options{
			Dir:              cfg.Fetcher.Dir,
			Branch:           cfg.GitLab.Branch,
			UseDefaultBranch: cfg.GitLab.UseDefaultBranch,
		}),
		Ledger: ledger.NewLedger(deps, env.Decider, env.Logger, env.Tracer, cfg.Ledger.Confirm),
	}, nil
}
