package domain

import "time"

// ResolverStrategy selects how application names are mapped to projects.
type ResolverStrategy string

const (
	// StrategySearch queries the project search API and disambiguates exact matches.
	StrategySearch ResolverStrategy = "search"
	// StrategyPrompt asks the operator for a project reference directly.
	StrategyPrompt ResolverStrategy = "prompt"
)

// FetchMode selects how dependency files are discovered and read.
type FetchMode string

const (
	// FetchModeAPI lists and reads files through the source-control HTTP API.
	FetchModeAPI FetchMode = "api"
	// FetchModeClone clones the project locally and walks the checkout.
	FetchModeClone FetchMode = "clone"
)

// Config is the resolved runtime configuration.
type Config struct {
	CF       CFConfig
	GitLab   GitLabConfig
	Resolver ResolverConfig
	Fetcher  FetcherConfig
	Ledger   LedgerConfig
	Stores   StoresConfig
}

// CFConfig configures the Cloud Foundry inventory source.
type CFConfig struct {
	Binary string
	// AllOrgs enumerates every org and space; otherwise only the targeted space is listed.
	AllOrgs bool
	// Env holds extra variables set on every CLI invocation.
	Env map[string]string
}

// GitLabConfig configures the source-control API client.
type GitLabConfig struct {
	URL              string
	TokenEnv         string
	Token            string
	Branch           string
	UseDefaultBranch bool
	Timeout          time.Duration
}

// ResolverConfig configures the project resolver.
type ResolverConfig struct {
	Strategy ResolverStrategy
}

// FetcherConfig configures the dependency fetcher.
type FetcherConfig struct {
	Mode    FetchMode
	Dir     string
	WorkDir string
}

// LedgerConfig configures the dependency ledger.
type LedgerConfig struct {
	Confirm bool
}

// StoresConfig holds the paths of the two persisted datasets.
type StoresConfig struct {
	Apps         string
	Dependencies string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		CF: CFConfig{
			Binary:  DefaultCFBinary,
			AllOrgs: true,
			Env:     map[string]string{},
		},
		GitLab: GitLabConfig{
			URL:      DefaultGitLabURL,
			TokenEnv: DefaultTokenEnv,
			Branch:   DefaultBranch,
			Timeout:  30 * time.Second,
		},
		Resolver: ResolverConfig{Strategy: StrategySearch},
		Fetcher: FetcherConfig{
			Mode:    FetchModeAPI,
			Dir:     DependenciesDirName,
			WorkDir: ReposDirName,
		},
		Ledger: LedgerConfig{Confirm: true},
		Stores: StoresConfig{
			Apps:         AppsFileName,
			Dependencies: DependenciesFileName,
		},
	}
}
