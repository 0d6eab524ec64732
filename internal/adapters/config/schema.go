package config

// File represents the structure of the depsync.yaml configuration file.
// Pointer fields distinguish an omitted key from an explicit zero value.
type File struct {
	CF       CFDTO       `yaml:"cf"`
	GitLab   GitLabDTO   `yaml:"gitlab"`
	Resolver ResolverDTO `yaml:"resolver"`
	Fetcher  FetcherDTO  `yaml:"fetcher"`
	Ledger   LedgerDTO   `yaml:"ledger"`
	Stores   StoresDTO   `yaml:"stores"`
}

// CFDTO represents the cf section.
type CFDTO struct {
	Binary string            `yaml:"binary"`
	Orgs   *bool             `yaml:"orgs"`
	Env    map[string]string `yaml:"env"`
}

// GitLabDTO represents the gitlab section.
type GitLabDTO struct {
	URL              string  `yaml:"url"`
	TokenEnv         string  `yaml:"token_env"`
	Branch           *string `yaml:"branch"`
	UseDefaultBranch bool    `yaml:"use_default_branch"`
	Timeout          string  `yaml:"timeout"`
}

// ResolverDTO represents the resolver section.
type ResolverDTO struct {
	Strategy string `yaml:"strategy"`
}

// FetcherDTO represents the fetcher section.
type FetcherDTO struct {
	Mode    string `yaml:"mode"`
	Dir     string `yaml:"dir"`
	WorkDir string `yaml:"workdir"`
}

// LedgerDTO represents the ledger section.
type LedgerDTO struct {
	Confirm *bool `yaml:"confirm"`
}

// StoresDTO represents the stores section.
type StoresDTO struct {
	Apps         string `yaml:"apps"`
	Dependencies string `yaml:"dependencies"`
}
