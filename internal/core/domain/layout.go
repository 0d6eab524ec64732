package domain

const (
	// ConfigFileName is the name of the default configuration file.
	ConfigFileName = "depsync.yaml"

	// AppsFileName is the default name of the application record store.
	AppsFileName = "apps.json"

	// DependenciesFileName is the default name of the dependency set store.
	DependenciesFileName = "dependencies.json"

	// DependenciesDirName is the conventional directory holding dependency declaration files.
	DependenciesDirName = "dependencies"

	// ReposDirName is the default checkout directory for clone mode.
	ReposDirName = "repos"

	// DefaultBranch is the branch used for raw file retrieval when none is configured.
	DefaultBranch = "main"

	// DefaultGitLabURL is the GitLab instance queried when none is configured.
	DefaultGitLabURL = "https://gitlab.com"

	// DefaultTokenEnv is the environment variable holding the GitLab token.
	DefaultTokenEnv = "GITLAB_TOKEN"

	// DefaultCFBinary is the Cloud Foundry CLI executable.
	DefaultCFBinary = "cf"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
