// Package config provides the configuration loader for depsync.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	// Getenv resolves the token environment variable. Defaults to os.Getenv.
	Getenv func(string) string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Getenv: os.Getenv}
}

// Load reads the configuration at path and overlays it on the defaults.
// A missing file yields the defaults. Relative store and checkout paths are
// resolved against the directory of the file.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	var file File
	found, err := readAndUnmarshalYAML(path, &file)
	if err != nil {
		return nil, err
	}

	if found {
		if err := l.apply(cfg, &file); err != nil {
			return nil, zerr.With(err, "path", path)
		}
		resolvePaths(cfg, filepath.Dir(path))
	}

	cfg.GitLab.Token = l.Getenv(cfg.GitLab.TokenEnv)
	return cfg, nil
}

func (l *Loader) apply(cfg *domain.Config, file *File) error {
	if file.CF.Binary != "" {
		cfg.CF.Binary = file.CF.Binary
	}
	if file.CF.Orgs != nil {
		cfg.CF.AllOrgs = *file.CF.Orgs
	}
	for k, v := range file.CF.Env {
		cfg.CF.Env[k] = v
	}

	if file.GitLab.URL != "" {
		cfg.GitLab.URL = strings.TrimRight(file.GitLab.URL, "/")
	}
	if file.GitLab.TokenEnv != "" {
		cfg.GitLab.TokenEnv = file.GitLab.TokenEnv
	}
	cfg.GitLab.UseDefaultBranch = file.GitLab.UseDefaultBranch
	switch {
	case file.GitLab.Branch != nil:
		cfg.GitLab.Branch = *file.GitLab.Branch
	case cfg.GitLab.UseDefaultBranch:
		// An explicit branch wins over the lookup.
		cfg.GitLab.Branch = ""
	}
	if cfg.GitLab.Branch == "" && !cfg.GitLab.UseDefaultBranch {
		l.Logger.Warn("gitlab.branch is empty and use_default_branch is off, using " + domain.DefaultBranch)
		cfg.GitLab.Branch = domain.DefaultBranch
	}
	if file.GitLab.Timeout != "" {
		timeout, err := time.ParseDuration(file.GitLab.Timeout)
		if err != nil || timeout <= 0 {
			return zerr.With(domain.ErrInvalidTimeout, "timeout", file.GitLab.Timeout)
		}
		cfg.GitLab.Timeout = timeout
	}

	switch strategy := domain.ResolverStrategy(file.Resolver.Strategy); strategy {
	case "":
	case domain.StrategySearch, domain.StrategyPrompt:
		cfg.Resolver.Strategy = strategy
	default:
		return zerr.With(domain.ErrInvalidStrategy, "strategy", file.Resolver.Strategy)
	}

	switch mode := domain.FetchMode(file.Fetcher.Mode); mode {
	case "":
	case domain.FetchModeAPI, domain.FetchModeClone:
		cfg.Fetcher.Mode = mode
	default:
		return zerr.With(domain.ErrInvalidFetchMode, "mode", file.Fetcher.Mode)
	}
	if file.Fetcher.Dir != "" {
		cfg.Fetcher.Dir = strings.Trim(file.Fetcher.Dir, "/")
	}
	if file.Fetcher.WorkDir != "" {
		cfg.Fetcher.WorkDir = file.Fetcher.WorkDir
	}

	if file.Ledger.Confirm != nil {
		cfg.Ledger.Confirm = *file.Ledger.Confirm
	}

	if file.Stores.Apps != "" {
		cfg.Stores.Apps = file.Stores.Apps
	}
	if file.Stores.Dependencies != "" {
		cfg.Stores.Dependencies = file.Stores.Dependencies
	}
	return nil
}

func resolvePaths(cfg *domain.Config, root string) {
	cfg.Stores.Apps = resolvePath(root, cfg.Stores.Apps)
	cfg.Stores.Dependencies = resolvePath(root, cfg.Stores.Dependencies)
	cfg.Fetcher.WorkDir = resolvePath(root, cfg.Fetcher.WorkDir)
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) (bool, error) {
	// #nosec G304 -- configPath is supplied by the operator
	configFile, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return false, zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return true, nil
}
