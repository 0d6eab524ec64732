// Package gitclone reads dependency files from local clones of projects.
package gitclone

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RepositoryBrowser = (*Browser)(nil)

// gitFunc runs git with args and extra environment entries and returns its combined output.
type gitFunc func(ctx context.Context, env []string, args ...string) (string, error)

// Browser implements ports.RepositoryBrowser on top of git checkouts kept below workDir.
// Each project is cloned or refreshed at most once per Browser.
type Browser struct {
	workDir string
	baseURL string
	token   string
	git     gitFunc
	synced  map[string]bool
}

// NewBrowser creates a Browser that keeps checkouts below workDir.
func NewBrowser(workDir string, cfg domain.GitLabConfig) *Browser {
	return &Browser{
		workDir: workDir,
		baseURL: strings.TrimRight(cfg.URL, "/"),
		token:   cfg.Token,
		git:     execGit,
		synced:  make(map[string]bool),
	}
}

// ListFiles syncs the checkout and returns slash separated paths of all files below dir.
func (b *Browser) ListFiles(ctx context.Context, ref domain.ProjectRef, dir, branch string) ([]string, error) {
	root, err := b.sync(ctx, ref, branch)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileListFailed.Error()), "project", ref.String())
	}

	var files []string
	walkErr := filepath.WalkDir(filepath.Join(root, filepath.FromSlash(dir)), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if errors.Is(walkErr, fs.ErrNotExist) {
		return nil, nil
	}
	if walkErr != nil {
		return nil, zerr.With(zerr.Wrap(walkErr, domain.ErrFileListFailed.Error()), "project", ref.String())
	}
	return files, nil
}

// RawFile reads path from the checkout.
func (b *Browser) RawFile(ctx context.Context, ref domain.ProjectRef, path, branch string) ([]byte, error) {
	root, err := b.sync(ctx, ref, branch)
	if err == nil {
		var data []byte
		//nolint:gosec // path comes from a listing of the same checkout
		data, err = os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
		if err == nil {
			return data, nil
		}
	}
	err = zerr.With(zerr.Wrap(err, domain.ErrFileFetchFailed.Error()), "project", ref.String())
	return nil, zerr.With(err, "path", path)
}

// sync clones the project on first use and refreshes it to the tip of branch when a
// checkout already exists. An empty branch follows the remote default branch.
func (b *Browser) sync(ctx context.Context, ref domain.ProjectRef, branch string) (string, error) {
	if ref.Path == "" {
		return "", zerr.With(domain.ErrUnusableProjectRef, "reason", "clone mode needs a project path")
	}
	rel := filepath.FromSlash(ref.Path)
	if !filepath.IsLocal(rel) {
		return "", zerr.With(domain.ErrUnusableProjectRef, "reason", "project path escapes the work directory")
	}

	root := filepath.Join(b.workDir, rel)
	if b.synced[root] {
		return root, nil
	}

	if _, err := os.Stat(filepath.Join(root, ".git")); err == nil {
		if err := b.refresh(ctx, root, branch); err != nil {
			return "", err
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(root), domain.DirPerm); err != nil {
			return "", zerr.Wrap(err, domain.ErrCloneFailed.Error())
		}
		args := []string{"clone", "--depth", "1"}
		if branch != "" {
			args = append(args, "--branch", branch)
		}
		args = append(args, b.cloneURL(ref), root)
		if out, err := b.git(ctx, b.authEnv(), args...); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrCloneFailed.Error()), "output", out)
		}
	}

	b.synced[root] = true
	return root, nil
}

func (b *Browser) refresh(ctx context.Context, root, branch string) error {
	if branch == "" {
		branch = "HEAD"
	}
	steps := [][]string{
		{"-C", root, "fetch", "--depth", "1", "origin", branch},
		{"-C", root, "reset", "--hard", "FETCH_HEAD"},
	}
	for _, args := range steps {
		if out, err := b.git(ctx, b.authEnv(), args...); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCloneFailed.Error()), "output", out)
		}
	}
	return nil
}

// cloneURL returns the recorded clone URL, or one derived from the instance URL.
// It carries no credentials; git records it as remote.origin.url.
func (b *Browser) cloneURL(ref domain.ProjectRef) string {
	if ref.CloneURL != "" {
		return ref.CloneURL
	}
	return b.baseURL + "/" + ref.Path + ".git"
}

// authEnv returns git config entries sending the token as an http header.
func (b *Browser) authEnv() []string {
	if b.token == "" {
		return nil
	}
	basic := base64.StdEncoding.EncodeToString([]byte("oauth2:" + b.token))
	return []string{
		"GIT_CONFIG_COUNT=1",
		"GIT_CONFIG_KEY_0=http.extraHeader",
		"GIT_CONFIG_VALUE_0=Authorization: Basic " + basic,
	}
}

func execGit(ctx context.Context, env []string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Env = append(append(os.Environ(), "GIT_TERMINAL_PROMPT=0"), env...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return strings.TrimSpace(out.String()), err
}
