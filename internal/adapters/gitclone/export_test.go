package gitclone

import (
	"context"

	"go.trai.ch/depsync/internal/core/domain"
)

// NewBrowserWithGit creates a Browser that runs git through fn.
func NewBrowserWithGit(workDir string, cfg domain.GitLabConfig, fn func(ctx context.Context, env []string, args ...string) (string, error)) *Browser {
	b := NewBrowser(workDir, cfg)
	b.git = fn
	return b
}

// CloneURLExported exposes cloneURL.
func (b *Browser) CloneURLExported(ref domain.ProjectRef) string {
	return b.cloneURL(ref)
}
