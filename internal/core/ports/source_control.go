package ports

import (
	"context"

	"go.trai.ch/depsync/internal/core/domain"
)

//go:generate mockgen -source=source_control.go -destination=mocks/mock_source_control.go -package=mocks

// ProjectSearcher finds source-control projects by name.
type ProjectSearcher interface {
	// SearchProjects returns the projects matching name. Matching may be fuzzy;
	// callers filter for exact names.
	SearchProjects(ctx context.Context, name string) ([]domain.Project, error)
}

// RepositoryBrowser reads files from a project.
type RepositoryBrowser interface {
	// ListFiles returns the paths of every file located under dir, at any depth.
	ListFiles(ctx context.Context, ref domain.ProjectRef, dir, branch string) ([]string, error)

	// RawFile returns the content of the file at path.
	RawFile(ctx context.Context, ref domain.ProjectRef, path, branch string) ([]byte, error)
}

// BranchResolver looks up the default branch of a project.
type BranchResolver interface {
	// DefaultBranch returns the default branch of the referenced project.
	DefaultBranch(ctx context.Context, ref domain.ProjectRef) (string, error)
}
