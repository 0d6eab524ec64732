package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depsync/cmd/depsync/commands"
	"go.trai.ch/depsync/internal/app"
	"go.trai.ch/depsync/internal/build"
	"go.trai.ch/depsync/internal/core/domain"
)

type mockApp struct {
	syncFunc    func(ctx context.Context, opts app.SyncOptions) (domain.SyncReport, error)
	resolveFunc func(ctx context.Context, opts app.RunOptions) (domain.ResolveReport, error)
	fetchFunc   func(ctx context.Context, apps []string, opts app.SyncOptions) ([]domain.AppResult, error)
	reportFunc  func(ctx context.Context, w io.Writer, opts app.RunOptions) ([]domain.LedgerRow, error)
}

func (m *mockApp) Sync(ctx context.Context, opts app.SyncOptions) (domain.SyncReport, error) {
	if m.syncFunc != nil {
		return m.syncFunc(ctx, opts)
	}
	return domain.SyncReport{}, nil
}

func (m *mockApp) Resolve(ctx context.Context, opts app.RunOptions) (domain.ResolveReport, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, opts)
	}
	return domain.ResolveReport{}, nil
}

func (m *mockApp) Fetch(ctx context.Context, apps []string, opts app.SyncOptions) ([]domain.AppResult, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, apps, opts)
	}
	return nil, nil
}

func (m *mockApp) Report(ctx context.Context, w io.Writer, opts app.RunOptions) ([]domain.LedgerRow, error) {
	if m.reportFunc != nil {
		return m.reportFunc(ctx, w, opts)
	}
	return nil, nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Sync(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.SyncOptions
		mock := &mockApp{
			syncFunc: func(_ context.Context, opts app.SyncOptions) (domain.SyncReport, error) {
				captured = opts
				return domain.SyncReport{
					Applications: []string{"svc-a", "svc-b"},
					Resolve:      domain.ResolveReport{Resolved: []string{"svc-a"}, Unresolved: []string{"svc-b"}},
				}, nil
			},
		}

		out, err := execute(t, mock, "sync", "--dry-run", "--non-interactive", "--json-logs", "-c", "ops/depsync.yaml")
		require.NoError(t, err)

		assert.Equal(t, app.SyncOptions{
			RunOptions: app.RunOptions{
				ConfigPath:     "ops/depsync.yaml",
				NonInteractive: true,
				JSONLogs:       true,
			},
			DryRun: true,
		}, captured)
		assert.Equal(t, "2 application(s), 1 resolved, 1 unresolved\n", out)
	})

	t.Run("uses default config path", func(t *testing.T) {
		var captured app.SyncOptions
		mock := &mockApp{
			syncFunc: func(_ context.Context, opts app.SyncOptions) (domain.SyncReport, error) {
				captured = opts
				return domain.SyncReport{}, nil
			},
		}

		_, err := execute(t, mock, "sync")
		require.NoError(t, err)
		assert.Equal(t, domain.ConfigFileName, captured.ConfigPath)
		assert.False(t, captured.DryRun)
	})

	t.Run("returns error on sync failure", func(t *testing.T) {
		mock := &mockApp{
			syncFunc: func(context.Context, app.SyncOptions) (domain.SyncReport, error) {
				return domain.SyncReport{}, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "sync")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "sync", "svc-a")
		require.Error(t, err)
	})
}

func TestCommands_Resolve(t *testing.T) {
	mock := &mockApp{
		resolveFunc: func(context.Context, app.RunOptions) (domain.ResolveReport, error) {
			return domain.ResolveReport{
				Known:      []string{"svc-a"},
				Unresolved: []string{"svc-b", "svc-c"},
			}, nil
		},
	}

	out, err := execute(t, mock, "resolve")
	require.NoError(t, err)
	assert.Equal(t, "1 known, 0 resolved, 2 unresolved\n  unresolved: svc-b\n  unresolved: svc-c\n", out)
}

func TestCommands_Fetch(t *testing.T) {
	var capturedApps []string
	var capturedOpts app.SyncOptions
	mock := &mockApp{
		fetchFunc: func(_ context.Context, apps []string, opts app.SyncOptions) ([]domain.AppResult, error) {
			capturedApps = apps
			capturedOpts = opts
			return nil, nil
		},
	}

	_, err := execute(t, mock, "fetch", "svc-a", "svc-b", "-n")
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-a", "svc-b"}, capturedApps)
	assert.True(t, capturedOpts.DryRun)
}

func TestCommands_Report(t *testing.T) {
	mock := &mockApp{
		reportFunc: func(_ context.Context, w io.Writer, _ app.RunOptions) ([]domain.LedgerRow, error) {
			_, _ = io.WriteString(w, "ledger table\n")
			return nil, nil
		},
	}

	out, err := execute(t, mock, "report")
	require.NoError(t, err)
	assert.Equal(t, "ledger table\n", out)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "depsync version "+build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--version")
	require.NoError(t, err)

	assert.Contains(t, out, build.Commit)
}
