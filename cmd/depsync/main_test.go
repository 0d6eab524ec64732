package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depsync/internal/adapters/detector"
	"go.trai.ch/depsync/internal/app"
	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(mockLoader, mockLogger, nil)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs the error when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load("missing.yaml").Return(nil, domain.ErrConfigParseFailed)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
	})

	application := app.New(mockLoader, mockLogger, nil)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"sync", "--config", "missing.yaml"}, io.Discard, provider,
		func(a *app.App) {
			a.WithIO(strings.NewReader(""), io.Discard).WithDecisionMode(detector.ModeBatch)
		})

	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that a cancelled context stops the run with a failure.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	blockCh := make(chan struct{})
	mockInventory := mocks.NewMockInventory(ctrl)
	mockInventory.EXPECT().ListApplications(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]string, error) {
		close(blockCh)
		<-ctx.Done()
		return nil, ctx.Err()
	})

	application := app.New(mockLoader, mockLogger, nil).
		WithDecisionMode(detector.ModeBatch).
		WithIO(strings.NewReader(""), io.Discard).
		WithPipelineFactory(func(*domain.Config, app.Environment) (*app.Pipeline, error) {
			return &app.Pipeline{Inventory: mockInventory}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"sync"}, io.Discard, func(context.Context) (*app.Components, func(), error) {
			return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
		})
	}()

	<-blockCh
	cancel()

	select {
	case ret := <-errCh:
		assert.Equal(t, 1, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
