package resolver_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/depsync/internal/core/ports/mocks"
	"go.trai.ch/depsync/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type resolverTestMocks struct {
	searcher *mocks.MockProjectSearcher
	decider  *mocks.MockDecider
	store    *mocks.MockAppStore
	logger   *mocks.MockLogger
	tracer   *mocks.MockTracer
}

func setupResolverTest(t *testing.T, strategy domain.ResolverStrategy) (*resolver.Resolver, resolverTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := resolverTestMocks{
		searcher: mocks.NewMockProjectSearcher(ctrl),
		decider:  mocks.NewMockDecider(ctrl),
		store:    mocks.NewMockAppStore(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		tracer:   mocks.NewMockTracer(ctrl),
	}

	mockSpan := mocks.NewMockSpan(ctrl)
	mockSpan.EXPECT().End().AnyTimes()
	mockSpan.EXPECT().RecordError(gomock.Any()).AnyTimes()
	mockSpan.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, mockSpan
		},
	).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	r := resolver.NewResolver(m.searcher, m.decider, m.store, m.logger, m.tracer, strategy)
	return r, m
}

func billingMatches() []domain.Project {
	return []domain.Project{
		{ID: 101, Name: "billing-service", PathWithNamespace: "team-a/billing-service"},
		{ID: 102, Name: "billing-service-ui", PathWithNamespace: "team-a/billing-service-ui"},
		{ID: 202, Name: "billing-service", PathWithNamespace: "team-b/billing-service"},
	}
}

func TestResolve_Search_Selection(t *testing.T) {
	tests := []struct {
		name    string
		choice  int
		ok      bool
		wantRef *domain.ProjectRef
	}{
		{
			name:    "second match selected",
			choice:  1,
			ok:      true,
			wantRef: &domain.ProjectRef{ID: 202, Path: "team-b/billing-service"},
		},
		{
			name:   "skipped",
			choice: 0,
			ok:     false,
		},
		{
			name:   "out of range index",
			choice: 8,
			ok:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, m := setupResolverTest(t, domain.StrategySearch)

			m.searcher.EXPECT().SearchProjects(gomock.Any(), "billing-service").Return(billingMatches(), nil)
			m.decider.EXPECT().Choose(gomock.Any(), []string{
				"team-a/billing-service (id 101)",
				"team-b/billing-service (id 202)",
			}).Return(tt.choice, tt.ok)

			ref, err := r.Resolve(t.Context(), "billing-service")
			require.NoError(t, err)
			assert.Equal(t, tt.wantRef, ref)
		})
	}
}

func TestResolve_Search_ExactMatchOnly(t *testing.T) {
	r, m := setupResolverTest(t, domain.StrategySearch)

	m.searcher.EXPECT().SearchProjects(gomock.Any(), "svc-a").Return([]domain.Project{
		{ID: 1, Name: "svc-a-legacy"},
		{ID: 2, Name: "SVC-A"},
		{ID: 10, Name: "svc-a", PathWithNamespace: "team/svc-a", WebURL: "https://gitlab.example.com/team/svc-a"},
	}, nil)

	ref, err := r.Resolve(t.Context(), "svc-a")
	require.NoError(t, err)
	assert.Equal(t, &domain.ProjectRef{ID: 10, Path: "team/svc-a", WebURL: "https://gitlab.example.com/team/svc-a"}, ref)
}

func TestResolve_Search_NoMatch(t *testing.T) {
	r, m := setupResolverTest(t, domain.StrategySearch)

	m.searcher.EXPECT().SearchProjects(gomock.Any(), "svc-b").Return([]domain.Project{{ID: 3, Name: "svc-b2"}}, nil)

	ref, err := r.Resolve(t.Context(), "svc-b")
	require.NoError(t, err)
	assert.Nil(t, ref)
}

func TestResolve_Prompt(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		wantRef *domain.ProjectRef
		warns   bool
	}{
		{
			name:   "git url",
			answer: "https://gitlab.example.com/team/svc-b.git",
			wantRef: &domain.ProjectRef{
				Path:     "team/svc-b",
				WebURL:   "https://gitlab.example.com/team/svc-b",
				CloneURL: "https://gitlab.example.com/team/svc-b.git",
			},
		},
		{name: "project id", answer: "77", wantRef: &domain.ProjectRef{ID: 77}},
		{name: "no answer", answer: ""},
		{name: "url without path", answer: "https://gitlab.example.com/", warns: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, m := setupResolverTest(t, domain.StrategyPrompt)

			m.decider.EXPECT().Ask("Enter the Git URL or project path for svc-b").Return(tt.answer)
			if tt.warns {
				m.logger.EXPECT().Warn(gomock.Any()).Times(1)
			}

			ref, err := r.Resolve(t.Context(), "svc-b")
			require.NoError(t, err)
			assert.Equal(t, tt.wantRef, ref)
		})
	}
}

func TestResolver_WarnsOnceWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn("no GitLab token configured, private projects will not be visible").Times(1)

	searcher := &anonymousSearcher{MockProjectSearcher: mocks.NewMockProjectSearcher(ctrl)}
	searcher.EXPECT().SearchProjects(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	r := resolver.NewResolver(searcher, mocks.NewMockDecider(ctrl), mocks.NewMockAppStore(ctrl), logger, mocks.NewMockTracer(ctrl), domain.StrategySearch)

	for _, app := range []string{"svc-a", "svc-b"} {
		ref, err := r.Resolve(t.Context(), app)
		require.NoError(t, err)
		assert.Nil(t, ref)
	}
}

type anonymousSearcher struct {
	*mocks.MockProjectSearcher
}

func (anonymousSearcher) Authenticated() bool { return false }

func TestResolveMissing_SearchFailureDoesNotStopPass(t *testing.T) {
	r, m := setupResolverTest(t, domain.StrategySearch)

	m.store.EXPECT().Load().Return(map[string]domain.ProjectRef{
		"svc-known": {ID: 5},
	}, nil)

	gomock.InOrder(
		m.searcher.EXPECT().SearchProjects(gomock.Any(), "svc-a").Return(nil, errors.New("503 Service Unavailable")),
		m.searcher.EXPECT().SearchProjects(gomock.Any(), "svc-b").Return([]domain.Project{{ID: 11, Name: "svc-b", PathWithNamespace: "team/svc-b"}}, nil),
	)

	m.logger.EXPECT().Error(gomock.Any()).Times(1)
	m.logger.EXPECT().Warn("unresolved: no project found for svc-a").Times(1)

	m.store.EXPECT().Save(map[string]domain.ProjectRef{
		"svc-known": {ID: 5},
		"svc-b":     {ID: 11, Path: "team/svc-b"},
	}).Return(nil)

	report, err := r.ResolveMissing(t.Context(), []string{"svc-known", "svc-a", "svc-b"})
	require.NoError(t, err)
	assert.Equal(t, domain.ResolveReport{
		Known:      []string{"svc-known"},
		Resolved:   []string{"svc-b"},
		Unresolved: []string{"svc-a"},
	}, report)
}

func TestResolveMissing_EveryNameAccountedFor(t *testing.T) {
	r, m := setupResolverTest(t, domain.StrategySearch)

	names := []string{"svc-a", "svc-b", "svc-c"}
	m.store.EXPECT().Load().Return(map[string]domain.ProjectRef{}, nil)
	m.searcher.EXPECT().SearchProjects(gomock.Any(), "svc-a").Return([]domain.Project{{ID: 10, Name: "svc-a", PathWithNamespace: "team/svc-a"}}, nil)
	m.searcher.EXPECT().SearchProjects(gomock.Any(), "svc-b").Return(nil, nil)
	m.searcher.EXPECT().SearchProjects(gomock.Any(), "svc-c").Return(nil, errors.New("timeout"))
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	var warned []string
	m.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { warned = append(warned, msg) }).AnyTimes()
	m.store.EXPECT().Save(gomock.Any()).Return(nil)

	report, err := r.ResolveMissing(t.Context(), names)
	require.NoError(t, err)

	for _, name := range names {
		recorded := slices.Contains(report.Resolved, name)
		logged := slices.Contains(warned, "unresolved: no project found for "+name)
		assert.True(t, recorded != logged, "%s must be either recorded or logged as unresolved", name)
	}
}

func TestResolveMissing_NothingResolvedSkipsSave(t *testing.T) {
	r, m := setupResolverTest(t, domain.StrategySearch)

	m.store.EXPECT().Load().Return(map[string]domain.ProjectRef{"svc-a": {ID: 10}}, nil)
	m.store.EXPECT().Save(gomock.Any()).Times(0)

	report, err := r.ResolveMissing(t.Context(), []string{"svc-a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-a"}, report.Known)
}

func TestResolveMissing_LoadFailure(t *testing.T) {
	r, m := setupResolverTest(t, domain.StrategySearch)

	m.store.EXPECT().Load().Return(nil, domain.ErrAppStoreUnmarshalFailed)

	_, err := r.ResolveMissing(t.Context(), []string{"svc-a"})
	require.ErrorIs(t, err, domain.ErrAppStoreUnmarshalFailed)
}

func TestResolveMissing_SaveFailure(t *testing.T) {
	r, m := setupResolverTest(t, domain.StrategySearch)

	m.store.EXPECT().Load().Return(map[string]domain.ProjectRef{}, nil)
	m.searcher.EXPECT().SearchProjects(gomock.Any(), "svc-a").Return([]domain.Project{{ID: 10, Name: "svc-a"}}, nil)
	m.store.EXPECT().Save(gomock.Any()).Return(domain.ErrAppStoreWriteFailed)

	report, err := r.ResolveMissing(t.Context(), []string{"svc-a"})
	require.ErrorIs(t, err, domain.ErrAppStoreWriteFailed)
	assert.Equal(t, []string{"svc-a"}, report.Resolved)
}

func TestResolveMissing_Cancelled(t *testing.T) {
	r, m := setupResolverTest(t, domain.StrategySearch)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	m.store.EXPECT().Load().Return(map[string]domain.ProjectRef{}, nil)
	m.store.EXPECT().Save(gomock.Any()).Times(0)

	_, err := r.ResolveMissing(ctx, []string{"svc-a"})
	require.ErrorIs(t, err, context.Canceled)
}
