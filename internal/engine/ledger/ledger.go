// Package ledger merges fetched dependency tokens into the persisted dependency sets.
package ledger

import (
	"context"
	"fmt"

	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Ledger grows the stored set of each application. Tokens are never removed.
type Ledger struct {
	store   ports.DependencyStore
	decider ports.Decider
	logger  ports.Logger
	tracer  ports.Tracer
	confirm bool
}

// NewLedger creates a new Ledger. With confirm set every new token is put to the decider.
func NewLedger(
	store ports.DependencyStore,
	decider ports.Decider,
	logger ports.Logger,
	tracer ports.Tracer,
	confirm bool,
) *Ledger {
	return &Ledger{
		store:   store,
		decider: decider,
		logger:  logger,
		tracer:  tracer,
		confirm: confirm,
	}
}

// Merge adds the accepted new tokens of app to the store and saves it.
// It returns the accepted tokens in sorted order. A declined token is only
// skipped for this run.
func (l *Ledger) Merge(ctx context.Context, app string, tokens domain.DependencySet) ([]string, error) {
	_, span := l.tracer.Start(ctx, "merge "+app, ports.WithQuiet())
	defer span.End()

	sets, err := l.store.Load()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	existing, known := sets[app]
	if existing == nil {
		existing = domain.NewDependencySet()
	}

	var accepted []string
	for _, token := range tokens.Difference(existing).Sorted() {
		if l.confirm && !l.decider.Confirm(fmt.Sprintf("Dependency %s not found for app %s. Add it?", token, app)) {
			continue
		}
		accepted = append(accepted, token)
	}
	span.SetAttribute("accepted", len(accepted))

	if len(accepted) == 0 && known {
		return nil, nil
	}

	existing.Union(domain.NewDependencySet(accepted...))
	sets[app] = existing

	if err := l.store.Save(sets); err != nil {
		err = zerr.With(err, "app", app)
		span.RecordError(err)
		return nil, err
	}

	if len(accepted) > 0 {
		l.logger.Info(fmt.Sprintf("%s: added %d dependencies", app, len(accepted)))
	}
	return accepted, nil
}

// Preview returns the tokens Merge would propose for app without asking or saving.
func (l *Ledger) Preview(app string, tokens domain.DependencySet) ([]string, error) {
	sets, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	return tokens.Difference(sets[app]).Sorted(), nil
}
