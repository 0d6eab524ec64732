package app

import (
	"context"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// Report joins the two stores and renders one row per application to w.
// Dependency sets whose application has no record are marked as orphaned.
func (a *App) Report(_ context.Context, w io.Writer, opts RunOptions) ([]domain.LedgerRow, error) {
	r, err := a.start(opts)
	if err != nil {
		return nil, err
	}
	defer r.stop()

	records, err := r.Apps.Load()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load application records")
	}
	sets, err := r.Dependencies.Load()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load dependency sets")
	}

	rows := joinStores(records, sets)
	writeLedger(w, rows)
	return rows, nil
}

func joinStores(records map[string]domain.ProjectRef, sets map[string]domain.DependencySet) []domain.LedgerRow {
	names := slices.Collect(maps.Keys(records))
	for name := range sets {
		if _, ok := records[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	rows := make([]domain.LedgerRow, 0, len(names))
	for _, name := range names {
		ref, recorded := records[name]
		rows = append(rows, domain.LedgerRow{
			App:          name,
			Project:      ref.String(),
			Dependencies: sets[name].Len(),
			Orphaned:     !recorded,
		})
	}
	return rows
}

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(header)
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	return t
}

func writeLedger(w io.Writer, rows []domain.LedgerRow) {
	t := newTable(w, table.Row{"App", "Project", "Dependencies", "Status"})
	for _, row := range rows {
		status := "ok"
		switch {
		case row.Orphaned:
			status = "orphaned"
		case row.Project == "":
			status = "unusable record"
		}
		t.AppendRow(table.Row{row.App, row.Project, row.Dependencies, status})
	}
	t.Render()
}

func (a *App) writeSummary(results []domain.AppResult) {
	if len(results) == 0 {
		return
	}

	t := newTable(a.out, table.Row{"App", "Project", "Found", "Added", "Skipped"})
	for _, res := range results {
		added := strings.Join(res.Added, ", ")
		if added == "" && res.Skipped == "" {
			added = "-"
		}
		t.AppendRow(table.Row{res.App, res.Project, res.Found, added, res.Skipped})
	}
	t.Render()
}
