package domain

// ResolveReport summarises one resolution pass.
type ResolveReport struct {
	// Known lists names that already had a record and were skipped.
	Known []string
	// Resolved lists names that received a record during the pass.
	Resolved []string
	// Unresolved lists names that are still without a record.
	Unresolved []string
}

// AppResult summarises the fetch and merge of one application.
type AppResult struct {
	App     string
	Project string
	Found   int
	Added   []string
	Skipped string
}

// SyncReport summarises a full run.
type SyncReport struct {
	Applications []string
	Resolve      ResolveReport
	Results      []AppResult
}

// LedgerRow is one line of the joined record and dependency view.
type LedgerRow struct {
	App          string
	Project      string
	Dependencies int
	// Orphaned marks a dependency set without an application record.
	Orphaned bool
}
