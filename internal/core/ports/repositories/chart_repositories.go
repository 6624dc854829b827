package repositories

import "context"

// ChartWriter stores a chart of accounts and its settings atomically.
type ChartWriter interface {
	// WithinTx runs fn with writers bound to one transaction. The transaction commits
	// only when fn returns nil.
	WithinTx(ctx context.Context, fn func(accounts AccountWriter, settings SettingsWriter) error) error
}
