package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Ingest persists a normalized event record, assigning its id and
	// server-side receipt timestamp. Append-only: no dedup, no upsert.
	Ingest(ctx context.Context, input IngestInput) (IngestOutput, error)
	// List returns all persisted records, most recent first.
	List(ctx context.Context) (ListOutput, error)
}
