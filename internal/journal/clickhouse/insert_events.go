package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/educhain-backend/internal/model"
	"github.com/goodnatureofminers/educhain-backend/pkg/safe"
)

func insertEventsQuery() string {
	return `
INSERT INTO session_events (
	kind,
	subject,
	occurred_at,
	duration_ms,
	status,
	detail
) VALUES`
}

// InsertEvents stores journal rows in ClickHouse.
func (r *Repository) InsertEvents(ctx context.Context, events []model.Event) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_events", len(events), err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertEventsQuery())
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, e := range events {
		var durationMs uint64
		durationMs, err = safe.Milliseconds(e.Duration)
		if err != nil {
			return fmt.Errorf("event %s duration: %w", e.Kind, err)
		}
		if err = batch.Append(
			string(e.Kind),
			e.Subject,
			e.OccurredAt.UTC(),
			durationMs,
			string(e.Status),
			e.Detail,
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
