package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/educhain-backend/internal/model"
	"github.com/goodnatureofminers/educhain-backend/pkg/safe"
)

const recentEventsQuery = `
SELECT
	kind,
	subject,
	occurred_at,
	duration_ms,
	status,
	detail
FROM session_events
WHERE (? = '' OR kind = ?)
ORDER BY occurred_at DESC
LIMIT ?`

type eventRow struct {
	Kind       string    `ch:"kind"`
	Subject    string    `ch:"subject"`
	OccurredAt time.Time `ch:"occurred_at"`
	DurationMs uint64    `ch:"duration_ms"`
	Status     string    `ch:"status"`
	Detail     string    `ch:"detail"`
}

func (row eventRow) event() model.Event {
	return model.Event{
		Kind:       model.EventKind(row.Kind),
		Subject:    row.Subject,
		OccurredAt: row.OccurredAt.UTC(),
		Duration:   time.Duration(row.DurationMs) * time.Millisecond,
		Status:     model.EventStatus(row.Status),
		Detail:     row.Detail,
	}
}

// RecentEvents returns up to limit events, newest first. An empty kind
// matches every kind.
func (r *Repository) RecentEvents(ctx context.Context, kind model.EventKind, limit int) ([]model.Event, error) {
	start := time.Now()
	var (
		rows []eventRow
		err  error
	)
	defer func() {
		r.metrics.Observe("recent_events", len(rows), err, start)
	}()

	var n uint32
	n, err = safe.Uint32(limit)
	if err != nil {
		return nil, fmt.Errorf("recent events limit: %w", err)
	}

	if err = r.conn.Select(ctx, &rows, recentEventsQuery, string(kind), string(kind), n); err != nil {
		err = fmt.Errorf("query recent events: %w", err)
		return nil, err
	}

	events := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.event())
	}
	return events, nil
}
