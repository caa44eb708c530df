package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type eventRepo struct {
	drv *entsql.Driver
	now func() time.Time
}

func (r *eventRepo) AppendEvent(ctx context.Context, data EventData) error {
	success := 0
	if data.Success {
		success = 1
	}
	query, args := builder().Insert("audit_events").
		Columns("timestamp", "kind", "subject", "success", "latency_ms", "error_message").
		Values(r.now().UnixMilli(), data.Kind, data.Subject, success, data.LatencyMs, data.ErrorMessage).
		Query()
	if _, err := exec(ctx, r.drv, query, args); err != nil {
		return fmt.Errorf("save audit event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryEvents(ctx context.Context, opts QueryOpts) ([]Event, error) {
	b := builder()
	sel := b.Select("id", "timestamp", "kind", "subject", "success", "latency_ms", "error_message").
		From(b.Table("audit_events")).
		OrderBy(entsql.Desc("id"))
	if opts.Kind != "" {
		sel = sel.Where(entsql.EQ("kind", opts.Kind))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e       Event
			ts      int64
			success int
		)
		if err := rows.Scan(&e.ID, &ts, &e.Kind, &e.Subject, &success, &e.LatencyMs, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts).UTC()
		e.Success = success == 1
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
