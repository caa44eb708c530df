package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/scholar/internal/backend"
)

// Documents implements backend.DocumentStore on the documents table.
// Field maps are stored as JSON text.
type Documents struct {
	drv *entsql.Driver
	seq *sequenceCounter
	now func() time.Time
}

var _ backend.DocumentStore = (*Documents)(nil)

func (d *Documents) AddDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.New().String()
	if err := d.write(ctx, collection, id, fields); err != nil {
		return "", fmt.Errorf("add document to %s: %w", collection, err)
	}
	return id, nil
}

func (d *Documents) SetDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := d.write(ctx, collection, id, fields); err != nil {
		return fmt.Errorf("set document %s/%s: %w", collection, id, err)
	}
	return nil
}

// write upserts a document. An overwrite keeps the original sequence so
// the record does not move in GetDocuments order.
func (d *Documents) write(ctx context.Context, collection, id string, fields map[string]any) error {
	now := d.now()
	body, err := json.Marshal(backend.ResolveFields(fields, now))
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}

	seq, err := d.seq.Next(ctx)
	if err != nil {
		return err
	}

	query, args := builder().Insert("documents").
		Columns("collection", "id", "seq", "fields", "updated_at").
		Values(collection, id, seq, string(body), now.UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("collection", "id"),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetExcluded("fields")
				u.SetExcluded("updated_at")
			}),
		).
		Query()

	if _, err := exec(ctx, d.drv, query, args); err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

func (d *Documents) GetDocuments(ctx context.Context, collection string) ([]backend.Record, error) {
	b := builder()
	query, args := b.Select("id", "fields").
		From(b.Table("documents")).
		Where(entsql.EQ("collection", collection)).
		OrderBy("seq").
		Query()

	rows := &entsql.Rows{}
	if err := d.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer rows.Close()

	var records []backend.Record
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		fields := map[string]any{}
		if err := json.Unmarshal([]byte(body), &fields); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", collection, id, err)
		}
		records = append(records, backend.Record{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return records, nil
}

// GetDocument returns a single record, or backend.ErrNotFound.
func (d *Documents) GetDocument(ctx context.Context, collection, id string) (*backend.Record, error) {
	b := builder()
	query, args := b.Select("fields").
		From(b.Table("documents")).
		Where(entsql.And(
			entsql.EQ("collection", collection),
			entsql.EQ("id", id),
		)).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := d.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query %s/%s: %w", collection, id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, backend.ErrNotFound
	}
	var body string
	if err := rows.Scan(&body); err != nil {
		return nil, fmt.Errorf("scan %s/%s: %w", collection, id, err)
	}
	fields := map[string]any{}
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return &backend.Record{ID: id, Fields: fields}, nil
}
