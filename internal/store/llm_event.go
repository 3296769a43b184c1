package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmoiron/sqlx"
)

const (
	eventsTable     = "llm_request_events"
	countersTable   = "counters"
	sequenceCounter = "llm_event_sequence"
)

var eventColumns = []string{
	"id", "sequence", "timestamp", "request_id", "provider", "model", "purpose",
	"input_tokens", "output_tokens", "latency_ms", "success", "error_message",
	"request_body", "response_body",
}

// sqlb builds SQLite statements; execution goes through sqlx.
var sqlb = entsql.Dialect(dialect.SQLite)

// SQLEventRepo reads and writes the model call log.
type SQLEventRepo struct {
	db *sqlx.DB
}

var _ EventRepo = (*SQLEventRepo)(nil)

// eventRow is one llm_request_events row as stored.
type eventRow struct {
	ID           int    `db:"id"`
	Sequence     int64  `db:"sequence"`
	Timestamp    int64  `db:"timestamp"`
	RequestID    string `db:"request_id"`
	Provider     string `db:"provider"`
	Model        string `db:"model"`
	Purpose      string `db:"purpose"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	LatencyMs    int64  `db:"latency_ms"`
	Success      bool   `db:"success"`
	ErrorMessage string `db:"error_message"`
	RequestBody  string `db:"request_body"`
	ResponseBody string `db:"response_body"`
}

func (r eventRow) record() LLMRequestEventRecord {
	return LLMRequestEventRecord{
		ID:        r.ID,
		Sequence:  r.Sequence,
		Timestamp: time.UnixMilli(r.Timestamp),
		LLMRequestEventData: LLMRequestEventData{
			RequestID:    r.RequestID,
			Provider:     r.Provider,
			Model:        r.Model,
			Purpose:      r.Purpose,
			InputTokens:  r.InputTokens,
			OutputTokens: r.OutputTokens,
			LatencyMs:    r.LatencyMs,
			Success:      r.Success,
			ErrorMessage: r.ErrorMessage,
			RequestBody:  r.RequestBody,
			ResponseBody: r.ResponseBody,
		},
	}
}

// AppendLLMRequest stores one call under the next sequence number.
func (r *SQLEventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	bump, args := sqlb.Update(countersTable).
		Add("value", 1).
		Where(entsql.EQ("name", sequenceCounter)).
		Query()
	if _, err := tx.ExecContext(ctx, bump, args...); err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var seq int64
	read, args := sqlb.Select("value").
		From(sqlb.Table(countersTable)).
		Where(entsql.EQ("name", sequenceCounter)).
		Query()
	if err := tx.GetContext(ctx, &seq, read, args...); err != nil {
		return fmt.Errorf("read sequence: %w", err)
	}

	insert, args := sqlb.Insert(eventsTable).
		Columns(eventColumns[1:]...).
		Values(
			seq, time.Now().UnixMilli(),
			data.RequestID, data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs,
			data.Success, data.ErrorMessage,
			data.RequestBody, data.ResponseBody,
		).
		Query()
	if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
		return fmt.Errorf("insert LLM event: %w", err)
	}
	return tx.Commit()
}

// PruneLLMEvents deletes events recorded before cutoff and reports how
// many were removed. Sequence numbers are never reused.
func (r *SQLEventRepo) PruneLLMEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	q, args := sqlb.Delete(eventsTable).
		Where(entsql.LT("timestamp", cutoff.UnixMilli())).
		Query()
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("prune LLM events: %w", err)
	}
	return res.RowsAffected()
}

// QueryLLMEvents returns events newest first.
func (r *SQLEventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	sel := sqlb.Select(eventColumns...).From(sqlb.Table(eventsTable))
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UnixMilli()))
	}
	if opts.Purpose != "" {
		sel.Where(entsql.EQ("purpose", opts.Purpose))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	q, args := sel.Query()
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	records := make([]LLMRequestEventRecord, len(rows))
	for i, row := range rows {
		records[i] = row.record()
	}
	return records, nil
}

// GetLLMEvent returns the event with the given id, or nil if none exists.
func (r *SQLEventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error) {
	q, args := sqlb.Select(eventColumns...).
		From(sqlb.Table(eventsTable)).
		Where(entsql.EQ("id", id)).
		Query()

	var row eventRow
	err := r.db.GetContext(ctx, &row, q, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	rec := row.record()
	return &rec, nil
}

// LLMUsageByPurpose aggregates calls and tokens per purpose.
func (r *SQLEventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	q, args := sqlb.Select(
		"purpose",
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As("COALESCE(SUM(input_tokens), 0)", "input_tokens"),
		entsql.As("COALESCE(SUM(output_tokens), 0)", "output_tokens"),
		entsql.As("CAST(COALESCE(AVG(latency_ms), 0) AS INTEGER)", "avg_latency_ms"),
	).
		From(sqlb.Table(eventsTable)).
		GroupBy("purpose").
		OrderBy("purpose").
		Query()

	var out []PurposeUsage
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	return out, nil
}

// LLMUsageByModel aggregates calls and tokens per model.
func (r *SQLEventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	q, args := sqlb.Select(
		"model",
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As("COALESCE(SUM(input_tokens), 0)", "input_tokens"),
		entsql.As("COALESCE(SUM(output_tokens), 0)", "output_tokens"),
	).
		From(sqlb.Table(eventsTable)).
		GroupBy("model").
		OrderBy("model").
		Query()

	var out []ModelUsage
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	return out, nil
}
