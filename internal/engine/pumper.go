package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"dto-pump/internal/dialect"
	"dto-pump/internal/record"
	"dto-pump/internal/schema"
)

const (
	StatusOK      = "OK"
	StatusMissing = "MISSING DATA"
)

var ErrNoColumns = errors.New("schema has no fields to insert")

// PumpOptions configure a single Pump run.
type PumpOptions struct {
	Table  string
	Clean  bool // empty the table before inserting
	Create bool // create the table when it does not exist
}

// PumpResult summarizes one Pump run for reporting.
type PumpResult struct {
	Table    string
	Target   int
	Inserted int
	Actual   int // row count delta observed after commit
	Status   string
	ErrorMsg string
	Elapsed  time.Duration
}

// Columns maps top-level fields to table columns. Arrays and objects are
// stored as JSON text.
func Columns(fields []schema.FieldConfig) []dialect.Column {
	cols := make([]dialect.Column, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, dialect.Column{
			Name:     f.Name,
			Kind:     columnKind(f),
			Nullable: f.Nullable || !f.Required,
		})
	}
	return cols
}

func columnKind(f schema.FieldConfig) dialect.ColumnKind {
	switch f.Type {
	case schema.TypeNumber:
		if f.Precision != nil && *f.Precision > 0 {
			return dialect.KindDecimal
		}
		return dialect.KindInteger
	case schema.TypeBoolean:
		return dialect.KindBoolean
	case schema.TypeDate:
		return dialect.KindDate
	case schema.TypeArray, schema.TypeObject:
		return dialect.KindJSON
	}
	return dialect.KindText
}

// Pump inserts records into opts.Table inside a single transaction and
// verifies the row count afterwards.
func Pump(ctx context.Context, db *sql.DB, d dialect.Dialect, opts PumpOptions, fields []schema.FieldConfig, records []*record.Record, onProgress func()) (*PumpResult, error) {
	start := time.Now()
	log := logrus.WithFields(logrus.Fields{"table": opts.Table, "dialect": d.Name()})

	cols := Columns(fields)
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}

	if opts.Create {
		if _, err := db.ExecContext(ctx, d.CreateTableQuery(opts.Table, cols)); err != nil {
			return nil, fmt.Errorf("failed to create table %s: %w", opts.Table, err)
		}
	}

	initial, err := countRows(ctx, db, d, opts.Table)
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	if opts.Clean {
		if _, err := tx.ExecContext(ctx, d.CleanQuery(opts.Table)); err != nil {
			return nil, fmt.Errorf("failed to clean %s: %w", opts.Table, err)
		}
		log.Debug("table cleaned")
		initial = 0
	}

	if err := d.BeforeTable(tx, opts.Table); err != nil {
		log.WithError(err).Warn("BeforeTable hook failed, continuing")
	}

	stmt, err := tx.PrepareContext(ctx, d.InsertQuery(opts.Table, names))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for i, rec := range records {
		args := make([]any, len(names))
		for j, name := range names {
			v, _ := rec.Get(name)
			args[j] = bindValue(d, v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return nil, fmt.Errorf("failed to insert record %d into %s: %w", i+1, opts.Table, err)
		}
		inserted++
		if onProgress != nil {
			onProgress()
		}
	}

	if err := d.AfterTable(tx, opts.Table); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	tx = nil

	final, err := countRows(ctx, db, d, opts.Table)
	if err != nil {
		return nil, err
	}

	res := &PumpResult{
		Table:    opts.Table,
		Target:   len(records),
		Inserted: inserted,
		Actual:   final - initial,
		Status:   StatusOK,
		Elapsed:  time.Since(start),
	}
	if res.Actual < res.Target {
		res.Status = StatusMissing
		res.ErrorMsg = fmt.Sprintf("Only %d out of %d rows visible after commit", res.Actual, res.Target)
	}

	log.WithFields(logrus.Fields{"inserted": inserted, "actual": res.Actual, "elapsed": res.Elapsed}).Info("pump finished")
	return res, nil
}

func countRows(ctx context.Context, db *sql.DB, d dialect.Dialect, table string) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, d.CountQuery(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return n, nil
}

// bindValue stores nested values as compact JSON text.
func bindValue(d dialect.Dialect, v any) any {
	switch v.(type) {
	case *record.Record, []any, map[string]any:
		return record.Compact(v)
	}
	return d.BindValue(v)
}
