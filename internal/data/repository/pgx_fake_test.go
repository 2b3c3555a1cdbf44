package repository

import (
	"context"
	"reflect"
	"sync"

	"seat-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// call is one statement the code under test sent, with its arguments.
type call struct {
	SQL  string
	Args []any
	InTx bool
}

// fakeDB is a scripted database.PgxIface. exec and query answer statements in order;
// tx counters record how transactions ended.
type fakeDB struct {
	mu    sync.Mutex
	calls []call

	exec     func(sql string, args []any) (pgconn.CommandTag, error)
	query    func(sql string, args []any) (pgx.Rows, error)
	queryRow func(sql string, args []any) pgx.Row
	batchErr error

	began      int
	committed  int
	rolledBack int
	batched    []int
}

var _ database.PgxIface = (*fakeDB)(nil)

func (db *fakeDB) record(sql string, args []any, inTx bool) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.calls = append(db.calls, call{SQL: sql, Args: args, InTx: inTx})
}

func (db *fakeDB) runExec(sql string, args []any, inTx bool) (pgconn.CommandTag, error) {
	db.record(sql, args, inTx)
	if db.exec == nil {
		return pgconn.NewCommandTag("SELECT 0"), nil
	}
	return db.exec(sql, args)
}

func (db *fakeDB) runQuery(sql string, args []any, inTx bool) (pgx.Rows, error) {
	db.record(sql, args, inTx)
	if db.query == nil {
		return &fakeRows{}, nil
	}
	return db.query(sql, args)
}

func (db *fakeDB) runQueryRow(sql string, args []any, inTx bool) pgx.Row {
	db.record(sql, args, inTx)
	if db.queryRow == nil {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return db.queryRow(sql, args)
}

func (db *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.runQuery(sql, args, false)
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	return db.runQueryRow(sql, args, false)
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return db.runExec(sql, args, false)
}

func (db *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.began++
	return &fakeTx{db: db}, nil
}

func (db *fakeDB) Ping(context.Context) error { return nil }

func (db *fakeDB) Close() {}

// fakeTx embeds pgx.Tx for the methods the repositories never call.
type fakeTx struct {
	pgx.Tx
	db   *fakeDB
	done bool
}

func (tx *fakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return tx.db.runExec(sql, args, true)
}

func (tx *fakeTx) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	return tx.db.runQuery(sql, args, true)
}

func (tx *fakeTx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	return tx.db.runQueryRow(sql, args, true)
}

func (tx *fakeTx) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	tx.db.mu.Lock()
	defer tx.db.mu.Unlock()
	tx.db.batched = append(tx.db.batched, b.Len())
	for _, q := range b.QueuedQueries {
		tx.db.calls = append(tx.db.calls, call{SQL: q.SQL, Args: q.Arguments, InTx: true})
	}
	return fakeBatchResults{err: tx.db.batchErr}
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.db.mu.Lock()
	defer tx.db.mu.Unlock()
	if tx.done {
		return pgx.ErrTxClosed
	}
	tx.done = true
	tx.db.committed++
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	tx.db.mu.Lock()
	defer tx.db.mu.Unlock()
	if tx.done {
		return pgx.ErrTxClosed
	}
	tx.done = true
	tx.db.rolledBack++
	return nil
}

type fakeBatchResults struct {
	pgx.BatchResults
	err error
}

func (r fakeBatchResults) Close() error { return r.err }

// assign copies values into Scan destinations; each value must have the pointee's type.
func assign(values []any, dest []any) {
	for i, d := range dest {
		if i >= len(values) || values[i] == nil {
			continue
		}
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(values[i]))
	}
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	assign(r.values, dest)
	return nil
}

type fakeRows struct {
	pgx.Rows
	rows [][]any
	pos  int
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	assign(r.rows[r.pos-1], dest)
	return nil
}

func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Close() {}

func tag(s string) pgconn.CommandTag { return pgconn.NewCommandTag(s) }
