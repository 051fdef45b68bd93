package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/portfolio-api/internal/domain"
)

// fakeDB records statements and serves canned contact rows.
type fakeDB struct {
	execs    []string
	execArgs [][]any
	execErr  error

	lastSQL  string
	lastArgs []any

	row      *domain.ContactMessage
	rowErr   error
	rows     []domain.ContactMessage
	queryErr error
	iterErr  error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	f.execArgs = append(f.execArgs, args)
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.lastSQL, f.lastArgs = sql, args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRows{rows: f.rows, err: f.iterErr, pos: -1}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.lastArgs = sql, args
	return fakeRow{m: f.row, err: f.rowErr}
}

type fakeRow struct {
	m   *domain.ContactMessage
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.m == nil {
		return pgx.ErrNoRows
	}
	return scanInto(*r.m, dest)
}

type fakeRows struct {
	rows   []domain.ContactMessage
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error { return scanInto(r.rows[r.pos], dest) }

func scanInto(m domain.ContactMessage, dest []any) error {
	if len(dest) != 5 {
		return fmt.Errorf("want 5 scan targets, got %d", len(dest))
	}
	*dest[0].(*int64) = m.ID
	*dest[1].(*string) = m.Name
	*dest[2].(*string) = m.Email
	*dest[3].(*string) = m.Message
	*dest[4].(*time.Time) = m.CreatedAt
	return nil
}
