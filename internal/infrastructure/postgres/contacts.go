package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/portfolio-api/internal/domain"
)

const contactColumns = `id, name, email, message, created_at`

// ContactRepo persists contact messages in the contact_messages table.
type ContactRepo struct {
	db querier
}

func NewContactRepo(db querier) *ContactRepo {
	return &ContactRepo{db: db}
}

// Save inserts a row and returns it as stored. RETURNING reads back the row
// this statement inserted, so the id and created_at always belong to it.
func (r *ContactRepo) Save(ctx context.Context, req domain.ContactRequest) (*domain.ContactMessage, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, message)
		 VALUES ($1, $2, $3)
		 RETURNING `+contactColumns,
		req.Name, req.Email, req.Message,
	)
	m, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}
	return m, nil
}

// ListAll returns every stored message in insertion order.
func (r *ContactRepo) ListAll(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := r.db.Query(ctx, `SELECT `+contactColumns+` FROM contact_messages ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	out := []domain.ContactMessage{}
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return out, nil
}

// GetByID returns domain.ErrNotFound when no row has the given id.
func (r *ContactRepo) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	row := r.db.QueryRow(ctx, `SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id)
	m, err := scanContact(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("contact message %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get contact message %d: %w", id, err)
	}
	return m, nil
}

func scanContact(row pgx.Row) (*domain.ContactMessage, error) {
	var m domain.ContactMessage
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
