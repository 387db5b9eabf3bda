package subscriptions

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ db *pgxpool.Pool }

func NewRepo(db *pgxpool.Pool) *Repo { return &Repo{db: db} }

// Add always inserts a fresh row: duplicate (chat, ticker) pairs are allowed.
func (r *Repo) Add(ctx context.Context, chatID int64, ticker string, intervalMin int) (int64, error) {
	const q = `INSERT INTO subscriptions (chat_id, ticker, interval_min)
	           VALUES ($1,$2,$3)
	           RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, q, chatID, ticker, intervalMin).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert subscription: %w", err)
	}
	return id, nil
}

func (r *Repo) ListAll(ctx context.Context) ([]Subscription, error) {
	const q = `SELECT id,chat_id,ticker,interval_min,created_at,updated_at
	           FROM subscriptions
	           ORDER BY id`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()
	return scanAll(rows)
}

func (r *Repo) ListByChat(ctx context.Context, chatID int64) ([]Subscription, error) {
	const q = `SELECT id,chat_id,ticker,interval_min,created_at,updated_at
	           FROM subscriptions
	           WHERE chat_id=$1
	           ORDER BY id`
	rows, err := r.db.Query(ctx, q, chatID)
	if err != nil {
		return nil, fmt.Errorf("list chat subscriptions: %w", err)
	}
	defer rows.Close()
	return scanAll(rows)
}

// UpdateInterval is scoped to the owning chat: a mismatched id is a no-op,
// not an error, so one chat cannot touch another chat's rows.
func (r *Repo) UpdateInterval(ctx context.Context, id, chatID int64, intervalMin int) error {
	const q = `UPDATE subscriptions
	           SET interval_min=$3, updated_at=NOW()
	           WHERE id=$1 AND chat_id=$2`
	if _, err := r.db.Exec(ctx, q, id, chatID, intervalMin); err != nil {
		return fmt.Errorf("update interval: %w", err)
	}
	return nil
}

// Delete is chat-scoped like UpdateInterval; deleting a row that does not
// exist (or belongs to someone else) succeeds silently.
func (r *Repo) Delete(ctx context.Context, id, chatID int64) error {
	const q = `DELETE FROM subscriptions WHERE id=$1 AND chat_id=$2`
	if _, err := r.db.Exec(ctx, q, id, chatID); err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}

func scanAll(rows pgx.Rows) ([]Subscription, error) {
	var out []Subscription
	for rows.Next() {
		var s Subscription
		if err := rows.Scan(
			&s.ID,
			&s.ChatID,
			&s.Ticker,
			&s.IntervalMin,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
