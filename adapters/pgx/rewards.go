package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ecocycle/server/core"
)

// AddRewardEntry inserts the ledger entry after re-checking the balance
// inside a transaction, so concurrent redemptions cannot overspend.
func (a *Adapter) AddRewardEntry(e *core.RewardEntry) error {
	ctx := context.Background()

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if e.Kind == core.RewardRedeem {
		var balance int
		// Lock the user's ledger rows before summing so concurrent
		// redemptions cannot both pass the balance check.
		q := `SELECT COALESCE(SUM(CASE WHEN kind = 'earn' THEN amount ELSE -amount END), 0)
		      FROM (SELECT kind, amount FROM reward_entries WHERE user_id = $1 FOR UPDATE) ledger`
		if err := tx.QueryRow(ctx, q, e.UserID).Scan(&balance); err != nil {
			return err
		}
		if balance < e.Amount {
			return core.ErrInsufficientCoins
		}
	}

	q := `INSERT INTO reward_entries (id, user_id, kind, amount, reason, created_at)
	      VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, q, e.ID, e.UserID, e.Kind, e.Amount, e.Reason, e.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (a *Adapter) GetCoinBalance(userID string) (int, error) {
	ctx := context.Background()
	q := `SELECT COALESCE(SUM(CASE WHEN kind = 'earn' THEN amount ELSE -amount END), 0)
	      FROM reward_entries WHERE user_id = $1`

	var balance int
	if err := a.pool.QueryRow(ctx, q, userID).Scan(&balance); err != nil {
		return 0, err
	}
	return balance, nil
}

func (a *Adapter) GetUserRewardEntries(userID string) ([]*core.RewardEntry, error) {
	ctx := context.Background()
	q := `SELECT id, user_id, kind, amount, reason, created_at
	      FROM reward_entries WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := a.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*core.RewardEntry
	for rows.Next() {
		e := &core.RewardEntry{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.Kind, &e.Amount, &e.Reason, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (a *Adapter) ListOffers() ([]*core.Offer, error) {
	ctx := context.Background()
	rows, err := a.pool.Query(ctx, `SELECT id, title, description, coins_required, image FROM offers ORDER BY coins_required`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*core.Offer
	for rows.Next() {
		o := &core.Offer{}
		if err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.CoinsRequired, &o.Image); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (a *Adapter) GetOfferByID(id string) (*core.Offer, error) {
	ctx := context.Background()
	o := &core.Offer{}
	err := a.pool.QueryRow(ctx, `SELECT id, title, description, coins_required, image FROM offers WHERE id = $1`, id).
		Scan(&o.ID, &o.Title, &o.Description, &o.CoinsRequired, &o.Image)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrOfferNotFound
		}
		return nil, err
	}
	return o, nil
}
