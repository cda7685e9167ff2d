package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ecocycle/server/core"
)

const pickupColumns = `id, user_id, address, pickup_date, time_slot, description, photo_count, status, created_at, updated_at`

func (a *Adapter) CreatePickup(p *core.Pickup) error {
	ctx := context.Background()
	q := `INSERT INTO pickups (id, user_id, address, pickup_date, time_slot, description, photo_count, status, created_at, updated_at)
	      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := a.pool.Exec(ctx, q,
		p.ID, p.UserID, p.Address, p.Date, p.TimeSlot,
		p.Description, p.PhotoCount, p.Status, p.CreatedAt, p.UpdatedAt)
	return err
}

func (a *Adapter) GetPickupByID(id string) (*core.Pickup, error) {
	ctx := context.Background()
	q := `SELECT ` + pickupColumns + ` FROM pickups WHERE id = $1`

	p := &core.Pickup{}
	err := a.pool.QueryRow(ctx, q, id).
		Scan(&p.ID, &p.UserID, &p.Address, &p.Date, &p.TimeSlot, &p.Description, &p.PhotoCount, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrPickupNotFound
		}
		return nil, err
	}
	return p, nil
}

func (a *Adapter) GetUserPickups(userID string) ([]*core.Pickup, error) {
	ctx := context.Background()
	q := `SELECT ` + pickupColumns + ` FROM pickups WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := a.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPickups(rows)
}

func (a *Adapter) ListPickups() ([]*core.Pickup, error) {
	ctx := context.Background()
	q := `SELECT ` + pickupColumns + ` FROM pickups ORDER BY created_at DESC`
	rows, err := a.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPickups(rows)
}

func collectPickups(rows pgx.Rows) ([]*core.Pickup, error) {
	var out []*core.Pickup
	for rows.Next() {
		p := &core.Pickup{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.Address, &p.Date, &p.TimeSlot, &p.Description, &p.PhotoCount, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (a *Adapter) UpdatePickup(p *core.Pickup) error {
	ctx := context.Background()
	q := `UPDATE pickups SET address = $1, pickup_date = $2, time_slot = $3, description = $4, photo_count = $5, status = $6, updated_at = $7
	      WHERE id = $8`
	tag, err := a.pool.Exec(ctx, q, p.Address, p.Date, p.TimeSlot, p.Description, p.PhotoCount, p.Status, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrPickupNotFound
	}
	return nil
}
