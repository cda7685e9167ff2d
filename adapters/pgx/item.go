package pgx

import (
	"context"

	"github.com/ecocycle/server/core"
)

func (a *Adapter) CreateItem(i *core.Item) error {
	ctx := context.Background()
	q := `INSERT INTO items (id, user_id, name, item_type, condition, estimated_value, recyclable_components, environmental_impact, created_at)
	      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := a.pool.Exec(ctx, q,
		i.ID, i.UserID, i.Name, i.Type, i.Condition,
		i.EstimatedValue, i.RecyclableComponents, i.EnvironmentalImpact, i.CreatedAt)
	return err
}

func (a *Adapter) GetUserItems(userID string) ([]*core.Item, error) {
	ctx := context.Background()
	q := `SELECT id, user_id, name, item_type, condition, estimated_value, recyclable_components, environmental_impact, created_at
	      FROM items WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := a.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*core.Item
	for rows.Next() {
		i := &core.Item{}
		if err := rows.Scan(&i.ID, &i.UserID, &i.Name, &i.Type, &i.Condition, &i.EstimatedValue, &i.RecyclableComponents, &i.EnvironmentalImpact, &i.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (a *Adapter) ListListings() ([]*core.Listing, error) {
	ctx := context.Background()
	q := `SELECT id, name, description, price, condition, category, image, listing_type FROM listings ORDER BY id`

	rows, err := a.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*core.Listing
	for rows.Next() {
		l := &core.Listing{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.Price, &l.Condition, &l.Category, &l.Image, &l.Type); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
