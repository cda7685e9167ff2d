package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ecocycle/server/core"
)

const sessionColumns = `id, user_id, token_hash, ip_address, user_agent, expires_at, created_at, updated_at`

func scanSession(row pgx.Row) (*core.Session, error) {
	s := &core.Session{}
	err := row.Scan(&s.ID, &s.UserID, &s.TokenHash, &s.IPAddress, &s.UserAgent, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

func (a *Adapter) CreateSession(session *core.Session) error {
	ctx := context.Background()
	q := `INSERT INTO sessions (id, user_id, token_hash, ip_address, user_agent, expires_at, created_at, updated_at)
	      VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := a.pool.Exec(ctx, q,
		session.ID, session.UserID, session.TokenHash,
		session.IPAddress, session.UserAgent,
		session.ExpiresAt, session.CreatedAt, session.UpdatedAt)
	return err
}

func (a *Adapter) GetSessionByHash(tokenHash string) (*core.Session, error) {
	ctx := context.Background()
	q := `SELECT ` + sessionColumns + ` FROM sessions WHERE token_hash = $1`
	return scanSession(a.pool.QueryRow(ctx, q, tokenHash))
}

func (a *Adapter) GetSessionByID(id string) (*core.Session, error) {
	ctx := context.Background()
	q := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	return scanSession(a.pool.QueryRow(ctx, q, id))
}

func (a *Adapter) GetUserSessions(userID string) ([]*core.Session, error) {
	ctx := context.Background()
	q := `SELECT ` + sessionColumns + ` FROM sessions WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := a.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*core.Session
	for rows.Next() {
		s := &core.Session{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.TokenHash, &s.IPAddress, &s.UserAgent, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (a *Adapter) DeleteSessionByID(id string) error {
	ctx := context.Background()
	tag, err := a.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrSessionNotFound
	}
	return nil
}

func (a *Adapter) DeleteSessionByHash(tokenHash string) error {
	ctx := context.Background()
	tag, err := a.pool.Exec(ctx, `DELETE FROM sessions WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrSessionNotFound
	}
	return nil
}

func (a *Adapter) DeleteUserSessions(userID string) (int, error) {
	ctx := context.Background()
	tag, err := a.pool.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (a *Adapter) DeleteExpiredSessions() (int, error) {
	ctx := context.Background()
	tag, err := a.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
