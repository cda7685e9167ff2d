package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ecocycle/server/core"
)

func (a *Adapter) CreateUser(user *core.User) error {
	ctx := context.Background()

	q := `INSERT INTO users (id, email, name, role, password_hash)
	      VALUES ($1, $2, $3, $4, $5)
	      RETURNING created_at, updated_at`
	err := a.pool.QueryRow(ctx, q, user.ID, user.Email, user.Name, user.Role, user.PasswordHash).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrUserExists
		}
		return err
	}
	return nil
}

// isUniqueViolation reports a unique-constraint error (duplicate email).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (a *Adapter) GetUserByID(id string) (*core.User, error) {
	ctx := context.Background()
	q := `SELECT id, email, name, role, password_hash, created_at, updated_at FROM users WHERE id = $1`

	user := &core.User{}
	err := a.pool.QueryRow(ctx, q, id).
		Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (a *Adapter) GetUserByEmail(email string) (*core.User, error) {
	ctx := context.Background()
	q := `SELECT id, email, name, role, password_hash, created_at, updated_at FROM users WHERE email = $1`

	user := &core.User{}
	err := a.pool.QueryRow(ctx, q, email).
		Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (a *Adapter) UpdateUser(user *core.User) error {
	ctx := context.Background()
	q := `UPDATE users SET email = $1, name = $2, role = $3, password_hash = $4, updated_at = now()
	      WHERE id = $5 RETURNING updated_at`
	err := a.pool.QueryRow(ctx, q, user.Email, user.Name, user.Role, user.PasswordHash, user.ID).
		Scan(&user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return core.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (a *Adapter) DeleteUser(id string) error {
	ctx := context.Background()
	tag, err := a.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrUserNotFound
	}
	return nil
}
