package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/models"
)

// userColumns selects a user row plus its aggregated role names.
const userColumns = `
	u.id, u.username, u.name, u.email, u.enabled, u.password_hash, u.created_at,
	(
		SELECT COALESCE(array_agg(r.name ORDER BY r.name), '{}')
		FROM user_roles ur
		JOIN roles r ON ur.role_id = r.id
		WHERE ur.user_id = u.id
	)`

// CreateUser inserts a new account and attaches the default user role.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return models.User{}, mapErr("create user", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, name, email, enabled, password_hash)
		 VALUES ($1, $2, $3, TRUE, $4)
		 RETURNING id`,
		user.Username, user.Name, user.Email, user.PasswordHash,
	).Scan(&id)
	if err != nil {
		return models.User{}, mapErr("create user", err)
	}

	roles := user.Roles
	if len(roles) == 0 {
		roles = []string{models.RoleUser}
	}
	for _, role := range roles {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_roles (user_id, role_id)
			 SELECT $1, id FROM roles WHERE name = $2`,
			id, role,
		); err != nil {
			return models.User{}, mapErr("assign role", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return models.User{}, mapErr("create user", err)
	}
	return s.FindByID(ctx, id)
}

// FindByID fetches a user by primary key.
func (s *Store) FindByID(ctx context.Context, id int64) (models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users u WHERE u.id = $1`, id)
	return scanUser(row)
}

// FindByUsername fetches a user by unique handle.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users u WHERE u.username = $1`, username)
	return scanUser(row)
}

// ListUsers returns every account, oldest first.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, `SELECT `+userColumns+` FROM users u ORDER BY u.id`)
	if err != nil {
		return nil, mapErr("list users", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("list users", err)
	}
	return users, nil
}

// ToggleUserEnabled flips the enabled flag in one statement.
func (s *Store) ToggleUserEnabled(ctx context.Context, id int64) (models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var updated int64
	err := s.pool.QueryRow(ctx,
		`UPDATE users SET enabled = NOT enabled WHERE id = $1 RETURNING id`,
		id,
	).Scan(&updated)
	if err != nil {
		return models.User{}, mapErr("toggle user enabled", err)
	}
	return s.FindByID(ctx, updated)
}

// UpdateProfile replaces name and email, and the password hash when
// provided, in one statement.
func (s *Store) UpdateProfile(ctx context.Context, id int64, name, email string, passwordHash *string) (models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var updated int64
	err := s.pool.QueryRow(ctx,
		`UPDATE users
		 SET name = $2, email = $3, password_hash = COALESCE($4, password_hash)
		 WHERE id = $1
		 RETURNING id`,
		id, name, email, passwordHash,
	).Scan(&updated)
	if err != nil {
		return models.User{}, mapErr("update profile", err)
	}
	return s.FindByID(ctx, updated)
}

// DeleteUser removes an account; owned rows cascade.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapErr("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("user %d", id)
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(
		&user.ID, &user.Username, &user.Name, &user.Email,
		&user.Enabled, &user.PasswordHash, &user.CreatedAt, &user.Roles,
	); err != nil {
		return models.User{}, mapErr("scan user", err)
	}
	return user, nil
}
