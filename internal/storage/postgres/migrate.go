package postgres

import (
	"context"
	"fmt"
)

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			email TEXT UNIQUE NOT NULL,
			enabled BOOLEAN NOT NULL DEFAULT TRUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS roles (
			id BIGSERIAL PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id BIGINT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, role_id)
		);`,
		`CREATE TABLE IF NOT EXISTS menus (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			path TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT '',
			parent_id BIGINT REFERENCES menus(id) ON DELETE SET NULL,
			sort_order INT NOT NULL DEFAULT 0,
			visible BOOLEAN NOT NULL DEFAULT TRUE
		);`,
		`CREATE TABLE IF NOT EXISTS role_menus (
			role_id BIGINT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			menu_id BIGINT NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			PRIMARY KEY (role_id, menu_id)
		);`,
		`CREATE TABLE IF NOT EXISTS portfolios (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			stock_code TEXT NOT NULL,
			stock_name TEXT NOT NULL,
			quantity INT NOT NULL CHECK (quantity > 0),
			average_price DOUBLE PRECISION NOT NULL CHECK (average_price > 0),
			total_investment DOUBLE PRECISION,
			current_price DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS portfolios_user_created_idx ON portfolios (user_id, created_at DESC);`,
		`CREATE TABLE IF NOT EXISTS calculation_histories (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			stock_code TEXT NOT NULL,
			stock_name TEXT NOT NULL DEFAULT '',
			existing_quantity INT NOT NULL CHECK (existing_quantity >= 0),
			existing_avg_price DOUBLE PRECISION NOT NULL CHECK (existing_avg_price >= 0),
			additional_quantity INT NOT NULL CHECK (additional_quantity > 0),
			additional_price DOUBLE PRECISION NOT NULL CHECK (additional_price > 0),
			new_average_price DOUBLE PRECISION NOT NULL,
			new_total_quantity INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS calculation_histories_user_created_idx ON calculation_histories (user_id, created_at DESC);`,
		`CREATE TABLE IF NOT EXISTS boards (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			view_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS boards_created_idx ON boards (created_at DESC);`,
		// Backfill rows written before total_investment/current_price became
		// mandatory inputs, so valuation never sees a NULL.
		`UPDATE portfolios SET total_investment = quantity * average_price WHERE total_investment IS NULL;`,
		`UPDATE portfolios SET current_price = average_price WHERE current_price IS NULL;`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// seedReferenceData inserts the default role catalog and menu tree along
// with their links. Idempotent; user accounts are never seeded here.
func (s *Store) seedReferenceData(ctx context.Context) error {
	stmts := []string{
		`INSERT INTO roles (name, description) VALUES
			('ROLE_ADMIN', 'Administrator'),
			('ROLE_USER', 'User')
		ON CONFLICT (name) DO NOTHING;`,
		`INSERT INTO menus (id, name, path, icon, sort_order, visible) VALUES
			(1, 'Dashboard', '/dashboard', 'home', 1, TRUE),
			(2, 'Portfolio', '/portfolio', 'briefcase', 2, TRUE),
			(3, 'Average Cost Calculator', '/calculator', 'calculator', 3, TRUE),
			(4, 'Calculation History', '/history', 'clock', 4, TRUE),
			(5, 'Board', '/board', 'message-square', 5, TRUE),
			(6, 'Admin', '/admin', 'settings', 9, TRUE)
		ON CONFLICT (id) DO NOTHING;`,
		`SELECT setval('menus_id_seq', GREATEST((SELECT MAX(id) FROM menus), 1));`,
		`INSERT INTO role_menus (role_id, menu_id)
			SELECT r.id, m.id FROM roles r, menus m
			WHERE r.name = 'ROLE_USER' AND m.id IN (1, 2, 3, 4, 5)
		ON CONFLICT DO NOTHING;`,
		`INSERT INTO role_menus (role_id, menu_id)
			SELECT r.id, m.id FROM roles r, menus m
			WHERE r.name = 'ROLE_ADMIN'
		ON CONFLICT DO NOTHING;`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("seed reference data: %w", err)
		}
	}
	return nil
}
