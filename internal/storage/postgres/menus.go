package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/models"
)

const menuColumns = `m.id, m.name, m.path, m.icon, m.parent_id, m.sort_order, m.visible`

// MenusForRoles returns the raw menu links for the given role names:
// one row per (role, menu) link, so menus reachable through several
// roles come back duplicated and hidden menus are included. Callers
// are expected to dedup and filter.
func (s *Store) MenusForRoles(ctx context.Context, roles []string) ([]models.Menu, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT `+menuColumns+`
		 FROM menus m
		 JOIN role_menus rm ON rm.menu_id = m.id
		 JOIN roles r ON r.id = rm.role_id
		 WHERE r.name = ANY($1)`,
		roles,
	)
	if err != nil {
		return nil, mapErr("menus for roles", err)
	}
	defer rows.Close()
	return collectMenus(rows)
}

// ListMenus returns every menu, including hidden ones.
func (s *Store) ListMenus(ctx context.Context) ([]models.Menu, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT `+menuColumns+` FROM menus m ORDER BY m.sort_order, m.id`)
	if err != nil {
		return nil, mapErr("list menus", err)
	}
	defer rows.Close()
	return collectMenus(rows)
}

// CreateMenu inserts a menu entry and links it to the admin role so it
// shows up on admin screens immediately.
func (s *Store) CreateMenu(ctx context.Context, m models.Menu) (models.Menu, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return models.Menu{}, mapErr("create menu", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`INSERT INTO menus (name, path, icon, parent_id, sort_order, visible)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, name, path, icon, parent_id, sort_order, visible`,
		m.Name, m.Path, m.Icon, m.ParentID, m.SortOrder, m.Visible,
	)
	created, err := scanMenu(row)
	if err != nil {
		return models.Menu{}, err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO role_menus (role_id, menu_id)
		 SELECT id, $1 FROM roles WHERE name = $2
		 ON CONFLICT DO NOTHING`,
		created.ID, models.RoleAdmin,
	); err != nil {
		return models.Menu{}, mapErr("create menu", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Menu{}, mapErr("create menu", err)
	}
	return created, nil
}

// ToggleMenuVisible flips the visible flag in one statement.
func (s *Store) ToggleMenuVisible(ctx context.Context, id int64) (models.Menu, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	row := s.pool.QueryRow(ctx,
		`UPDATE menus SET visible = NOT visible WHERE id = $1
		 RETURNING id, name, path, icon, parent_id, sort_order, visible`,
		id,
	)
	m, err := scanMenu(row)
	if err != nil {
		return models.Menu{}, err
	}
	return m, nil
}

// DeleteMenu removes a menu entry; role links cascade.
func (s *Store) DeleteMenu(ctx context.Context, id int64) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tag, err := s.pool.Exec(ctx, `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return mapErr("delete menu", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("menu %d", id)
	}
	return nil
}

// ListRoles returns every role with its linked menu ids.
func (s *Store) ListRoles(ctx context.Context) ([]models.Role, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT r.id, r.name, r.description,
		        (SELECT COALESCE(array_agg(rm.menu_id ORDER BY rm.menu_id), '{}')
		         FROM role_menus rm WHERE rm.role_id = r.id)
		 FROM roles r ORDER BY r.id`)
	if err != nil {
		return nil, mapErr("list roles", err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.MenuIDs); err != nil {
			return nil, mapErr("scan role", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("list roles", err)
	}
	return roles, nil
}

// CreateRole inserts a role.
func (s *Store) CreateRole(ctx context.Context, role models.Role) (models.Role, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var created models.Role
	err := s.pool.QueryRow(ctx,
		`INSERT INTO roles (name, description) VALUES ($1, $2)
		 RETURNING id, name, description`,
		role.Name, role.Description,
	).Scan(&created.ID, &created.Name, &created.Description)
	if err != nil {
		return models.Role{}, mapErr("create role", err)
	}
	created.MenuIDs = []int64{}
	return created, nil
}

// DeleteRole removes a role; membership and menu links cascade.
func (s *Store) DeleteRole(ctx context.Context, id int64) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tag, err := s.pool.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return mapErr("delete role", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("role %d", id)
	}
	return nil
}

func collectMenus(rows pgx.Rows) ([]models.Menu, error) {
	var menus []models.Menu
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("scan menus", err)
	}
	return menus, nil
}

func scanMenu(row pgx.Row) (models.Menu, error) {
	var m models.Menu
	if err := row.Scan(&m.ID, &m.Name, &m.Path, &m.Icon, &m.ParentID, &m.SortOrder, &m.Visible); err != nil {
		return models.Menu{}, mapErr("scan menu", err)
	}
	return m, nil
}
