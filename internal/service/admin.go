package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/models"
	"github.com/jaehyun-dev/stockfolio-be/internal/models/dto"
	"github.com/jaehyun-dev/stockfolio-be/internal/storage"
)

// AdminService manages users, the role catalog, and the menu tree. Route
// access is restricted to administrators by middleware; the service assumes
// the caller is already vetted.
type AdminService struct {
	users storage.UserStore
	roles storage.RoleStore
	menus storage.MenuStore
	log   *logrus.Logger
}

// NewAdminService constructs the service.
func NewAdminService(users storage.UserStore, roles storage.RoleStore, menus storage.MenuStore, log *logrus.Logger) *AdminService {
	return &AdminService{users: users, roles: roles, menus: menus, log: log}
}

// ListUsers returns every account.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ToggleUserEnabled flips an account's enabled flag. Disabling blocks login
// only; ownership checks on existing resources are unaffected.
func (s *AdminService) ToggleUserEnabled(ctx context.Context, id int64) (models.User, error) {
	user, err := s.users.ToggleUserEnabled(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("toggle user %d: %w", id, err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id": id,
		"enabled": user.Enabled,
	}).Info("user enabled flag toggled")
	return user, nil
}

// DeleteUser removes an account.
func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	s.log.WithField("user_id", id).Info("user deleted by admin")
	return nil
}

// ListRoles returns the role catalog with menu memberships.
func (s *AdminService) ListRoles(ctx context.Context) ([]models.Role, error) {
	roles, err := s.roles.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// CreateRole adds a role. Names follow the ROLE_ prefix convention; a bare
// name is prefixed rather than rejected.
func (s *AdminService) CreateRole(ctx context.Context, req dto.RoleRequest) (models.Role, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Role{}, apperr.Invalidf("role name is required")
	}
	name = strings.ToUpper(name)
	if !strings.HasPrefix(name, "ROLE_") {
		name = "ROLE_" + name
	}

	role, err := s.roles.CreateRole(ctx, models.Role{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	})
	if err != nil {
		return models.Role{}, fmt.Errorf("create role %q: %w", name, err)
	}

	s.log.WithField("role", role.Name).Info("role created")
	return role, nil
}

// DeleteRole removes a role and its menu links.
func (s *AdminService) DeleteRole(ctx context.Context, id int64) error {
	if err := s.roles.DeleteRole(ctx, id); err != nil {
		return fmt.Errorf("delete role %d: %w", id, err)
	}
	s.log.WithField("role_id", id).Info("role deleted")
	return nil
}

// ListMenus returns the full menu tree, hidden entries included.
func (s *AdminService) ListMenus(ctx context.Context) ([]models.Menu, error) {
	menus, err := s.menus.ListMenus(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	return menus, nil
}

// CreateMenu adds a navigation entry.
func (s *AdminService) CreateMenu(ctx context.Context, req dto.MenuRequest) (models.Menu, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Menu{}, apperr.Invalidf("menu name is required")
	}
	if strings.TrimSpace(req.Path) == "" {
		return models.Menu{}, apperr.Invalidf("menu path is required")
	}

	menu, err := s.menus.CreateMenu(ctx, models.Menu{
		Name:      name,
		Path:      strings.TrimSpace(req.Path),
		Icon:      strings.TrimSpace(req.Icon),
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
		Visible:   req.Visible,
	})
	if err != nil {
		return models.Menu{}, fmt.Errorf("create menu %q: %w", name, err)
	}

	s.log.WithField("menu", menu.Name).Info("menu created")
	return menu, nil
}

// ToggleMenuVisible flips a menu's visibility flag.
func (s *AdminService) ToggleMenuVisible(ctx context.Context, id int64) (models.Menu, error) {
	menu, err := s.menus.ToggleMenuVisible(ctx, id)
	if err != nil {
		return models.Menu{}, fmt.Errorf("toggle menu %d: %w", id, err)
	}

	s.log.WithFields(logrus.Fields{
		"menu_id": id,
		"visible": menu.Visible,
	}).Info("menu visibility toggled")
	return menu, nil
}

// DeleteMenu removes a navigation entry and its role links.
func (s *AdminService) DeleteMenu(ctx context.Context, id int64) error {
	if err := s.menus.DeleteMenu(ctx, id); err != nil {
		return fmt.Errorf("delete menu %d: %w", id, err)
	}
	s.log.WithField("menu_id", id).Info("menu deleted")
	return nil
}
