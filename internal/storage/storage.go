// Package storage declares the persistence contracts the services depend
// on. Implementations map driver failures onto the apperr taxonomy:
// missing rows become apperr.ErrNotFound, uniqueness conflicts become
// apperr.ErrAlreadyExists, and anything else is wrapped as
// apperr.ErrStorageUnavailable.
package storage

import (
	"context"

	"github.com/jaehyun-dev/stockfolio-be/internal/models"
)

// UserStore captures persistence operations for accounts and their role
// memberships.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// ToggleUserEnabled flips the enabled flag in a single statement and
	// returns the resulting row.
	ToggleUserEnabled(ctx context.Context, id int64) (models.User, error)

	// UpdateProfile replaces name and email, and the password hash when
	// passwordHash is non-nil, as one atomic update.
	UpdateProfile(ctx context.Context, id int64, name, email string, passwordHash *string) (models.User, error)

	DeleteUser(ctx context.Context, id int64) error
}

// PortfolioStore persists positions.
type PortfolioStore interface {
	CreatePosition(ctx context.Context, position models.Position) (models.Position, error)
	PositionByID(ctx context.Context, id int64) (models.Position, error)

	// PositionsByUser returns the user's positions, most recently created
	// first.
	PositionsByUser(ctx context.Context, userID int64) ([]models.Position, error)

	// DeletePosition removes the row; a zero-row delete reports
	// apperr.ErrNotFound rather than silent success.
	DeletePosition(ctx context.Context, id int64) error
}

// CalculationStore persists the weighted-average calculation audit log.
// Records are never updated after creation.
type CalculationStore interface {
	CreateRecord(ctx context.Context, record models.CalculationRecord) (models.CalculationRecord, error)
	RecordByID(ctx context.Context, id int64) (models.CalculationRecord, error)
	RecordsByUser(ctx context.Context, userID int64) ([]models.CalculationRecord, error)
	DeleteRecord(ctx context.Context, id int64) error
}

// BoardStore persists discussion posts.
type BoardStore interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	PostByID(ctx context.Context, id int64) (models.Post, error)

	// ListPosts returns one page of posts (newest first) plus the total
	// post count.
	ListPosts(ctx context.Context, page, pageSize int) ([]models.Post, int64, error)

	// IncrementViewCount bumps the counter by exactly one as a single
	// statement, so concurrent views never lose updates.
	IncrementViewCount(ctx context.Context, id int64) (models.Post, error)

	UpdatePost(ctx context.Context, id int64, title, content string) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// MenuStore reads and manages navigation reference data.
type MenuStore interface {
	// MenusForRoles returns every menu associated with any of the named
	// roles, hidden entries included and duplicates possible; the resolver
	// owns filtering, deduplication, and ordering.
	MenusForRoles(ctx context.Context, roleNames []string) ([]models.Menu, error)

	ListMenus(ctx context.Context) ([]models.Menu, error)
	CreateMenu(ctx context.Context, menu models.Menu) (models.Menu, error)
	ToggleMenuVisible(ctx context.Context, id int64) (models.Menu, error)
	DeleteMenu(ctx context.Context, id int64) error
}

// RoleStore manages the role catalog.
type RoleStore interface {
	ListRoles(ctx context.Context) ([]models.Role, error)
	CreateRole(ctx context.Context, role models.Role) (models.Role, error)
	DeleteRole(ctx context.Context, id int64) error
}
