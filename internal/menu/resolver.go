// Package menu resolves which navigation entries a user's roles make
// visible. The role→menu mapping is read-only reference data here; it is
// mutated only through the admin service.
package menu

import (
	"context"
	"fmt"
	"sort"

	"github.com/jaehyun-dev/stockfolio-be/internal/models"
	"github.com/jaehyun-dev/stockfolio-be/internal/storage"
)

// Resolver computes the visible, ordered menu set for a set of role names.
type Resolver struct {
	store storage.MenuStore
}

// NewResolver constructs a Resolver backed by the given store.
func NewResolver(store storage.MenuStore) *Resolver {
	return &Resolver{store: store}
}

// MenusFor returns the union of menus attached to any of the roles,
// deduplicated by ID, restricted to visible entries, ordered by sort rank
// with ID as the tie-breaker. An empty role set yields an empty slice, and
// a role with no menus contributes nothing; neither is an error.
func (r *Resolver) MenusFor(ctx context.Context, roleNames []string) ([]models.Menu, error) {
	if len(roleNames) == 0 {
		return []models.Menu{}, nil
	}

	raw, err := r.store.MenusForRoles(ctx, roleNames)
	if err != nil {
		return nil, fmt.Errorf("load menus for roles: %w", err)
	}

	seen := make(map[int64]struct{}, len(raw))
	menus := make([]models.Menu, 0, len(raw))
	for _, m := range raw {
		if !m.Visible {
			continue
		}
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		menus = append(menus, m)
	}

	sort.Slice(menus, func(i, j int) bool {
		if menus[i].SortOrder != menus[j].SortOrder {
			return menus[i].SortOrder < menus[j].SortOrder
		}
		return menus[i].ID < menus[j].ID
	})

	return menus, nil
}
