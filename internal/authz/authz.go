// Package authz holds the single ownership-based authorization rule shared
// by every resource type. Portfolio positions, calculation records, and
// board posts all route their mutation checks through Authorize, so the
// owner-or-admin policy cannot drift between resources.
package authz

import "github.com/jaehyun-dev/stockfolio-be/internal/apperr"

// Action classifies what the actor wants to do with a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionModify Action = "modify"
	ActionDelete Action = "delete"
)

// Allowed decides whether an actor may perform an action on a resource owned
// by ownerID. Reads are never ownership-restricted; Modify and Delete
// require the actor to be the owner or an administrator.
func Allowed(action Action, ownerID, actorID int64, isAdmin bool) bool {
	if action == ActionRead {
		return true
	}
	return ownerID == actorID || isAdmin
}

// Authorize is Allowed lifted into the error taxonomy: a denial becomes
// apperr.ErrAccessDenied so callers fail loudly instead of no-opping.
func Authorize(action Action, ownerID, actorID int64, isAdmin bool) error {
	if !Allowed(action, ownerID, actorID, isAdmin) {
		return apperr.ErrAccessDenied
	}
	return nil
}
