package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
)

func TestAllowed(t *testing.T) {
	const owner, stranger = int64(1), int64(2)

	tests := []struct {
		name    string
		action  Action
		actor   int64
		isAdmin bool
		want    bool
	}{
		{"owner may delete", ActionDelete, owner, false, true},
		{"owner may modify", ActionModify, owner, false, true},
		{"stranger may not delete", ActionDelete, stranger, false, false},
		{"stranger may not modify", ActionModify, stranger, false, false},
		{"admin may delete another user's resource", ActionDelete, stranger, true, true},
		{"admin may modify another user's resource", ActionModify, stranger, true, true},
		{"anyone may read", ActionRead, stranger, false, true},
		{"owner may read", ActionRead, owner, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.action, owner, tt.actor, tt.isAdmin))
		})
	}
}

func TestAuthorize(t *testing.T) {
	assert.NoError(t, Authorize(ActionDelete, 1, 1, false))
	assert.NoError(t, Authorize(ActionDelete, 1, 2, true))
	assert.NoError(t, Authorize(ActionRead, 1, 2, false))

	err := Authorize(ActionDelete, 1, 2, false)
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	err = Authorize(ActionModify, 1, 2, false)
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)
}
