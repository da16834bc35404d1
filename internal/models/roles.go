package models

// Role name convention: every role carries the ROLE_ prefix.
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// Role groups menu visibility and administrative rights under a name.
// MenuIDs is plain id-set membership; menus hold no back-pointer.
type Role struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	MenuIDs     []int64 `json:"menu_ids"`
}
