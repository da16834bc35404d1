package dto

type RoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type MenuRequest struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Icon      string `json:"icon"`
	ParentID  *int64 `json:"parent_id,omitempty"`
	SortOrder int    `json:"sort_order"`
	Visible   bool   `json:"visible"`
}
