package models

// Menu is a navigation entry. ParentID nests entries for rendering; the
// visibility resolution itself treats the set as flat.
type Menu struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	Icon      string `json:"icon"`
	ParentID  *int64 `json:"parent_id,omitempty"`
	SortOrder int    `json:"sort_order"`
	Visible   bool   `json:"visible"`
}
