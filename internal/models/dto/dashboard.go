package dto

import "github.com/jaehyun-dev/stockfolio-be/internal/models"

// DashboardResponse carries everything the landing page renders.
type DashboardResponse struct {
	User    models.User   `json:"user"`
	Menus   []models.Menu `json:"menus"`
	IsAdmin bool          `json:"is_admin"`
}
