package dto

import "github.com/jaehyun-dev/stockfolio-be/internal/models"

type BoardRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BoardPage is one page of posts, newest first.
type BoardPage struct {
	Posts      []models.Post `json:"posts"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalCount int64         `json:"total_count"`
	TotalPages int           `json:"total_pages"`
}
