package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/models"
)

const postColumns = `
	b.id, b.user_id, u.username, b.title, b.content, b.view_count, b.created_at, b.updated_at`

// CreatePost inserts a board post.
func (s *Store) CreatePost(ctx context.Context, p models.Post) (models.Post, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO boards (user_id, title, content) VALUES ($1, $2, $3) RETURNING id`,
		p.UserID, p.Title, p.Content,
	).Scan(&id)
	if err != nil {
		return models.Post{}, mapErr("create post", err)
	}
	return s.PostByID(ctx, id)
}

// PostByID fetches a post with its author's username.
func (s *Store) PostByID(ctx context.Context, id int64) (models.Post, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	row := s.pool.QueryRow(ctx,
		`SELECT `+postColumns+` FROM boards b JOIN users u ON b.user_id = u.id WHERE b.id = $1`, id)
	return scanPost(row)
}

// ListPosts returns one page of posts, newest first, plus the total count.
func (s *Store) ListPosts(ctx context.Context, page, pageSize int) ([]models.Post, int64, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var total int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM boards`).Scan(&total); err != nil {
		return nil, 0, mapErr("count posts", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+postColumns+` FROM boards b JOIN users u ON b.user_id = u.id
		 ORDER BY b.created_at DESC, b.id DESC
		 LIMIT $1 OFFSET $2`,
		pageSize, page*pageSize,
	)
	if err != nil {
		return nil, 0, mapErr("list posts", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapErr("list posts", err)
	}
	return posts, total, nil
}

// IncrementViewCount bumps the counter atomically and returns the post.
func (s *Store) IncrementViewCount(ctx context.Context, id int64) (models.Post, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var updated int64
	err := s.pool.QueryRow(ctx,
		`UPDATE boards SET view_count = view_count + 1 WHERE id = $1 RETURNING id`,
		id,
	).Scan(&updated)
	if err != nil {
		return models.Post{}, mapErr("increment view count", err)
	}
	return s.PostByID(ctx, updated)
}

// UpdatePost replaces title and content and stamps updated_at.
func (s *Store) UpdatePost(ctx context.Context, id int64, title, content string) (models.Post, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var updated int64
	err := s.pool.QueryRow(ctx,
		`UPDATE boards SET title = $2, content = $3, updated_at = NOW() WHERE id = $1 RETURNING id`,
		id, title, content,
	).Scan(&updated)
	if err != nil {
		return models.Post{}, mapErr("update post", err)
	}
	return s.PostByID(ctx, updated)
}

// DeletePost removes a post by id.
func (s *Store) DeletePost(ctx context.Context, id int64) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tag, err := s.pool.Exec(ctx, `DELETE FROM boards WHERE id = $1`, id)
	if err != nil {
		return mapErr("delete post", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("post %d", id)
	}
	return nil
}

func scanPost(row pgx.Row) (models.Post, error) {
	var p models.Post
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Author, &p.Title, &p.Content, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return models.Post{}, mapErr("scan post", err)
	}
	return p, nil
}
