package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/auth"
	"github.com/jaehyun-dev/stockfolio-be/internal/authz"
	"github.com/jaehyun-dev/stockfolio-be/internal/models"
	"github.com/jaehyun-dev/stockfolio-be/internal/models/dto"
	"github.com/jaehyun-dev/stockfolio-be/internal/storage"
)

// DefaultPageSize is the number of posts per board page.
const DefaultPageSize = 10

const maxTitleLength = 200

// BoardService manages author-owned discussion posts.
type BoardService struct {
	store storage.BoardStore
	log   *logrus.Logger
}

// NewBoardService constructs the service.
func NewBoardService(store storage.BoardStore, log *logrus.Logger) *BoardService {
	return &BoardService{store: store, log: log}
}

// List returns one page of posts, newest first. Pages are zero-based;
// a negative page is treated as the first.
func (s *BoardService) List(ctx context.Context, page int) (dto.BoardPage, error) {
	if page < 0 {
		page = 0
	}

	posts, total, err := s.store.ListPosts(ctx, page, DefaultPageSize)
	if err != nil {
		return dto.BoardPage{}, fmt.Errorf("list posts: %w", err)
	}

	totalPages := int((total + DefaultPageSize - 1) / DefaultPageSize)
	return dto.BoardPage{
		Posts:      posts,
		Page:       page,
		PageSize:   DefaultPageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

// Create persists a new post with a zero view counter.
func (s *BoardService) Create(ctx context.Context, actor auth.Identity, req dto.BoardRequest) (models.Post, error) {
	if err := validatePostContent(req); err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		UserID:  actor.ID,
		Author:  actor.Username,
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
	}

	created, err := s.store.CreatePost(ctx, post)
	if err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"post_id":  created.ID,
		"actor_id": actor.ID,
	}).Info("post created")
	return created, nil
}

// View returns a post with its view counter incremented by exactly one.
// The increment is a single atomic statement in the store, so concurrent
// views never lose updates.
func (s *BoardService) View(ctx context.Context, id int64) (models.Post, error) {
	post, err := s.store.IncrementViewCount(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("view post %d: %w", id, err)
	}
	return post, nil
}

// Update replaces a post's title and body after the owner-or-admin check.
func (s *BoardService) Update(ctx context.Context, id int64, req dto.BoardRequest, actor auth.Identity) (models.Post, error) {
	if err := validatePostContent(req); err != nil {
		return models.Post{}, err
	}

	post, err := s.store.PostByID(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("load post %d: %w", id, err)
	}

	if err := authz.Authorize(authz.ActionModify, post.UserID, actor.ID, actor.IsAdmin); err != nil {
		s.log.WithFields(logrus.Fields{
			"post_id":  id,
			"actor_id": actor.ID,
		}).Warn("post update denied")
		return models.Post{}, err
	}

	updated, err := s.store.UpdatePost(ctx, id, strings.TrimSpace(req.Title), req.Content)
	if err != nil {
		return models.Post{}, fmt.Errorf("update post %d: %w", id, err)
	}

	s.log.WithFields(logrus.Fields{
		"post_id":  id,
		"actor_id": actor.ID,
	}).Info("post updated")
	return updated, nil
}

// Delete removes a post after the owner-or-admin check.
func (s *BoardService) Delete(ctx context.Context, id int64, actor auth.Identity) error {
	post, err := s.store.PostByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load post %d: %w", id, err)
	}

	if err := authz.Authorize(authz.ActionDelete, post.UserID, actor.ID, actor.IsAdmin); err != nil {
		s.log.WithFields(logrus.Fields{
			"post_id":  id,
			"actor_id": actor.ID,
		}).Warn("post delete denied")
		return err
	}

	if err := s.store.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}

	s.log.WithFields(logrus.Fields{
		"post_id":  id,
		"owner_id": post.UserID,
		"actor_id": actor.ID,
	}).Info("post deleted")
	return nil
}

func validatePostContent(req dto.BoardRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return apperr.Invalidf("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return apperr.Invalidf("title must be at most %d characters", maxTitleLength)
	}
	if strings.TrimSpace(req.Content) == "" {
		return apperr.Invalidf("content is required")
	}
	return nil
}
