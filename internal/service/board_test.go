package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/models"
	"github.com/jaehyun-dev/stockfolio-be/internal/models/dto"
)

func newTestPost(t *testing.T, svc *BoardService) models.Post {
	t.Helper()
	post, err := svc.Create(context.Background(), owner, dto.BoardRequest{
		Title:   "hello",
		Content: "first post",
	})
	require.NoError(t, err)
	return post
}

func TestBoardCreate(t *testing.T) {
	svc := NewBoardService(newMemBoardStore(), testLogger())

	post := newTestPost(t, svc)
	assert.Equal(t, owner.ID, post.UserID)
	assert.Equal(t, owner.Username, post.Author)
	assert.Equal(t, 0, post.ViewCount)
}

func TestBoardCreate_Validation(t *testing.T) {
	svc := NewBoardService(newMemBoardStore(), testLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, owner, dto.BoardRequest{Title: "", Content: "body"})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Create(ctx, owner, dto.BoardRequest{Title: "  ", Content: "body"})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Create(ctx, owner, dto.BoardRequest{Title: "t", Content: ""})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Create(ctx, owner, dto.BoardRequest{
		Title:   strings.Repeat("x", maxTitleLength+1),
		Content: "body",
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	// Exactly the limit is fine.
	_, err = svc.Create(ctx, owner, dto.BoardRequest{
		Title:   strings.Repeat("x", maxTitleLength),
		Content: "body",
	})
	assert.NoError(t, err)
}

func TestBoardView_IncrementsByOne(t *testing.T) {
	svc := NewBoardService(newMemBoardStore(), testLogger())
	post := newTestPost(t, svc)
	ctx := context.Background()

	got, err := svc.View(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewCount)

	got, err = svc.View(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)

	_, err = svc.View(ctx, 9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

// Concurrent views must each land: N viewers, counter exactly N.
func TestBoardView_ConcurrentIncrements(t *testing.T) {
	svc := NewBoardService(newMemBoardStore(), testLogger())
	post := newTestPost(t, svc)

	const viewers = 100
	var wg sync.WaitGroup
	wg.Add(viewers)
	for i := 0; i < viewers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.View(context.Background(), post.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := svc.store.PostByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, viewers, got.ViewCount)
}

func TestBoardUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewBoardService(newMemBoardStore(), testLogger())
	post := newTestPost(t, svc)

	updated, err := svc.Update(ctx, post.ID, dto.BoardRequest{Title: "edited", Content: "new body"}, owner)
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Title)
	assert.Equal(t, "new body", updated.Content)
	assert.False(t, updated.UpdatedAt.Before(post.UpdatedAt))

	_, err = svc.Update(ctx, post.ID, dto.BoardRequest{Title: "x", Content: "y"}, stranger)
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	_, err = svc.Update(ctx, post.ID, dto.BoardRequest{Title: "x", Content: "y"}, admin)
	assert.NoError(t, err)

	_, err = svc.Update(ctx, 9999, dto.BoardRequest{Title: "x", Content: "y"}, owner)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestBoardDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewBoardService(newMemBoardStore(), testLogger())
	post := newTestPost(t, svc)

	assert.ErrorIs(t, svc.Delete(ctx, post.ID, stranger), apperr.ErrAccessDenied)
	assert.NoError(t, svc.Delete(ctx, post.ID, owner))
	assert.ErrorIs(t, svc.Delete(ctx, post.ID, owner), apperr.ErrNotFound)
}

func TestBoardList_Pagination(t *testing.T) {
	ctx := context.Background()
	svc := NewBoardService(newMemBoardStore(), testLogger())

	for i := 0; i < 25; i++ {
		_, err := svc.Create(ctx, owner, dto.BoardRequest{Title: "post", Content: "body"})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, page.Posts, DefaultPageSize)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(25), page.Posts[0].ID, "newest first")

	last, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, last.Posts, 5)

	empty, err := svc.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, empty.Posts)

	negative, err := svc.List(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, negative.Page)
}
