package service

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// memPortfolioStore is an in-memory PortfolioStore with the same atomicity
// guarantees the Postgres implementation provides per record.
type memPortfolioStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Position
}

func newMemPortfolioStore() *memPortfolioStore {
	return &memPortfolioStore{nextID: 1, rows: make(map[int64]models.Position)}
}

func (m *memPortfolioStore) CreatePosition(_ context.Context, p models.Position) (models.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID
	m.nextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.rows[p.ID] = p
	return p, nil
}

func (m *memPortfolioStore) PositionByID(_ context.Context, id int64) (models.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return models.Position{}, apperr.NotFoundf("position %d", id)
	}
	return p, nil
}

func (m *memPortfolioStore) PositionsByUser(_ context.Context, userID int64) ([]models.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Position
	for _, p := range m.rows {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memPortfolioStore) DeletePosition(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return apperr.NotFoundf("position %d", id)
	}
	delete(m.rows, id)
	return nil
}

// setCurrentPrice stands in for the external price update path.
func (m *memPortfolioStore) setCurrentPrice(id int64, price float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.rows[id]
	p.CurrentPrice = &price
	m.rows[id] = p
}

type memCalculationStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.CalculationRecord
}

func newMemCalculationStore() *memCalculationStore {
	return &memCalculationStore{nextID: 1, rows: make(map[int64]models.CalculationRecord)}
}

func (m *memCalculationStore) CreateRecord(_ context.Context, r models.CalculationRecord) (models.CalculationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.nextID
	m.nextID++
	r.CreatedAt = time.Now()
	m.rows[r.ID] = r
	return r, nil
}

func (m *memCalculationStore) RecordByID(_ context.Context, id int64) (models.CalculationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return models.CalculationRecord{}, apperr.NotFoundf("calculation record %d", id)
	}
	return r, nil
}

func (m *memCalculationStore) RecordsByUser(_ context.Context, userID int64) ([]models.CalculationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.CalculationRecord
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memCalculationStore) DeleteRecord(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return apperr.NotFoundf("calculation record %d", id)
	}
	delete(m.rows, id)
	return nil
}

type memBoardStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Post
}

func newMemBoardStore() *memBoardStore {
	return &memBoardStore{nextID: 1, rows: make(map[int64]models.Post)}
}

func (m *memBoardStore) CreatePost(_ context.Context, p models.Post) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID
	m.nextID++
	p.ViewCount = 0
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.rows[p.ID] = p
	return p, nil
}

func (m *memBoardStore) PostByID(_ context.Context, id int64) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return models.Post{}, apperr.NotFoundf("post %d", id)
	}
	return p, nil
}

func (m *memBoardStore) ListPosts(_ context.Context, page, pageSize int) ([]models.Post, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]models.Post, 0, len(m.rows))
	for _, p := range m.rows {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	start := page * pageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (m *memBoardStore) IncrementViewCount(_ context.Context, id int64) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return models.Post{}, apperr.NotFoundf("post %d", id)
	}
	p.ViewCount++
	m.rows[id] = p
	return p, nil
}

func (m *memBoardStore) UpdatePost(_ context.Context, id int64, title, content string) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return models.Post{}, apperr.NotFoundf("post %d", id)
	}
	p.Title = title
	p.Content = content
	p.UpdatedAt = time.Now()
	m.rows[id] = p
	return p, nil
}

func (m *memBoardStore) DeletePost(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return apperr.NotFoundf("post %d", id)
	}
	delete(m.rows, id)
	return nil
}
