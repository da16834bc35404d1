package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/models"
)

const positionColumns = `
	id, user_id, stock_code, stock_name, quantity, average_price,
	total_investment, current_price, created_at, updated_at`

// CreatePosition inserts a holding and returns the stored row.
func (s *Store) CreatePosition(ctx context.Context, p models.Position) (models.Position, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	row := s.pool.QueryRow(ctx,
		`INSERT INTO portfolios
		   (user_id, stock_code, stock_name, quantity, average_price, total_investment, current_price)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+positionColumns,
		p.UserID, p.StockCode, p.StockName, p.Quantity, p.AveragePrice, p.TotalInvestment, p.CurrentPrice,
	)
	return scanPosition(row)
}

// PositionByID fetches a single holding regardless of owner.
func (s *Store) PositionByID(ctx context.Context, id int64) (models.Position, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	row := s.pool.QueryRow(ctx, `SELECT `+positionColumns+` FROM portfolios WHERE id = $1`, id)
	return scanPosition(row)
}

// PositionsByUser returns a user's holdings, newest first.
func (s *Store) PositionsByUser(ctx context.Context, userID int64) ([]models.Position, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT `+positionColumns+` FROM portfolios
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, mapErr("list positions", err)
	}
	defer rows.Close()

	var positions []models.Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("list positions", err)
	}
	return positions, nil
}

// DeletePosition removes a holding by id.
func (s *Store) DeletePosition(ctx context.Context, id int64) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tag, err := s.pool.Exec(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
	if err != nil {
		return mapErr("delete position", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("position %d", id)
	}
	return nil
}

func scanPosition(row pgx.Row) (models.Position, error) {
	var p models.Position
	if err := row.Scan(
		&p.ID, &p.UserID, &p.StockCode, &p.StockName, &p.Quantity, &p.AveragePrice,
		&p.TotalInvestment, &p.CurrentPrice, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return models.Position{}, mapErr("scan position", err)
	}
	return p, nil
}
