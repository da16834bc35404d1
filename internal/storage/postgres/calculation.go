package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/models"
)

const recordColumns = `
	id, user_id, stock_code, stock_name, existing_quantity, existing_avg_price,
	additional_quantity, additional_price, new_average_price, new_total_quantity, created_at`

// CreateRecord persists a calculator run.
func (s *Store) CreateRecord(ctx context.Context, r models.CalculationRecord) (models.CalculationRecord, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	row := s.pool.QueryRow(ctx,
		`INSERT INTO calculation_histories
		   (user_id, stock_code, stock_name, existing_quantity, existing_avg_price,
		    additional_quantity, additional_price, new_average_price, new_total_quantity)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+recordColumns,
		r.UserID, r.StockCode, r.StockName, r.ExistingQuantity, r.ExistingAvgPrice,
		r.AdditionalQuantity, r.AdditionalPrice, r.NewAveragePrice, r.NewTotalQuantity,
	)
	return scanRecord(row)
}

// RecordByID fetches a single history entry regardless of owner.
func (s *Store) RecordByID(ctx context.Context, id int64) (models.CalculationRecord, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	row := s.pool.QueryRow(ctx, `SELECT `+recordColumns+` FROM calculation_histories WHERE id = $1`, id)
	return scanRecord(row)
}

// RecordsByUser returns a user's history, newest first.
func (s *Store) RecordsByUser(ctx context.Context, userID int64) ([]models.CalculationRecord, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT `+recordColumns+` FROM calculation_histories
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, mapErr("list records", err)
	}
	defer rows.Close()

	var records []models.CalculationRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("list records", err)
	}
	return records, nil
}

// DeleteRecord removes a history entry by id.
func (s *Store) DeleteRecord(ctx context.Context, id int64) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tag, err := s.pool.Exec(ctx, `DELETE FROM calculation_histories WHERE id = $1`, id)
	if err != nil {
		return mapErr("delete record", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("calculation record %d", id)
	}
	return nil
}

func scanRecord(row pgx.Row) (models.CalculationRecord, error) {
	var r models.CalculationRecord
	if err := row.Scan(
		&r.ID, &r.UserID, &r.StockCode, &r.StockName, &r.ExistingQuantity, &r.ExistingAvgPrice,
		&r.AdditionalQuantity, &r.AdditionalPrice, &r.NewAveragePrice, &r.NewTotalQuantity, &r.CreatedAt,
	); err != nil {
		return models.CalculationRecord{}, mapErr("scan record", err)
	}
	return r, nil
}
