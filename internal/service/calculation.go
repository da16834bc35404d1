package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jaehyun-dev/stockfolio-be/internal/accounting"
	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/auth"
	"github.com/jaehyun-dev/stockfolio-be/internal/authz"
	"github.com/jaehyun-dev/stockfolio-be/internal/models"
	"github.com/jaehyun-dev/stockfolio-be/internal/models/dto"
	"github.com/jaehyun-dev/stockfolio-be/internal/storage"
)

// CalculationService records weighted-average buy-in calculations. Each
// record is an immutable audit entry; only deletion is permitted afterwards.
type CalculationService struct {
	store storage.CalculationStore
	log   *logrus.Logger
}

// NewCalculationService constructs the service.
func NewCalculationService(store storage.CalculationStore, log *logrus.Logger) *CalculationService {
	return &CalculationService{store: store, log: log}
}

// Create applies the buy-in formula and persists the inputs together with
// the derived outputs.
func (s *CalculationService) Create(ctx context.Context, userID int64, req dto.CalculationRequest) (models.CalculationRecord, error) {
	code := strings.TrimSpace(req.StockCode)
	if code == "" {
		return models.CalculationRecord{}, apperr.Invalidf("stock code is required")
	}

	result, err := accounting.RecomputeAverageOnBuy(
		req.ExistingQuantity, req.ExistingAvgPrice,
		req.AdditionalQuantity, req.AdditionalPrice,
	)
	if err != nil {
		return models.CalculationRecord{}, err
	}

	record := models.CalculationRecord{
		UserID:             userID,
		StockCode:          code,
		StockName:          strings.TrimSpace(req.StockName),
		ExistingQuantity:   req.ExistingQuantity,
		ExistingAvgPrice:   req.ExistingAvgPrice,
		AdditionalQuantity: req.AdditionalQuantity,
		AdditionalPrice:    req.AdditionalPrice,
		NewAveragePrice:    result.NewAveragePrice,
		NewTotalQuantity:   result.NewTotalQuantity,
	}

	created, err := s.store.CreateRecord(ctx, record)
	if err != nil {
		return models.CalculationRecord{}, fmt.Errorf("create calculation record: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":    userID,
		"record_id":  created.ID,
		"stock_code": created.StockCode,
		"new_avg":    created.NewAveragePrice,
	}).Info("calculation recorded")
	return created, nil
}

// List returns the user's calculation history, most recent first.
func (s *CalculationService) List(ctx context.Context, userID int64) ([]models.CalculationRecord, error) {
	records, err := s.store.RecordsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list calculation records: %w", err)
	}
	return records, nil
}

// Delete removes a record after the owner-or-admin check; the record is
// loaded first so absence reports NotFound.
func (s *CalculationService) Delete(ctx context.Context, id int64, actor auth.Identity) error {
	record, err := s.store.RecordByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load calculation record %d: %w", id, err)
	}

	if err := authz.Authorize(authz.ActionDelete, record.UserID, actor.ID, actor.IsAdmin); err != nil {
		s.log.WithFields(logrus.Fields{
			"record_id": id,
			"actor_id":  actor.ID,
		}).Warn("calculation record delete denied")
		return err
	}

	if err := s.store.DeleteRecord(ctx, id); err != nil {
		return fmt.Errorf("delete calculation record %d: %w", id, err)
	}

	s.log.WithFields(logrus.Fields{
		"record_id": id,
		"owner_id":  record.UserID,
		"actor_id":  actor.ID,
	}).Info("calculation record deleted")
	return nil
}
