// Package service implements the business operations behind the HTTP
// handlers. Every mutation on an owned resource goes through
// authz.Authorize, and all money arithmetic goes through the accounting
// package; services themselves stay thin orchestration over the stores.
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

// PortfolioService manages a user's positions and their valuation.
type PortfolioService struct {
	store storage.PortfolioStore
	log   *logrus.Logger
}

// NewPortfolioService constructs the service.
func NewPortfolioService(store storage.PortfolioStore, log *logrus.Logger) *PortfolioService {
	return &PortfolioService{store: store, log: log}
}

// List returns the user's positions newest first, each enriched with the
// derived valuation fields, plus the portfolio-level summary.
func (s *PortfolioService) List(ctx context.Context, userID int64) (dto.PortfolioListResponse, error) {
	positions, err := s.store.PositionsByUser(ctx, userID)
	if err != nil {
		return dto.PortfolioListResponse{}, fmt.Errorf("list positions: %w", err)
	}

	views := make([]dto.PositionView, 0, len(positions))
	lines := make([]accounting.Line, 0, len(positions))
	for _, p := range positions {
		view := positionView(p)
		views = append(views, view)
		lines = append(lines, accounting.Line{
			TotalInvestment:  view.TotalInvestment,
			EvaluationAmount: view.EvaluationAmount,
		})
	}

	summary := accounting.Aggregate(lines)
	return dto.PortfolioListResponse{
		Positions: views,
		Summary: dto.PortfolioSummary{
			TotalInvestment:  summary.TotalInvestment,
			EvaluationAmount: summary.EvaluationAmount,
			ProfitLoss:       summary.ProfitLoss,
			ProfitLossRate:   summary.ProfitLossRate,
		},
	}, nil
}

// Create validates the request and persists a new position. The initial
// current price equals the cost basis, so a new position reports 0% until a
// real price arrives.
func (s *PortfolioService) Create(ctx context.Context, userID int64, req dto.PortfolioRequest) (models.Position, error) {
	code := strings.TrimSpace(req.StockCode)
	name := strings.TrimSpace(req.StockName)
	if code == "" {
		return models.Position{}, apperr.Invalidf("stock code is required")
	}
	if name == "" {
		return models.Position{}, apperr.Invalidf("stock name is required")
	}
	if req.Quantity <= 0 {
		return models.Position{}, apperr.Invalidf("quantity must be positive, got %d", req.Quantity)
	}
	if req.AveragePrice <= 0 {
		return models.Position{}, apperr.Invalidf("average price must be positive, got %v", req.AveragePrice)
	}

	currentPrice := req.AveragePrice
	position := models.Position{
		UserID:          userID,
		StockCode:       code,
		StockName:       name,
		Quantity:        req.Quantity,
		AveragePrice:    req.AveragePrice,
		TotalInvestment: float64(req.Quantity) * req.AveragePrice,
		CurrentPrice:    &currentPrice,
	}

	created, err := s.store.CreatePosition(ctx, position)
	if err != nil {
		return models.Position{}, fmt.Errorf("create position: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":          userID,
		"position_id":      created.ID,
		"stock_code":       created.StockCode,
		"total_investment": created.TotalInvestment,
	}).Info("position created")
	return created, nil
}

// Delete removes a position after the owner-or-admin check. The position is
// loaded first so a missing id reports NotFound, never AccessDenied.
func (s *PortfolioService) Delete(ctx context.Context, id int64, actor auth.Identity) error {
	position, err := s.store.PositionByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load position %d: %w", id, err)
	}

	if err := authz.Authorize(authz.ActionDelete, position.UserID, actor.ID, actor.IsAdmin); err != nil {
		s.log.WithFields(logrus.Fields{
			"position_id": id,
			"actor_id":    actor.ID,
		}).Warn("position delete denied")
		return err
	}

	if err := s.store.DeletePosition(ctx, id); err != nil {
		return fmt.Errorf("delete position %d: %w", id, err)
	}

	s.log.WithFields(logrus.Fields{
		"position_id": id,
		"owner_id":    position.UserID,
		"actor_id":    actor.ID,
	}).Info("position deleted")
	return nil
}

func positionView(p models.Position) dto.PositionView {
	currentPrice, evaluation := accounting.Valuation(p.Quantity, p.CurrentPrice, p.AveragePrice)
	profitLoss, rate := accounting.ProfitAndLoss(evaluation, p.TotalInvestment)
	return dto.PositionView{
		ID:               p.ID,
		StockCode:        p.StockCode,
		StockName:        p.StockName,
		Quantity:         p.Quantity,
		AveragePrice:     p.AveragePrice,
		CurrentPrice:     currentPrice,
		TotalInvestment:  p.TotalInvestment,
		EvaluationAmount: evaluation,
		ProfitLoss:       profitLoss,
		ProfitLossRate:   rate,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
