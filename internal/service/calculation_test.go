package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/models/dto"
)

func TestCalculationCreate(t *testing.T) {
	svc := NewCalculationService(newMemCalculationStore(), testLogger())

	created, err := svc.Create(context.Background(), owner.ID, dto.CalculationRequest{
		StockCode:          "005930",
		StockName:          "Samsung Electronics",
		ExistingQuantity:   10,
		ExistingAvgPrice:   100,
		AdditionalQuantity: 10,
		AdditionalPrice:    50,
	})
	require.NoError(t, err)

	assert.Equal(t, 75.0, created.NewAveragePrice)
	assert.Equal(t, 20, created.NewTotalQuantity)
	assert.Equal(t, owner.ID, created.UserID)
}

func TestCalculationCreate_FirstBuy(t *testing.T) {
	svc := NewCalculationService(newMemCalculationStore(), testLogger())

	created, err := svc.Create(context.Background(), owner.ID, dto.CalculationRequest{
		StockCode:          "035720",
		AdditionalQuantity: 3,
		AdditionalPrice:    42.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 42.5, created.NewAveragePrice)
	assert.Equal(t, 3, created.NewTotalQuantity)
}

func TestCalculationCreate_Invalid(t *testing.T) {
	svc := NewCalculationService(newMemCalculationStore(), testLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, owner.ID, dto.CalculationRequest{
		StockCode: "005930", AdditionalQuantity: 0, AdditionalPrice: 10,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Create(ctx, owner.ID, dto.CalculationRequest{
		AdditionalQuantity: 1, AdditionalPrice: 10,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument, "missing stock code")
}

func TestCalculationList_NewestFirst(t *testing.T) {
	svc := NewCalculationService(newMemCalculationStore(), testLogger())
	ctx := context.Background()

	for _, code := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, owner.ID, dto.CalculationRequest{
			StockCode: code, AdditionalQuantity: 1, AdditionalPrice: 10,
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, stranger.ID, dto.CalculationRequest{
		StockCode: "D", AdditionalQuantity: 1, AdditionalPrice: 10,
	})
	require.NoError(t, err)

	records, err := svc.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "C", records[0].StockCode)
	assert.Equal(t, "A", records[2].StockCode)
}

func TestCalculationDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewCalculationService(newMemCalculationStore(), testLogger())

	created, err := svc.Create(ctx, owner.ID, dto.CalculationRequest{
		StockCode: "005930", AdditionalQuantity: 1, AdditionalPrice: 10,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID, stranger), apperr.ErrAccessDenied)
	assert.NoError(t, svc.Delete(ctx, created.ID, owner))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID, owner), apperr.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 12345, admin), apperr.ErrNotFound)
}
