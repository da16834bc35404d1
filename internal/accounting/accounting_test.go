package accounting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
)

func TestRecomputeAverageOnBuy(t *testing.T) {
	tests := []struct {
		name        string
		priorQty    int
		priorAvg    float64
		qty         int
		price       float64
		wantAvg     float64
		wantQty     int
		wantInvalid bool
	}{
		{
			name:     "averaging down",
			priorQty: 10, priorAvg: 100,
			qty: 10, price: 50,
			wantAvg: 75, wantQty: 20,
		},
		{
			name:     "averaging up",
			priorQty: 5, priorAvg: 100,
			qty: 15, price: 200,
			wantAvg: 175, wantQty: 20,
		},
		{
			name:     "first buy uses incoming price exactly",
			priorQty: 0, priorAvg: 0,
			qty: 7, price: 123.45,
			wantAvg: 123.45, wantQty: 7,
		},
		{
			name:     "zero additional quantity rejected",
			priorQty: 10, priorAvg: 100,
			qty: 0, price: 50,
			wantInvalid: true,
		},
		{
			name:     "negative additional quantity rejected",
			priorQty: 10, priorAvg: 100,
			qty: -3, price: 50,
			wantInvalid: true,
		},
		{
			name:     "zero price rejected",
			priorQty: 10, priorAvg: 100,
			qty: 5, price: 0,
			wantInvalid: true,
		},
		{
			name:     "negative existing quantity rejected",
			priorQty: -1, priorAvg: 100,
			qty: 5, price: 50,
			wantInvalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RecomputeAverageOnBuy(tt.priorQty, tt.priorAvg, tt.qty, tt.price)
			if tt.wantInvalid {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantAvg, got.NewAveragePrice, 1e-9)
			assert.Equal(t, tt.wantQty, got.NewTotalQuantity)
		})
	}
}

// The new average always lands between the two input prices when both
// quantities are positive.
func TestRecomputeAverageOnBuy_Bounds(t *testing.T) {
	cases := []struct {
		priorQty int
		priorAvg float64
		qty      int
		price    float64
	}{
		{1, 10, 1000, 500},
		{1000, 500, 1, 10},
		{3, 77.7, 9, 33.3},
		{50, 42, 50, 42},
	}
	for _, c := range cases {
		got, err := RecomputeAverageOnBuy(c.priorQty, c.priorAvg, c.qty, c.price)
		require.NoError(t, err)

		lo, hi := c.priorAvg, c.price
		if lo > hi {
			lo, hi = hi, lo
		}
		assert.GreaterOrEqual(t, got.NewAveragePrice, lo)
		assert.LessOrEqual(t, got.NewAveragePrice, hi)
		assert.Equal(t, c.priorQty+c.qty, got.NewTotalQuantity)
	}
}

func TestValuation(t *testing.T) {
	current := 150.0

	price, amount := Valuation(10, &current, 100)
	assert.Equal(t, 150.0, price)
	assert.Equal(t, 1500.0, amount)

	// Missing current price falls back to the average price.
	price, amount = Valuation(10, nil, 100)
	assert.Equal(t, 100.0, price)
	assert.Equal(t, 1000.0, amount)

	// Zero quantity is valid and values at zero.
	_, amount = Valuation(0, &current, 100)
	assert.Equal(t, 0.0, amount)
}

func TestProfitAndLoss(t *testing.T) {
	pl, rate := ProfitAndLoss(1500, 1000)
	assert.Equal(t, 500.0, pl)
	assert.Equal(t, 50.0, rate)

	pl, rate = ProfitAndLoss(800, 1000)
	assert.Equal(t, -200.0, pl)
	assert.Equal(t, -20.0, rate)

	// Zero investment reports 0%, never a division failure.
	pl, rate = ProfitAndLoss(0, 0)
	assert.Equal(t, 0.0, pl)
	assert.Equal(t, 0.0, rate)
}

func TestAggregate(t *testing.T) {
	got := Aggregate([]Line{
		{TotalInvestment: 100, EvaluationAmount: 150},
		{TotalInvestment: 200, EvaluationAmount: 180},
	})

	assert.Equal(t, 300.0, got.TotalInvestment)
	assert.Equal(t, 330.0, got.EvaluationAmount)
	assert.Equal(t, 30.0, got.ProfitLoss)
	// Rate comes from the sums (10%), not the mean of +50% and -10%.
	assert.InDelta(t, 10.0, got.ProfitLossRate, 1e-9)
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	assert.Zero(t, got.TotalInvestment)
	assert.Zero(t, got.EvaluationAmount)
	assert.Zero(t, got.ProfitLoss)
	assert.Zero(t, got.ProfitLossRate)
}

// End-to-end valuation of a fresh position: cost basis 10x100, so the
// position values at exactly its investment until a price arrives.
func TestPositionLifecycleValuation(t *testing.T) {
	qty, avg := 10, 100.0
	investment := float64(qty) * avg

	_, amount := Valuation(qty, nil, avg)
	pl, rate := ProfitAndLoss(amount, investment)
	assert.Equal(t, 1000.0, amount)
	assert.Equal(t, 0.0, pl)
	assert.Equal(t, 0.0, rate)

	current := 150.0
	_, amount = Valuation(qty, &current, avg)
	pl, rate = ProfitAndLoss(amount, investment)
	assert.Equal(t, 1500.0, amount)
	assert.Equal(t, 500.0, pl)
	assert.Equal(t, 50.0, rate)
}
