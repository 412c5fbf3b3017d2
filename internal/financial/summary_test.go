package financial

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sucatabook/internal/domain"
)

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, domain.FinancialSummary{}, Summarize(nil))
	assert.Equal(t, domain.FinancialSummary{}, Summarize([]domain.Purchase{}))
}

func TestSummarize_TwoPurchases(t *testing.T) {
	purchases := []domain.Purchase{
		{ID: "a", TotalPaid: 100, TotalProfit: 10, TotalWeight: 40},
		{ID: "b", TotalPaid: 50, TotalProfit: -5, TotalWeight: 20},
	}

	summary := Summarize(purchases)

	assert.Equal(t, 2, summary.TotalPurchases)
	assert.Equal(t, 150.0, summary.TotalRevenue)
	assert.Equal(t, 5.0, summary.TotalProfit)
	assert.Equal(t, 60.0, summary.TotalWeight)
	assert.Equal(t, 2.5, summary.AverageProfit)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	purchases := []domain.Purchase{
		{TotalPaid: 0.1, TotalProfit: 0.01, TotalWeight: 0.7},
		{TotalPaid: 0.2, TotalProfit: -0.02, TotalWeight: 1.1},
		{TotalPaid: 0.3, TotalProfit: 0.07, TotalWeight: 2.3},
	}

	permutations := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	expected := Summarize(purchases)

	for _, order := range permutations {
		permuted := []domain.Purchase{purchases[order[0]], purchases[order[1]], purchases[order[2]]}
		assert.Equal(t, expected, Summarize(permuted), "ordem %v", order)
	}

	assert.Equal(t, 0.6, expected.TotalRevenue)
	assert.Equal(t, 0.06, expected.TotalProfit)
	assert.Equal(t, 4.1, expected.TotalWeight)
	assert.Equal(t, 0.02, expected.AverageProfit)
}

func TestSummarize_ToleratesMissingFields(t *testing.T) {
	var legacy domain.Purchase
	require.NoError(t, legacy.UnmarshalJSON([]byte(`{"id": 7, "totalPaid": 40}`)))

	purchases := []domain.Purchase{
		legacy,
		{TotalPaid: math.NaN(), TotalProfit: math.Inf(1), TotalWeight: 3},
	}

	summary := Summarize(purchases)

	assert.Equal(t, 2, summary.TotalPurchases)
	assert.Equal(t, 40.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.TotalProfit)
	assert.Equal(t, 3.0, summary.TotalWeight)
	assert.Equal(t, 0.0, summary.AverageProfit)
}

func TestDerive(t *testing.T) {
	t.Run("Com compras", func(t *testing.T) {
		metrics := Derive(domain.FinancialSummary{
			TotalPurchases: 2,
			TotalRevenue:   150,
			TotalProfit:    15,
			TotalWeight:    60,
		})

		assert.Equal(t, 30.0, metrics.AverageWeight)
		assert.Equal(t, 10.0, metrics.AverageMargin)
		assert.Equal(t, 2.5, metrics.AverageValuePerKilo)
		assert.True(t, metrics.Profitable)
	})

	t.Run("Sem compras", func(t *testing.T) {
		metrics := Derive(domain.FinancialSummary{})
		assert.Equal(t, Metrics{Profitable: true}, metrics)
	})

	t.Run("Valores com centavos", func(t *testing.T) {
		metrics := Derive(domain.FinancialSummary{
			TotalPurchases: 3,
			TotalRevenue:   0.6,
			TotalProfit:    0.06,
			TotalWeight:    0.3,
		})

		assert.Equal(t, 0.1, metrics.AverageWeight)
		assert.Equal(t, 10.0, metrics.AverageMargin)
		assert.Equal(t, 2.0, metrics.AverageValuePerKilo)
	})

	t.Run("Prejuízo", func(t *testing.T) {
		metrics := Derive(domain.FinancialSummary{TotalPurchases: 1, TotalRevenue: 10, TotalProfit: -2})
		assert.False(t, metrics.Profitable)
		assert.Equal(t, -20.0, metrics.AverageMargin)
		assert.Equal(t, 0.0, metrics.AverageValuePerKilo)
	})
}

func TestFormat(t *testing.T) {
	summary := domain.FinancialSummary{
		TotalPurchases: 2,
		TotalRevenue:   150,
		TotalProfit:    15,
		TotalWeight:    60,
		AverageProfit:  7.5,
	}

	display := Format(summary, Derive(summary))

	assert.Equal(t, Display{
		TotalRevenue:        "R$ 150.00",
		TotalProfit:         "R$ 15.00",
		TotalWeight:         "60.0 kg",
		AverageProfit:       "R$ 7.50",
		AverageWeight:       "30.0 kg",
		AverageMargin:       "10.0%",
		AverageValuePerKilo: "R$ 2.50",
	}, display)
}

func TestFilterByPeriod(t *testing.T) {
	at := func(day int) *time.Time {
		d := time.Date(2024, 3, day, 15, 0, 0, 0, time.UTC)
		return &d
	}

	purchases := []domain.Purchase{
		{ID: "1", CreatedAt: at(1)},
		{ID: "2", CreatedAt: at(10)},
		{ID: "3", CreatedAt: at(20)},
		{ID: "sem-data"},
	}

	ids := func(ps []domain.Purchase) []string {
		out := []string{}
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	start := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	assert.Len(t, FilterByPeriod(purchases, domain.Period{}), 4)
	assert.Equal(t, []string{"2", "3"}, ids(FilterByPeriod(purchases, domain.Period{StartDate: &start})))
	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterByPeriod(purchases, domain.Period{EndDate: &end})))
	assert.Equal(t, []string{"2", "3"}, ids(FilterByPeriod(purchases, domain.Period{StartDate: &start, EndDate: &end})))
}
