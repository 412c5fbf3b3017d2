// Package financial agrega o histórico de compras em indicadores financeiros
package financial

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/pkg/utils"
)

// Metrics são os indicadores derivados exibidos junto do resumo
type Metrics struct {
	AverageWeight       float64 `json:"averageWeight"`
	AverageMargin       float64 `json:"averageMargin"`
	AverageValuePerKilo float64 `json:"averageValuePerKilo"`
	Profitable          bool    `json:"profitable"`
}

// Display traz os valores do resumo já formatados para os cartões da tela
type Display struct {
	TotalRevenue        string `json:"totalRevenue"`
	TotalProfit         string `json:"totalProfit"`
	TotalWeight         string `json:"totalWeight"`
	AverageProfit       string `json:"averageProfit"`
	AverageWeight       string `json:"averageWeight"`
	AverageMargin       string `json:"averageMargin"`
	AverageValuePerKilo string `json:"averageValuePerKilo"`
}

var hundred = decimal.NewFromInt(100)

// Summarize soma receita (valor pago), lucro e peso de todas as compras.
// As somas são feitas em decimal, então o resultado não depende da ordem das
// compras; campos inválidos contam como zero.
func Summarize(purchases []domain.Purchase) domain.FinancialSummary {
	revenue := decimal.Zero
	profit := decimal.Zero
	weight := decimal.Zero

	for _, p := range purchases {
		revenue = revenue.Add(decimal.NewFromFloat(domain.Finite(p.TotalPaid)))
		profit = profit.Add(decimal.NewFromFloat(domain.Finite(p.TotalProfit)))
		weight = weight.Add(decimal.NewFromFloat(domain.Finite(p.TotalWeight)))
	}

	summary := domain.FinancialSummary{
		TotalPurchases: len(purchases),
		TotalRevenue:   domain.Finite(revenue.InexactFloat64()),
		TotalProfit:    domain.Finite(profit.InexactFloat64()),
		TotalWeight:    domain.Finite(weight.InexactFloat64()),
	}

	if summary.TotalPurchases > 0 {
		count := decimal.NewFromInt(int64(summary.TotalPurchases))
		summary.AverageProfit = domain.Finite(profit.Div(count).InexactFloat64())
	}

	return summary
}

// Derive calcula peso médio, margem média e valor médio por quilo
func Derive(summary domain.FinancialSummary) Metrics {
	metrics := Metrics{
		Profitable: summary.TotalProfit >= 0,
	}

	revenue := decimal.NewFromFloat(domain.Finite(summary.TotalRevenue))
	profit := decimal.NewFromFloat(domain.Finite(summary.TotalProfit))
	weight := decimal.NewFromFloat(domain.Finite(summary.TotalWeight))

	if summary.TotalPurchases > 0 {
		count := decimal.NewFromInt(int64(summary.TotalPurchases))
		metrics.AverageWeight = domain.Finite(weight.Div(count).InexactFloat64())
	}

	if revenue.IsPositive() {
		metrics.AverageMargin = domain.Finite(profit.Div(revenue).Mul(hundred).InexactFloat64())
	}

	if weight.IsPositive() {
		metrics.AverageValuePerKilo = domain.Finite(revenue.Div(weight).InexactFloat64())
	}

	return metrics
}

func Format(summary domain.FinancialSummary, metrics Metrics) Display {
	return Display{
		TotalRevenue:        utils.FormatCurrency(summary.TotalRevenue),
		TotalProfit:         utils.FormatCurrency(summary.TotalProfit),
		TotalWeight:         utils.FormatWeight(summary.TotalWeight),
		AverageProfit:       utils.FormatCurrency(summary.AverageProfit),
		AverageWeight:       utils.FormatWeight(metrics.AverageWeight),
		AverageMargin:       utils.FormatPercentage(metrics.AverageMargin),
		AverageValuePerKilo: utils.FormatCurrency(metrics.AverageValuePerKilo),
	}
}

// FilterByPeriod mantém as compras criadas entre as datas do período (inclusive).
// A data final cobre o dia inteiro. Compras sem data só passam sem filtro.
func FilterByPeriod(purchases []domain.Purchase, period domain.Period) []domain.Purchase {
	if period.IsZero() {
		return purchases
	}

	var end time.Time
	if period.EndDate != nil {
		end = endOfDay(*period.EndDate)
	}

	filtered := make([]domain.Purchase, 0, len(purchases))
	for _, p := range purchases {
		if p.CreatedAt == nil {
			continue
		}
		if period.StartDate != nil && p.CreatedAt.Before(*period.StartDate) {
			continue
		}
		if period.EndDate != nil && p.CreatedAt.After(end) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
