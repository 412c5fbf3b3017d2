package domain

import "time"

// FinancialSummary é derivado do histórico de compras e nunca é armazenado
type FinancialSummary struct {
	TotalPurchases int     `json:"totalPurchases"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalProfit    float64 `json:"totalProfit"`
	TotalWeight    float64 `json:"totalWeight"`
	AverageProfit  float64 `json:"averageProfit"`
}

// Period filtra compras por data de criação. Datas nulas não restringem.
type Period struct {
	StartDate *time.Time
	EndDate   *time.Time
}

func (p Period) IsZero() bool {
	return p.StartDate == nil && p.EndDate == nil
}
