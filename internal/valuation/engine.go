// Package valuation calcula o valor das linhas de uma compra e os totais derivados
package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/sucatabook/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// LineValue é o resultado da valoração de uma linha
type LineValue struct {
	Weight       float64
	PricePerKilo float64
	ItemValue    float64
}

// Totals são os valores agregados exibidos no resumo da compra
type Totals struct {
	TotalWeight      float64 `json:"totalWeight"`
	TotalValue       float64 `json:"totalValue"`
	TotalProfit      float64 `json:"totalProfit"`
	ProfitPercentage float64 `json:"profitPercentage"`
}

// ComputeLineItem calcula weight × preço por quilo. Entradas inválidas ou
// negativas são tratadas como zero; a validação fica a cargo do formulário.
// Um produto que estoura o float64 também vale zero.
func ComputeLineItem(product domain.Product, weight float64) LineValue {
	w := domain.NonNegative(weight)
	price := domain.NonNegative(product.PricePerKilo)

	value := decimal.NewFromFloat(w).Mul(decimal.NewFromFloat(price))

	return LineValue{
		Weight:       w,
		PricePerKilo: price,
		ItemValue:    domain.NonNegative(value.InexactFloat64()),
	}
}

// ComputeTotals soma as linhas e calcula lucro e margem. Lucro e margem só
// existem quando o valor pago é positivo. As somas são feitas em decimal para
// que a ordem das linhas não altere o resultado.
func ComputeTotals(items []domain.PurchaseItem, totalPaid float64) Totals {
	weight := decimal.Zero
	value := decimal.Zero

	for _, item := range items {
		weight = weight.Add(decimal.NewFromFloat(domain.NonNegative(item.Weight)))
		value = value.Add(decimal.NewFromFloat(domain.NonNegative(item.ItemValue)))
	}

	totals := Totals{
		TotalWeight: domain.NonNegative(weight.InexactFloat64()),
		TotalValue:  domain.NonNegative(value.InexactFloat64()),
	}

	paid := domain.Finite(totalPaid)
	if paid > 0 {
		paidDec := decimal.NewFromFloat(paid)
		profit := value.Sub(paidDec)
		totals.TotalProfit = domain.Finite(profit.InexactFloat64())
		totals.ProfitPercentage = domain.Finite(profit.Div(paidDec).Mul(hundred).InexactFloat64())
	}

	return totals
}
