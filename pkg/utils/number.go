package utils

import (
	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// FormatCurrency formata um valor em reais com duas casas, como nas telas ("R$ 25.00")
func FormatCurrency(f float64) string {
	return "R$ " + decimal.NewFromFloat(f).StringFixed(2)
}

// FormatWeight formata um peso em quilos com uma casa decimal ("10.0 kg")
func FormatWeight(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(1) + " kg"
}

// FormatPercentage formata uma porcentagem com uma casa decimal ("25.0%")
func FormatPercentage(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(1) + "%"
}
