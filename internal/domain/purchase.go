package domain

import (
	"time"
)

// PurchaseItem é uma linha da compra. Nome, material e preço são uma cópia do
// produto no momento do registro e nunca são recalculados a partir do catálogo atual.
type PurchaseItem struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	Material     string  `json:"material"`
	PricePerKilo float64 `json:"valorKilo"`
	Weight       float64 `json:"weight"`
	ItemValue    float64 `json:"itemValue"`
}

type Purchase struct {
	ID          string         `json:"id,omitempty"`
	Items       []PurchaseItem `json:"items"`
	TotalWeight float64        `json:"totalWeight"`
	TotalValue  float64        `json:"totalValue"`
	TotalPaid   float64        `json:"totalPaid"`
	TotalProfit float64        `json:"totalProfit"`
	CreatedAt   *time.Time     `json:"createdAt,omitempty"`
}

type purchaseItemWire struct {
	ProductID   string `mapstructure:"productId"`
	ProductName string `mapstructure:"productName"`
	Material    string `mapstructure:"material"`
}

type purchaseWire struct {
	ID    string           `mapstructure:"id"`
	Items []map[string]any `mapstructure:"items"`
}

// DecodePurchase converte um registro genérico em Purchase. Campos numéricos
// ausentes ou inválidos viram zero, para tolerar registros antigos ou incompletos.
func DecodePurchase(raw map[string]any) (Purchase, error) {
	var wire purchaseWire
	if err := weakDecode(raw, &wire); err != nil {
		return Purchase{}, err
	}

	purchase := Purchase{
		ID:          wire.ID,
		Items:       make([]PurchaseItem, 0, len(wire.Items)),
		TotalWeight: Finite(toFloat(raw["totalWeight"])),
		TotalValue:  Finite(toFloat(raw["totalValue"])),
		TotalPaid:   Finite(toFloat(raw["totalPaid"])),
		TotalProfit: Finite(toFloat(raw["totalProfit"])),
		CreatedAt:   parseTime(raw["createdAt"]),
	}

	for _, rawItem := range wire.Items {
		var itemWire purchaseItemWire
		if err := weakDecode(rawItem, &itemWire); err != nil {
			return Purchase{}, err
		}
		purchase.Items = append(purchase.Items, PurchaseItem{
			ProductID:    itemWire.ProductID,
			ProductName:  itemWire.ProductName,
			Material:     itemWire.Material,
			PricePerKilo: firstNumber(rawItem, priceKeys...),
			Weight:       NonNegative(toFloat(rawItem["weight"])),
			ItemValue:    NonNegative(toFloat(rawItem["itemValue"])),
		})
	}

	return purchase, nil
}

func (p *Purchase) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	decoded, err := DecodePurchase(raw)
	if err != nil {
		return err
	}

	*p = decoded
	return nil
}

// PurchaseLineRequest é a linha enviada pela tela de nova compra
type PurchaseLineRequest struct {
	ProductID string  `json:"productId"`
	Weight    float64 `json:"weight"`
}

type CreatePurchaseRequest struct {
	Items     []PurchaseLineRequest `json:"items"`
	TotalPaid float64               `json:"totalPaid"`
}
