package domain

import (
	"time"
)

// Chaves aceitas no payload do backend para o preço por quilo
var priceKeys = []string{"valorKilo", "preco", "valor_kilo", "precoKilo", "preco_kilo", "pricePerKilo"}

// Product é um item reciclável do catálogo, referência para a valoração das compras
type Product struct {
	ID           string     `json:"id,omitempty"`
	Name         string     `json:"nome"`
	Description  string     `json:"descricao"`
	Material     string     `json:"material"`
	PricePerKilo float64    `json:"valorKilo"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

type productWire struct {
	ID          string `mapstructure:"id"`
	Nome        string `mapstructure:"nome"`
	Name        string `mapstructure:"name"`
	Descricao   string `mapstructure:"descricao"`
	Description string `mapstructure:"description"`
	Material    string `mapstructure:"material"`
}

// DecodeProduct converte um registro genérico em Product de forma tolerante
func DecodeProduct(raw map[string]any) (Product, error) {
	var wire productWire
	if err := weakDecode(raw, &wire); err != nil {
		return Product{}, err
	}

	product := Product{
		ID:           wire.ID,
		Name:         wire.Nome,
		Description:  wire.Descricao,
		Material:     wire.Material,
		PricePerKilo: firstNumber(raw, priceKeys...),
		CreatedAt:    parseTime(raw["createdAt"]),
	}
	if product.Name == "" {
		product.Name = wire.Name
	}
	if product.Description == "" {
		product.Description = wire.Description
	}

	return product, nil
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	decoded, err := DecodeProduct(raw)
	if err != nil {
		return err
	}

	*p = decoded
	return nil
}

// FindProduct procura um produto pelo ID no catálogo carregado
func FindProduct(catalog []Product, id string) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

type CreateProductRequest struct {
	Name         string  `json:"nome" validate:"required"`
	Description  string  `json:"descricao"`
	Material     string  `json:"material" validate:"required,material"`
	PricePerKilo float64 `json:"valorKilo" validate:"gt=0"`
}

func (r CreateProductRequest) ToProduct() Product {
	return Product{
		Name:         r.Name,
		Description:  r.Description,
		Material:     r.Material,
		PricePerKilo: r.PricePerKilo,
	}
}
