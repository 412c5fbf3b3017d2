package valuation

import (
	"time"

	"github.com/vfg2006/sucatabook/internal/domain"
)

type line struct {
	item     domain.PurchaseItem
	resolved bool
}

// Draft é a compra em edição. Toda alteração recalcula os totais na hora.
// Não é seguro para uso concorrente.
type Draft struct {
	lines     []line
	totalPaid float64
	totals    Totals
}

func NewDraft() *Draft {
	return &Draft{}
}

// DraftFromRequest monta um rascunho a partir das linhas enviadas pela tela,
// resolvendo cada produto no catálogo carregado
func DraftFromRequest(req domain.CreatePurchaseRequest, catalog []domain.Product) *Draft {
	draft := NewDraft()
	for _, reqLine := range req.Items {
		i := draft.AddItem()
		_ = draft.SelectProduct(i, reqLine.ProductID, catalog)
		_ = draft.SetWeight(i, reqLine.Weight)
	}
	draft.SetTotalPaid(req.TotalPaid)
	return draft
}

// AddItem adiciona uma linha vazia e devolve seu índice
func (d *Draft) AddItem() int {
	d.lines = append(d.lines, line{})
	d.recompute()
	return len(d.lines) - 1
}

func (d *Draft) RemoveItem(index int) error {
	if !d.inRange(index) {
		return ErrItemOutOfRange
	}
	d.lines = append(d.lines[:index], d.lines[index+1:]...)
	d.recompute()
	return nil
}

// SelectProduct troca o produto da linha e copia nome, material e preço do
// catálogo informado. Produto desconhecido limpa a cópia e devolve ErrUnknownProduct.
func (d *Draft) SelectProduct(index int, productID string, catalog []domain.Product) error {
	if !d.inRange(index) {
		return ErrItemOutOfRange
	}

	l := &d.lines[index]
	l.item.ProductID = productID

	product, found := domain.FindProduct(catalog, productID)
	if productID == "" || !found {
		l.item.ProductName = ""
		l.item.Material = ""
		l.item.PricePerKilo = 0
		l.resolved = false
		l.item.ItemValue = ComputeLineItem(domain.Product{}, l.item.Weight).ItemValue
		d.recompute()
		if productID == "" {
			return nil
		}
		return ErrUnknownProduct
	}

	value := ComputeLineItem(product, l.item.Weight)
	l.item.ProductName = product.Name
	l.item.Material = product.Material
	l.item.PricePerKilo = value.PricePerKilo
	l.item.ItemValue = value.ItemValue
	l.resolved = true
	d.recompute()

	return nil
}

func (d *Draft) SetWeight(index int, weight float64) error {
	if !d.inRange(index) {
		return ErrItemOutOfRange
	}

	l := &d.lines[index]
	value := ComputeLineItem(domain.Product{PricePerKilo: l.item.PricePerKilo}, weight)
	l.item.Weight = value.Weight
	l.item.ItemValue = value.ItemValue
	d.recompute()

	return nil
}

func (d *Draft) SetTotalPaid(totalPaid float64) {
	d.totalPaid = domain.Finite(totalPaid)
	d.recompute()
}

func (d *Draft) TotalPaid() float64 {
	return d.totalPaid
}

// Items devolve uma cópia das linhas atuais
func (d *Draft) Items() []domain.PurchaseItem {
	items := make([]domain.PurchaseItem, 0, len(d.lines))
	for _, l := range d.lines {
		items = append(items, l.item)
	}
	return items
}

func (d *Draft) Totals() Totals {
	return d.totals
}

// Validate aplica a regra de aceite e devolve as linhas válidas
func (d *Draft) Validate() ([]domain.PurchaseItem, error) {
	if len(d.lines) == 0 || d.totalPaid <= 0 {
		return nil, &ValidationError{Err: ErrEmptyPurchase}
	}

	valid := make([]domain.PurchaseItem, 0, len(d.lines))
	for _, l := range d.lines {
		if l.resolved && l.item.ProductID != "" && l.item.Weight > 0 {
			valid = append(valid, l.item)
		}
	}

	if len(valid) == 0 {
		return nil, &ValidationError{Err: ErrInvalidItems}
	}

	return valid, nil
}

// Build valida o rascunho e gera a compra. As linhas são copiadas para que
// alterações posteriores no rascunho ou no catálogo não afetem o histórico.
func (d *Draft) Build(now time.Time) (domain.Purchase, error) {
	items, err := d.Validate()
	if err != nil {
		return domain.Purchase{}, err
	}

	snapshot := make([]domain.PurchaseItem, len(items))
	copy(snapshot, items)

	totals := ComputeTotals(snapshot, d.totalPaid)
	createdAt := now

	return domain.Purchase{
		Items:       snapshot,
		TotalWeight: totals.TotalWeight,
		TotalValue:  totals.TotalValue,
		TotalPaid:   d.totalPaid,
		TotalProfit: totals.TotalProfit,
		CreatedAt:   &createdAt,
	}, nil
}

// Reset limpa o formulário depois de um registro
func (d *Draft) Reset() {
	d.lines = nil
	d.totalPaid = 0
	d.recompute()
}

func (d *Draft) inRange(index int) bool {
	return index >= 0 && index < len(d.lines)
}

func (d *Draft) recompute() {
	d.totals = ComputeTotals(d.Items(), d.totalPaid)
}
