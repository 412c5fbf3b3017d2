// Package spreadsheet gera e lê as planilhas xlsx de itens e compras
package spreadsheet

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/pkg/utils"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	ProductsSheet  = "Itens Recicláveis"
	PurchasesSheet = "Compras"
	ItemsSheet     = "Itens das Compras"
)

var (
	productHeaders  = []string{"ID", "Nome", "Descrição", "Material", "Valor/kg"}
	purchaseHeaders = []string{"ID", "Data", "Itens", "Peso total (kg)", "Valor total", "Valor pago", "Lucro"}
	itemHeaders     = []string{"Compra", "Produto", "Material", "Valor/kg", "Peso (kg)", "Valor"}
)

// Aliases aceitos no cabeçalho da planilha importada (comparação sem caixa)
var headerAliases = map[string]string{
	"id":           "id",
	"nome":         "nome",
	"name":         "nome",
	"descrição":    "descricao",
	"descricao":    "descricao",
	"description":  "descricao",
	"material":     "material",
	"valor/kg":     "valorKilo",
	"valorkilo":    "valorKilo",
	"valor_kilo":   "valorKilo",
	"preço":        "valorKilo",
	"preco":        "valorKilo",
	"precokilo":    "valorKilo",
	"preco_kilo":   "valorKilo",
	"priceperkilo": "valorKilo",
}

// ImportPreview é o resultado da leitura local da planilha antes do envio
type ImportPreview struct {
	Products []domain.Product `json:"products"`
	Rows     int              `json:"rows"`
	Failed   int              `json:"failed"`
}

// ProductsWorkbook monta a planilha do catálogo, usada quando a exportação remota falha
func ProductsWorkbook(products []domain.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ProductsSheet); err != nil {
		return nil, err
	}
	if err := writeHeader(f, ProductsSheet, productHeaders); err != nil {
		return nil, err
	}

	for i, p := range products {
		row := i + 2
		values := []interface{}{p.ID, p.Name, p.Description, p.Material, p.PricePerKilo}
		if err := f.SetSheetRow(ProductsSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever linha da planilha")
		}
	}

	setColWidths(f, ProductsSheet, []float64{10, 30, 40, 16, 12})

	return toBytes(f)
}

// PurchasesWorkbook monta o relatório de compras: uma aba com os totais de
// cada compra e outra com as linhas
func PurchasesWorkbook(purchases []domain.Purchase) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PurchasesSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(ItemsSheet); err != nil {
		return nil, err
	}
	if err := writeHeader(f, PurchasesSheet, purchaseHeaders); err != nil {
		return nil, err
	}
	if err := writeHeader(f, ItemsSheet, itemHeaders); err != nil {
		return nil, err
	}

	totalWeight, totalValue := decimal.Zero, decimal.Zero
	totalPaid, totalProfit := decimal.Zero, decimal.Zero
	itemRow := 2

	for i, p := range purchases {
		createdAt := ""
		if p.CreatedAt != nil {
			createdAt = p.CreatedAt.Local().Format("02/01/2006 15:04")
		}

		values := []interface{}{p.ID, createdAt, len(p.Items), p.TotalWeight, p.TotalValue, p.TotalPaid, p.TotalProfit}
		if err := f.SetSheetRow(PurchasesSheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever linha da planilha")
		}

		for _, item := range p.Items {
			itemValues := []interface{}{p.ID, item.ProductName, item.Material, item.PricePerKilo, item.Weight, item.ItemValue}
			if err := f.SetSheetRow(ItemsSheet, fmt.Sprintf("A%d", itemRow), &itemValues); err != nil {
				return nil, errors.Wrap(err, "erro ao escrever linha da planilha")
			}
			itemRow++
		}

		totalWeight = totalWeight.Add(decimal.NewFromFloat(domain.Finite(p.TotalWeight)))
		totalValue = totalValue.Add(decimal.NewFromFloat(domain.Finite(p.TotalValue)))
		totalPaid = totalPaid.Add(decimal.NewFromFloat(domain.Finite(p.TotalPaid)))
		totalProfit = totalProfit.Add(decimal.NewFromFloat(domain.Finite(p.TotalProfit)))
	}

	summaryRow := len(purchases) + 2
	summary := []interface{}{
		"Total", "", len(purchases),
		utils.RoundWithTwoDecimalPlace(totalWeight.InexactFloat64()),
		utils.RoundWithTwoDecimalPlace(totalValue.InexactFloat64()),
		utils.RoundWithTwoDecimalPlace(totalPaid.InexactFloat64()),
		utils.RoundWithTwoDecimalPlace(totalProfit.InexactFloat64()),
	}
	if err := f.SetSheetRow(PurchasesSheet, fmt.Sprintf("A%d", summaryRow), &summary); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever resumo da planilha")
	}

	summaryStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(PurchasesSheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	setColWidths(f, PurchasesSheet, []float64{12, 18, 8, 16, 14, 14, 14})
	setColWidths(f, ItemsSheet, []float64{12, 30, 16, 12, 12, 14})

	return toBytes(f)
}

// ParseProducts lê a primeira aba da planilha. As colunas são localizadas pelo
// cabeçalho; linhas sem nome contam como falha.
func ParseProducts(r io.Reader) (*ImportPreview, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "arquivo não é uma planilha xlsx válida")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a planilha")
	}

	preview := &ImportPreview{Products: []domain.Product{}}
	if len(rows) < 2 {
		return preview, nil
	}

	columns := map[string]int{}
	for i, header := range rows[0] {
		if field, ok := headerAliases[strings.ToLower(strings.TrimSpace(header))]; ok {
			if _, seen := columns[field]; !seen {
				columns[field] = i
			}
		}
	}

	if _, ok := columns["nome"]; !ok {
		return nil, errors.New("planilha sem a coluna Nome")
	}

	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		preview.Rows++

		product := domain.Product{
			ID:           cell(row, columns, "id"),
			Name:         cell(row, columns, "nome"),
			Description:  cell(row, columns, "descricao"),
			Material:     cell(row, columns, "material"),
			PricePerKilo: parsePrice(cell(row, columns, "valorKilo")),
		}
		if product.Name == "" {
			preview.Failed++
			continue
		}

		preview.Products = append(preview.Products, product)
	}

	return preview, nil
}

// FileName gera o nome do arquivo exportado, ex. itens_reciclaveis_2024-05-01.xlsx
func FileName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, now.Format(time.DateOnly))
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})

	for i, h := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		cell := col + "1"
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return errors.Wrap(err, "erro ao escrever cabeçalho da planilha")
		}
		_ = f.SetCellStyle(sheet, cell, cell, style)
	}

	return nil
}

func setColWidths(f *excelize.File, sheet string, widths []float64) {
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, col, col, w)
	}
}

func toBytes(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "erro ao gerar a planilha")
	}
	return buf.Bytes(), nil
}

func cell(row []string, columns map[string]int, field string) string {
	i, ok := columns[field]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parsePrice(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	return domain.NonNegative(f)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
