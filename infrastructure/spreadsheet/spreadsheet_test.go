package spreadsheet

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sucatabook/internal/domain"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestProductsWorkbook_RoundTrip(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "Fio de cobre", Description: "limpo", Material: "Cobre", PricePerKilo: 32.5},
		{ID: "2", Name: "Latinha", Material: "Alumínio", PricePerKilo: 6},
	}

	data, err := ProductsWorkbook(products)
	require.NoError(t, err)

	preview, err := ParseProducts(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 2, preview.Rows)
	assert.Zero(t, preview.Failed)
	assert.Equal(t, products, preview.Products)
}

func TestProductsWorkbook_Empty(t *testing.T) {
	data, err := ProductsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, ProductsSheet, f.GetSheetName(0))
	rows, err := f.GetRows(ProductsSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{productHeaders}, rows)
}

func TestParseProducts(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]interface{}
		expected *ImportPreview
		wantErr  bool
	}{
		{
			name: "Cabeçalho com aliases e preço com vírgula",
			rows: [][]interface{}{
				{"Material", "NAME", "preco"},
				{"Ferro", "Chapa", "1,50"},
				{"Cobre", "", "30"},
				{},
				{"Latão", "Torneira", "-2"},
			},
			expected: &ImportPreview{
				Products: []domain.Product{
					{Name: "Chapa", Material: "Ferro", PricePerKilo: 1.5},
					{Name: "Torneira", Material: "Latão"},
				},
				Rows:   3,
				Failed: 1,
			},
		},
		{
			name:     "Só cabeçalho",
			rows:     [][]interface{}{{"Nome", "Material"}},
			expected: &ImportPreview{Products: []domain.Product{}},
		},
		{
			name: "Sem coluna de nome",
			rows: [][]interface{}{
				{"Material", "Valor/kg"},
				{"Ferro", 1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preview, err := ParseProducts(bytes.NewReader(buildWorkbook(t, tt.rows)))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, preview)
		})
	}
}

func TestParseProducts_NotXLSX(t *testing.T) {
	_, err := ParseProducts(bytes.NewReader([]byte("nome;material")))
	assert.Error(t, err)
}

func TestPurchasesWorkbook(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	purchases := []domain.Purchase{
		{
			ID: "1",
			Items: []domain.PurchaseItem{
				{ProductID: "1", ProductName: "Fio", Material: "Cobre", PricePerKilo: 10, Weight: 10, ItemValue: 100},
			},
			TotalWeight: 10, TotalValue: 100, TotalPaid: 80, TotalProfit: 20,
			CreatedAt: &createdAt,
		},
		{
			ID: "2",
			Items: []domain.PurchaseItem{
				{ProductID: "2", ProductName: "Lata", Material: "Alumínio", PricePerKilo: 5, Weight: 20, ItemValue: 100},
				{ProductID: "1", ProductName: "Fio", Material: "Cobre", PricePerKilo: 10, Weight: 0, ItemValue: 0},
			},
			TotalWeight: 20, TotalValue: 100, TotalPaid: 70, TotalProfit: 30,
		},
	}

	data, err := PurchasesWorkbook(purchases)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(PurchasesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"1", "01/05/2024 12:00", "1", "10", "100", "80", "20"}, rows[1])
	assert.Equal(t, []string{"Total", "", "2", "30", "200", "150", "50"}, rows[3])

	itemRows, err := f.GetRows(ItemsSheet)
	require.NoError(t, err)
	assert.Len(t, itemRows, 4)
	assert.Equal(t, "Lata", itemRows[2][1])
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "compras_2024-05-01.xlsx", FileName("compras", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
}
