package sucataclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/sucatabook/internal/domain"
)

// FinancialSummary consulta o resumo calculado pelo backend. O endpoint sempre
// recebe a query string, mesmo vazia.
func (c *SucataClient) FinancialSummary(ctx context.Context, period domain.Period) Result[*domain.FinancialSummary] {
	endpoint := "/api/financial/summary?" + periodQuery(period)
	return decodeJSON[*domain.FinancialSummary](c.doJSON(ctx, http.MethodGet, endpoint, nil))
}
