package sucataclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/vfg2006/sucatabook/internal/domain"
)

const purchasesEndpoint = "/api/compras"

// ListPurchases lista as compras; com período informado envia startDate/endDate (yyyy-mm-dd)
func (c *SucataClient) ListPurchases(ctx context.Context, period domain.Period) Result[[]domain.Purchase] {
	endpoint := purchasesEndpoint
	if query := periodQuery(period); query != "" {
		endpoint += "?" + query
	}

	return decodeJSON[[]domain.Purchase](c.doJSON(ctx, http.MethodGet, endpoint, nil))
}

func (c *SucataClient) CreatePurchase(ctx context.Context, purchase domain.Purchase) Result[*domain.Purchase] {
	return decodeJSON[*domain.Purchase](c.doJSON(ctx, http.MethodPost, purchasesEndpoint, purchase))
}

func periodQuery(period domain.Period) string {
	params := url.Values{}
	if period.StartDate != nil {
		params.Set("startDate", period.StartDate.Format(time.DateOnly))
	}
	if period.EndDate != nil {
		params.Set("endDate", period.EndDate.Format(time.DateOnly))
	}
	return params.Encode()
}
