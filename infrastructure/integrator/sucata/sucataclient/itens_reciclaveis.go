package sucataclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vfg2006/sucatabook/internal/domain"
)

const itemsEndpoint = "/api/itens_reciclaveis"

func (c *SucataClient) ListItems(ctx context.Context) Result[[]domain.Product] {
	return decodeJSON[[]domain.Product](c.doJSON(ctx, http.MethodGet, itemsEndpoint, nil))
}

func (c *SucataClient) CreateItem(ctx context.Context, product domain.Product) Result[*domain.Product] {
	return decodeJSON[*domain.Product](c.doJSON(ctx, http.MethodPost, itemsEndpoint, product))
}

func (c *SucataClient) UpdateItem(ctx context.Context, id string, product domain.Product) Result[*domain.Product] {
	return decodeJSON[*domain.Product](c.doJSON(ctx, http.MethodPut, itemsEndpoint+"/"+url.PathEscape(id), product))
}

// DeleteItem ignora o corpo da resposta; só o status importa
func (c *SucataClient) DeleteItem(ctx context.Context, id string) Result[struct{}] {
	raw := c.doJSON(ctx, http.MethodDelete, itemsEndpoint+"/"+url.PathEscape(id), nil)
	if !raw.OK() {
		return failed[struct{}](raw.Failure)
	}
	return success(struct{}{})
}
