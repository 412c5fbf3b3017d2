package sucataclient

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"
)

const (
	exportEndpoint = itemsEndpoint + "/exportar"
	importEndpoint = itemsEndpoint + "/importar"
)

// ExportItems baixa a planilha de itens recicláveis gerada pelo backend
func (c *SucataClient) ExportItems(ctx context.Context) Result[[]byte] {
	return c.send(ctx, http.MethodGet, exportEndpoint, nil, "")
}

// ImportItems envia a planilha no campo multipart "file" e devolve a mensagem
// em texto do backend
func (c *SucataClient) ImportItems(ctx context.Context, filename string, file io.Reader) Result[string] {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return failed[string](&Failure{Kind: FailureNetwork, Err: errors.Wrap(err, "erro ao montar o formulário")})
	}
	if _, err := io.Copy(part, file); err != nil {
		return failed[string](&Failure{Kind: FailureNetwork, Err: errors.Wrap(err, "erro ao ler a planilha")})
	}
	if err := writer.Close(); err != nil {
		return failed[string](&Failure{Kind: FailureNetwork, Err: errors.Wrap(err, "erro ao montar o formulário")})
	}

	raw := c.send(ctx, http.MethodPost, importEndpoint, &body, writer.FormDataContentType())
	if !raw.OK() {
		return failed[string](raw.Failure)
	}

	return success(string(raw.Data))
}
