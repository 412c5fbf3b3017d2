package sucataclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/sucatabook/internal/config"
	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/pkg/log"
	"github.com/vfg2006/sucatabook/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	ListItems(ctx context.Context) Result[[]domain.Product]
	CreateItem(ctx context.Context, product domain.Product) Result[*domain.Product]
	UpdateItem(ctx context.Context, id string, product domain.Product) Result[*domain.Product]
	DeleteItem(ctx context.Context, id string) Result[struct{}]
	ListPurchases(ctx context.Context, period domain.Period) Result[[]domain.Purchase]
	CreatePurchase(ctx context.Context, purchase domain.Purchase) Result[*domain.Purchase]
	FinancialSummary(ctx context.Context, period domain.Period) Result[*domain.FinancialSummary]
	Login(ctx context.Context, req LoginRequest) Result[*LoginResponse]
	ExportItems(ctx context.Context) Result[[]byte]
	ImportItems(ctx context.Context, filename string, file io.Reader) Result[string]
}

// CredentialProvider é implementado pela sessão: fornece o token e é avisado
// quando o backend rejeita a credencial
type CredentialProvider interface {
	Token() string
	Invalidate()
}

type SucataClient struct {
	baseURL    string
	httpClient *http.Client

	mu          sync.RWMutex
	credentials CredentialProvider
}

// NewClient cria o cliente do backend do ferro-velho. Sem API_TIMEOUT as
// chamadas não têm prazo.
func NewClient(cfg *config.Config) *SucataClient {
	return &SucataClient{
		baseURL: strings.TrimRight(cfg.API.URL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
	}
}

// SetCredentials liga o cliente à sessão depois que ambos foram criados
func (c *SucataClient) SetCredentials(provider CredentialProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.credentials = provider
}

func (c *SucataClient) provider() CredentialProvider {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.credentials
}

func (c *SucataClient) endpointURL(endpoint string) string {
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// doJSON envia body como JSON (exceto em GET) e devolve o corpo bruto da resposta
func (c *SucataClient) doJSON(ctx context.Context, method, endpoint string, body any) Result[[]byte] {
	var reader io.Reader
	if body != nil && method != http.MethodGet {
		payload, err := json.Marshal(body)
		if err != nil {
			return failed[[]byte](&Failure{Kind: FailureDecode, Err: errors.Wrap(err, "erro ao serializar a requisição")})
		}
		reader = bytes.NewReader(payload)
	}

	return c.send(ctx, method, endpoint, reader, "application/json")
}

func (c *SucataClient) send(ctx context.Context, method, endpoint string, body io.Reader, contentType string) Result[[]byte] {
	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL(endpoint), body)
	if err != nil {
		return failed[[]byte](&Failure{Kind: FailureNetwork, Err: errors.Wrap(err, "erro ao criar a requisição")})
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	credentials := c.provider()
	if credentials != nil {
		if token := credentials.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	requestID, err := utils.GenerateID()
	if err == nil {
		req.Header.Set("X-Request-ID", requestID)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"method":     method,
		"endpoint":   endpoint,
		"request_id": requestID,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Warn("Falha de rede na chamada ao backend")
		return failed[[]byte](&Failure{Kind: FailureNetwork, Err: errors.Wrap(err, "erro ao executar a requisição")})
	}
	defer resp.Body.Close()

	logger = logger.WithFields(log.Fields{
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		logger.Warn("Token inválido ou expirado. Limpando sessão")
		if credentials != nil {
			credentials.Invalidate()
		}
		return failed[[]byte](&Failure{Kind: FailureUnauthorized, StatusCode: resp.StatusCode})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("Backend respondeu com erro")
		return failed[[]byte](&Failure{Kind: FailureHTTP, StatusCode: resp.StatusCode})
	}

	if resp.StatusCode == http.StatusNoContent {
		logger.Debug("Chamada ao backend concluída sem conteúdo")
		return success[[]byte](nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return failed[[]byte](&Failure{Kind: FailureNetwork, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "erro ao ler a resposta")})
	}

	logger.Debug("Chamada ao backend concluída")

	if len(bytes.TrimSpace(data)) == 0 {
		return success[[]byte](nil)
	}

	return success(data)
}

// decodeJSON interpreta o corpo bruto como T. Corpo nulo devolve o valor zero de T.
func decodeJSON[T any](raw Result[[]byte]) Result[T] {
	if !raw.OK() {
		return failed[T](raw.Failure)
	}

	var out T
	if raw.Data == nil {
		return success(out)
	}

	if err := json.Unmarshal(raw.Data, &out); err != nil {
		return failed[T](&Failure{Kind: FailureDecode, Err: errors.Wrap(err, "erro ao decodificar a resposta")})
	}

	return success(out)
}
