package purchasing

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/sucatabook/infrastructure/integrator/sucata/sucataclient"
	"github.com/vfg2006/sucatabook/infrastructure/localstore"
	"github.com/vfg2006/sucatabook/infrastructure/spreadsheet"
	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/internal/financial"
	"github.com/vfg2006/sucatabook/internal/valuation"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
	"github.com/vfg2006/sucatabook/pkg/log"
	"github.com/vfg2006/sucatabook/pkg/utils"
)

const reportPrefix = "relatorio_compras"

type PurchaseList struct {
	Purchases []domain.Purchase `json:"purchases"`
	Offline   bool              `json:"offline"`
}

type RegisteredPurchase struct {
	Purchase domain.Purchase `json:"purchase"`
	Offline  bool            `json:"offline"`
}

// Quote é a prévia da compra em edição, recalculada a cada alteração da tela.
// Totals cobre todas as linhas do formulário; Recorded cobre só as linhas que
// seriam gravadas e bate com os totais da compra registrada.
type Quote struct {
	Items    []domain.PurchaseItem `json:"items"`
	Totals   valuation.Totals      `json:"totals"`
	Recorded valuation.Totals      `json:"recordedTotals"`
	Valid    bool                  `json:"valid"`
	Message  string                `json:"message,omitempty"`
}

type Report struct {
	Content  []byte
	FileName string
	Offline  bool
}

//go:generate mockgen -source=service.go -destination=mocks/mock_purchase.go -package=mocks

type PurchaseService interface {
	List(ctx context.Context, period domain.Period) PurchaseList
	Cached(ctx context.Context) []domain.Purchase
	Quote(req domain.CreatePurchaseRequest, catalog []domain.Product) Quote
	Register(ctx context.Context, req domain.CreatePurchaseRequest, catalog []domain.Product) (*RegisteredPurchase, error)
	ExportReport(ctx context.Context, period domain.Period) (*Report, error)
}

type Service struct {
	client sucataclient.Client
	cache  *localstore.Cache
	now    func() time.Time

	submitMutex sync.Mutex
	submitting  bool
}

func NewService(client sucataclient.Client, cache *localstore.Cache) PurchaseService {
	return &Service{
		client: client,
		cache:  cache,
		now:    time.Now,
	}
}

// List busca as compras do período no backend. Só a lista completa (sem
// período) sobrescreve o cache; na falha o cache é filtrado localmente.
func (s *Service) List(ctx context.Context, period domain.Period) PurchaseList {
	result := s.client.ListPurchases(ctx, period)
	if !result.OK() {
		log.ForContext(ctx).WithError(result.Failure).Warn("Erro ao buscar compras, usando cache local")
		return PurchaseList{
			Purchases: financial.FilterByPeriod(s.cache.Purchases(ctx), period),
			Offline:   true,
		}
	}

	purchases := result.Data
	if purchases == nil {
		purchases = []domain.Purchase{}
	}
	if period.IsZero() {
		s.cache.SavePurchases(ctx, purchases)
	}

	return PurchaseList{Purchases: purchases}
}

func (s *Service) Cached(ctx context.Context) []domain.Purchase {
	return s.cache.Purchases(ctx)
}

// Quote monta o rascunho a partir da tela e devolve linhas e totais sem registrar nada
func (s *Service) Quote(req domain.CreatePurchaseRequest, catalog []domain.Product) Quote {
	draft := valuation.DraftFromRequest(req, catalog)

	quote := Quote{
		Items:  draft.Items(),
		Totals: draft.Totals(),
		Valid:  true,
	}
	items, err := draft.Validate()
	if err != nil {
		quote.Valid = false
		quote.Message = err.Error()
		return quote
	}

	quote.Recorded = valuation.ComputeTotals(items, draft.TotalPaid())

	return quote
}

// Register valida a compra antes de qualquer chamada remota. Falha do backend
// gera um registro local com ID baseado no horário. Um segundo envio enquanto
// o primeiro não terminou é recusado.
func (s *Service) Register(ctx context.Context, req domain.CreatePurchaseRequest, catalog []domain.Product) (*RegisteredPurchase, error) {
	purchase, err := valuation.DraftFromRequest(req, catalog).Build(s.now())
	if err != nil {
		return nil, NewPurchaseError(err, apiErrors.ErrInvalidPurchase, "")
	}

	s.submitMutex.Lock()
	if s.submitting {
		s.submitMutex.Unlock()
		return nil, NewPurchaseError(ErrSubmissionInProgress, apiErrors.ErrConflict, "Aguarde o registro anterior terminar")
	}
	s.submitting = true
	s.submitMutex.Unlock()

	defer func() {
		s.submitMutex.Lock()
		s.submitting = false
		s.submitMutex.Unlock()
	}()

	logger := log.ForContext(ctx)

	result := s.client.CreatePurchase(ctx, purchase)
	if !result.OK() {
		purchase.ID = utils.LocalID(*purchase.CreatedAt)
		s.cache.SavePurchases(ctx, append(s.cache.Purchases(ctx), purchase))
		logger.WithError(result.Failure).WithField("purchase_id", purchase.ID).Warn("Erro ao registrar compra no backend, salva localmente")

		return &RegisteredPurchase{Purchase: purchase, Offline: true}, nil
	}

	// Resposta sem itens só confirma o ID; o resto vem da compra enviada
	saved := purchase
	if result.Data != nil {
		if len(result.Data.Items) > 0 {
			saved = *result.Data
			if saved.CreatedAt == nil {
				saved.CreatedAt = purchase.CreatedAt
			}
		} else {
			saved.ID = result.Data.ID
		}
	}

	s.cache.SavePurchases(ctx, append(s.cache.Purchases(ctx), saved))
	logger.WithField("purchase_id", saved.ID).Info("Compra registrada")

	return &RegisteredPurchase{Purchase: saved}, nil
}

// ExportReport gera localmente a planilha das compras do período
func (s *Service) ExportReport(ctx context.Context, period domain.Period) (*Report, error) {
	list := s.List(ctx, period)

	content, err := spreadsheet.PurchasesWorkbook(list.Purchases)
	if err != nil {
		return nil, NewPurchaseError(ErrBuildReport, apiErrors.ErrInternalServer, err.Error())
	}

	return &Report{
		Content:  content,
		FileName: spreadsheet.FileName(reportPrefix, s.now()),
		Offline:  list.Offline,
	}, nil
}
