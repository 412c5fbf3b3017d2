// Package app concentra o estado da aplicação: catálogo e histórico de compras
// em memória, sessão e as mutações permitidas sobre eles
package app

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/vfg2006/sucatabook/infrastructure/integrator/sucata/sucataclient"
	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/internal/financial"
	"github.com/vfg2006/sucatabook/internal/usecases/authenticating"
	"github.com/vfg2006/sucatabook/internal/usecases/cataloging"
	"github.com/vfg2006/sucatabook/internal/usecases/purchasing"
	"github.com/vfg2006/sucatabook/pkg/log"
)

const (
	SourceLocal  = "local"
	SourceRemote = "remote"
)

// FinancialReport é o resumo exibido na tela financeira com os indicadores derivados
type FinancialReport struct {
	domain.FinancialSummary
	Metrics financial.Metrics `json:"metrics"`
	Display financial.Display `json:"display"`
	Source  string            `json:"source"`
	Offline bool              `json:"offline"`
}

//go:generate mockgen -source=state.go -destination=mocks/mock_state.go -package=mocks

type AppState interface {
	Load(ctx context.Context)

	Login(ctx context.Context, email, senha string) (*domain.User, error)
	Logout(ctx context.Context)
	CurrentUser() *domain.User
	UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (*domain.User, error)

	Products() []domain.Product
	RefreshProducts(ctx context.Context) cataloging.ProductList
	AddProduct(ctx context.Context, req domain.CreateProductRequest) (*cataloging.SavedProduct, error)
	UpdateProduct(ctx context.Context, id string, req domain.CreateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ExportProducts(ctx context.Context) (*cataloging.Export, error)
	ImportProducts(ctx context.Context, filename string, file io.Reader) (*cataloging.ImportResult, error)

	Purchases() []domain.Purchase
	RefreshPurchases(ctx context.Context) purchasing.PurchaseList
	PurchasesForPeriod(ctx context.Context, period domain.Period) purchasing.PurchaseList
	QuotePurchase(req domain.CreatePurchaseRequest) purchasing.Quote
	AddPurchase(ctx context.Context, req domain.CreatePurchaseRequest) (*purchasing.RegisteredPurchase, error)
	ExportPurchases(ctx context.Context, period domain.Period) (*purchasing.Report, error)

	FinancialSummary(period domain.Period) FinancialReport
	RemoteFinancialSummary(ctx context.Context, period domain.Period) FinancialReport
}

// State é o único dono das listas em memória. Leituras devolvem cópias.
type State struct {
	session   authenticating.Authenticator
	catalog   cataloging.CatalogService
	purchases purchasing.PurchaseService
	client    sucataclient.Client

	mu           sync.RWMutex
	products     []domain.Product
	purchaseList []domain.Purchase
}

func NewState(
	session authenticating.Authenticator,
	catalog cataloging.CatalogService,
	purchases purchasing.PurchaseService,
	client sucataclient.Client,
) *State {
	return &State{
		session:      session,
		catalog:      catalog,
		purchases:    purchases,
		client:       client,
		products:     []domain.Product{},
		purchaseList: []domain.Purchase{},
	}
}

// Load restaura a sessão e preenche as listas a partir do cache local
func (s *State) Load(ctx context.Context) {
	s.session.Restore(ctx)

	products := s.catalog.Cached(ctx)
	purchases := s.purchases.Cached(ctx)

	s.mu.Lock()
	s.products = products
	s.purchaseList = purchases
	s.mu.Unlock()

	log.ForContext(ctx).Infof("Estado carregado do cache: %d itens, %d compras", len(products), len(purchases))
}

// Login autentica e, com sucesso, recarrega catálogo e compras
func (s *State) Login(ctx context.Context, email, senha string) (*domain.User, error) {
	user, err := s.session.Login(ctx, email, senha)
	if err != nil {
		return nil, err
	}

	s.RefreshProducts(ctx)
	s.RefreshPurchases(ctx)

	return user, nil
}

func (s *State) Logout(ctx context.Context) {
	s.session.Logout(ctx)
}

func (s *State) CurrentUser() *domain.User {
	return s.session.CurrentUser()
}

func (s *State) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (*domain.User, error) {
	return s.session.UpdateProfile(ctx, req)
}

func (s *State) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *State) RefreshProducts(ctx context.Context) cataloging.ProductList {
	list := s.catalog.List(ctx)

	s.mu.Lock()
	s.products = list.Products
	s.mu.Unlock()

	return list
}

func (s *State) AddProduct(ctx context.Context, req domain.CreateProductRequest) (*cataloging.SavedProduct, error) {
	saved, err := s.catalog.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.products = append(s.products, saved.Product)
	s.mu.Unlock()

	return saved, nil
}

func (s *State) UpdateProduct(ctx context.Context, id string, req domain.CreateProductRequest) (*domain.Product, error) {
	product, err := s.catalog.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = *product
			break
		}
	}
	s.mu.Unlock()

	return product, nil
}

func (s *State) DeleteProduct(ctx context.Context, id string) error {
	if err := s.catalog.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.mu.Unlock()

	return nil
}

func (s *State) ExportProducts(ctx context.Context) (*cataloging.Export, error) {
	return s.catalog.Export(ctx)
}

// ImportProducts envia a planilha e recarrega o catálogo com o que o backend cadastrou
func (s *State) ImportProducts(ctx context.Context, filename string, file io.Reader) (*cataloging.ImportResult, error) {
	result, err := s.catalog.Import(ctx, filename, file)
	if err != nil {
		return nil, err
	}

	s.RefreshProducts(ctx)

	return result, nil
}

// Purchases devolve o histórico em memória, mais recentes primeiro
func (s *State) Purchases() []domain.Purchase {
	s.mu.RLock()
	out := make([]domain.Purchase, len(s.purchaseList))
	copy(out, s.purchaseList)
	s.mu.RUnlock()

	sortNewestFirst(out)
	return out
}

func (s *State) RefreshPurchases(ctx context.Context) purchasing.PurchaseList {
	list := s.purchases.List(ctx, domain.Period{})

	s.mu.Lock()
	s.purchaseList = list.Purchases
	s.mu.Unlock()

	list.Purchases = s.Purchases()
	return list
}

// PurchasesForPeriod consulta o backend pelo período sem alterar o histórico em memória
func (s *State) PurchasesForPeriod(ctx context.Context, period domain.Period) purchasing.PurchaseList {
	if period.IsZero() {
		return s.RefreshPurchases(ctx)
	}

	list := s.purchases.List(ctx, period)
	sortNewestFirst(list.Purchases)
	return list
}

func (s *State) QuotePurchase(req domain.CreatePurchaseRequest) purchasing.Quote {
	return s.purchases.Quote(req, s.Products())
}

// AddPurchase valora as linhas com o catálogo carregado no momento do registro
func (s *State) AddPurchase(ctx context.Context, req domain.CreatePurchaseRequest) (*purchasing.RegisteredPurchase, error) {
	registered, err := s.purchases.Register(ctx, req, s.Products())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.purchaseList = append(s.purchaseList, registered.Purchase)
	s.mu.Unlock()

	return registered, nil
}

func (s *State) ExportPurchases(ctx context.Context, period domain.Period) (*purchasing.Report, error) {
	return s.purchases.ExportReport(ctx, period)
}

// FinancialSummary agrega o histórico em memória filtrado pelo período
func (s *State) FinancialSummary(period domain.Period) FinancialReport {
	s.mu.RLock()
	purchases := financial.FilterByPeriod(s.purchaseList, period)
	summary := financial.Summarize(purchases)
	s.mu.RUnlock()

	return newReport(summary, SourceLocal)
}

// RemoteFinancialSummary usa o resumo calculado pelo backend; sem resposta,
// calcula localmente e marca o resultado como offline
func (s *State) RemoteFinancialSummary(ctx context.Context, period domain.Period) FinancialReport {
	result := s.client.FinancialSummary(ctx, period)
	if result.OK() && result.Data != nil {
		return newReport(*result.Data, SourceRemote)
	}

	log.ForContext(ctx).WithError(result.Err()).Warn("Resumo financeiro remoto indisponível, calculando localmente")

	report := s.FinancialSummary(period)
	report.Offline = true
	return report
}

func newReport(summary domain.FinancialSummary, source string) FinancialReport {
	metrics := financial.Derive(summary)
	return FinancialReport{
		FinancialSummary: summary,
		Metrics:          metrics,
		Display:          financial.Format(summary, metrics),
		Source:           source,
	}
}

func sortNewestFirst(purchases []domain.Purchase) {
	sort.SliceStable(purchases, func(i, j int) bool {
		a, b := purchases[i].CreatedAt, purchases[j].CreatedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}
