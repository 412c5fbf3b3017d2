package cataloging

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/vfg2006/sucatabook/infrastructure/integrator/sucata/sucataclient"
	"github.com/vfg2006/sucatabook/infrastructure/localstore"
	"github.com/vfg2006/sucatabook/infrastructure/spreadsheet"
	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
	"github.com/vfg2006/sucatabook/pkg/log"
	"github.com/vfg2006/sucatabook/pkg/utils"
)

const exportPrefix = "itens_reciclaveis"

func init() {
	utils.RegisterValidation("material", domain.IsValidMaterial)
}

// ProductList é a lista exibida na tela; Offline indica que veio do cache local
type ProductList struct {
	Products []domain.Product `json:"products"`
	Offline  bool             `json:"offline"`
}

type SavedProduct struct {
	Product domain.Product `json:"product"`
	Offline bool           `json:"offline"`
}

type Export struct {
	Content  []byte
	FileName string
	Offline  bool
}

type ImportResult struct {
	Message string                     `json:"message"`
	Preview *spreadsheet.ImportPreview `json:"preview"`
}

//go:generate mockgen -source=service.go -destination=mocks/mock_catalog.go -package=mocks

type CatalogService interface {
	List(ctx context.Context) ProductList
	Cached(ctx context.Context) []domain.Product
	Create(ctx context.Context, req domain.CreateProductRequest) (*SavedProduct, error)
	Update(ctx context.Context, id string, req domain.CreateProductRequest) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context) (*Export, error)
	Import(ctx context.Context, filename string, file io.Reader) (*ImportResult, error)
}

type Service struct {
	client sucataclient.Client
	cache  *localstore.Cache
	now    func() time.Time
}

func NewService(client sucataclient.Client, cache *localstore.Cache) CatalogService {
	return &Service{
		client: client,
		cache:  cache,
		now:    time.Now,
	}
}

// List busca o catálogo no backend e sobrescreve o cache. Qualquer falha
// remota devolve a última lista salva localmente.
func (s *Service) List(ctx context.Context) ProductList {
	result := s.client.ListItems(ctx)
	if !result.OK() {
		log.ForContext(ctx).WithError(result.Failure).Warn("Erro ao carregar itens recicláveis, usando cache local")
		return ProductList{Products: s.cache.Products(ctx), Offline: true}
	}

	products := result.Data
	if products == nil {
		products = []domain.Product{}
	}
	s.cache.SaveProducts(ctx, products)

	return ProductList{Products: products}
}

func (s *Service) Cached(ctx context.Context) []domain.Product {
	return s.cache.Products(ctx)
}

// Create valida o item antes de chamar o backend. Se o backend falhar o item
// é registrado só no cache, com ID gerado a partir do horário.
func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (*SavedProduct, error) {
	req = normalizeRequest(req)
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx)
	product := req.ToProduct()

	result := s.client.CreateItem(ctx, product)
	if !result.OK() {
		now := s.now()
		product.ID = utils.LocalID(now)
		product.CreatedAt = &now

		s.cache.SaveProducts(ctx, append(s.cache.Products(ctx), product))
		logger.WithError(result.Failure).WithField("product_id", product.ID).Warn("Erro ao cadastrar item no backend, salvo localmente")

		return &SavedProduct{Product: product, Offline: true}, nil
	}

	if result.Data != nil {
		product = *result.Data
	}
	s.cache.SaveProducts(ctx, append(s.cache.Products(ctx), product))
	logger.WithField("product_id", product.ID).Info("Item reciclável cadastrado")

	return &SavedProduct{Product: product}, nil
}

// Update só acontece no backend; o cache é reescrito depois da confirmação
func (s *Service) Update(ctx context.Context, id string, req domain.CreateProductRequest) (*domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, NewCatalogError(ErrProductIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	req = normalizeRequest(req)
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product := req.ToProduct()
	product.ID = id

	result := s.client.UpdateItem(ctx, id, product)
	if !result.OK() {
		log.ForContext(ctx).WithError(result.Failure).WithField("product_id", id).Error("Erro ao atualizar item")
		return nil, remoteError(result.Failure, id, "Falha ao atualizar item no servidor")
	}

	if result.Data != nil {
		product = *result.Data
		if product.ID == "" {
			product.ID = id
		}
	}

	cached := s.cache.Products(ctx)
	replaced := false
	for i := range cached {
		if cached[i].ID == id {
			if product.CreatedAt == nil {
				product.CreatedAt = cached[i].CreatedAt
			}
			cached[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		cached = append(cached, product)
	}
	s.cache.SaveProducts(ctx, cached)

	return &product, nil
}

// Delete remove no backend e, confirmado, tira o item do cache
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return NewCatalogError(ErrProductIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	result := s.client.DeleteItem(ctx, id)
	if !result.OK() {
		log.ForContext(ctx).WithError(result.Failure).WithField("product_id", id).Error("Erro ao excluir item no backend")
		return remoteError(result.Failure, id, "Erro ao excluir no servidor.")
	}

	cached := s.cache.Products(ctx)
	kept := make([]domain.Product, 0, len(cached))
	for _, p := range cached {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.cache.SaveProducts(ctx, kept)

	return nil
}

// Export baixa a planilha gerada pelo backend. Se ele não responder, a planilha
// é montada localmente a partir do cache.
func (s *Service) Export(ctx context.Context) (*Export, error) {
	fileName := spreadsheet.FileName(exportPrefix, s.now())

	result := s.client.ExportItems(ctx)
	if result.OK() && len(result.Data) > 0 {
		return &Export{Content: result.Data, FileName: fileName}, nil
	}

	log.ForContext(ctx).WithError(result.Err()).Warn("Exportação remota indisponível, gerando planilha do cache local")

	content, err := spreadsheet.ProductsWorkbook(s.cache.Products(ctx))
	if err != nil {
		return nil, NewCatalogError(ErrBuildSpreadsheet, apiErrors.ErrInternalServer, err.Error())
	}

	return &Export{Content: content, FileName: fileName, Offline: true}, nil
}

// Import confere a planilha localmente e envia o mesmo arquivo ao backend,
// que faz o cadastro. Não existe importação offline.
func (s *Service) Import(ctx context.Context, filename string, file io.Reader) (*ImportResult, error) {
	content, err := io.ReadAll(file)
	if err != nil || len(content) == 0 {
		return nil, NewCatalogError(ErrInvalidSpreadsheet, apiErrors.ErrInvalidFormat, "Arquivo vazio ou ilegível")
	}

	preview, err := spreadsheet.ParseProducts(bytes.NewReader(content))
	if err != nil {
		return nil, NewCatalogError(ErrInvalidSpreadsheet, apiErrors.ErrInvalidFormat, err.Error())
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"rows":   preview.Rows,
		"failed": preview.Failed,
	})

	result := s.client.ImportItems(ctx, filename, bytes.NewReader(content))
	if !result.OK() {
		logger.WithError(result.Failure).Error("Erro ao importar planilha")
		return nil, remoteError(result.Failure, "", "Falha ao importar planilha no servidor")
	}

	logger.Info("Planilha importada")

	return &ImportResult{Message: result.Data, Preview: preview}, nil
}

func normalizeRequest(req domain.CreateProductRequest) domain.CreateProductRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.Material = strings.TrimSpace(req.Material)
	return req
}

func validateProduct(req domain.CreateProductRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		catalogErr := NewCatalogError(ErrInvalidProduct, apiErrors.ErrInvalidProduct, "Preencha todos os campos obrigatórios!")
		return &ValidationFailure{CatalogError: catalogErr, Fields: utils.GetValidationErrors(err)}
	}
	return nil
}

// ValidationFailure carrega os campos rejeitados para a resposta da API
type ValidationFailure struct {
	*CatalogError
	Fields []utils.ValidationError
}

func (e *ValidationFailure) Unwrap() error {
	return e.CatalogError
}
