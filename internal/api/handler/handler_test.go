package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sucatabook/infrastructure/spreadsheet"
	"github.com/vfg2006/sucatabook/internal/api/handler/router"
	"github.com/vfg2006/sucatabook/internal/app"
	"github.com/vfg2006/sucatabook/internal/app/mocks"
	"github.com/vfg2006/sucatabook/internal/config"
	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/internal/scheduler"
	"github.com/vfg2006/sucatabook/internal/usecases/authenticating"
	"github.com/vfg2006/sucatabook/internal/usecases/cataloging"
	"github.com/vfg2006/sucatabook/internal/usecases/purchasing"
	"github.com/vfg2006/sucatabook/internal/valuation"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
	"github.com/vfg2006/sucatabook/pkg/log"
	"github.com/vfg2006/sucatabook/pkg/middleware"
	"github.com/vfg2006/sucatabook/pkg/utils"
)

var (
	admin    = &domain.User{ID: "1", Username: "admin", Email: "admin@sucatabook.com", Role: domain.RoleAdmin}
	operator = &domain.User{ID: "2", Username: "joao", Email: "joao@sucatabook.com", Role: domain.RoleUser}
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

func newTestHandler(t *testing.T, user *domain.User) (http.Handler, *mocks.MockAppState) {
	t.Helper()

	ctrl := gomock.NewController(t)
	state := mocks.NewMockAppState(ctrl)
	state.EXPECT().CurrentUser().Return(user).AnyTimes()

	cfg := &config.Config{CacheRefresh: config.CacheRefresh{CronSchedule: "*/15 * * * *"}}

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Authentication(state)...),
		router.WithRoutes(Materials()...),
		router.WithRoutes(Products(state)...),
		router.WithRoutes(Purchases(state)...),
		router.WithRoutes(Financial(state)...),
		router.WithRoutes(Settings(state)...),
		router.WithRoutes(CacheRefresh(scheduler.NewCacheRefreshService(state, cfg))...),
	)

	return middleware.AuthMiddleware(state)(rt), state
}

func serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthcheck(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := serve(h, http.MethodGet, "/healthcheck", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestLogin(t *testing.T) {
	t.Run("Aceita o campo senha", func(t *testing.T) {
		h, state := newTestHandler(t, nil)
		state.EXPECT().Login(gomock.Any(), "admin@sucatabook.com", "admin123").Return(admin, nil)

		rec := serve(h, http.MethodPost, "/v1/login", strings.NewReader(`{"email":"admin@sucatabook.com","senha":"admin123"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		var user domain.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, *admin, user)
	})

	t.Run("Aceita o campo password", func(t *testing.T) {
		h, state := newTestHandler(t, nil)
		state.EXPECT().Login(gomock.Any(), "joao@sucatabook.com", "segredo").Return(operator, nil)

		rec := serve(h, http.MethodPost, "/v1/login", strings.NewReader(`{"email":"joao@sucatabook.com","password":"segredo"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Credenciais inválidas", func(t *testing.T) {
		h, state := newTestHandler(t, nil)
		state.EXPECT().Login(gomock.Any(), "x@y.com", "errada").
			Return(nil, authenticating.NewLoginError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "x@y.com", ""))

		rec := serve(h, http.MethodPost, "/v1/login", strings.NewReader(`{"email":"x@y.com","senha":"errada"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, apiErr.Code)
		assert.Equal(t, "Email ou senha inválidos", apiErr.Message)
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)

		rec := serve(h, http.MethodPost, "/v1/login", strings.NewReader(`{`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMe(t *testing.T) {
	t.Run("Sem sessão", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)

		rec := serve(h, http.MethodGet, "/v1/me", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Devolve a sessão ativa", func(t *testing.T) {
		h, _ := newTestHandler(t, operator)

		rec := serve(h, http.MethodGet, "/v1/me", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), operator.Email)
	})

	t.Run("Atualiza o perfil", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		updated := *operator
		updated.Username = "João"
		state.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req domain.UpdateProfileRequest) (*domain.User, error) {
				require.NotNil(t, req.Username)
				assert.Equal(t, "João", *req.Username)
				return &updated, nil
			})

		rec := serve(h, http.MethodPut, "/v1/me", strings.NewReader(`{"username":"João"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "João")
	})

	t.Run("Logout", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		state.EXPECT().Logout(gomock.Any())

		rec := serve(h, http.MethodPost, "/v1/logout", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestListMaterials(t *testing.T) {
	h, _ := newTestHandler(t, operator)

	rec := serve(h, http.MethodGet, "/v1/materials", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var materials []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &materials))
	assert.Equal(t, domain.Materials(), materials)
}

func TestProducts(t *testing.T) {
	t.Run("Lista offline marca o cabeçalho", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		state.EXPECT().RefreshProducts(gomock.Any()).Return(cataloging.ProductList{
			Products: []domain.Product{{ID: "1", Name: "Lata", Material: "Alumínio", PricePerKilo: 5}},
			Offline:  true,
		})

		rec := serve(h, http.MethodGet, "/v1/products", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "true", rec.Header().Get(middleware.OfflineHeader))
		assert.Contains(t, rec.Body.String(), `"nome":"Lata"`)
	})

	t.Run("Cadastro inválido devolve os campos", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		failure := &cataloging.ValidationFailure{
			CatalogError: cataloging.NewCatalogError(cataloging.ErrInvalidProduct, apiErrors.ErrInvalidProduct, "Preencha todos os campos obrigatórios!"),
			Fields:       []utils.ValidationError{{Field: "nome", Tag: "required", Message: "nome é obrigatório"}},
		}
		state.EXPECT().AddProduct(gomock.Any(), gomock.Any()).Return(nil, failure)

		rec := serve(h, http.MethodPost, "/v1/products", strings.NewReader(`{"nome":"","material":"Ferro","valorKilo":1}`))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidProduct, apiErr.Code)
		assert.Equal(t, "Preencha todos os campos obrigatórios!", apiErr.Message)
		assert.Contains(t, rec.Body.String(), `"field":"nome"`)
	})

	t.Run("Cadastro", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		state.EXPECT().AddProduct(gomock.Any(), domain.CreateProductRequest{
			Name: "Fio de cobre", Material: "Cobre", PricePerKilo: 32.5,
		}).Return(&cataloging.SavedProduct{Product: domain.Product{ID: "9", Name: "Fio de cobre"}}, nil)

		rec := serve(h, http.MethodPost, "/v1/products", strings.NewReader(`{"nome":"Fio de cobre","material":"Cobre","valorKilo":32.5}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Empty(t, rec.Header().Get(middleware.OfflineHeader))
	})

	t.Run("Atualização com backend fora", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		state.EXPECT().UpdateProduct(gomock.Any(), "7", gomock.Any()).
			Return(nil, cataloging.NewCatalogErrorWithID(cataloging.ErrRemoteUnavailable, apiErrors.ErrCommunication, "7", ""))

		rec := serve(h, http.MethodPut, "/v1/products/7", strings.NewReader(`{"nome":"Lata","material":"Alumínio","valorKilo":5}`))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, apiErrors.ErrCommunication, decodeError(t, rec).Code)
	})

	t.Run("Exclusão exige admin", func(t *testing.T) {
		h, _ := newTestHandler(t, operator)

		rec := serve(h, http.MethodDelete, "/v1/products/7", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Exclusão", func(t *testing.T) {
		h, state := newTestHandler(t, admin)
		state.EXPECT().DeleteProduct(gomock.Any(), "7").Return(nil)

		rec := serve(h, http.MethodDelete, "/v1/products/7", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestPurchases(t *testing.T) {
	t.Run("Filtra pelo período", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		state.EXPECT().PurchasesForPeriod(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, period domain.Period) purchasing.PurchaseList {
				require.NotNil(t, period.StartDate)
				assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *period.StartDate)
				assert.Nil(t, period.EndDate)
				return purchasing.PurchaseList{Purchases: []domain.Purchase{{ID: "a"}}}
			})

		rec := serve(h, http.MethodGet, "/v1/purchases?startDate=2024-05-01", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"a"`)
	})

	t.Run("Data inválida", func(t *testing.T) {
		h, _ := newTestHandler(t, operator)

		rec := serve(h, http.MethodGet, "/v1/purchases?endDate=01/05/2024", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Período invertido", func(t *testing.T) {
		h, _ := newTestHandler(t, operator)

		rec := serve(h, http.MethodGet, "/v1/purchases?startDate=2024-05-10&endDate=2024-05-01", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Prévia", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		state.EXPECT().QuotePurchase(domain.CreatePurchaseRequest{
			Items:     []domain.PurchaseLineRequest{{ProductID: "1", Weight: 10}},
			TotalPaid: 20,
		}).Return(purchasing.Quote{
			Totals: valuation.Totals{TotalWeight: 10, TotalValue: 25, TotalProfit: -5, ProfitPercentage: -20},
			Valid:  true,
		})

		rec := serve(h, http.MethodPost, "/v1/purchases/quote", strings.NewReader(`{"items":[{"productId":"1","weight":10}],"totalPaid":20}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"valid":true`)
	})

	t.Run("Registro inválido", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		state.EXPECT().AddPurchase(gomock.Any(), gomock.Any()).
			Return(nil, purchasing.NewPurchaseError(&valuation.ValidationError{Err: valuation.ErrEmptyPurchase}, apiErrors.ErrInvalidPurchase, ""))

		rec := serve(h, http.MethodPost, "/v1/purchases", strings.NewReader(`{"items":[],"totalPaid":0}`))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, valuation.ErrEmptyPurchase.Error(), decodeError(t, rec).Message)
	})

	t.Run("Registro offline", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		state.EXPECT().AddPurchase(gomock.Any(), gomock.Any()).
			Return(&purchasing.RegisteredPurchase{Purchase: domain.Purchase{ID: "1714559400000"}, Offline: true}, nil)

		rec := serve(h, http.MethodPost, "/v1/purchases", strings.NewReader(`{"items":[{"productId":"1","weight":2}],"totalPaid":5}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "true", rec.Header().Get(middleware.OfflineHeader))
	})

	t.Run("Registro duplicado em andamento", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		state.EXPECT().AddPurchase(gomock.Any(), gomock.Any()).
			Return(nil, purchasing.NewPurchaseError(purchasing.ErrSubmissionInProgress, apiErrors.ErrConflict, ""))

		rec := serve(h, http.MethodPost, "/v1/purchases", strings.NewReader(`{"items":[{"productId":"1","weight":2}],"totalPaid":5}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Relatório", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		state.EXPECT().ExportPurchases(gomock.Any(), domain.Period{}).
			Return(&purchasing.Report{Content: []byte("xlsx"), FileName: "relatorio_compras_2024-05-01.xlsx"}, nil)

		rec := serve(h, http.MethodGet, "/v1/purchases/export", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, spreadsheet.ContentType, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "relatorio_compras_2024-05-01.xlsx")
		assert.Equal(t, "xlsx", rec.Body.String())
	})
}

func TestFinancialSummary(t *testing.T) {
	summary := domain.FinancialSummary{TotalPurchases: 2, TotalRevenue: 100, TotalProfit: 20, TotalWeight: 40, AverageProfit: 10}

	t.Run("Local por padrão", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		state.EXPECT().FinancialSummary(domain.Period{}).Return(app.FinancialReport{FinancialSummary: summary, Source: app.SourceLocal})

		rec := serve(h, http.MethodGet, "/v1/financial/summary", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"totalRevenue":100`)
		assert.Contains(t, rec.Body.String(), `"source":"local"`)
	})

	t.Run("Remoto com fallback", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		state.EXPECT().RemoteFinancialSummary(gomock.Any(), domain.Period{}).
			Return(app.FinancialReport{FinancialSummary: summary, Source: app.SourceLocal, Offline: true})

		rec := serve(h, http.MethodGet, "/v1/financial/summary?source=remote", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "true", rec.Header().Get(middleware.OfflineHeader))
	})

	t.Run("Fonte desconhecida", func(t *testing.T) {
		h, _ := newTestHandler(t, operator)

		rec := serve(h, http.MethodGet, "/v1/financial/summary?source=outra", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSettings(t *testing.T) {
	t.Run("Exportação do catálogo", func(t *testing.T) {
		h, state := newTestHandler(t, operator)
		state.EXPECT().ExportProducts(gomock.Any()).
			Return(&cataloging.Export{Content: []byte("planilha"), FileName: "itens_reciclaveis_2024-05-01.xlsx", Offline: true}, nil)

		rec := serve(h, http.MethodGet, "/v1/settings/export", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "true", rec.Header().Get(middleware.OfflineHeader))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "itens_reciclaveis_2024-05-01.xlsx")
	})

	t.Run("Importação", func(t *testing.T) {
		h, state := newTestHandler(t, admin)
		state.EXPECT().ImportProducts(gomock.Any(), "itens.xlsx", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, file io.Reader) (*cataloging.ImportResult, error) {
				content, err := io.ReadAll(file)
				require.NoError(t, err)
				assert.Equal(t, "conteudo", string(content))
				return &cataloging.ImportResult{
					Message: "3 itens importados",
					Preview: &spreadsheet.ImportPreview{Rows: 3},
				}, nil
			})

		body, contentType := multipartFile(t, "file", "itens.xlsx", "conteudo")
		req := httptest.NewRequest(http.MethodPost, "/v1/settings/import", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "3 itens importados")
	})

	t.Run("Importação sem arquivo", func(t *testing.T) {
		h, _ := newTestHandler(t, admin)

		body, contentType := multipartFile(t, "outro", "itens.xlsx", "conteudo")
		req := httptest.NewRequest(http.MethodPost, "/v1/settings/import", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})

	t.Run("Planilha inválida", func(t *testing.T) {
		h, state := newTestHandler(t, admin)
		state.EXPECT().ImportProducts(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, cataloging.NewCatalogError(cataloging.ErrInvalidSpreadsheet, apiErrors.ErrInvalidFormat, "arquivo vazio"))

		body, contentType := multipartFile(t, "file", "itens.xlsx", "x")
		req := httptest.NewRequest(http.MethodPost, "/v1/settings/import", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Importação exige admin", func(t *testing.T) {
		h, _ := newTestHandler(t, operator)

		rec := serve(h, http.MethodPost, "/v1/settings/import", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCacheRefreshRoutes(t *testing.T) {
	t.Run("Status", func(t *testing.T) {
		h, _ := newTestHandler(t, admin)

		rec := serve(h, http.MethodGet, "/v1/cache/status", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"cron":"*/15 * * * *"`)
		assert.Contains(t, rec.Body.String(), `"running":false`)
	})

	t.Run("Exige admin", func(t *testing.T) {
		h, _ := newTestHandler(t, operator)

		rec := serve(h, http.MethodPost, "/v1/cache/refresh", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestUnexpectedError(t *testing.T) {
	h, state := newTestHandler(t, operator)
	state.EXPECT().ExportProducts(gomock.Any()).Return(nil, errors.New("disco cheio"))

	rec := serve(h, http.MethodGet, "/v1/settings/export", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
	assert.NotContains(t, apiErr.Message, "disco cheio")
}

func multipartFile(t *testing.T, field, name, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}
