package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
	"github.com/vfg2006/sucatabook/pkg/log"
)

type fakeSession struct {
	user *domain.User
}

func (f fakeSession) CurrentUser() *domain.User { return f.user }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		user   *domain.User
		method string
		path   string
		status int
	}{
		{"Healthcheck é público", nil, http.MethodGet, "/healthcheck", http.StatusNoContent},
		{"Login é público", nil, http.MethodPost, "/v1/login", http.StatusNoContent},
		{"Preflight passa", nil, http.MethodOptions, "/v1/products", http.StatusNoContent},
		{"Sem sessão", nil, http.MethodGet, "/v1/products", http.StatusUnauthorized},
		{"Com sessão", &domain.User{ID: "1", Role: domain.RoleUser}, http.MethodGet, "/v1/products", http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var seen *domain.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = UserFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			rec := httptest.NewRecorder()
			AuthMiddleware(fakeSession{user: tc.user})(next).ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, tc.status, rec.Code)
			if tc.user != nil {
				assert.Equal(t, tc.user, seen)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	serve := func(user *domain.User, mw func(http.Handler) http.Handler) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler := AuthMiddleware(fakeSession{user: user})(mw(okHandler()))
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/products/1", nil))
		return rec
	}

	t.Run("Admin pode excluir", func(t *testing.T) {
		rec := serve(&domain.User{ID: "1", Role: domain.RoleAdmin}, AdminOnly())
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Usuário comum não pode", func(t *testing.T) {
		rec := serve(&domain.User{ID: "2", Role: domain.RoleUser}, AdminOnly())

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrInsufficientPrivilege)
	})

	t.Run("Qualquer papel autenticado", func(t *testing.T) {
		rec := serve(&domain.User{ID: "2", Role: "operador"}, AllRoles())
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Sem usuário no contexto", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AdminOnly()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:5173"})(okHandler())

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), OfflineHeader)
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		req.Header.Set("Origin", "http://malicioso.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/products", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	handler := LoggingMiddleware()(LogPanicMiddleware()(panicking))

	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
