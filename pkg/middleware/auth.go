package middleware

import (
	"context"
	"net/http"

	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// SessionProvider é a sessão ativa do processo; o serviço atende um único operador
type SessionProvider interface {
	CurrentUser() *domain.User
}

var publicPaths = map[string]bool{
	"/healthcheck": true,
	"/v1/login":    true,
}

// AuthMiddleware exige uma sessão autenticada e coloca o usuário no contexto
func AuthMiddleware(session SessionProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			user := session.CurrentUser()
			if user == nil {
				apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, "Usuário não autenticado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext devolve o usuário colocado pelo AuthMiddleware
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(ContextKeyUser).(*domain.User)
	return user, ok && user != nil
}
