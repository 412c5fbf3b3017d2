package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/vfg2006/sucatabook/internal/app"
	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/internal/usecases/authenticating"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
	"github.com/vfg2006/sucatabook/pkg/log"
	"github.com/vfg2006/sucatabook/pkg/middleware"
)

// LoginRequest aceita "senha" como o backend e "password" como alternativa
type LoginRequest struct {
	Email    string `json:"email"`
	Senha    string `json:"senha"`
	Password string `json:"password"`
}

func Login(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		senha := req.Senha
		if senha == "" {
			senha = req.Password
		}

		user, err := state.Login(r.Context(), req.Email, senha)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if !errors.As(err, &authErr) {
		handleServiceError(w, r, err)
		return
	}

	log.ForContext(r.Context()).WithField("user_email", authErr.Email).Warn("Falha no login: ", authErr.Err)

	switch {
	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, authErr.Code, "Email e senha são obrigatórios", nil)
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, authErr.Code, "Email ou senha inválidos", nil)
	default:
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	}
}

func Logout(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state.Logout(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMe retorna a identidade da sessão ativa
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

// UpdateMe altera nome e email exibidos no perfil
func UpdateMe(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateProfileRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := state.UpdateProfile(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}
