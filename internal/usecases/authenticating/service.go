package authenticating

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/sucatabook/infrastructure/integrator/sucata/sucataclient"
	"github.com/vfg2006/sucatabook/infrastructure/localstore"
	"github.com/vfg2006/sucatabook/internal/config"
	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
	"github.com/vfg2006/sucatabook/pkg/log"
	"github.com/vfg2006/sucatabook/pkg/utils"
)

type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
)

// Identidade usada quando o backend não aceita o login e o par de demonstração confere
var demoUser = domain.User{
	ID:       "1",
	Username: "admin",
	Email:    "admin@sucatabook.com",
	Role:     domain.RoleAdmin,
}

//go:generate mockgen -source=service.go -destination=mocks/mock_authenticator.go -package=mocks

type Authenticator interface {
	Login(ctx context.Context, email, senha string) (*domain.User, error)
	Logout(ctx context.Context)
	Invalidate()
	Restore(ctx context.Context)
	Token() string
	CurrentUser() *domain.User
	State() State
	IsAuthenticated() bool
	UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (*domain.User, error)
}

// Session guarda a identidade autenticada e a credencial do backend
type Session struct {
	client    sucataclient.Client
	cache     *localstore.Cache
	demoLogin string
	demoHash  []byte
	now       func() time.Time

	mu    sync.RWMutex
	state State
	user  *domain.User
	token string
}

func NewSession(client sucataclient.Client, cache *localstore.Cache, cfg *config.Config) (*Session, error) {
	session := &Session{
		client:    client,
		cache:     cache,
		demoLogin: cfg.Demo.Login,
		now:       time.Now,
		state:     StateUnauthenticated,
	}

	if cfg.Demo.Login != "" && cfg.Demo.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Demo.Password), bcrypt.MinCost)
		if err != nil {
			return nil, err
		}
		session.demoHash = hash
	}

	return session, nil
}

// Login tenta o backend primeiro. Qualquer falha remota, inclusive de rede,
// cai para o par de demonstração; se ele também não conferir a sessão volta
// para Unauthenticated.
func (s *Session) Login(ctx context.Context, email, senha string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || senha == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	s.mu.Lock()
	if s.state == StateAuthenticating {
		s.mu.Unlock()
		return nil, NewLoginError(ErrLoginInProgress, apiErrors.ErrConflict, email, "Aguarde a tentativa anterior")
	}
	s.state = StateAuthenticating
	s.mu.Unlock()

	logger := log.ForContext(ctx).WithField("user_email", email)

	result := s.client.Login(ctx, sucataclient.LoginRequest{Email: email, Senha: senha})
	if result.OK() && result.Data != nil {
		user := identityFromResponse(result.Data, email)
		s.authenticate(ctx, user, result.Data.Token)
		logger.Info("Login realizado no backend")
		return &user, nil
	}

	if result.OK() {
		logger.Warn("Backend respondeu ao login sem conteúdo")
	} else {
		logger.WithError(result.Failure).Warn("Login remoto falhou, tentando credencial de demonstração")
	}

	if s.matchesDemo(email, senha) {
		user := demoUser
		s.authenticate(ctx, user, "")
		logger.Info("Login realizado com a credencial de demonstração")
		return &user, nil
	}

	s.reset(ctx)

	return nil, NewLoginError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, "Email ou senha inválidos")
}

// Logout limpa identidade e credencial sem confirmação
func (s *Session) Logout(ctx context.Context) {
	s.reset(ctx)
	log.ForContext(ctx).Info("Sessão encerrada")
}

// Invalidate é chamado pelo cliente do backend quando ele responde 401/403
func (s *Session) Invalidate() {
	s.reset(context.Background())
	log.L.Warn("Sessão invalidada pelo backend")
}

// Restore recarrega a sessão persistida. Token JWT vencido descarta a sessão;
// a identidade de demonstração não tem token e é restaurada como está.
func (s *Session) Restore(ctx context.Context) {
	user := s.cache.User(ctx)
	token := s.cache.Token(ctx)

	if token != "" && tokenExpired(token, s.now()) {
		log.ForContext(ctx).Info("Token persistido expirado, descartando sessão")
		s.cache.ClearSession(ctx)
		return
	}

	if user == nil {
		if token != "" {
			s.cache.SaveToken(ctx, "")
		}
		return
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.state = StateAuthenticated
	s.mu.Unlock()

	log.ForContext(ctx).WithField("user_email", user.Email).Info("Sessão restaurada")
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser devolve uma cópia da identidade atual ou nil
func (s *Session) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// UpdateProfile altera nome e email exibidos; a alteração é só local
func (s *Session) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (*domain.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Email inválido")
	}

	s.mu.Lock()
	if s.state != StateAuthenticated || s.user == nil {
		s.mu.Unlock()
		return nil, NewAuthError(ErrNotAuthenticated, apiErrors.ErrNotAuthenticated, "")
	}

	if req.Username != nil && strings.TrimSpace(*req.Username) != "" {
		s.user.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		s.user.Email = strings.TrimSpace(*req.Email)
	}
	user := *s.user
	s.mu.Unlock()

	s.cache.SaveUser(ctx, user)

	return &user, nil
}

func (s *Session) authenticate(ctx context.Context, user domain.User, token string) {
	s.mu.Lock()
	s.user = &user
	s.token = token
	s.state = StateAuthenticated
	s.mu.Unlock()

	s.cache.SaveUser(ctx, user)
	s.cache.SaveToken(ctx, token)
}

func (s *Session) reset(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.state = StateUnauthenticated
	s.mu.Unlock()

	s.cache.ClearSession(ctx)
}

func (s *Session) matchesDemo(login, senha string) bool {
	if s.demoHash == nil || login != s.demoLogin {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.demoHash, []byte(senha)) == nil
}

// identityFromResponse preenche com valores padrão os campos que o backend omitiu
func identityFromResponse(resp *sucataclient.LoginResponse, email string) domain.User {
	user := domain.User{
		ID:       resp.ID,
		Username: resp.Username,
		Email:    resp.Email,
		Role:     resp.Role,
	}

	if user.ID == "" {
		user.ID = "1"
	}
	if user.Username == "" {
		user.Username = email
	}
	if user.Email == "" {
		user.Email = email
	}
	if user.Role == "" {
		user.Role = domain.RoleAdmin
	}

	return user
}

// tokenExpired lê a claim exp sem validar a assinatura; o segredo é do backend.
// Token que não é JWT ou não tem exp é considerado válido.
func tokenExpired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(now)
}
