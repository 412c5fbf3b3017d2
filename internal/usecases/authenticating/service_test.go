package authenticating

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sucatabook/infrastructure/integrator/sucata/mocks"
	"github.com/vfg2006/sucatabook/infrastructure/integrator/sucata/sucataclient"
	"github.com/vfg2006/sucatabook/infrastructure/localstore"
	"github.com/vfg2006/sucatabook/internal/config"
	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
)

func newTestSession(t *testing.T) (*Session, *mocks.MockClient, *localstore.Cache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	store, err := localstore.NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	cache := localstore.NewCache(store, "")

	cfg := &config.Config{Demo: config.Demo{Login: "admin", Password: "admin"}}
	session, err := NewSession(client, cache, cfg)
	require.NoError(t, err)

	return session, client, cache
}

func networkFailure() sucataclient.Result[*sucataclient.LoginResponse] {
	return sucataclient.Result[*sucataclient.LoginResponse]{
		Failure: &sucataclient.Failure{Kind: sucataclient.FailureNetwork, Err: errors.New("connection refused")},
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("segredo"))
	require.NoError(t, err)
	return token
}

func TestSession_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Login remoto preenche campos ausentes e persiste a sessão", func(t *testing.T) {
		session, client, cache := newTestSession(t)

		client.EXPECT().
			Login(gomock.Any(), sucataclient.LoginRequest{Email: "ana@ferro.com", Senha: "123"}).
			Return(sucataclient.Result[*sucataclient.LoginResponse]{Data: &sucataclient.LoginResponse{Token: "jwt"}})

		user, err := session.Login(ctx, " ana@ferro.com ", "123")

		require.NoError(t, err)
		expected := domain.User{ID: "1", Username: "ana@ferro.com", Email: "ana@ferro.com", Role: domain.RoleAdmin}
		assert.Equal(t, expected, *user)
		assert.Equal(t, StateAuthenticated, session.State())
		assert.Equal(t, "jwt", session.Token())
		assert.Equal(t, expected, *cache.User(ctx))
		assert.Equal(t, "jwt", cache.Token(ctx))
	})

	t.Run("Login remoto com identidade completa", func(t *testing.T) {
		session, client, _ := newTestSession(t)

		client.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(sucataclient.Result[*sucataclient.LoginResponse]{Data: &sucataclient.LoginResponse{
				ID: "9", Username: "joao", Email: "joao@ferro.com", Role: domain.RoleUser, Token: "t",
			}})

		user, err := session.Login(ctx, "joao@ferro.com", "x")

		require.NoError(t, err)
		assert.Equal(t, domain.User{ID: "9", Username: "joao", Email: "joao@ferro.com", Role: domain.RoleUser}, *user)
		assert.False(t, user.IsAdmin())
	})

	t.Run("Falha de rede com par de demonstração", func(t *testing.T) {
		session, client, cache := newTestSession(t)

		client.EXPECT().Login(gomock.Any(), gomock.Any()).Return(networkFailure())

		user, err := session.Login(ctx, "admin", "admin")

		require.NoError(t, err)
		assert.Equal(t, demoUser, *user)
		assert.True(t, session.IsAuthenticated())
		assert.Empty(t, session.Token())
		assert.Empty(t, cache.Token(ctx))
		assert.Equal(t, demoUser, *cache.User(ctx))
	})

	t.Run("Backend recusa e par de demonstração confere", func(t *testing.T) {
		session, client, _ := newTestSession(t)

		client.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(sucataclient.Result[*sucataclient.LoginResponse]{
				Failure: &sucataclient.Failure{Kind: sucataclient.FailureUnauthorized, StatusCode: 401},
			})

		user, err := session.Login(ctx, "admin", "admin")

		require.NoError(t, err)
		assert.Equal(t, "admin@sucatabook.com", user.Email)
	})

	t.Run("Resposta vazia cai para demonstração", func(t *testing.T) {
		session, client, _ := newTestSession(t)

		client.EXPECT().Login(gomock.Any(), gomock.Any()).Return(sucataclient.Result[*sucataclient.LoginResponse]{})

		_, err := session.Login(ctx, "admin", "admin")
		require.NoError(t, err)
		assert.True(t, session.IsAuthenticated())
	})

	t.Run("Falha remota e credencial errada", func(t *testing.T) {
		session, client, cache := newTestSession(t)

		client.EXPECT().Login(gomock.Any(), gomock.Any()).Return(networkFailure())

		user, err := session.Login(ctx, "admin", "errada")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.True(t, IsCredentialsError(err))

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
		assert.Equal(t, "admin", authErr.Email)

		assert.Equal(t, StateUnauthenticated, session.State())
		assert.Nil(t, session.CurrentUser())
		assert.Nil(t, cache.User(ctx))
	})

	t.Run("Campos vazios não chamam o backend", func(t *testing.T) {
		session, _, _ := newTestSession(t)

		_, err := session.Login(ctx, "  ", "admin")

		assert.ErrorIs(t, err, ErrMissingRequiredData)
		assert.Equal(t, StateUnauthenticated, session.State())
	})
}

func TestSession_LogoutAndInvalidate(t *testing.T) {
	ctx := context.Background()

	for _, name := range []string{"logout", "invalidate"} {
		t.Run(name, func(t *testing.T) {
			session, client, cache := newTestSession(t)

			client.EXPECT().
				Login(gomock.Any(), gomock.Any()).
				Return(sucataclient.Result[*sucataclient.LoginResponse]{Data: &sucataclient.LoginResponse{ID: "2", Token: "jwt"}})

			_, err := session.Login(ctx, "ana@ferro.com", "123")
			require.NoError(t, err)

			if name == "logout" {
				session.Logout(ctx)
			} else {
				session.Invalidate()
			}

			assert.Equal(t, StateUnauthenticated, session.State())
			assert.Nil(t, session.CurrentUser())
			assert.Empty(t, session.Token())
			assert.Nil(t, cache.User(ctx))
			assert.Empty(t, cache.Token(ctx))
		})
	}
}

func TestSession_Restore(t *testing.T) {
	ctx := context.Background()
	user := domain.User{ID: "3", Username: "ana", Email: "ana@ferro.com", Role: domain.RoleAdmin}

	t.Run("Identidade de demonstração sem token", func(t *testing.T) {
		session, _, cache := newTestSession(t)
		cache.SaveUser(ctx, demoUser)

		session.Restore(ctx)

		assert.True(t, session.IsAuthenticated())
		assert.Equal(t, demoUser, *session.CurrentUser())
	})

	t.Run("Token válido", func(t *testing.T) {
		session, _, cache := newTestSession(t)
		token := signedToken(t, time.Now().Add(time.Hour))
		cache.SaveUser(ctx, user)
		cache.SaveToken(ctx, token)

		session.Restore(ctx)

		assert.True(t, session.IsAuthenticated())
		assert.Equal(t, token, session.Token())
	})

	t.Run("Token opaco é mantido", func(t *testing.T) {
		session, _, cache := newTestSession(t)
		cache.SaveUser(ctx, user)
		cache.SaveToken(ctx, "opaco")

		session.Restore(ctx)

		assert.Equal(t, "opaco", session.Token())
	})

	t.Run("Token expirado descarta a sessão", func(t *testing.T) {
		session, _, cache := newTestSession(t)
		cache.SaveUser(ctx, user)
		cache.SaveToken(ctx, signedToken(t, time.Now().Add(-time.Hour)))

		session.Restore(ctx)

		assert.False(t, session.IsAuthenticated())
		assert.Nil(t, cache.User(ctx))
		assert.Empty(t, cache.Token(ctx))
	})

	t.Run("Nada persistido", func(t *testing.T) {
		session, _, _ := newTestSession(t)

		session.Restore(ctx)

		assert.Equal(t, StateUnauthenticated, session.State())
	})
}

func TestSession_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	name := "Ferro Velho do Zé"
	email := "ze@ferro.com"
	invalid := "não-é-email"

	t.Run("Sem sessão", func(t *testing.T) {
		session, _, _ := newTestSession(t)

		_, err := session.UpdateProfile(ctx, domain.UpdateProfileRequest{Username: &name})

		assert.ErrorIs(t, err, ErrNotAuthenticated)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Email inválido", func(t *testing.T) {
		session, _, cache := newTestSession(t)
		cache.SaveUser(ctx, demoUser)
		session.Restore(ctx)

		_, err := session.UpdateProfile(ctx, domain.UpdateProfileRequest{Email: &invalid})

		assert.ErrorIs(t, err, ErrInvalidFormat)
		assert.Equal(t, demoUser, *session.CurrentUser())
	})

	t.Run("Atualiza e persiste", func(t *testing.T) {
		session, _, cache := newTestSession(t)
		cache.SaveUser(ctx, demoUser)
		session.Restore(ctx)

		user, err := session.UpdateProfile(ctx, domain.UpdateProfileRequest{Username: &name, Email: &email})

		require.NoError(t, err)
		assert.Equal(t, name, user.Username)
		assert.Equal(t, email, user.Email)
		assert.Equal(t, domain.RoleAdmin, user.Role)
		assert.Equal(t, *user, *cache.User(ctx))
	})
}
