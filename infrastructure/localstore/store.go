// Package localstore guarda o espelho local dos dados do backend, usado como
// reserva quando o backend não responde
package localstore

import (
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	KeyProducts  = "sucatabook_products"
	KeyPurchases = "sucatabook_purchases"
	KeyUser      = "sucatabook_user"
	KeyToken     = "sucatabook_token"
)

var ErrNotFound = errors.New("chave não encontrada no armazenamento local")

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// Store é um armazenamento chave/valor de bytes. Get devolve ErrNotFound para chaves ausentes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Cache oferece leitura e escrita tipadas sobre o Store. Tudo é best-effort:
// falha de leitura equivale a ausência e falha de escrita só é registrada no log.
type Cache struct {
	store  Store
	prefix string
}

func NewCache(store Store, prefix string) *Cache {
	return &Cache{store: store, prefix: prefix}
}

func (c *Cache) Products(ctx context.Context) []domain.Product {
	var products []domain.Product
	if !c.load(ctx, KeyProducts, &products) {
		return []domain.Product{}
	}
	return products
}

func (c *Cache) SaveProducts(ctx context.Context, products []domain.Product) {
	c.save(ctx, KeyProducts, products)
}

func (c *Cache) Purchases(ctx context.Context) []domain.Purchase {
	var purchases []domain.Purchase
	if !c.load(ctx, KeyPurchases, &purchases) {
		return []domain.Purchase{}
	}
	return purchases
}

func (c *Cache) SavePurchases(ctx context.Context, purchases []domain.Purchase) {
	c.save(ctx, KeyPurchases, purchases)
}

// User devolve a identidade persistida ou nil
func (c *Cache) User(ctx context.Context) *domain.User {
	var user domain.User
	if !c.load(ctx, KeyUser, &user) || (user.ID == "" && user.Username == "" && user.Email == "") {
		return nil
	}
	return &user
}

func (c *Cache) SaveUser(ctx context.Context, user domain.User) {
	c.save(ctx, KeyUser, user)
}

// Token é guardado como texto puro
func (c *Cache) Token(ctx context.Context) string {
	data, err := c.store.Get(ctx, c.key(KeyToken))
	if err != nil {
		c.logReadError(ctx, KeyToken, err)
		return ""
	}
	return string(data)
}

func (c *Cache) SaveToken(ctx context.Context, token string) {
	if token == "" {
		c.remove(ctx, KeyToken)
		return
	}
	if err := c.store.Set(ctx, c.key(KeyToken), []byte(token)); err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", KeyToken).Warn("Erro ao gravar no armazenamento local")
	}
}

// ClearSession remove identidade e token
func (c *Cache) ClearSession(ctx context.Context) {
	c.remove(ctx, KeyUser)
	c.remove(ctx, KeyToken)
}

func (c *Cache) key(name string) string {
	return c.prefix + name
}

func (c *Cache) load(ctx context.Context, name string, out any) bool {
	data, err := c.store.Get(ctx, c.key(name))
	if err != nil {
		c.logReadError(ctx, name, err)
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", name).Warn("Conteúdo inválido no armazenamento local, ignorando")
		return false
	}

	return true
}

func (c *Cache) save(ctx context.Context, name string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", name).Error("Erro ao serializar dados para o armazenamento local")
		return
	}

	if err := c.store.Set(ctx, c.key(name), data); err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", name).Warn("Erro ao gravar no armazenamento local")
	}
}

func (c *Cache) remove(ctx context.Context, name string) {
	if err := c.store.Delete(ctx, c.key(name)); err != nil && !errors.Is(err, ErrNotFound) {
		log.ForContext(ctx).WithError(err).WithField("key", name).Warn("Erro ao remover do armazenamento local")
	}
}

func (c *Cache) logReadError(ctx context.Context, name string, err error) {
	if errors.Is(err, ErrNotFound) {
		return
	}
	log.ForContext(ctx).WithError(err).WithField("key", name).Warn("Erro ao ler do armazenamento local")
}
