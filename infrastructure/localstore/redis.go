package localstore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/vfg2006/sucatabook/internal/config"
)

// RedisStore espelha as chaves em um Redis, útil quando mais de uma instância
// do serviço local compartilha o mesmo cache
type RedisStore struct {
	rdb redis.Cmdable
}

func NewRedisClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s do redis", key)
	}
	return data, nil
}

// Set grava sem expiração; o conteúdo só muda quando o backend responde
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.Wrapf(s.rdb.Set(ctx, key, value, 0).Err(), "erro ao gravar %s no redis", key)
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(s.rdb.Del(ctx, key).Err(), "erro ao remover %s do redis", key)
}
