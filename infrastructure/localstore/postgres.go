package localstore

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/vfg2006/sucatabook/infrastructure/database/postgres"
)

const localStoreTable = "local_store"

const createLocalStoreTable = `
CREATE TABLE IF NOT EXISTS local_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresStore guarda as chaves numa tabela chave/valor
type PostgresStore struct {
	conn postgres.Queryer
}

func NewPostgresStore(conn postgres.Queryer) *PostgresStore {
	return &PostgresStore{conn: conn}
}

// EnsureTable cria a tabela se ela ainda não existir
func (s *PostgresStore) EnsureTable(ctx context.Context) error {
	_, err := s.conn.ExecContext(ctx, createLocalStoreTable)
	return errors.Wrap(err, "erro ao criar tabela do armazenamento local")
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := selectValueQuery(key)
	if err != nil {
		return nil, err
	}

	var value string
	err = s.conn.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s do postgres", key)
	}

	return []byte(value), nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := upsertValueQuery(key, value)
	if err != nil {
		return err
	}

	_, err = s.conn.ExecContext(ctx, query, args...)
	return errors.Wrapf(err, "erro ao gravar %s no postgres", key)
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query, args, err := deleteValueQuery(key)
	if err != nil {
		return err
	}

	_, err = s.conn.ExecContext(ctx, query, args...)
	return errors.Wrapf(err, "erro ao remover %s do postgres", key)
}

func selectValueQuery(key string) (string, []interface{}, error) {
	return squirrel.
		Select("value").
		From(localStoreTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func upsertValueQuery(key string, value []byte) (string, []interface{}, error) {
	return squirrel.
		Insert(localStoreTable).
		Columns("key", "value", "updated_at").
		Values(key, string(value), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func deleteValueQuery(key string) (string, []interface{}, error) {
	return squirrel.
		Delete(localStoreTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
