// Script de migração do armazenamento local: copia o cache gravado em arquivo
// (STORE_PATH) para o driver configurado em STORE_DRIVER (redis ou postgres)
package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sucatabook/infrastructure/database/postgres"
	"github.com/vfg2006/sucatabook/infrastructure/localstore"
	"github.com/vfg2006/sucatabook/internal/config"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func main() {
	setupLogger()
	startTime := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	source, err := localstore.NewFileStore(cfg.Store.Path)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao abrir o arquivo de origem")
	}

	var copied int
	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		copied = migrateToRedis(ctx, cfg, source)
	case config.StoreDriverPostgres:
		copied = migrateToPostgres(ctx, cfg, source)
	default:
		logrus.Fatalf("STORE_DRIVER=%s: defina redis ou postgres como destino", cfg.Store.Driver)
	}

	logrus.WithFields(logrus.Fields{
		"origem":  cfg.Store.Path,
		"destino": cfg.Store.Driver,
		"chaves":  copied,
		"duracao": time.Since(startTime).String(),
	}).Info("Migração concluída")
}

func migrateToRedis(ctx context.Context, cfg *config.Config, source localstore.Store) int {
	rdb := localstore.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao Redis")
	}

	copied, err := localstore.Copy(ctx, source, localstore.NewRedisStore(rdb), cfg.Store.Prefix)
	if err != nil {
		logrus.WithError(err).Fatalf("ERRO após copiar %d chaves para o Redis", copied)
	}

	return copied
}

// migrateToPostgres grava todas as chaves numa única transação
func migrateToPostgres(ctx context.Context, cfg *config.Config, source localstore.Store) int {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := localstore.NewPostgresStore(conn).EnsureTable(ctx); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar a tabela de destino")
	}

	var copied int
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var copyErr error
		copied, copyErr = localstore.Copy(ctx, source, localstore.NewPostgresStore(tx), cfg.Store.Prefix)
		return copyErr
	})
	if err != nil {
		logrus.WithError(err).Fatal("ERRO na migração, transação desfeita")
	}

	return copied
}
