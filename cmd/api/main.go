package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sucatabook/infrastructure/database/postgres"
	"github.com/vfg2006/sucatabook/infrastructure/integrator/sucata/sucataclient"
	"github.com/vfg2006/sucatabook/infrastructure/localstore"
	"github.com/vfg2006/sucatabook/internal/api"
	"github.com/vfg2006/sucatabook/internal/app"
	"github.com/vfg2006/sucatabook/internal/config"
	"github.com/vfg2006/sucatabook/internal/scheduler"
	"github.com/vfg2006/sucatabook/internal/usecases/authenticating"
	"github.com/vfg2006/sucatabook/internal/usecases/cataloging"
	"github.com/vfg2006/sucatabook/internal/usecases/purchasing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore := openStore(ctx, cfg)
	defer closeStore()

	cache := localstore.NewCache(store, cfg.Store.Prefix)

	client := sucataclient.NewClient(cfg)

	session, err := authenticating.NewSession(client, cache, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar a sessão")
	}
	client.SetCredentials(session)

	catalogService := cataloging.NewService(client, cache)
	purchaseService := purchasing.NewService(client, cache)

	state := app.NewState(session, catalogService, purchaseService, client)
	state.Load(ctx)

	cacheRefreshService := scheduler.NewCacheRefreshService(state, cfg)
	if err := cacheRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do cache")
	}

	server, err := api.New(cfg, state, cacheRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// openStore abre o armazenamento local escolhido em STORE_DRIVER
func openStore(ctx context.Context, cfg *config.Config) (localstore.Store, func()) {
	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		rdb := localstore.NewRedisClient(cfg.Redis)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
		}

		logrus.WithField("addr", cfg.Redis.Addr).Info("Armazenamento local no Redis")
		return localstore.NewRedisStore(rdb), func() { _ = rdb.Close() }

	case config.StoreDriverPostgres:
		conn := pgconn(ctx, cfg.Database)

		store := localstore.NewPostgresStore(conn)
		if err := store.EnsureTable(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar a tabela do armazenamento local")
		}

		logrus.Info("Armazenamento local no PostgreSQL")
		return store, func() { _ = conn.Close() }

	default:
		store, err := localstore.NewFileStore(cfg.Store.Path)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao abrir o arquivo do armazenamento local")
		}

		logrus.WithField("path", cfg.Store.Path).Info("Armazenamento local em arquivo")
		return store, func() {}
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
