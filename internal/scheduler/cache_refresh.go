// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sucatabook/internal/config"
	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/internal/usecases/cataloging"
	"github.com/vfg2006/sucatabook/internal/usecases/purchasing"
	"github.com/vfg2006/sucatabook/pkg/log"
)

// Refresher é a parte do estado da aplicação usada pela atualização do cache
type Refresher interface {
	CurrentUser() *domain.User
	RefreshProducts(ctx context.Context) cataloging.ProductList
	RefreshPurchases(ctx context.Context) purchasing.PurchaseList
}

type CacheRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheRefreshService relê catálogo e compras do backend periodicamente.
// Só lê: registros criados offline nunca são reenviados.
type CacheRefreshService struct {
	scheduler           *gocron.Scheduler
	state               Refresher
	config              CacheRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCacheRefreshService(state Refresher, cfg *config.Config) *CacheRefreshService {
	refreshConfig := CacheRefreshConfig{
		CronSchedule: cfg.CacheRefresh.CronSchedule, // Default: a cada 15 minutos
		Enabled:      cfg.CacheRefresh.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração da atualização do cache local carregada")

	return &CacheRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		state:     state,
		config:    refreshConfig,
	}
}

func (s *CacheRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização periódica do cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do cache local")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh executa uma rodada. Sem sessão não há o que buscar; uma rodada em
// andamento faz a seguinte ser ignorada. Devolve false quando nada foi feito.
func (s *CacheRefreshService) Refresh(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do cache já está em execução")
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	if s.state.CurrentUser() == nil {
		logrus.Debug("Nenhuma sessão ativa, atualização do cache ignorada")
		return false
	}

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)

	products := s.state.RefreshProducts(ctx)
	purchases := s.state.RefreshPurchases(ctx)

	logger.WithField("offline", products.Offline || purchases.Offline).
		Infof("Cache atualizado: %d itens, %d compras", len(products.Products), len(purchases.Purchases))

	return true
}

// TriggerManualRefresh dispara uma rodada fora do agendamento
func (s *CacheRefreshService) TriggerManualRefresh() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Atualização do cache já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando atualização manual do cache")
	go s.Refresh(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *CacheRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                   s.config.Enabled,
		"cron":                      s.config.CronSchedule,
		"running":                   s.syncRunning,
		"last_refresh_started_at":   s.lastSyncStartedAt,
		"last_refresh_completed_at": s.lastSyncCompletedAt,
	}
}
