package handler

import (
	"net/http"

	"github.com/vfg2006/sucatabook/internal/scheduler"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
	"github.com/vfg2006/sucatabook/pkg/log"
)

// RunCacheRefresh dispara a atualização do cache fora do horário agendado
func RunCacheRefresh(service *scheduler.CacheRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Atualização do cache não disponível", nil)
			return
		}

		if !service.TriggerManualRefresh() {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Atualização do cache já em andamento", nil)
			return
		}

		log.ForContext(r.Context()).Info("Atualização manual do cache disparada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Atualização do cache iniciada",
		})
	}
}

func GetCacheRefreshStatus(service *scheduler.CacheRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Atualização do cache não disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, service.GetStatus())
	}
}
