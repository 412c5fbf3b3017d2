package handler

import (
	"net/http"

	"github.com/vfg2006/sucatabook/internal/app"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
)

// GetFinancialSummary calcula o resumo localmente; com source=remote usa o backend
func GetFinancialSummary(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var report app.FinancialReport
		switch r.URL.Query().Get("source") {
		case "", app.SourceLocal:
			report = state.FinancialSummary(period)
		case app.SourceRemote:
			report = state.RemoteFinancialSummary(r.Context(), period)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "source deve ser local ou remote", nil)
			return
		}

		markOffline(w, report.Offline)
		writeJSON(w, r, http.StatusOK, report)
	}
}
