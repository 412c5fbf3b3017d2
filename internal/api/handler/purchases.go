package handler

import (
	"net/http"

	"github.com/vfg2006/sucatabook/infrastructure/spreadsheet"
	"github.com/vfg2006/sucatabook/internal/app"
	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
	"github.com/vfg2006/sucatabook/pkg/log"
)

// ListPurchases aceita startDate e endDate opcionais (yyyy-mm-dd)
func ListPurchases(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		list := state.PurchasesForPeriod(r.Context(), period)

		markOffline(w, list.Offline)
		writeJSON(w, r, http.StatusOK, list)
	}
}

// QuotePurchase calcula a prévia sem registrar nada
func QuotePurchase(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreatePurchaseRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, state.QuotePurchase(req))
	}
}

func CreatePurchase(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreatePurchaseRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		registered, err := state.AddPurchase(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"purchase_id": registered.Purchase.ID,
			"offline":     registered.Offline,
		}).Info("Compra registrada")

		markOffline(w, registered.Offline)
		writeJSON(w, r, http.StatusCreated, registered)
	}
}

// ExportPurchases gera o relatório xlsx das compras do período
func ExportPurchases(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := state.ExportPurchases(r.Context(), period)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		markOffline(w, report.Offline)
		writeFile(w, r, spreadsheet.ContentType, report.FileName, report.Content)
	}
}
