package handler

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/internal/usecases/authenticating"
	"github.com/vfg2006/sucatabook/internal/usecases/cataloging"
	"github.com/vfg2006/sucatabook/internal/usecases/purchasing"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
	"github.com/vfg2006/sucatabook/pkg/log"
	"github.com/vfg2006/sucatabook/pkg/middleware"
	"github.com/vfg2006/sucatabook/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// markOffline sinaliza que a resposta saiu do cache local
func markOffline(w http.ResponseWriter, offline bool) {
	if offline {
		w.Header().Set(middleware.OfflineHeader, "true")
	}
}

func writeFile(w http.ResponseWriter, r *http.Request, contentType, fileName string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar arquivo")
	}
}

func decodeBody(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// handleServiceError traduz os erros dos casos de uso para a resposta padronizada
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *cataloging.ValidationFailure
	var catalogErr *cataloging.CatalogError
	var purchaseErr *purchasing.PurchaseError
	var authErr *authenticating.AuthError

	switch {
	case errors.As(err, &validation):
		apiErrors.WriteError(w, validation.Code, validation.Details, validation.Fields)
	case errors.As(err, &catalogErr):
		apiErrors.WriteError(w, catalogErr.Code, catalogErr.Error(), nil)
	case errors.As(err, &purchaseErr):
		apiErrors.WriteError(w, purchaseErr.Code, purchaseErr.Error(), nil)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

// parsePeriod lê startDate e endDate (yyyy-mm-dd) da query string
func parsePeriod(r *http.Request) (domain.Period, error) {
	query := r.URL.Query()

	start, err := utils.ParseDate(query.Get("startDate"))
	if err != nil {
		return domain.Period{}, errors.Wrap(err, "startDate inválida")
	}

	end, err := utils.ParseDate(query.Get("endDate"))
	if err != nil {
		return domain.Period{}, errors.Wrap(err, "endDate inválida")
	}

	if start != nil && end != nil && end.Before(*start) {
		return domain.Period{}, errors.New("endDate anterior a startDate")
	}

	return domain.Period{StartDate: start, EndDate: end}, nil
}
