package handler

import (
	"net/http"

	"github.com/vfg2006/sucatabook/infrastructure/spreadsheet"
	"github.com/vfg2006/sucatabook/internal/app"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
	"github.com/vfg2006/sucatabook/pkg/log"
)

const maxImportSize = 10 << 20

// ExportProducts baixa a planilha do catálogo
func ExportProducts(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		export, err := state.ExportProducts(r.Context())
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		markOffline(w, export.Offline)
		writeFile(w, r, spreadsheet.ContentType, export.FileName, export.Content)
	}
}

// ImportProducts recebe a planilha no campo multipart "file"
func ImportProducts(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Envie a planilha no campo file", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Selecione um arquivo", nil)
			return
		}
		defer file.Close()

		result, err := state.ImportProducts(r.Context(), header.Filename, file)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		if result.Preview != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"rows":   result.Preview.Rows,
				"failed": result.Preview.Failed,
			}).Info("Planilha importada")
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
