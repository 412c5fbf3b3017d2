package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/sucatabook/internal/app"
	"github.com/vfg2006/sucatabook/internal/domain"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
	"github.com/vfg2006/sucatabook/pkg/log"
)

// ListProducts recarrega o catálogo do backend; sem conexão devolve o cache
func ListProducts(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := state.RefreshProducts(r.Context())

		markOffline(w, list.Offline)
		writeJSON(w, r, http.StatusOK, list)
	}
}

func CreateProduct(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateProductRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		saved, err := state.AddProduct(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("product_id", saved.Product.ID).Info("Item reciclável cadastrado")

		markOffline(w, saved.Offline)
		writeJSON(w, r, http.StatusCreated, saved)
	}
}

func UpdateProduct(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do item é obrigatório", nil)
			return
		}

		var req domain.CreateProductRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		product, err := state.UpdateProduct(r.Context(), id, req)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, product)
	}
}

// DeleteProduct exige confirmação do backend; nada é removido offline
func DeleteProduct(state app.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do item é obrigatório", nil)
			return
		}

		if err := state.DeleteProduct(r.Context(), id); err != nil {
			handleServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
