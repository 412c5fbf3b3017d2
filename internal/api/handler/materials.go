package handler

import (
	"net/http"

	"github.com/vfg2006/sucatabook/internal/domain"
)

// ListMaterials devolve os materiais aceitos no cadastro, na ordem do formulário
func ListMaterials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.Materials())
	}
}
