package cataloging

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sucatabook/infrastructure/integrator/sucata/sucataclient"
	"github.com/vfg2006/sucatabook/pkg/apiErrors"
)

// Erros específicos do catálogo de itens recicláveis
var (
	// Erros de validação
	ErrInvalidProduct     = errors.New("item reciclável inválido")
	ErrProductIDRequired  = errors.New("ID do item é obrigatório")
	ErrInvalidSpreadsheet = errors.New("planilha inválida")

	// Erros do backend
	ErrProductNotFound    = errors.New("item reciclável não encontrado")
	ErrRemoteUnavailable  = errors.New("backend indisponível")
	ErrRemoteRejected     = errors.New("backend recusou a operação")
	ErrSessionInvalidated = errors.New("sessão invalidada pelo backend")

	// Erros locais
	ErrBuildSpreadsheet = errors.New("erro ao gerar planilha")
)

// CatalogError é um erro com contexto adicional para o catálogo
type CatalogError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	ProductID string // ID do item envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCatalogErrorWithID(err error, code string, productID string, details string) *CatalogError {
	return &CatalogError{
		Err:       err,
		Code:      code,
		ProductID: productID,
		Details:   details,
	}
}

// IsValidationError indica erro barrado antes de qualquer chamada ao backend
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidProduct) ||
		errors.Is(err, ErrProductIDRequired) ||
		errors.Is(err, ErrInvalidSpreadsheet)
}

// remoteError converte a falha do gateway no erro do catálogo
func remoteError(failure *sucataclient.Failure, productID string, details string) *CatalogError {
	switch {
	case failure == nil:
		return NewCatalogErrorWithID(ErrRemoteRejected, apiErrors.ErrExternalService, productID, details)
	case failure.Kind == sucataclient.FailureUnauthorized:
		return NewCatalogErrorWithID(ErrSessionInvalidated, apiErrors.ErrSessionInvalidated, productID, details)
	case failure.Kind == sucataclient.FailureNetwork:
		return NewCatalogErrorWithID(ErrRemoteUnavailable, apiErrors.ErrCommunication, productID, details)
	case failure.StatusCode == 404:
		return NewCatalogErrorWithID(ErrProductNotFound, apiErrors.ErrNotFound, productID, details)
	default:
		return NewCatalogErrorWithID(ErrRemoteRejected, apiErrors.ErrExternalService, productID, details)
	}
}
