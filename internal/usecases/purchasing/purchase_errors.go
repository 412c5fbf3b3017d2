package purchasing

import (
	"errors"
	"fmt"
)

// Erros específicos para o registro de compras
var (
	ErrSubmissionInProgress = errors.New("registro de compra já em andamento")
	ErrBuildReport          = errors.New("erro ao gerar relatório de compras")
)

// PurchaseError é um erro com contexto adicional para compras
type PurchaseError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	PurchaseID string // ID da compra envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *PurchaseError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PurchaseError) Unwrap() error {
	return e.Err
}

func NewPurchaseError(err error, code string, details string) *PurchaseError {
	return &PurchaseError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
