package valuation

import (
	"errors"
)

var (
	ErrEmptyPurchase  = errors.New("Adicione pelo menos um item e informe o valor pago.")
	ErrInvalidItems   = errors.New("Todos os itens devem ter produto selecionado e peso maior que zero.")
	ErrItemOutOfRange = errors.New("item da compra inexistente")
	ErrUnknownProduct = errors.New("produto não encontrado no catálogo carregado")
)

// ValidationError bloqueia o registro da compra antes de qualquer chamada remota
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
