package sucataclient

import (
	"fmt"
)

type FailureKind string

const (
	// FailureHTTP indica resposta fora da faixa 2xx
	FailureHTTP FailureKind = "http"
	// FailureUnauthorized indica 401/403; a sessão já foi invalidada quando o chamador recebe
	FailureUnauthorized FailureKind = "unauthorized"
	// FailureNetwork indica erro de transporte (DNS, conexão recusada, timeout)
	FailureNetwork FailureKind = "network"
	// FailureDecode indica corpo que não é JSON válido para o tipo esperado
	FailureDecode FailureKind = "decode"
)

// Failure descreve por que uma chamada remota não produziu dados
type Failure struct {
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (f *Failure) Error() string {
	switch f.Kind {
	case FailureHTTP, FailureUnauthorized:
		return fmt.Sprintf("Erro HTTP: %d", f.StatusCode)
	default:
		if f.Err != nil {
			return fmt.Sprintf("falha na chamada remota (%s): %v", f.Kind, f.Err)
		}
		return fmt.Sprintf("falha na chamada remota (%s)", f.Kind)
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Result carrega o dado ou a falha de uma chamada remota. Dado nulo (204 ou
// corpo vazio) é sucesso com o valor zero de T.
type Result[T any] struct {
	Data    T
	Failure *Failure
}

func (r Result[T]) OK() bool {
	return r.Failure == nil
}

// Err devolve a falha como error, ou nil em caso de sucesso
func (r Result[T]) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}

func success[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

func failed[T any](failure *Failure) Result[T] {
	return Result[T]{Failure: failure}
}
