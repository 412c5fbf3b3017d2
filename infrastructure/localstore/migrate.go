package localstore

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/sucatabook/pkg/log"
)

// Keys lista as chaves gravadas pelo Cache com o prefixo informado
func Keys(prefix string) []string {
	return []string{
		prefix + KeyProducts,
		prefix + KeyPurchases,
		prefix + KeyUser,
		prefix + KeyToken,
	}
}

// Copy replica as chaves do Cache de um Store para outro. Chaves ausentes na
// origem são ignoradas. Devolve quantas chaves foram copiadas.
func Copy(ctx context.Context, from, to Store, prefix string) (int, error) {
	copied := 0

	for _, key := range Keys(prefix) {
		value, err := from.Get(ctx, key)
		if errors.Is(err, ErrNotFound) {
			log.ForContext(ctx).WithField("key", key).Debug("Chave ausente na origem, ignorando")
			continue
		}
		if err != nil {
			return copied, errors.Wrapf(err, "erro ao ler %s da origem", key)
		}

		if err := to.Set(ctx, key, value); err != nil {
			return copied, errors.Wrapf(err, "erro ao gravar %s no destino", key)
		}
		copied++
	}

	return copied, nil
}
