package utils

import (
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto, usado como X-Request-ID nas chamadas remotas
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// LocalID gera o identificador de registros criados offline (milissegundos desde a época)
func LocalID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
