package sucataclient

import (
	"context"
	"net/http"

	"github.com/mitchellh/mapstructure"
)

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse é a resposta de /auth/login. Todos os campos são opcionais;
// o id pode vir numérico.
type LoginResponse struct {
	ID       string `json:"id" mapstructure:"id"`
	Username string `json:"username" mapstructure:"username"`
	Email    string `json:"email" mapstructure:"email"`
	Role     string `json:"role" mapstructure:"role"`
	Token    string `json:"token" mapstructure:"token"`
}

func (r *LoginResponse) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var decoded LoginResponse
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &decoded,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return err
	}

	*r = decoded
	return nil
}

func (c *SucataClient) Login(ctx context.Context, req LoginRequest) Result[*LoginResponse] {
	return decodeJSON[*LoginResponse](c.doJSON(ctx, http.MethodPost, "/auth/login", req))
}
