package handlers

import (
	"context"

	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/v8"
)

type fixedTokens struct{}

func (fixedTokens) GetToken(_ context.Context) (string, error) {
	return "tok-teste", nil
}

func newV8Client(serverURL string) *v8.Client {
	return v8.NewClient(serverURL, fixedTokens{}, "config-1", "QI")
}
