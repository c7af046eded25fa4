package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
)

const providerName = "ViaCEP"

type Address struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	IBGE        string `json:"ibge,omitempty"`
	GIA         string `json:"gia,omitempty"`
	DDD         string `json:"ddd,omitempty"`
	SIAFI       string `json:"siafi,omitempty"`

	// ViaCEP responde 200 com {"erro": true} para CEP inexistente.
	Erro bool `json:"erro,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// GetAddress consulta o endereço de um CEP. Sem autenticação, sem retry.
func (c *Client) GetAddress(ctx context.Context, cep string) (*Address, error) {
	cleaned := strings.NewReplacer("-", "", ".", "").Replace(cep)
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, cleaned)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.NewExternalAPI(providerName, "falha ao montar requisição: "+err.Error(), 0)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.NewExternalAPI(providerName, "falha ao consultar: "+err.Error(), 0)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.NewExternalAPI(providerName, "falha ao buscar endereço", resp.StatusCode)
	}

	var result Address
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperr.NewExternalAPI(providerName, "falha ao parsear resposta: "+err.Error(), resp.StatusCode)
	}

	if result.Erro {
		return nil, apperr.NewExternalAPI(providerName, fmt.Sprintf("CEP não encontrado: %s", cleaned), resp.StatusCode)
	}

	log.Printf("[ViaCEP] Endereço obtido: %s, %s", result.Logradouro, result.Localidade)
	return &result, nil
}
