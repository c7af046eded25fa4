package highconsult

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
)

const providerName = "HighConsult"

// PersonData é o registro de pessoa física devolvido pela consulta por CPF.
type PersonData struct {
	Nome     string `json:"nome"`
	Nasc     string `json:"nasc"` // YYYYMMDD
	Mae      string `json:"mae"`
	Endereco string `json:"endereco"`
	Cidade   string `json:"cidade"`
	UF       string `json:"uf"`
	Email    string `json:"email,omitempty"`
	CEP      string `json:"cep"`
	Bairro   string `json:"bairro"`
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

// GetPersonData consulta os dados cadastrais de um CPF. Sem autenticação,
// sem retry, sem cache.
func (c *Client) GetPersonData(ctx context.Context, cpf string) (*PersonData, error) {
	url := fmt.Sprintf("%s/dados.php?cpf=%s", c.baseURL, cpf)

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
		return nil, apperr.NewExternalAPI(providerName, "falha ao buscar dados", resp.StatusCode)
	}

	var result PersonData
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperr.NewExternalAPI(providerName, "falha ao parsear resposta: "+err.Error(), resp.StatusCode)
	}

	log.Printf("[HighConsult] Dados do CPF obtidos: %s", result.Nome)
	return &result, nil
}
