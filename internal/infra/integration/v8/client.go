package v8

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
)

// TokenProvider resolve a credencial bearer antes de cada chamada.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

type Client struct {
	baseURL  string
	tokens   TokenProvider
	configID string
	provider string
	http     *http.Client
}

func NewClient(baseURL string, tokens TokenProvider, configID, provider string) *Client {
	return &Client{
		baseURL:  baseURL,
		tokens:   tokens,
		configID: configID,
		provider: provider,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) ConfigID() string {
	return c.configID
}

// 1. CRIAR TERMO
func (c *Client) CreateTermo(ctx context.Context, request CreateTermoRequest) (*CreateTermoResponse, error) {
	url := fmt.Sprintf("%s/private-consignment/consult", c.baseURL)

	log.Printf("[V8] Criando termo para CPF: %s", request.BorrowerDocumentNumber)

	var result CreateTermoResponse
	if err := c.postJSON(ctx, url, request, &result, "criar termo"); err != nil {
		return nil, err
	}

	log.Printf("[V8] Termo criado com ID: %s", result.ID)
	return &result, nil
}

// 2. GET TERMO (HTML para assinatura)
func (c *Client) GetTermo(ctx context.Context, termoID string) (string, error) {
	url := fmt.Sprintf("%s/termos-de-autorizacao/%s", c.baseURL, termoID)
	return c.getHTML(ctx, url, "buscar termo")
}

// 3. ACEITAR TERMO (GET)
func (c *Client) AcceptTermo(ctx context.Context, termoID, cpf string) (string, error) {
	url := fmt.Sprintf("%s/private-consignment/consult/%s/unprotected/%s", c.baseURL, termoID, cpf)
	return c.getHTML(ctx, url, "aceitar termo")
}

// 4. AUTORIZAR TERMO (POST)
func (c *Client) AuthorizeTermo(ctx context.Context, termoID string) (string, error) {
	url := fmt.Sprintf("%s/private-consignment/consult/%s/authorize", c.baseURL, termoID)

	log.Printf("[V8] Autorizando termo: %s", termoID)

	req, err := c.newRequest(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperr.NewGateway("falha na requisição: "+err.Error(), 0, "")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", apperr.NewGateway("falha ao autorizar termo", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.NewGateway("falha ao ler resposta: "+err.Error(), resp.StatusCode, "")
	}
	return string(body), nil
}

// 5. CONSULTAR DADOS
func (c *Client) GetConsultData(ctx context.Context, consultID string) (*ConsultDataResponse, error) {
	url := fmt.Sprintf("%s/private-consignment/consult/%s", c.baseURL, consultID)

	log.Printf("[V8] Consultando dados: %s", consultID)

	var result ConsultDataResponse
	if err := c.getJSON(ctx, url, &result, "consultar dados"); err != nil {
		return nil, err
	}

	log.Printf("[V8] Dados consultados. Margem disponível: R$ %s", result.MarginBaseValue)
	return &result, nil
}

// 6. CRIAR SIMULAÇÃO
func (c *Client) CreateSimulation(ctx context.Context, request CreateSimulationRequest) (*SimulationResponse, error) {
	url := fmt.Sprintf("%s/private-consignment/simulation", c.baseURL)

	log.Printf("[V8] Criando simulação: %d parcelas de R$ %.2f",
		request.NumberOfInstallments, request.InstallmentFaceValue)

	var result SimulationResponse
	if err := c.postJSON(ctx, url, request, &result, "criar simulação"); err != nil {
		return nil, err
	}

	log.Printf("[V8] Simulação criada: R$ %.2f em %d parcelas",
		result.OperationAmount, result.NumberOfInstallments)
	return &result, nil
}

// 7. CRIAR OPERAÇÃO
func (c *Client) CreateOperation(ctx context.Context, request CreateOperationRequest) (*CreateOperationResponse, error) {
	url := fmt.Sprintf("%s/private-consignment/operation", c.baseURL)

	log.Printf("[V8] Criando operação para: %s", request.Borrower.IndividualDocumentNumber)

	var result CreateOperationResponse
	if err := c.postJSON(ctx, url, request, &result, "criar operação"); err != nil {
		return nil, err
	}

	log.Printf("[V8] Operação criada com ID: %s (formalização: %s)", result.ID, result.FormalizationURL)
	return &result, nil
}

// 8. CONSULTAR OPERAÇÃO
func (c *Client) GetOperation(ctx context.Context, operationID string) (*OperationResponse, error) {
	url := fmt.Sprintf("%s/private-consignment/operation/%s?provider=%s", c.baseURL, operationID, c.provider)

	var result OperationResponse
	if err := c.getJSON(ctx, url, &result, "consultar operação"); err != nil {
		return nil, err
	}

	log.Printf("[V8] Operação %s com status: %s", result.ID, result.Status)
	return &result, nil
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	token, err := c.tokens.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, apperr.NewGateway("falha ao montar requisição: "+err.Error(), 0, "")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) postJSON(ctx context.Context, url string, payload, out interface{}, action string) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return apperr.NewGateway("falha ao serializar payload: "+err.Error(), 0, "")
	}

	req, err := c.newRequest(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}

	return c.do(req, out, action)
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}, action string) error {
	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return c.do(req, out, action)
}

func (c *Client) getHTML(ctx context.Context, url, action string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperr.NewGateway("falha na requisição: "+err.Error(), 0, "")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", apperr.NewGateway("falha ao "+action, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.NewGateway("falha ao ler resposta: "+err.Error(), resp.StatusCode, "")
	}
	return string(body), nil
}

func (c *Client) do(req *http.Request, out interface{}, action string) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.NewGateway("falha na requisição: "+err.Error(), 0, "")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[V8] Erro ao %s: status=%d, body=%s", action, resp.StatusCode, string(body))
		return apperr.NewGateway("falha ao "+action, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.NewGateway("falha ao parsear resposta: "+err.Error(), resp.StatusCode, "")
	}
	return nil
}
