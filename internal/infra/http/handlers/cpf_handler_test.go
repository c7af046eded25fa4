package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/highconsult"
	"github.com/clickmassa/volt-credit-middleware/internal/usecase"
)

func TestHandleValidarCpfValido(t *testing.T) {
	handler := NewCpfHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/cpf/validar", strings.NewReader(`{"cpf":"52998224725"}`))
	rec := httptest.NewRecorder()
	handler.HandleValidar(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp usecase.ValidarCpfResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valido)
	assert.Equal(t, "529.982.247-25", resp.CpfFormatado)
	assert.Equal(t, "CPF válido", resp.Mensagem)
}

func TestHandleValidarCpfInvalido(t *testing.T) {
	handler := NewCpfHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/cpf/validar", strings.NewReader(`{"cpf":"11111111111"}`))
	rec := httptest.NewRecorder()
	handler.HandleValidar(rec, req)

	// CPF inválido não é erro HTTP, o resultado vai no corpo
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp usecase.ValidarCpfResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valido)
	assert.NotEmpty(t, resp.Mensagem)
}

func TestHandleValidarCpfJSONInvalido(t *testing.T) {
	handler := NewCpfHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/cpf/validar", strings.NewReader(`{cpf`))
	rec := httptest.NewRecorder()
	handler.HandleValidar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_JSON", resp["error"])
}

func TestHandleConsultarCpf(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "52998224725", r.URL.Query().Get("cpf"))
		w.Write([]byte(`{"nome": "Fulano da Silva", "nasc": "19900515"}`))
	}))
	defer upstream.Close()

	handler := NewCpfHandler(usecase.NewCpfUseCase(highconsult.NewClient(upstream.URL)))

	req := httptest.NewRequest(http.MethodPost, "/cpf/consultar", strings.NewReader(`{"cpf":"529.982.247-25"}`))
	rec := httptest.NewRecorder()
	handler.HandleConsultar(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp usecase.ConsultaCpfResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "529.982.247-25", resp.Cpf)
	assert.Equal(t, "Fulano da Silva", resp.Nome)
	assert.Equal(t, "ativo", resp.Status)
}

func TestHandleConsultarCpfUpstreamFora(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	handler := NewCpfHandler(usecase.NewCpfUseCase(highconsult.NewClient(upstream.URL)))

	req := httptest.NewRequest(http.MethodPost, "/cpf/consultar", strings.NewReader(`{"cpf":"52998224725"}`))
	rec := httptest.NewRecorder()
	handler.HandleConsultar(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "EXTERNAL_API_ERROR", resp["error"])
}
