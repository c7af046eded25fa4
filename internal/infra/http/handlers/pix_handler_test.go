package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clickmassa/volt-credit-middleware/internal/usecase"
)

func TestHandleValidarPixValida(t *testing.T) {
	handler := NewPixHandler()

	body := `{"cpf":"52998224725","chave_pix":"11984353470","tipo_chave":"phone"}`
	req := httptest.NewRequest(http.MethodPost, "/pix/validar", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleValidar(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp usecase.ValidarPixResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valida)
	assert.Equal(t, "phone", resp.TipoChave)
	assert.Equal(t, "+55 11 98435-3470", resp.ChaveFormatada)
}

func TestHandleValidarPixChaveInvalida(t *testing.T) {
	handler := NewPixHandler()

	body := `{"cpf":"52998224725","chave_pix":"984353470","tipo_chave":"phone"}`
	req := httptest.NewRequest(http.MethodPost, "/pix/validar", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleValidar(rec, req)

	// Chave inválida ainda responde 200 com valida=false
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp usecase.ValidarPixResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valida)
	assert.NotEmpty(t, resp.Mensagem)
}

func TestHandleValidarPixCpfInvalido(t *testing.T) {
	handler := NewPixHandler()

	// CPF do titular inválido é erro de verdade, não valida=false
	body := `{"cpf":"123","chave_pix":"11984353470","tipo_chave":"phone"}`
	req := httptest.NewRequest(http.MethodPost, "/pix/validar", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleValidar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp["error"])
}
