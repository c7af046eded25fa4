package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/clickmassa/volt-credit-middleware/internal/usecase"
	"github.com/clickmassa/volt-credit-middleware/internal/validator"
)

type PixHandler struct{}

func NewPixHandler() *PixHandler {
	return &PixHandler{}
}

// HandleValidar valida o CPF do titular e a chave PIX conforme o tipo
// declarado. Chave inválida não é erro HTTP: responde 200 com valida=false.
func (h *PixHandler) HandleValidar(w http.ResponseWriter, r *http.Request) {
	var input usecase.ValidarPixRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if _, err := validator.ValidateCPF(input.Cpf); err != nil {
		writeAppError(w, err)
		return
	}

	chaveFormatada, err := validator.ValidatePixKey(input.ChavePix, input.TipoChave)
	if err != nil {
		log.Printf("[PIX] Chave inválida: %v", err)
		writeJSON(w, http.StatusOK, usecase.ValidarPixResponse{
			Valida:    false,
			TipoChave: input.TipoChave,
			Mensagem:  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, usecase.ValidarPixResponse{
		Valida:         true,
		TipoChave:      input.TipoChave,
		ChaveFormatada: chaveFormatada,
		Mensagem:       "Chave PIX válida",
	})
}
