package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/clickmassa/volt-credit-middleware/internal/usecase"
	"github.com/clickmassa/volt-credit-middleware/internal/validator"
)

type CpfHandler struct {
	CpfUC *usecase.CpfUseCase
}

func NewCpfHandler(uc *usecase.CpfUseCase) *CpfHandler {
	return &CpfHandler{CpfUC: uc}
}

// HandleValidar valida o CPF por formato e dígitos verificadores.
// Sempre responde 200; o resultado vai no corpo.
func (h *CpfHandler) HandleValidar(w http.ResponseWriter, r *http.Request) {
	var input usecase.ValidarCpfRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	cpfLimpo, err := validator.ValidateCPF(input.Cpf)
	if err != nil {
		log.Printf("[CPF] CPF inválido: %v", err)
		writeJSON(w, http.StatusOK, usecase.ValidarCpfResponse{
			Valido:   false,
			Mensagem: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, usecase.ValidarCpfResponse{
		Valido:       true,
		CpfFormatado: validator.FormatCPF(cpfLimpo),
		Mensagem:     "CPF válido",
	})
}

// HandleConsultar valida o CPF e devolve os dados cadastrais enriquecidos.
func (h *CpfHandler) HandleConsultar(w http.ResponseWriter, r *http.Request) {
	var input usecase.ConsultaCpfRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.CpfUC.ConsultarCpf(r.Context(), input.Cpf)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
