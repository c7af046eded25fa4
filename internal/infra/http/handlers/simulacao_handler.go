package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/clickmassa/volt-credit-middleware/internal/infra/http/middleware"
	"github.com/clickmassa/volt-credit-middleware/internal/usecase"
)

type SimulacaoHandler struct {
	SimulacaoUC *usecase.SimulacaoUseCase
}

func NewSimulacaoHandler(uc *usecase.SimulacaoUseCase) *SimulacaoHandler {
	return &SimulacaoHandler{SimulacaoUC: uc}
}

func (h *SimulacaoHandler) HandleGerar(w http.ResponseWriter, r *http.Request) {
	var input usecase.GerarSimulacoesRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	simulacoes, err := h.SimulacaoUC.GerarSimulacoes(r.Context(), input.ConsultID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	middleware.RecordSimulationsGenerated(len(simulacoes))

	writeJSON(w, http.StatusOK, usecase.GerarSimulacoesResponse{
		Simulacoes: simulacoes,
		Status:     "sucesso",
		Mensagem:   fmt.Sprintf("%d simulações geradas com sucesso", len(simulacoes)),
	})
}
