package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clickmassa/volt-credit-middleware/internal/infra/http/middleware"
	"github.com/clickmassa/volt-credit-middleware/internal/usecase"
)

type PropostaHandler struct {
	PropostaUC *usecase.PropostaUseCase
}

func NewPropostaHandler(uc *usecase.PropostaUseCase) *PropostaHandler {
	return &PropostaHandler{PropostaUC: uc}
}

func (h *PropostaHandler) HandleCriar(w http.ResponseWriter, r *http.Request) {
	var input usecase.CriarPropostaRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.PropostaUC.CriarProposta(r.Context(), input)
	if err != nil {
		writeAppError(w, err)
		return
	}

	middleware.RecordOperationCreated()

	writeJSON(w, http.StatusOK, output)
}

func (h *PropostaHandler) HandleConsultarOperacao(w http.ResponseWriter, r *http.Request) {
	operationID := chi.URLParam(r, "id")
	if operationID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "id da operação é obrigatório")
		return
	}

	output, err := h.PropostaUC.ConsultarOperacao(r.Context(), operationID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
