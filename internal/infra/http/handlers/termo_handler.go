package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clickmassa/volt-credit-middleware/internal/usecase"
)

type TermoHandler struct {
	TermoUC *usecase.TermoUseCase
}

func NewTermoHandler(uc *usecase.TermoUseCase) *TermoHandler {
	return &TermoHandler{TermoUC: uc}
}

func (h *TermoHandler) HandleCriar(w http.ResponseWriter, r *http.Request) {
	var input usecase.CriarTermoRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.TermoUC.CriarTermo(r.Context(), input)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// HandleObter devolve o HTML do termo para o front-end exibir.
func (h *TermoHandler) HandleObter(w http.ResponseWriter, r *http.Request) {
	termoID := chi.URLParam(r, "id")

	html, err := h.TermoUC.ObterTermo(r.Context(), termoID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func (h *TermoHandler) HandleAceitar(w http.ResponseWriter, r *http.Request) {
	var input usecase.AceitarTermoRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if _, err := h.TermoUC.AceitarTermo(r.Context(), input.TermoID, input.Cpf); err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "sucesso",
		"mensagem": "Termo aceito com sucesso",
	})
}

func (h *TermoHandler) HandleAutorizar(w http.ResponseWriter, r *http.Request) {
	var input usecase.AutorizarTermoRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.TermoUC.AutorizarTermo(r.Context(), input.TermoID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
