package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   code,
		"message": message,
		"status":  status,
	})
}

// writeAppError mapeia a taxonomia de erro para o status HTTP do contrato:
// 400 validação, 401 auth, 404 não encontrado, 502 gateway/externa, 500 resto.
func writeAppError(w http.ResponseWriter, err error) {
	appErr := apperr.From(err)
	writeErrorResponse(w, appErr.Status, appErr.Code, appErr.Message)
}
