package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Códigos estáveis devolvidos no corpo JSON de erro.
const (
	CodeConfig      = "CONFIG_ERROR"
	CodeAuth        = "AUTH_ERROR"
	CodeGateway     = "V8_ERROR"
	CodeExternalAPI = "EXTERNAL_API_ERROR"
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeInternal    = "INTERNAL_ERROR"
)

// AppError carrega a taxonomia de erro do serviço. UpstreamStatus e
// UpstreamBody só são preenchidos quando o erro vem de uma chamada externa.
type AppError struct {
	Code           string
	Message        string
	Status         int
	UpstreamStatus int
	UpstreamBody   string
}

func (e *AppError) Error() string {
	if e.UpstreamStatus != 0 {
		return fmt.Sprintf("%s: status=%d, body=%s", e.Message, e.UpstreamStatus, e.UpstreamBody)
	}
	return e.Message
}

func NewConfig(msg string) *AppError {
	return &AppError{Code: CodeConfig, Message: "Erro de configuração: " + msg, Status: http.StatusInternalServerError}
}

func NewAuth(msg string, upstreamStatus int, upstreamBody string) *AppError {
	return &AppError{
		Code:           CodeAuth,
		Message:        "Erro de autenticação: " + msg,
		Status:         http.StatusUnauthorized,
		UpstreamStatus: upstreamStatus,
		UpstreamBody:   upstreamBody,
	}
}

func NewGateway(msg string, upstreamStatus int, upstreamBody string) *AppError {
	return &AppError{
		Code:           CodeGateway,
		Message:        "Erro na API V8: " + msg,
		Status:         http.StatusBadGateway,
		UpstreamStatus: upstreamStatus,
		UpstreamBody:   upstreamBody,
	}
}

func NewExternalAPI(provider, msg string, upstreamStatus int) *AppError {
	return &AppError{
		Code:           CodeExternalAPI,
		Message:        fmt.Sprintf("Erro na API externa (%s): %s", provider, msg),
		Status:         http.StatusBadGateway,
		UpstreamStatus: upstreamStatus,
	}
}

func NewValidation(msg string) *AppError {
	return &AppError{Code: CodeValidation, Message: msg, Status: http.StatusBadRequest}
}

func NewNotFound(msg string) *AppError {
	return &AppError{Code: CodeNotFound, Message: msg, Status: http.StatusNotFound}
}

func NewInternal(msg string) *AppError {
	return &AppError{Code: CodeInternal, Message: "Erro interno: " + msg, Status: http.StatusInternalServerError}
}

// From normaliza qualquer erro para *AppError. Erros desconhecidos viram
// INTERNAL_ERROR com status 500.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: CodeInternal, Message: err.Error(), Status: http.StatusInternalServerError}
}

func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeValidation
}

func IsGateway(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeGateway
}
