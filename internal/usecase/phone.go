package usecase

import (
	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
	"github.com/clickmassa/volt-credit-middleware/internal/validator"
)

// parseLocalPhone quebra um telefone nacional em DDD + número.
// Aceita 10 ou 11 dígitos (fixo ou celular).
func parseLocalPhone(raw string) (ddd, numero string, err error) {
	cleaned := validator.CleanCPF(raw)

	switch len(cleaned) {
	case 11:
		return cleaned[0:2], cleaned[2:11], nil
	case 10:
		return cleaned[0:2], cleaned[2:10], nil
	default:
		return "", "", apperr.NewValidation("Telefone inválido. Use formato: 11984353470")
	}
}

// parseFullPhone quebra o telefone vindo da consulta V8 em código de país,
// DDD e número. Com 13+ dígitos assume código de país embutido; com 11,
// assume Brasil.
func parseFullPhone(raw string) (countryCode, ddd, numero string, err error) {
	cleaned := validator.CleanCPF(raw)

	if len(cleaned) >= 13 {
		return cleaned[0:2], cleaned[2:4], cleaned[4:], nil
	}
	if len(cleaned) == 11 {
		return "55", cleaned[0:2], cleaned[2:], nil
	}
	return "", "", "", apperr.NewValidation("Telefone da consulta está em formato inválido.")
}

// birthDateFromCompact converte a data compacta do registro de pessoa
// (YYYYMMDD) para ISO (YYYY-MM-DD).
func birthDateFromCompact(nasc string) (string, error) {
	if len(nasc) != 8 {
		return "", apperr.NewExternalAPI("HighConsult", "data de nascimento em formato inesperado: "+nasc, 0)
	}
	return nasc[0:4] + "-" + nasc[4:6] + "-" + nasc[6:8], nil
}
