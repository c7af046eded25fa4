package validator

import (
	"fmt"
	"strings"

	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
)

// CleanCPF remove tudo que não for dígito.
func CleanCPF(cpf string) string {
	var b strings.Builder
	for _, c := range cpf {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ValidateCPF normaliza e valida um CPF, devolvendo os 11 dígitos limpos.
func ValidateCPF(cpf string) (string, error) {
	cleaned := CleanCPF(cpf)

	if len(cleaned) != 11 {
		return "", apperr.NewValidation("CPF deve conter exatamente 11 dígitos")
	}

	allEqual := true
	for i := 1; i < len(cleaned); i++ {
		if cleaned[i] != cleaned[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return "", apperr.NewValidation("CPF inválido: todos os dígitos são iguais")
	}

	if !validCheckDigits(cleaned) {
		return "", apperr.NewValidation("CPF inválido: dígitos verificadores incorretos")
	}

	return cleaned, nil
}

func validCheckDigits(cpf string) bool {
	digits := make([]int, 11)
	for i := 0; i < 11; i++ {
		digits[i] = int(cpf[i] - '0')
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	first := 11 - sum%11
	if sum%11 < 2 {
		first = 0
	}
	if digits[9] != first {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digits[i] * (11 - i)
	}
	second := 11 - sum%11
	if sum%11 < 2 {
		second = 0
	}
	return digits[10] == second
}

// FormatCPF formata para exibição (xxx.xxx.xxx-xx). Não revalida: se a entrada
// não tiver 11 dígitos, devolve como veio.
func FormatCPF(cpf string) string {
	cleaned := CleanCPF(cpf)
	if len(cleaned) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", cleaned[0:3], cleaned[3:6], cleaned[6:9], cleaned[9:11])
}
