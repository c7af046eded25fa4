package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidatePixKey valida e normaliza uma chave PIX conforme o tipo declarado.
// Tipos aceitos: cpf, phone/telefone, email, random/aleatoria.
func ValidatePixKey(chave, tipo string) (string, error) {
	chave = strings.TrimSpace(chave)

	switch strings.ToLower(tipo) {
	case "cpf":
		return ValidateCPF(chave)
	case "phone", "telefone":
		return validatePhoneKey(chave)
	case "email":
		return validateEmailKey(chave)
	case "random", "aleatoria":
		return validateRandomKey(chave)
	default:
		return "", apperr.NewValidation(fmt.Sprintf("Tipo de chave PIX inválido: %s", tipo))
	}
}

// Aceita 11 dígitos (DDD + número) ou 13 começando com 55.
// Normaliza para "+55 DD NNNNN-NNNN".
func validatePhoneKey(chave string) (string, error) {
	cleaned := CleanCPF(chave)

	if len(cleaned) == 13 && strings.HasPrefix(cleaned, "55") {
		return fmt.Sprintf("+55 %s %s-%s", cleaned[2:4], cleaned[4:9], cleaned[9:13]), nil
	}
	if len(cleaned) == 11 {
		return fmt.Sprintf("+55 %s %s-%s", cleaned[0:2], cleaned[2:7], cleaned[7:11]), nil
	}

	return "", apperr.NewValidation("Telefone deve ter 11 dígitos (DDD + número)")
}

func validateEmailKey(chave string) (string, error) {
	if !emailRegex.MatchString(chave) {
		return "", apperr.NewValidation("Email inválido para chave PIX")
	}
	return strings.ToLower(chave), nil
}

// Chave aleatória (EVP): 32 caracteres hex, normalizada para o
// agrupamento canônico 8-4-4-4-12.
func validateRandomKey(chave string) (string, error) {
	cleaned := strings.ToLower(strings.ReplaceAll(chave, "-", ""))
	if len(cleaned) != 32 {
		return "", apperr.NewValidation("Chave aleatória deve ser um UUID válido (32 caracteres hex)")
	}

	u, err := uuid.Parse(cleaned)
	if err != nil {
		return "", apperr.NewValidation("Chave aleatória deve ser um UUID válido (32 caracteres hex)")
	}
	return u.String(), nil
}

// DetectPixKeyType infere o tipo pela forma da chave. Uso apenas informativo:
// nunca substitui a validação com tipo explícito.
func DetectPixKeyType(chave string) string {
	cleaned := CleanCPF(chave)

	if len(cleaned) == 11 {
		if _, err := ValidateCPF(chave); err == nil {
			return "cpf"
		}
	}

	if len(cleaned) == 11 || len(cleaned) == 13 {
		return "phone"
	}

	if strings.Contains(chave, "@") {
		return "email"
	}

	if len(chave) >= 32 {
		return "random"
	}

	return "unknown"
}
