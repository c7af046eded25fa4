package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
)

type Config struct {
	// Servidor
	Host        string
	Port        int
	Environment string

	// V8 Sistema — URLs e credenciais variam conforme o ambiente
	V8AuthURL  string
	V8BaseURL  string
	V8ClientID string
	V8Username string
	V8Password string
	V8Audience string
	V8ConfigID string
	V8Provider string

	// APIs externas
	HighConsultAPIURL string
	ViaCepAPIURL      string

	// Cache
	TokenCacheTTL time.Duration
}

// Load monta a configuração a partir do ambiente. As variáveis do V8 têm
// sufixo _PROD ou _STAGING conforme ENVIRONMENT.
func Load() (*Config, error) {
	environment := getEnvDefault("ENVIRONMENT", "staging")

	suffix := "_STAGING"
	if environment == "production" {
		suffix = "_PROD"
	}

	port, err := strconv.Atoi(getEnvDefault("PORT", "3000"))
	if err != nil {
		return nil, apperr.NewConfig("PORT deve ser um número")
	}

	ttlSeconds, err := strconv.Atoi(getEnvDefault("TOKEN_CACHE_TTL_SECONDS", "3600"))
	if err != nil {
		return nil, apperr.NewConfig("TOKEN_CACHE_TTL_SECONDS deve ser um número")
	}

	cfg := &Config{
		Host:        getEnvDefault("HOST", "0.0.0.0"),
		Port:        port,
		Environment: environment,

		V8Provider:    getEnvDefault("V8_PROVIDER", "QI"),
		TokenCacheTTL: time.Duration(ttlSeconds) * time.Second,
	}

	required := []struct {
		key  string
		dest *string
	}{
		{"V8_AUTH_URL" + suffix, &cfg.V8AuthURL},
		{"V8_BASE_URL" + suffix, &cfg.V8BaseURL},
		{"V8_CLIENT_ID" + suffix, &cfg.V8ClientID},
		{"V8_USERNAME" + suffix, &cfg.V8Username},
		{"V8_PASSWORD" + suffix, &cfg.V8Password},
		{"V8_AUDIENCE" + suffix, &cfg.V8Audience},
		{"V8_CONFIG_ID", &cfg.V8ConfigID},
		{"HIGHCONSULT_API_URL", &cfg.HighConsultAPIURL},
		{"VIACEP_API_URL", &cfg.ViaCepAPIURL},
	}

	for _, v := range required {
		value := os.Getenv(v.key)
		if value == "" {
			return nil, apperr.NewConfig(fmt.Sprintf("Variável de ambiente não encontrada: %s", v.key))
		}
		*v.dest = value
	}

	return cfg, nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
