package auth

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
)

const tokenCacheKey = "v8_access_token"

// Margem descontada do expires_in declarado pelo provedor de identidade, para
// nunca servir um token na iminência de expirar.
const expiryMargin = 30 * time.Second

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// TokenManager obtém e cacheia o token bearer do V8 via password grant.
// Misses concorrentes são deduplicados: uma única autenticação em voo
// atende todos os chamadores.
type TokenManager struct {
	cache    *TokenCache
	http     *http.Client
	group    singleflight.Group
	cacheTTL time.Duration

	authURL  string
	clientID string
	username string
	password string
	audience string
}

func NewTokenManager(authURL, clientID, username, password, audience string, cacheTTL time.Duration) *TokenManager {
	return &TokenManager{
		cache:    NewTokenCache(cacheTTL),
		http:     &http.Client{Timeout: 30 * time.Second},
		cacheTTL: cacheTTL,
		authURL:  authURL,
		clientID: clientID,
		username: username,
		password: password,
		audience: audience,
	}
}

func (m *TokenManager) GetToken(ctx context.Context) (string, error) {
	if token, ok := m.cache.Get(tokenCacheKey); ok {
		return token, nil
	}

	v, err, _ := m.group.Do(tokenCacheKey, func() (interface{}, error) {
		// Outro chamador pode ter populado o cache enquanto esperávamos.
		if token, ok := m.cache.Get(tokenCacheKey); ok {
			return token, nil
		}

		log.Println("[Auth] Token não encontrado no cache, autenticando...")
		resp, err := m.authenticate(ctx)
		if err != nil {
			return nil, err
		}

		ttl := m.cacheTTL
		if declared := time.Duration(resp.ExpiresIn)*time.Second - expiryMargin; declared > 0 && declared < ttl {
			ttl = declared
		}
		m.cache.SetWithTTL(tokenCacheKey, resp.AccessToken, ttl)

		return resp.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (m *TokenManager) authenticate(ctx context.Context) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", m.username)
	form.Set("password", m.password)
	form.Set("audience", m.audience)
	form.Set("scope", "offline_access")
	form.Set("client_id", m.clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperr.NewAuth("falha ao montar requisição: "+err.Error(), 0, "")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.http.Do(req)
	if err != nil {
		return nil, apperr.NewAuth("falha na requisição: "+err.Error(), 0, "")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[Auth] Falha na autenticação: status=%d, body=%s", resp.StatusCode, string(body))
		return nil, apperr.NewAuth("falha na autenticação", resp.StatusCode, string(body))
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, apperr.NewAuth("falha ao parsear resposta de token: "+err.Error(), resp.StatusCode, "")
	}

	log.Printf("[Auth] Autenticação V8 bem-sucedida (expira em %ds)", tokenResp.ExpiresIn)
	return &tokenResp, nil
}

// Invalidate limpa o cache; a próxima chamada reautentica.
func (m *TokenManager) Invalidate() {
	m.cache.InvalidateAll()
	log.Println("[Auth] Cache de token invalidado")
}
