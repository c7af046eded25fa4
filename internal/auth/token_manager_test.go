package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clickmassa/volt-credit-middleware/internal/apperr"
)

func newAuthServer(t *testing.T, calls *int32, delay time.Duration) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if delay > 0 {
			time.Sleep(delay)
		}

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.FormValue("grant_type"))
		assert.Equal(t, "offline_access", r.FormValue("scope"))
		assert.Equal(t, "client-1", r.FormValue("client_id"))
		assert.Equal(t, "usuario", r.FormValue("username"))

		json.NewEncoder(w).Encode(TokenResponse{
			AccessToken: "tok-123",
			ExpiresIn:   3600,
			TokenType:   "Bearer",
		})
	}))
}

func TestGetTokenCachesAfterFirstCall(t *testing.T) {
	var calls int32
	server := newAuthServer(t, &calls, 0)
	defer server.Close()

	manager := NewTokenManager(server.URL, "client-1", "usuario", "senha", "aud", 1*time.Hour)

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// Segunda chamada vem do cache, sem HTTP
	token, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetTokenDeduplicatesConcurrentMisses(t *testing.T) {
	var calls int32
	server := newAuthServer(t, &calls, 50*time.Millisecond)
	defer server.Close()

	manager := NewTokenManager(server.URL, "client-1", "usuario", "senha", "aud", 1*time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := manager.GetToken(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "tok-123", token)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetTokenAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	manager := NewTokenManager(server.URL, "client-1", "usuario", "senha-errada", "aud", 1*time.Hour)

	_, err := manager.GetToken(context.Background())
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.CodeAuth, appErr.Code)
	assert.Equal(t, http.StatusUnauthorized, appErr.UpstreamStatus)
	assert.Contains(t, appErr.UpstreamBody, "invalid_grant")
}

func TestInvalidateForcesReauthentication(t *testing.T) {
	var calls int32
	server := newAuthServer(t, &calls, 0)
	defer server.Close()

	manager := NewTokenManager(server.URL, "client-1", "usuario", "senha", "aud", 1*time.Hour)

	_, err := manager.GetToken(context.Background())
	require.NoError(t, err)

	manager.Invalidate()

	_, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGetTokenHonorsShortExpiresIn(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		// 31s declarados menos a margem de 30s deixam 1s de TTL efetivo
		json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok-curto", ExpiresIn: 31, TokenType: "Bearer"})
	}))
	defer server.Close()

	manager := NewTokenManager(server.URL, "client-1", "usuario", "senha", "aud", 1*time.Hour)

	_, err := manager.GetToken(context.Background())
	require.NoError(t, err)

	time.Sleep(1200 * time.Millisecond)

	_, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
