package apiHttp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/genaicorelab/iam-backend/internal/config"
	"github.com/genaicorelab/iam-backend/internal/db"
	"github.com/genaicorelab/iam-backend/internal/repository"
	"github.com/genaicorelab/iam-backend/internal/service"
	"github.com/genaicorelab/iam-backend/pkg/auth"
	"github.com/genaicorelab/iam-backend/pkg/hash"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newRouter(t, newTestConfig(t))
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Env: "test",
		HttpServer: config.HttpServer{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: config.Database{
			Driver: config.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "iam.db"),
		},
		Limiter: config.Limiter{RPS: 1000, Burst: 1000, TTL: time.Minute},
		Auth: config.AuthConfig{
			JWT: config.JWTConfig{
				SigningKey:               "test-signing-key",
				Algorithm:                "HS256",
				AccessTokenExpireMinutes: 30,
			},
			BcryptCost: bcrypt.MinCost,
		},
	}
}

func newRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()

	conn, err := db.New(cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx, conn))
	require.NoError(t, db.SeedReferences(ctx, conn, []string{"admin", "user"}, []string{"engineer", "doctor"}))

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	require.NoError(t, err)

	services := service.NewServices(service.Deps{
		Logger:       zap.NewNop(),
		Config:       cfg,
		Hasher:       hash.NewBcryptHasher(cfg.Auth.BcryptCost),
		TokenManager: tokenManager,
		Repos:        repository.NewRepositories(conn),
	})

	return NewHandlers(services, cfg, zap.NewNop()).Init(cfg)
}

func do(router *gin.Engine, method string, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginDelete(t *testing.T) {
	router := newTestRouter(t)

	alice := map[string]string{
		"username":   "alice",
		"email":      "alice@x.com",
		"password":   "Secret123!",
		"phone":      "9876543210",
		"role":       "admin",
		"profession": "engineer",
		"country":    "IN",
		"city":       "Pune",
	}

	w := do(router, http.MethodPost, "/register/", alice, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var registered struct {
		Message string `json:"message"`
		UserID  int64  `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.Positive(t, registered.UserID)

	w = do(router, http.MethodPost, "/register/", alice, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(router, http.MethodPost, "/login/", map[string]string{"email": "alice@x.com", "password": "Secret123!"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &token))
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)

	w = do(router, http.MethodPost, "/login/", map[string]string{"email": "alice@x.com", "password": "WrongPass1!"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	wrongPassword := w.Body.String()

	w = do(router, http.MethodPost, "/login/", map[string]string{"email": "nobody@x.com", "password": "Secret123!"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrongPassword, w.Body.String())

	w = do(router, http.MethodGet, "/users/me", nil, map[string]string{"Authorization": "Bearer " + token.AccessToken})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"profession":"engineer"`)

	w = do(router, http.MethodDelete, "/delete/", map[string]string{"phone": "9876543210"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodDelete, "/delete/", map[string]string{"phone": "9876543210"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodPost, "/login/", map[string]string{"email": "alice@x.com", "password": "Secret123!"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterInvalidReference(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/register/", map[string]string{
		"username":   "alice",
		"email":      "alice@x.com",
		"password":   "Secret123!",
		"phone":      "9876543210",
		"role":       "superuser",
		"profession": "engineer",
		"country":    "IN",
		"city":       "Pune",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheckAndReferences(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/roles/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"role_id":1,"role_name":"admin"},{"role_id":2,"role_name":"user"}]`, w.Body.String())
}

func TestRequestIDAndCORS(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/", nil, map[string]string{"Origin": "http://localhost:3000"})
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(router, http.MethodGet, "/", nil, map[string]string{
		"Origin":        "https://evil.example",
		requestIDHeader: "6f1c1f0e-5a7b-4c1d-9a47-2b2d0b7f4c11",
	})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "6f1c1f0e-5a7b-4c1d-9a47-2b2d0b7f4c11", w.Header().Get(requestIDHeader))

	w = do(router, http.MethodOptions, "/register/", nil, map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRegisterLoginLongPassword(t *testing.T) {
	router := newTestRouter(t)
	password := strings.Repeat("Secret123!", 8)

	w := do(router, http.MethodPost, "/register/", map[string]string{
		"username":   "alice",
		"email":      "alice@x.com",
		"password":   password,
		"phone":      "9876543210",
		"role":       "admin",
		"profession": "engineer",
		"country":    "IN",
		"city":       "Pune",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(router, http.MethodPost, "/login/", map[string]string{"email": "alice@x.com", "password": password}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodPost, "/login/", map[string]string{"email": "alice@x.com", "password": password + "x"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitIgnoresForwardedFor(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Limiter = config.Limiter{RPS: 1, Burst: 1, TTL: time.Minute}
	router := newRouter(t, cfg)

	w := do(router, http.MethodGet, "/", nil, map[string]string{"X-Forwarded-For": "203.0.113.1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/", nil, map[string]string{"X-Forwarded-For": "203.0.113.2"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitHonoursTrustedProxy(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Limiter = config.Limiter{RPS: 1, Burst: 1, TTL: time.Minute}
	// httptest requests come from 192.0.2.1
	cfg.HttpServer.TrustedProxies = []string{"192.0.2.1"}
	router := newRouter(t, cfg)

	w := do(router, http.MethodGet, "/", nil, map[string]string{"X-Forwarded-For": "203.0.113.1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/", nil, map[string]string{"X-Forwarded-For": "203.0.113.2"})
	assert.Equal(t, http.StatusOK, w.Code)
}
