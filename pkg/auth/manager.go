package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/genaicorelab/iam-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	pkgerrors "github.com/pkg/errors"
)

var ErrAccessTokenExpired = errors.New("token has invalid claims: token is expired")

// TokenManager provides logic for JWT access token generation and parsing.
type TokenManager interface {
	NewJWT(subject string) (string, time.Duration, error)
	Parse(accessToken string) (string, error)
}

type Manager struct {
	signingKey     []byte
	method         jwt.SigningMethod
	accessTokenTTL time.Duration
	now            func() time.Time
}

var signingMethods = map[string]jwt.SigningMethod{
	jwt.SigningMethodHS256.Alg(): jwt.SigningMethodHS256,
	jwt.SigningMethodHS384.Alg(): jwt.SigningMethodHS384,
	jwt.SigningMethodHS512.Alg(): jwt.SigningMethodHS512,
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("empty signing key")
	}

	method, ok := signingMethods[cfg.Algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}

	if cfg.AccessTokenTTL() <= 0 {
		return nil, errors.New("empty access token ttl")
	}

	return &Manager{
		signingKey:     []byte(cfg.SigningKey),
		method:         method,
		accessTokenTTL: cfg.AccessTokenTTL(),
		now:            time.Now,
	}, nil
}

// NewJWT signs a token for subject that expires after the configured TTL.
func (m *Manager) NewJWT(subject string) (string, time.Duration, error) {
	now := m.now()
	token := jwt.NewWithClaims(m.method, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTokenTTL)),
	})

	accessToken, err := token.SignedString(m.signingKey)
	if err != nil {
		return "", 0, pkgerrors.Wrap(err, "sign jwt failed")
	}

	return accessToken, m.accessTokenTTL, nil
}

// Parse validates signature, algorithm and expiry and returns the subject.
func (m *Manager) Parse(accessToken string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return m.signingKey, nil
	},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrAccessTokenExpired
		}
		return "", err
	}

	if claims.Subject == "" {
		return "", errors.New("error get subject from token")
	}

	return claims.Subject, nil
}
