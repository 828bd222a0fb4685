package service

import (
	"context"
	"errors"
	"sync"

	"github.com/genaicorelab/iam-backend/internal/domain"
	"github.com/genaicorelab/iam-backend/internal/repository"
	"github.com/genaicorelab/iam-backend/pkg/auth"
	"github.com/genaicorelab/iam-backend/pkg/hash"

	"go.uber.org/zap"
)

const TokenTypeBearer = "bearer"

const dummyPassword = "not-a-real-password"

type authService struct {
	userRepository repository.Users
	hasher         hash.PasswordHasher
	tokenManager   auth.TokenManager
	logger         *zap.Logger

	// dummyHash is compared against when the email is unknown so that a
	// missing account costs the same hashing work as a wrong password.
	dummyOnce sync.Once
	dummyHash string
}

func newAuthService(userRepository repository.Users,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	logger *zap.Logger,
) *authService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenManager:   tokenManager,
		logger:         logger,
	}
}

func (s *authService) Authenticate(ctx context.Context, email string, password string) (*domain.Identity, error) {
	user, err := s.userRepository.GetActiveByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("get user by email failed", zap.Error(err))
			return nil, ErrStorageFault
		}
		_, _ = s.hasher.Verify(password, s.dummyPasswordHash())
		return nil, ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.logger.Error("verify password failed", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, ErrCryptoFault
	}

	if !ok || user.Deregistered() {
		return nil, ErrInvalidCredentials
	}

	return &domain.Identity{UserID: user.ID, Email: user.Email}, nil
}

func (s *authService) IssueToken(identity *domain.Identity) (*Token, error) {
	accessToken, _, err := s.tokenManager.NewJWT(identity.Email)
	if err != nil {
		s.logger.Error("issue access token failed", zap.Error(err))
		return nil, ErrCryptoFault
	}

	return &Token{AccessToken: accessToken, TokenType: TokenTypeBearer}, nil
}

func (s *authService) Login(ctx context.Context, email string, password string) (*Token, error) {
	identity, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return s.IssueToken(identity)
}

// ParseAccessToken returns the email a valid token was issued for.
func (s *authService) ParseAccessToken(accessToken string) (string, error) {
	email, err := s.tokenManager.Parse(accessToken)
	if err != nil {
		s.logger.Debug("reject access token", zap.Error(err))
		return "", ErrInvalidCredentials
	}

	return email, nil
}

func (s *authService) dummyPasswordHash() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash(dummyPassword)
		if err != nil {
			s.logger.Error("hash dummy password failed", zap.Error(err))
			return
		}
		s.dummyHash = h
	})
	return s.dummyHash
}
