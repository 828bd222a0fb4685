package service

import (
	"context"
	"errors"

	"github.com/genaicorelab/iam-backend/internal/domain"
	"github.com/genaicorelab/iam-backend/internal/repository"
	"github.com/genaicorelab/iam-backend/pkg/hash"

	"go.uber.org/zap"
)

type userService struct {
	userRepository repository.Users
	hasher         hash.PasswordHasher
	notifier       Notifier
	logger         *zap.Logger
}

func newUserService(userRepository repository.Users,
	hasher hash.PasswordHasher,
	notifier Notifier,
	logger *zap.Logger,
) *userService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *userService) Register(ctx context.Context, input UserRegisterInput) (int64, error) {
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return 0, ErrCryptoFault
	}

	id, err := s.userRepository.Register(ctx, &domain.RegistrationCandidate{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Phone:        input.Phone,
		Role:         input.Role,
		Profession:   input.Profession,
		Country:      input.Country,
		City:         input.City,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReference):
			return 0, ErrInvalidReference
		case errors.Is(err, domain.ErrDuplicateEntry):
			return 0, ErrUserAlreadyExist
		}
		s.logger.Error("register user failed", zap.Error(err))
		return 0, ErrStorageFault
	}

	// the account is already committed; a lost welcome email is not a failure
	if err := s.notifier.UserRegistered(ctx, input.Email, input.Username); err != nil {
		s.logger.Warn("notify registration failed", zap.Int64("user_id", id), zap.Error(err))
	}

	return id, nil
}

func (s *userService) DeregisterByPhone(ctx context.Context, phone string) error {
	if err := s.userRepository.DeregisterByPhone(ctx, phone); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("deregister user failed", zap.Error(err))
		return ErrStorageFault
	}

	return nil
}

func (s *userService) GetProfile(ctx context.Context, email string) (*domain.UserProfile, error) {
	profile, err := s.userRepository.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("get user profile failed", zap.Error(err))
		return nil, ErrStorageFault
	}

	return profile, nil
}
