package service

import (
	"context"
	"errors"
	"testing"

	"github.com/genaicorelab/iam-backend/internal/domain"
	"github.com/genaicorelab/iam-backend/pkg/hash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func aliceInput() UserRegisterInput {
	return UserRegisterInput{
		Username:   "alice",
		Email:      "alice@x.com",
		Password:   "Secret123!",
		Phone:      "9876543210",
		Role:       "admin",
		Profession: "engineer",
		Country:    "IN",
		City:       "Pune",
	}
}

func TestUserService_Register(t *testing.T) {
	repo := new(usersRepoMock)
	notifier := new(notifierMock)
	hasher := hash.NewBcryptHasher(bcrypt.MinCost)
	s := newUserService(repo, hasher, notifier, zap.NewNop())
	ctx := context.Background()

	repo.On("Register", ctx, mock.MatchedBy(func(c *domain.RegistrationCandidate) bool {
		ok, err := hasher.Verify("Secret123!", c.PasswordHash)
		return err == nil && ok &&
			c.Username == "alice" && c.Email == "alice@x.com" && c.Phone == "9876543210" &&
			c.Role == "admin" && c.Profession == "engineer" && c.Country == "IN" && c.City == "Pune"
	})).Return(int64(7), nil).Once()
	notifier.On("UserRegistered", ctx, "alice@x.com", "alice").Return(nil).Once()

	id, err := s.Register(ctx, aliceInput())
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUserService_RegisterNotifierFailureIgnored(t *testing.T) {
	repo := new(usersRepoMock)
	notifier := new(notifierMock)
	s := newUserService(repo, hash.NewBcryptHasher(bcrypt.MinCost), notifier, zap.NewNop())

	repo.On("Register", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	notifier.On("UserRegistered", mock.Anything, "alice@x.com", "alice").Return(errors.New("redis down")).Once()

	id, err := s.Register(context.Background(), aliceInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestUserService_RegisterErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "invalid reference", repoErr: domain.ErrInvalidReference, wantErr: ErrInvalidReference},
		{name: "duplicate", repoErr: domain.ErrDuplicateEntry, wantErr: ErrUserAlreadyExist},
		{name: "storage", repoErr: errors.New("Error 2013: Lost connection to MySQL server"), wantErr: ErrStorageFault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(usersRepoMock)
			notifier := new(notifierMock)
			s := newUserService(repo, hash.NewBcryptHasher(bcrypt.MinCost), notifier, zap.NewNop())

			repo.On("Register", mock.Anything, mock.Anything).Return(int64(0), tt.repoErr).Once()

			_, err := s.Register(context.Background(), aliceInput())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotContains(t, err.Error(), "MySQL")
			notifier.AssertNotCalled(t, "UserRegistered", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_RegisterEmptyPassword(t *testing.T) {
	repo := new(usersRepoMock)
	s := newUserService(repo, hash.NewBcryptHasher(bcrypt.MinCost), NopNotifier{}, zap.NewNop())

	input := aliceInput()
	input.Password = ""

	_, err := s.Register(context.Background(), input)
	assert.ErrorIs(t, err, ErrCryptoFault)
	repo.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserService_DeregisterByPhone(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "ok"},
		{name: "not found", repoErr: domain.ErrNotFound, wantErr: ErrUserNotFound},
		{name: "storage", repoErr: errors.New("deadlock"), wantErr: ErrStorageFault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(usersRepoMock)
			s := newUserService(repo, hash.NewBcryptHasher(bcrypt.MinCost), NopNotifier{}, zap.NewNop())

			repo.On("DeregisterByPhone", mock.Anything, "9876543210").Return(tt.repoErr).Once()

			err := s.DeregisterByPhone(context.Background(), "9876543210")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_GetProfile(t *testing.T) {
	repo := new(usersRepoMock)
	s := newUserService(repo, hash.NewBcryptHasher(bcrypt.MinCost), NopNotifier{}, zap.NewNop())
	ctx := context.Background()

	repo.On("GetProfileByEmail", ctx, "alice@x.com").Return(&domain.UserProfile{Username: "alice"}, nil).Once()
	repo.On("GetProfileByEmail", ctx, "nobody@x.com").Return(nil, domain.ErrNotFound).Once()

	profile, err := s.GetProfile(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)

	_, err = s.GetProfile(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
