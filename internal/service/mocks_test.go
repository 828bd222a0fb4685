package service

import (
	"context"
	"time"

	"github.com/genaicorelab/iam-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type usersRepoMock struct {
	mock.Mock
}

func (m *usersRepoMock) Register(ctx context.Context, candidate *domain.RegistrationCandidate) (int64, error) {
	args := m.Called(ctx, candidate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *usersRepoMock) DeregisterByPhone(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *usersRepoMock) GetActiveByEmail(ctx context.Context, email string) (*domain.ActiveUser, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.ActiveUser)
	return user, args.Error(1)
}

func (m *usersRepoMock) GetProfileByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	args := m.Called(ctx, email)
	profile, _ := args.Get(0).(*domain.UserProfile)
	return profile, args.Error(1)
}

type referencesRepoMock struct {
	mock.Mock
}

func (m *referencesRepoMock) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	args := m.Called(ctx, name)
	role, _ := args.Get(0).(*domain.Role)
	return role, args.Error(1)
}

func (m *referencesRepoMock) GetProfessionByName(ctx context.Context, name string) (*domain.Profession, error) {
	args := m.Called(ctx, name)
	profession, _ := args.Get(0).(*domain.Profession)
	return profession, args.Error(1)
}

func (m *referencesRepoMock) GetAllRoles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]domain.Role)
	return roles, args.Error(1)
}

func (m *referencesRepoMock) GetAllProfessions(ctx context.Context) ([]domain.Profession, error) {
	args := m.Called(ctx)
	professions, _ := args.Get(0).([]domain.Profession)
	return professions, args.Error(1)
}

type tokenManagerMock struct {
	mock.Mock
}

func (m *tokenManagerMock) NewJWT(subject string) (string, time.Duration, error) {
	args := m.Called(subject)
	return args.String(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *tokenManagerMock) Parse(accessToken string) (string, error) {
	args := m.Called(accessToken)
	return args.String(0), args.Error(1)
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) UserRegistered(ctx context.Context, email string, username string) error {
	args := m.Called(ctx, email, username)
	return args.Error(0)
}

type cacheMock struct {
	mock.Mock
}

func (m *cacheMock) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *cacheMock) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
