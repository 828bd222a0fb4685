package service

import (
	"context"

	"github.com/genaicorelab/iam-backend/internal/cache"
	"github.com/genaicorelab/iam-backend/internal/config"
	"github.com/genaicorelab/iam-backend/internal/domain"
	"github.com/genaicorelab/iam-backend/internal/repository"
	"github.com/genaicorelab/iam-backend/pkg/auth"
	"github.com/genaicorelab/iam-backend/pkg/hash"

	"go.uber.org/zap"
)

type Services struct {
	Users      Users
	Auth       Auth
	References References
}

type Deps struct {
	Logger       *zap.Logger
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	Repos        *repository.Repositories
	Cache        cache.Cache
	Notifier     Notifier
}

func NewServices(deps Deps) *Services {
	notifier := deps.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	c := deps.Cache
	if c == nil {
		c = cache.Nop{}
	}

	return &Services{
		Users:      newUserService(deps.Repos.Users, deps.Hasher, notifier, deps.Logger),
		Auth:       newAuthService(deps.Repos.Users, deps.Hasher, deps.TokenManager, deps.Logger),
		References: newReferenceService(deps.Repos.References, c, deps.Config.Cache.TTL, deps.Logger),
	}
}

type UserRegisterInput struct {
	Username   string
	Email      string
	Password   string
	Phone      string
	Role       string
	Profession string
	Country    string
	City       string
}

type Users interface {
	Register(ctx context.Context, input UserRegisterInput) (int64, error)
	DeregisterByPhone(ctx context.Context, phone string) error
	GetProfile(ctx context.Context, email string) (*domain.UserProfile, error)
}

type Token struct {
	AccessToken string
	TokenType   string
}

type Auth interface {
	Authenticate(ctx context.Context, email string, password string) (*domain.Identity, error)
	IssueToken(identity *domain.Identity) (*Token, error)
	Login(ctx context.Context, email string, password string) (*Token, error)
	ParseAccessToken(accessToken string) (string, error)
}

type References interface {
	GetRoles(ctx context.Context) ([]domain.Role, error)
	GetProfessions(ctx context.Context) ([]domain.Profession, error)
}
