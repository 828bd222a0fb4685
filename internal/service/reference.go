package service

import (
	"context"
	"time"

	"github.com/genaicorelab/iam-backend/internal/cache"
	"github.com/genaicorelab/iam-backend/internal/domain"
	"github.com/genaicorelab/iam-backend/internal/repository"

	"go.uber.org/zap"
)

const (
	rolesCacheKey       = "roles"
	professionsCacheKey = "professions"
)

type referenceService struct {
	referenceRepository repository.References
	cache               cache.Cache
	ttl                 time.Duration
	logger              *zap.Logger
}

func newReferenceService(referenceRepository repository.References, c cache.Cache, ttl time.Duration, logger *zap.Logger) *referenceService {
	return &referenceService{
		referenceRepository: referenceRepository,
		cache:               c,
		ttl:                 ttl,
		logger:              logger,
	}
}

func (s *referenceService) GetRoles(ctx context.Context) ([]domain.Role, error) {
	return cached(ctx, s, rolesCacheKey, s.referenceRepository.GetAllRoles)
}

func (s *referenceService) GetProfessions(ctx context.Context) ([]domain.Profession, error) {
	return cached(ctx, s, professionsCacheKey, s.referenceRepository.GetAllProfessions)
}

// cached reads key through the cache. Cache errors are logged and fall back
// to the database.
func cached[T any](ctx context.Context, s *referenceService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var items []T
	found, err := s.cache.Get(ctx, key, &items)
	if err != nil {
		s.logger.Warn("read reference cache failed", zap.String("key", key), zap.Error(err))
	}
	if found {
		return items, nil
	}

	items, err = load(ctx)
	if err != nil {
		s.logger.Error("load reference data failed", zap.String("key", key), zap.Error(err))
		return nil, ErrStorageFault
	}

	if err := s.cache.Set(ctx, key, items, s.ttl); err != nil {
		s.logger.Warn("write reference cache failed", zap.String("key", key), zap.Error(err))
	}

	return items, nil
}
