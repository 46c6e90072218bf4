package service

import (
	"context"
	"time"

	"go-users-api/internal/core/cache"
	"go-users-api/internal/domain"
)

const (
	statesCacheKey = "states:all"
	statesCacheTTL = 5 * time.Minute
)

// StateService serves the lookup table. The full list is small and hot, so
// reads go through redis when a cache is configured.
type StateService struct {
	states domain.StateRepository
	cache  *cache.Cache // nil disables caching
}

func NewStateService(states domain.StateRepository, c *cache.Cache) *StateService {
	return &StateService{states: states, cache: c}
}

func (s *StateService) List(ctx context.Context) ([]domain.State, error) {
	if s.cache == nil {
		return s.states.List(ctx)
	}
	out, err := cache.GetOrLoadJSON[[]domain.State](s.cache, ctx, statesCacheKey, statesCacheTTL,
		func(ctx context.Context) (*[]domain.State, error) {
			states, err := s.states.List(ctx)
			if err != nil {
				return nil, err
			}
			return &states, nil
		})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return []domain.State{}, nil
	}
	return *out, nil
}

func (s *StateService) Create(ctx context.Context, name string) (*domain.State, error) {
	st := &domain.State{Name: name}
	if err := s.states.Create(ctx, st); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, statesCacheKey)
	}
	return st, nil
}
