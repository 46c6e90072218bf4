// Package repotest provides in-memory repository fakes for tests. They mimic
// the store contract: finders return (nil, nil) on a miss and Create rejects
// duplicate usernames/emails the way a unique index would.
package repotest

import (
	"context"
	"errors"
	"sync"

	"go-users-api/internal/domain"
)

var (
	_ domain.UserRepository  = (*UserRepo)(nil)
	_ domain.StateRepository = (*StateRepo)(nil)
)

type UserRepo struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]*domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{items: map[uint]*domain.User{}}
}

func (r *UserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.Username == u.Username || e.Email == u.Email {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	r.seq++
	u.ID = r.seq
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *UserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.items[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findWhere(func(u *domain.User) bool { return u.Username == username })
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findWhere(func(u *domain.User) bool { return u.Email == email })
}

func (r *UserRepo) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	return r.findWhere(func(u *domain.User) bool {
		return u.Username == identifier || u.Email == identifier
	})
}

func (r *UserRepo) findWhere(match func(*domain.User) bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context, offset, limit int) ([]domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.items))
	for i := uint(1); i <= r.seq; i++ {
		if u, ok := r.items[i]; ok {
			out = append(out, *u)
		}
	}
	total := int64(len(out))
	if limit > 0 {
		if offset > len(out) {
			offset = len(out)
		}
		end := offset + limit
		if end > len(out) {
			end = len(out)
		}
		out = out[offset:end]
	}
	return out, total, nil
}

func (r *UserRepo) Update(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type StateRepo struct {
	mu    sync.Mutex
	seq   uint
	items []domain.State
}

func NewStateRepo() *StateRepo { return &StateRepo{} }

func (r *StateRepo) Create(_ context.Context, s *domain.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	s.ID = r.seq
	r.items = append(r.items, *s)
	return nil
}

func (r *StateRepo) List(_ context.Context) ([]domain.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.State, len(r.items))
	copy(out, r.items)
	return out, nil
}
