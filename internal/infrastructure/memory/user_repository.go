package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/oksasatya/go-ddd-user-record/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-record/internal/domain/repository"
)

// UserRepository keeps users in process memory. It is safe for concurrent use.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]entity.User
	byEmail map[string]string // normalized email -> id
	order   []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]entity.User),
		byEmail: make(map[string]string),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepository) Create(ctx context.Context, u entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u == nil {
		return errNilUser
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[u.ID()]; ok {
		return repository.ErrUserAlreadyExists
	}
	key := emailKey(u.Email())
	if _, ok := r.byEmail[key]; ok {
		return repository.ErrEmailAlreadyExists
	}
	r.byID[u.ID()] = u
	r.byEmail[key] = u.ID()
	r.order = append(r.order, u.ID())
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return r.byID[id], nil
}

func (r *UserRepository) List(ctx context.Context, role entity.Role) ([]entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]entity.User, 0, len(r.order))
	for _, id := range r.order {
		u := r.byID[id]
		if role != "" && u.Role() != role {
			continue
		}
		res = append(res, u)
	}
	return res, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, emailKey(u.Email()))
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

var errNilUser = errors.New("nil user")

var _ repository.UserRepository = (*UserRepository)(nil)
