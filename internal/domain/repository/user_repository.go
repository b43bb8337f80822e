package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-ddd-user-record/internal/domain/entity"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this id already exists")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
)

// UserRepository stores users and keeps ids and emails unique.
// Returned users are the stored records, so SetPassword on them is persisted.
type UserRepository interface {
	Create(ctx context.Context, u entity.User) error
	GetByID(ctx context.Context, id string) (entity.User, error)
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	// List returns users ordered by insertion. An empty role lists everyone.
	List(ctx context.Context, role entity.Role) ([]entity.User, error)
	Delete(ctx context.Context, id string) error
}
