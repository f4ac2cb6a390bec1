package usecase

import (
	"context"
	"time"

	"github.com/fenixAlex88/technical-support/internal/domain"
)

type UserRepository interface {
	FindByName(ctx context.Context, name string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	List(ctx context.Context, query ListQuery) ([]domain.User, int64, error)
}

type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
}

// ListQuery carries paging and filtering for user listings. Descending is
// only set for a literal "desc" sort parameter; every other value means
// ascending by name.
type ListQuery struct {
	Page       int
	Size       int
	Descending bool
	Roles      []string
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

type TokenCodec interface {
	Issue(user domain.User) (string, error)
	Parse(token string) (*domain.TokenClaims, error)
}

// IdentityCache maps a raw token string to its previously resolved identity.
// Implementations must be safe for concurrent Get/Put/Evict; failed
// validations are never stored.
type IdentityCache interface {
	Get(ctx context.Context, token string) (*domain.Identity, bool, error)
	Put(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error
	Evict(ctx context.Context, token string) error
}
