package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/fenixAlex88/technical-support/internal/domain"
)

// DefaultRole is assigned when registration names no roles.
const DefaultRole = "USER"

// AuthService composes the user and role stores, the password hasher, the
// token codec and the validation cache into login, registration, logout and
// token validation.
type AuthService struct {
	users    UserRepository
	roles    RoleRepository
	hasher   PasswordHasher
	codec    TokenCodec
	cache    IdentityCache
	cacheTTL time.Duration
}

func NewAuthService(users UserRepository, roles RoleRepository, hasher PasswordHasher, codec TokenCodec, cache IdentityCache, cacheTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		roles:    roles,
		hasher:   hasher,
		codec:    codec,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, name, password string) (string, error) {
	user, err := s.users.FindByName(ctx, name)
	if err != nil {
		return "", err
	}
	if !s.hasher.Verify(user.PasswordHash, password) {
		return "", domain.ErrInvalidCredentials
	}
	return s.codec.Issue(*user)
}

type RegisterInput struct {
	Name       string
	Password   string
	Email      string
	TelegramID string
	Roles      []string
}

// Register resolves every requested role before any write, so an unknown
// role name never leaves a partially persisted user behind. An omitted or
// empty role list defaults to the baseline role, which must itself exist.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (string, error) {
	exists, err := s.users.ExistsByName(ctx, input.Name)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrUserAlreadyExists
	}

	roleNames := input.Roles
	if len(roleNames) == 0 {
		roleNames = []string{DefaultRole}
	}
	resolved := make([]string, 0, len(roleNames))
	for _, name := range roleNames {
		role, err := s.roles.FindByName(ctx, name)
		if err != nil {
			return "", err
		}
		resolved = append(resolved, role.Name)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return "", err
	}
	user, err := s.users.Create(ctx, domain.User{
		Name:         input.Name,
		PasswordHash: hash,
		Email:        input.Email,
		TelegramID:   input.TelegramID,
		Roles:        resolved,
	})
	if err != nil {
		return "", err
	}
	return s.codec.Issue(user)
}

// ValidateToken is on the hot path of every gateway-proxied call: a cache
// hit returns immediately, a miss runs signature verification plus a user
// lookup and populates the cache. Failed validations are never cached.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*domain.Identity, error) {
	if cached, ok, err := s.cache.Get(ctx, token); err == nil && ok {
		return cached, nil
	}
	claims, err := s.codec.Parse(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	user, err := s.users.FindByName(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	identity := domain.IdentityFromUser(*user)
	if err := s.cache.Put(ctx, token, identity, s.cacheTTL); err != nil {
		// Cache population is best effort; validation already succeeded.
		return &identity, nil
	}
	return &identity, nil
}

// Logout evicts the cache entry for a structurally valid token. The signed
// bytes themselves stay verifiable until expiry; once the TTL window has
// passed a re-validation runs the full path again.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if _, err := s.codec.Parse(token); err != nil {
		return domain.ErrInvalidToken
	}
	return s.cache.Evict(ctx, token)
}

func (s *AuthService) ListRoles(ctx context.Context) ([]string, error) {
	roles, err := s.roles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(roles))
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		if _, ok := seen[role.Name]; ok {
			continue
		}
		seen[role.Name] = struct{}{}
		names = append(names, role.Name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *AuthService) ListUsers(ctx context.Context, page, size int, sortDir string, roleFilter []string) (*domain.Page, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	query := ListQuery{
		Page:       page,
		Size:       size,
		Descending: strings.EqualFold(sortDir, "desc"),
		Roles:      roleFilter,
	}
	users, total, err := s.users.List(ctx, query)
	if err != nil {
		return nil, err
	}
	content := make([]domain.Identity, 0, len(users))
	for _, user := range users {
		content = append(content, domain.IdentityFromUser(user))
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	return &domain.Page{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func (s *AuthService) GetUser(ctx context.Context, id int64) (*domain.Identity, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	identity := domain.IdentityFromUser(*user)
	return &identity, nil
}
