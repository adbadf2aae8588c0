package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/household-store/admin-api/internal/core/domain"
	"github.com/household-store/admin-api/internal/core/ports"
)

const defaultCacheTTL = 5 * time.Minute

// UserCache is a read-through cache over a ports.UserRepository. Only
// FindByEmail is cached, since it runs on every authenticated request to
// resolve the actor. Entries are dropped whenever the account is saved or
// deleted, and an unreachable Redis degrades to the inner repository rather
// than erroring.
type UserCache struct {
	client *redis.Client
	next   ports.UserRepository
	ttl    time.Duration
}

func NewUserCache(client *redis.Client, next ports.UserRepository, ttl time.Duration) *UserCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &UserCache{client: client, next: next, ttl: ttl}
}

func (c *UserCache) key(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}

func (c *UserCache) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if raw, err := c.client.Get(ctx, c.key(email)).Bytes(); err == nil {
		entry := cachedUser{User: &domain.User{}}
		if json.Unmarshal(raw, &entry) == nil {
			entry.User.PasswordHash = entry.PasswordHash
			return entry.User, nil
		}
	}

	user, err := c.next.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if raw, err := marshalUser(user); err == nil {
		_ = c.client.Set(ctx, c.key(email), raw, c.ttl).Err()
	}
	return user, nil
}

func (c *UserCache) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	saved, err := c.next.Save(ctx, user)
	if err != nil {
		return nil, err
	}
	_ = c.client.Del(ctx, c.key(saved.Email)).Err()
	return saved, nil
}

func (c *UserCache) Delete(ctx context.Context, user *domain.User) error {
	if err := c.next.Delete(ctx, user); err != nil {
		return err
	}
	_ = c.client.Del(ctx, c.key(user.Email)).Err()
	return nil
}

// The remaining reads are admin-panel queries; they go straight through.

func (c *UserCache) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return c.next.ExistsByEmail(ctx, email)
}

func (c *UserCache) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return c.next.FindByID(ctx, id)
}

func (c *UserCache) FindAll(ctx context.Context) ([]*domain.User, error) {
	return c.next.FindAll(ctx)
}

func (c *UserCache) Search(ctx context.Context, term string) ([]*domain.User, error) {
	return c.next.Search(ctx, term)
}

func (c *UserCache) FindByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	return c.next.FindByRole(ctx, role)
}

// marshalUser round-trips through a shadow struct so the password hash
// survives caching; domain.User hides it from JSON deliberately.
func marshalUser(u *domain.User) ([]byte, error) {
	return json.Marshal(cachedUser{User: u, PasswordHash: u.PasswordHash})
}

type cachedUser struct {
	*domain.User
	PasswordHash string `json:"password_hash"`
}
