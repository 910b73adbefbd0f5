package nina

import (
	"context"
	"fmt"
	"time"
)

// Logger is the minimal logging surface the core depends on. Callers can
// plug in any structured logger; args are alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Repository is the persistence collaborator for user records. Lookups return
// (nil, nil) when no record matches; a non-nil error always means an
// infrastructure failure, never a business condition.
type Repository interface {
	GetPage(ctx context.Context, page, pageSize int) (*PagedList[*User], error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	EmailInUse(ctx context.Context, email string) (bool, error)
	// Create persists a new user and returns it with the store-assigned ID,
	// or nil when the store reports that no row was written.
	Create(ctx context.Context, user *User) (*User, error)
	// Update reports false when no row matched the user's ID, which covers
	// both deletion and a concurrent write winning the race.
	Update(ctx context.Context, user *User) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Hasher produces and verifies salted one-way password digests.
type Hasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. Malformed hashes simply
	// do not verify; there is no error path.
	Verify(password, hash string) bool
}

// TokenIssuer builds signed credential tokens for persisted users.
type TokenIssuer interface {
	Generate(user *User) (string, error)
	TTL() time.Duration
}

// Authenticator is the login surface the transport layer consumes.
type Authenticator interface {
	Login(ctx context.Context, req UserLogin) Outcome[AuthenticationResponse]
}

// UserManager is the user-lifecycle surface the transport layer consumes.
type UserManager interface {
	Create(ctx context.Context, in UserCreation) Outcome[UserResponse]
	GetByID(ctx context.Context, id int64) Outcome[UserResponse]
	GetPage(ctx context.Context, p Pagination) Outcome[*PagedList[UserResponse]]
	Update(ctx context.Context, id int64, in UserUpdation) Outcome[Empty]
	Delete(ctx context.Context, id int64) Outcome[Empty]
}

// Config holds the token issuing options.
type Config interface {
	GetSigningKey() string
	GetTokenExpiration() int
	GetIssuer() string
	GetAudience() []string
}

type defLogger struct{}

func (d defLogger) Error(msg string, args ...any) { d.print("ERR", msg, args...) }
func (d defLogger) Warn(msg string, args ...any)  { d.print("WRN", msg, args...) }
func (d defLogger) Info(msg string, args ...any)  { d.print("INF", msg, args...) }
func (d defLogger) Debug(msg string, args ...any) { d.print("DBG", msg, args...) }

func (defLogger) print(level, msg string, args ...any) {
	if len(args) == 0 {
		fmt.Printf("[%s] %s\n", level, msg)
		return
	}
	fmt.Printf("[%s] %s %v\n", level, msg, args)
}
