package nina

import (
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// User is the account entity. Password always holds the bcrypt digest; the
// plaintext never survives past the create/update flows. ID is zero until
// the store assigns one.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Name          string    `bun:"name,notnull" json:"name,omitempty"`
	Email         string    `bun:"email,notnull,unique" json:"email,omitempty"`
	Password      string    `bun:"password_hash,notnull" json:"-"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at,omitempty"`
}

// NewUser constructs an unpersisted user. A blank name, email, or password is
// a domain-rule violation regardless of what upstream validation did.
func NewUser(name, email, password string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, goerrors.New("Name cannot be empty.", goerrors.CategoryValidation)
	}

	if strings.TrimSpace(email) == "" {
		return nil, goerrors.New("Email cannot be empty.", goerrors.CategoryValidation)
	}

	if strings.TrimSpace(password) == "" {
		return nil, goerrors.New("Password cannot be empty.", goerrors.CategoryValidation)
	}

	return &User{
		Name:     name,
		Email:    email,
		Password: password,
	}, nil
}

// UpdateDetails overwrites each attribute only when the corresponding field
// is present and non-blank; anything else keeps the current value. Format and
// uniqueness checks are the caller's job before getting here.
func (u *User) UpdateDetails(name, email, password Optional[string]) {
	if v, ok := name.Get(); ok && strings.TrimSpace(v) != "" {
		u.Name = v
	}

	if v, ok := email.Get(); ok && strings.TrimSpace(v) != "" {
		u.Email = v
	}

	if v, ok := password.Get(); ok && strings.TrimSpace(v) != "" {
		u.Password = v
	}
}

// Persisted reports whether the store has assigned an identity.
func (u *User) Persisted() bool {
	return u != nil && u.ID > 0
}
