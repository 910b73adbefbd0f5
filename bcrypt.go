package nina

import (
	goerrors "github.com/goliatone/go-errors"
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost keeps hashing deliberately expensive; raise it as
// hardware gets faster.
const DefaultBcryptCost = 12

// BcryptHasher hashes passwords with bcrypt at a configurable cost.
type BcryptHasher struct {
	cost int
}

var _ Hasher = (*BcryptHasher)(nil)

// NewBcryptHasher returns a hasher using the given cost; values outside
// bcrypt's supported range fall back to DefaultBcryptCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash generates a salted digest. Each call salts independently, so hashing
// the same password twice yields different digests.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", goerrors.New("password must not be empty", goerrors.CategoryValidation)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}

	return string(digest), nil
}

// Verify reports whether password produced hash. Anything bcrypt cannot
// parse, including garbage input, simply does not verify.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
