package nina

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// TokenClaims is the claim set carried by issued session tokens.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// UserID returns the numeric identity encoded in the subject claim.
func (c *TokenClaims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// TokenService issues and validates HS256-signed session tokens.
type TokenService struct {
	signingKey    []byte
	expiryMinutes int
	issuer        string
	audience      jwt.ClaimStrings
	logger        Logger
}

var _ TokenIssuer = (*TokenService)(nil)

// NewTokenService builds a token service from configuration. A missing
// secret, issuer, audience, or expiry is a startup failure; the process
// should refuse to come up rather than issue broken tokens.
func NewTokenService(cfg Config, logger Logger) (*TokenService, error) {
	if logger == nil {
		logger = defLogger{}
	}

	if cfg.GetSigningKey() == "" {
		return nil, goerrors.New("token signing key is not configured", goerrors.CategoryInternal)
	}

	if cfg.GetIssuer() == "" {
		return nil, goerrors.New("token issuer is not configured", goerrors.CategoryInternal)
	}

	if len(cfg.GetAudience()) == 0 {
		return nil, goerrors.New("token audience is not configured", goerrors.CategoryInternal)
	}

	if cfg.GetTokenExpiration() <= 0 {
		return nil, goerrors.New("token expiration is not configured", goerrors.CategoryInternal)
	}

	return &TokenService{
		signingKey:    []byte(cfg.GetSigningKey()),
		expiryMinutes: cfg.GetTokenExpiration(),
		issuer:        cfg.GetIssuer(),
		audience:      jwt.ClaimStrings(cfg.GetAudience()),
		logger:        logger,
	}, nil
}

// TTL returns the validity window of newly issued tokens.
func (ts *TokenService) TTL() time.Duration {
	return time.Duration(ts.expiryMinutes) * time.Minute
}

// Generate issues a signed token for a persisted user. The jti claim is a
// fresh UUID per call, so two tokens for the same user never collide.
func (ts *TokenService) Generate(user *User) (string, error) {
	if !user.Persisted() {
		return "", goerrors.New("cannot issue a token for an unpersisted user", goerrors.CategoryBadInput)
	}

	if user.Email == "" {
		return "", goerrors.New("cannot issue a token without an email", goerrors.CategoryBadInput)
	}

	now := time.Now()
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    ts.issuer,
			Audience:  ts.audience,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.TTL())),
		},
		Email: user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to sign token")
	}

	return signed, nil
}

// Validate parses a raw token and re-checks signature, issuer, audience, and
// validity window.
func (ts *TokenService) Validate(raw string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("token validate rejected unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, jwt.WithIssuer(ts.issuer), jwt.WithAudience(ts.audience...))

	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryAuth, "invalid token")
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		ts.logger.Error("token validate could not decode claims")
		return nil, goerrors.New("unable to decode token claims", goerrors.CategoryAuth)
	}

	return claims, nil
}
