// Package jwtware guards fiber routes behind a bearer session token. Every
// request re-checks signature, issuer, audience, and validity window through
// the provided validator.
package jwtware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ErrMissingOrMalformedToken is returned when no usable bearer token is
// present on the request.
var ErrMissingOrMalformedToken = errors.New("missing or malformed token")

// AuthClaims is the claim surface the middleware needs; it mirrors the token
// service's claims type without importing it.
type AuthClaims interface {
	GetSubject() (string, error)
}

// TokenValidator validates a raw token and returns its claims.
type TokenValidator func(raw string) (AuthClaims, error)

// DefaultContextKey is where validated claims are stored on the request.
const DefaultContextKey = "session"

type Config struct {
	// Validator is required.
	Validator TokenValidator
	// ContextKey is the locals key for validated claims. Defaults to
	// DefaultContextKey.
	ContextKey string
	// AuthScheme is the expected Authorization scheme. Defaults to "Bearer".
	AuthScheme string
	// ErrorHandler handles extraction and validation failures. Defaults to a
	// 401 problem response.
	ErrorHandler fiber.ErrorHandler
	// Filter skips the guard when it returns true.
	Filter func(*fiber.Ctx) bool
}

// New returns the guard middleware.
func New(config Config) fiber.Handler {
	cfg := withDefaults(config)

	return func(c *fiber.Ctx) error {
		if cfg.Filter != nil && cfg.Filter(c) {
			return c.Next()
		}

		raw, err := FromAuthHeader(c, cfg.AuthScheme)
		if err != nil {
			return cfg.ErrorHandler(c, err)
		}

		claims, err := cfg.Validator(raw)
		if err != nil {
			return cfg.ErrorHandler(c, err)
		}

		c.Locals(cfg.ContextKey, claims)

		return c.Next()
	}
}

// FromAuthHeader extracts the raw token from the Authorization header.
func FromAuthHeader(c *fiber.Ctx, scheme string) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", ErrMissingOrMalformedToken
	}

	prefix := scheme + " "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", ErrMissingOrMalformedToken
	}

	return header[len(prefix):], nil
}

// ClaimsFromContext returns the claims stored by the guard, if any.
func ClaimsFromContext(c *fiber.Ctx, key string) (AuthClaims, bool) {
	claims, ok := c.Locals(key).(AuthClaims)
	return claims, ok
}

func withDefaults(cfg Config) Config {
	if cfg.ContextKey == "" {
		cfg.ContextKey = DefaultContextKey
	}

	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"title":  "unauthorized",
				"status": fiber.StatusUnauthorized,
				"detail": "A valid session token is required.",
			})
		}
	}

	return cfg
}
