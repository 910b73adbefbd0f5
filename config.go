package nina

import (
	"github.com/caarlos0/env/v11"
	goerrors "github.com/goliatone/go-errors"
)

// AppConfig is the process configuration, loaded from the environment.
type AppConfig struct {
	Address     string `env:"HTTP_ADDR" envDefault:":8080"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"file:nina.db?cache=shared&mode=rwc"`
	Debug       bool   `env:"DEBUG"`

	JWTSecret        string   `env:"JWT_SECRET"`
	JWTIssuer        string   `env:"JWT_ISSUER" envDefault:"nina-api"`
	JWTAudience      []string `env:"JWT_AUDIENCE" envSeparator:"," envDefault:"nina-clients"`
	JWTExpiryMinutes int      `env:"JWT_EXPIRY_MINUTES" envDefault:"30"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`
}

var _ Config = (*AppConfig)(nil)

// LoadConfig reads the environment and verifies the settings the token
// issuer cannot run without. Failures here abort startup.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to parse environment configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate enforces the fatal startup conditions.
func (c *AppConfig) Validate() error {
	if c.JWTSecret == "" {
		return goerrors.New("JWT_SECRET must be set", goerrors.CategoryInternal)
	}

	if c.JWTIssuer == "" {
		return goerrors.New("JWT_ISSUER must be set", goerrors.CategoryInternal)
	}

	if len(c.JWTAudience) == 0 {
		return goerrors.New("JWT_AUDIENCE must be set", goerrors.CategoryInternal)
	}

	if c.JWTExpiryMinutes <= 0 {
		return goerrors.New("JWT_EXPIRY_MINUTES must be positive", goerrors.CategoryInternal)
	}

	return nil
}

func (c *AppConfig) GetSigningKey() string     { return c.JWTSecret }
func (c *AppConfig) GetTokenExpiration() int   { return c.JWTExpiryMinutes }
func (c *AppConfig) GetIssuer() string         { return c.JWTIssuer }
func (c *AppConfig) GetAudience() []string     { return c.JWTAudience }
