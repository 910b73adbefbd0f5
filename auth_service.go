package nina

import (
	"context"
	"time"
)

// AuthService verifies credentials and issues session tokens. It keeps no
// state between calls; every login is a single pass over its collaborators.
type AuthService struct {
	repo   Repository
	hasher Hasher
	tokens TokenIssuer
	logger Logger
}

var _ Authenticator = (*AuthService)(nil)

// NewAuthService wires the login flow's collaborators.
func NewAuthService(repo Repository, hasher Hasher, tokens TokenIssuer) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: defLogger{},
	}
}

func (s *AuthService) WithLogger(logger Logger) *AuthService {
	s.logger = logger
	return s
}

// Login verifies the email/password pair and issues a token. An unknown
// email and a wrong password produce byte-identical unauthorized outcomes so
// a caller cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, req UserLogin) Outcome[AuthenticationResponse] {
	if errs := ValidateUserLogin(req); !errs.Empty() {
		return ValidationFailure[AuthenticationResponse](errs)
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("login email lookup failed", "error", err)
		return Failure[AuthenticationResponse](MsgInternalError, StatusInternalError)
	}

	if user == nil {
		return Failure[AuthenticationResponse](MsgLoginFailed, StatusUnauthorized)
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		return Failure[AuthenticationResponse](MsgLoginFailed, StatusUnauthorized)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		s.logger.Error("login token generation failed", "error", err, "user_id", user.ID)
		return Failure[AuthenticationResponse](MsgInternalError, StatusInternalError)
	}

	return Success(AuthenticationResponse{
		Token:      token,
		Email:      user.Email,
		Expiration: time.Now().Add(s.tokens.TTL()),
	})
}
