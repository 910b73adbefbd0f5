package nina

import (
	"context"
	"strings"
)

// UsersService owns the user lifecycle: validation, uniqueness checks,
// hashing, and persistence calls, every result wrapped in an Outcome.
type UsersService struct {
	repo   Repository
	hasher Hasher
	logger Logger
}

var _ UserManager = (*UsersService)(nil)

// NewUsersService wires the management flow's collaborators.
func NewUsersService(repo Repository, hasher Hasher) *UsersService {
	return &UsersService{
		repo:   repo,
		hasher: hasher,
		logger: defLogger{},
	}
}

func (s *UsersService) WithLogger(logger Logger) *UsersService {
	s.logger = logger
	return s
}

// Create validates the payload, enforces email uniqueness, hashes the
// password, and persists a new user. The plaintext password never reaches
// the entity or the store.
func (s *UsersService) Create(ctx context.Context, in UserCreation) Outcome[UserResponse] {
	if errs := ValidateUserCreation(in); !errs.Empty() {
		return ValidationFailure[UserResponse](errs)
	}

	inUse, err := s.repo.EmailInUse(ctx, in.Email)
	if err != nil {
		s.logger.Error("create user email check failed", "error", err)
		return Failure[UserResponse](MsgDatabaseError, StatusInternalError)
	}

	if inUse {
		return Failure[UserResponse](EmailInUseMessage(in.Email), StatusConflict)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error("create user password hashing failed", "error", err)
		return Failure[UserResponse](MsgInternalError, StatusInternalError)
	}

	user, err := NewUser(in.Name, in.Email, hash)
	if err != nil {
		// Validation should have caught anything that trips the entity
		// invariants; reaching this is a programming error upstream.
		s.logger.Error("create user entity construction failed", "error", err)
		return Failure[UserResponse](MsgInternalError, StatusInternalError)
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error("create user persistence failed", "error", err)
		return Failure[UserResponse](MsgDatabaseError, StatusInternalError)
	}

	if created == nil {
		return Failure[UserResponse](MsgDatabaseError, StatusInternalError)
	}

	return Created(NewUserResponse(created))
}

// GetByID fetches a single user by its numeric identity.
func (s *UsersService) GetByID(ctx context.Context, id int64) Outcome[UserResponse] {
	if id <= 0 {
		return Failure[UserResponse](InvalidUserIDMessage(id), StatusBadRequest)
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("get user lookup failed", "error", err, "user_id", id)
		return Failure[UserResponse](MsgDatabaseError, StatusInternalError)
	}

	if user == nil {
		return Failure[UserResponse](UserNotFoundMessage(id), StatusNotFound)
	}

	return Success(NewUserResponse(user))
}

// GetPage returns one window of users. An empty page is a normal success.
func (s *UsersService) GetPage(ctx context.Context, p Pagination) Outcome[*PagedList[UserResponse]] {
	page, err := s.repo.GetPage(ctx, p.Page, p.PageSize)
	if err != nil {
		s.logger.Error("get users page failed", "error", err, "page", p.Page)
		return Failure[*PagedList[UserResponse]](MsgDatabaseError, StatusInternalError)
	}

	return Success(NewUserResponsePage(page))
}

// Update applies a partial update. The email conflict check deliberately
// queries broadly first and then excuses a hit on the user's own current
// address, so a self-update to the same email never conflicts.
func (s *UsersService) Update(ctx context.Context, id int64, in UserUpdation) Outcome[Empty] {
	if errs := ValidateUserUpdation(in); !errs.Empty() {
		return ValidationFailure[Empty](errs)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("update user lookup failed", "error", err, "user_id", id)
		return Failure[Empty](MsgDatabaseError, StatusInternalError)
	}

	if existing == nil {
		return Failure[Empty](UserNotFoundMessage(id), StatusNotFound)
	}

	if email, ok := in.Email.Get(); ok && strings.TrimSpace(email) != "" {
		inUse, err := s.repo.EmailInUse(ctx, email)
		if err != nil {
			s.logger.Error("update user email check failed", "error", err, "user_id", id)
			return Failure[Empty](MsgDatabaseError, StatusInternalError)
		}

		if inUse && existing.Email != email {
			return Failure[Empty](EmailInUseMessage(email), StatusConflict)
		}
	}

	password := None[string]()
	if plaintext, ok := in.Password.Get(); ok && strings.TrimSpace(plaintext) != "" {
		hash, err := s.hasher.Hash(plaintext)
		if err != nil {
			s.logger.Error("update user password hashing failed", "error", err, "user_id", id)
			return Failure[Empty](MsgInternalError, StatusInternalError)
		}
		password = Some(hash)
	}

	existing.UpdateDetails(in.Name, in.Email, password)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		s.logger.Error("update user persistence failed", "error", err, "user_id", id)
		return Failure[Empty](MsgDatabaseError, StatusInternalError)
	}

	if !updated {
		return Failure[Empty](ConcurrencyErrorMessage(id), StatusNotFound)
	}

	return NoContent[Empty]()
}

// Delete removes a user by ID.
func (s *UsersService) Delete(ctx context.Context, id int64) Outcome[Empty] {
	if id <= 0 {
		return Failure[Empty](InvalidUserIDMessage(id), StatusBadRequest)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete user failed", "error", err, "user_id", id)
		return Failure[Empty](MsgDatabaseError, StatusInternalError)
	}

	if !deleted {
		return Failure[Empty](UserNotFoundMessage(id), StatusNotFound)
	}

	return NoContent[Empty]()
}
