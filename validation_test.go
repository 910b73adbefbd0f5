package nina_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	nina "github.com/ninaapp/nina-api"
)

func validCreation() nina.UserCreation {
	return nina.UserCreation{
		Name:     "Nina Dev",
		Email:    "user@gmail.com",
		Password: "password123",
	}
}

func TestValidateUserCreationValid(t *testing.T) {
	errs := nina.ValidateUserCreation(validCreation())
	assert.True(t, errs.Empty())
}

func TestValidateUserCreationEmailAccepted(t *testing.T) {
	accepted := []string{
		"user@gmail.com",
		"user.name@gmail.com",
		"user_name@gmail.com",
		"user-name@gmail.com",
		"user+tag@gmail.com",
		"user@my-domain.com",
		"user@sub.domain.co.uk",
		"123user@gmail.com",
	}

	for _, email := range accepted {
		t.Run(email, func(t *testing.T) {
			in := validCreation()
			in.Email = email

			errs := nina.ValidateUserCreation(in)
			assert.Empty(t, errs["email"])
		})
	}
}

func TestValidateUserCreationEmailRejected(t *testing.T) {
	rejected := []string{
		"invalidgmail.com",
		"invalid@gmailcom",
		"invalid@.com",
		"@gmail.com",
		".@gmail.com",
		"invalid@gmail.com.",
		"inv@alid@gmail.com",
		"invalid..name@gmail.com",
		"invalid@gmail..com",
		"invalid@gmail.c",
		"invalid@gmail.123",
		"invalid@111.222.333.444",
		"invalid@-gmail.com",
		"invalid@gmail-.com",
		" invalid@gmail.com",
	}

	for _, email := range rejected {
		t.Run(strings.TrimSpace(email), func(t *testing.T) {
			in := validCreation()
			in.Email = email

			errs := nina.ValidateUserCreation(in)
			assert.Contains(t, errs["email"], "A valid email address is required.")
		})
	}
}

func TestValidateUserCreationNameBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantMsg string
	}{
		{"two chars fails", "ab", "Name must have at least 3 characters."},
		{"three chars passes", "abc", ""},
		{"eighty chars passes", strings.Repeat("a", 80), ""},
		{"eighty one chars fails", strings.Repeat("a", 81), "Name cannot exceed 80 characters."},
		{"empty fails required", "", "Name is required."},
		{"whitespace fails required", "   ", "Name is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreation()
			in.Name = tt.value

			errs := nina.ValidateUserCreation(in)
			if tt.wantMsg == "" {
				assert.Empty(t, errs["name"])
				return
			}
			assert.Contains(t, errs["name"], tt.wantMsg)
		})
	}
}

func TestValidateUserCreationPasswordBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantMsg string
	}{
		{"seven chars fails", strings.Repeat("p", 7), "Password must have at least 8 characters."},
		{"eight chars passes", strings.Repeat("p", 8), ""},
		{"fifty chars passes", strings.Repeat("p", 50), ""},
		{"fifty one chars fails", strings.Repeat("p", 51), "Password cannot exceed 50 characters."},
		{"empty fails required", "", "Password is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreation()
			in.Password = tt.value

			errs := nina.ValidateUserCreation(in)
			if tt.wantMsg == "" {
				assert.Empty(t, errs["password"])
				return
			}
			assert.Contains(t, errs["password"], tt.wantMsg)
		})
	}
}

func TestValidateUserCreationEmailLengthBoundaries(t *testing.T) {
	in := validCreation()
	in.Email = "a@b.co" // 6 chars, syntactically fine but too short

	errs := nina.ValidateUserCreation(in)
	assert.Contains(t, errs["email"], "Email must have at least 7 characters.")

	in.Email = strings.Repeat("a", 41) + "@gmail.com" // 51 chars
	errs = nina.ValidateUserCreation(in)
	assert.Contains(t, errs["email"], "Email cannot exceed 50 characters.")
}

func TestValidateUserUpdation(t *testing.T) {
	t.Run("all absent is valid", func(t *testing.T) {
		errs := nina.ValidateUserUpdation(nina.UserUpdation{})
		assert.True(t, errs.Empty())
	})

	t.Run("present fields obey constraints", func(t *testing.T) {
		in := nina.UserUpdation{
			Name:     nina.Some("ab"),
			Email:    nina.Some("not-an-email"),
			Password: nina.Some("short"),
		}

		errs := nina.ValidateUserUpdation(in)
		assert.Contains(t, errs["name"], "Name must have at least 3 characters.")
		assert.Contains(t, errs["email"], "A valid email address is required.")
		assert.Contains(t, errs["password"], "Password must have at least 8 characters.")
	})

	t.Run("present valid fields pass", func(t *testing.T) {
		in := nina.UserUpdation{
			Name:     nina.Some("New Name"),
			Email:    nina.Some("new@example.com"),
			Password: nina.Some("longenough"),
		}

		errs := nina.ValidateUserUpdation(in)
		assert.True(t, errs.Empty())
	})

	t.Run("present blank fields are ignored", func(t *testing.T) {
		in := nina.UserUpdation{
			Name:  nina.Some(""),
			Email: nina.Some(""),
		}

		errs := nina.ValidateUserUpdation(in)
		assert.True(t, errs.Empty())
	})
}

func TestValidateUserLogin(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		errs := nina.ValidateUserLogin(nina.UserLogin{
			Email:    "user@gmail.com",
			Password: "whatever",
		})
		assert.True(t, errs.Empty())
	})

	t.Run("short password is allowed", func(t *testing.T) {
		errs := nina.ValidateUserLogin(nina.UserLogin{
			Email:    "user@gmail.com",
			Password: "x",
		})
		assert.True(t, errs.Empty())
	})

	t.Run("missing email", func(t *testing.T) {
		errs := nina.ValidateUserLogin(nina.UserLogin{Password: "whatever"})
		assert.Contains(t, errs["email"], "Email is required.")
	})

	t.Run("malformed email", func(t *testing.T) {
		errs := nina.ValidateUserLogin(nina.UserLogin{
			Email:    "invalid@gmail..com",
			Password: "whatever",
		})
		assert.Contains(t, errs["email"], "A valid email address is required.")
	})

	t.Run("missing password", func(t *testing.T) {
		errs := nina.ValidateUserLogin(nina.UserLogin{Email: "user@gmail.com"})
		assert.Contains(t, errs["password"], "Password is required.")
	})
}
