package nina

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// emailPattern is the canonical email grammar. Local part allows
// [a-zA-Z0-9_+-] runs separated by single dots; the domain is one or more
// labels that start and end alphanumeric (hyphens only in the middle); the
// final label is a purely alphabetic TLD of at least two characters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_+-]+(\.[a-zA-Z0-9_+-]+)*@[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)

// ValidationErrors maps field names to their ordered failure messages. An
// empty map means the payload is valid.
type ValidationErrors map[string][]string

func (v ValidationErrors) add(field string, messages []string) {
	if len(messages) > 0 {
		v[field] = messages
	}
}

// Empty reports whether no field failed.
func (v ValidationErrors) Empty() bool {
	return len(v) == 0
}

// fieldErrors runs each rule independently and collects every failure, so a
// single field can report more than one message.
func fieldErrors(value any, rules ...validation.Rule) []string {
	var msgs []string
	for _, rule := range rules {
		if err := validation.Validate(value, rule); err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	return msgs
}

// notBlank rejects empty and whitespace-only strings. validation.Required
// accepts whitespace, which would let a blank value sneak past the pipeline
// only to blow up at entity construction.
func notBlank(message string) validation.Rule {
	return validation.By(func(value any) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	})
}

// ValidateUserCreation checks the registration payload.
func ValidateUserCreation(in UserCreation) ValidationErrors {
	errs := ValidationErrors{}

	errs.add("name", fieldErrors(in.Name,
		notBlank("Name is required."),
		validation.Length(3, 0).Error("Name must have at least 3 characters."),
		validation.Length(0, 80).Error("Name cannot exceed 80 characters."),
	))

	errs.add("email", fieldErrors(in.Email,
		notBlank("Email is required."),
		validation.Match(emailPattern).Error("A valid email address is required."),
		validation.Length(7, 0).Error("Email must have at least 7 characters."),
		validation.Length(0, 50).Error("Email cannot exceed 50 characters."),
	))

	errs.add("password", fieldErrors(in.Password,
		notBlank("Password is required."),
		validation.Length(8, 0).Error("Password must have at least 8 characters."),
		validation.Length(0, 50).Error("Password cannot exceed 50 characters."),
	))

	return errs
}

// ValidateUserUpdation checks the partial-update payload. Absent fields are
// skipped; present fields obey the creation constraints minus the required
// rule. A present blank value validates clean because the update flow treats
// it as "keep the stored value".
func ValidateUserUpdation(in UserUpdation) ValidationErrors {
	errs := ValidationErrors{}

	if name, ok := in.Name.Get(); ok {
		errs.add("name", fieldErrors(name,
			validation.Length(3, 0).Error("Name must have at least 3 characters."),
			validation.Length(0, 80).Error("Name cannot exceed 80 characters."),
		))
	}

	if email, ok := in.Email.Get(); ok {
		errs.add("email", fieldErrors(email,
			validation.Match(emailPattern).Error("A valid email address is required."),
			validation.Length(7, 0).Error("Email must have at least 7 characters."),
			validation.Length(0, 50).Error("Email cannot exceed 50 characters."),
		))
	}

	if password, ok := in.Password.Get(); ok {
		errs.add("password", fieldErrors(password,
			validation.Length(8, 0).Error("Password must have at least 8 characters."),
			validation.Length(0, 50).Error("Password cannot exceed 50 characters."),
		))
	}

	return errs
}

// ValidateUserLogin checks the login payload. The password only has to be
// present; the stored hash decides whether it is right.
func ValidateUserLogin(in UserLogin) ValidationErrors {
	errs := ValidationErrors{}

	errs.add("email", fieldErrors(in.Email,
		notBlank("Email is required."),
		validation.Match(emailPattern).Error("A valid email address is required."),
	))

	errs.add("password", fieldErrors(in.Password,
		notBlank("Password is required."),
	))

	return errs
}
