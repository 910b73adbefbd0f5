package nina

import "fmt"

// MsgValidationFailed is the aggregate message attached to every
// validation-failure outcome; the field map carries the detail.
const MsgValidationFailed = "One or more validation errors occurred."

// MsgLoginFailed is deliberately the same for an unknown email and a wrong
// password so responses never reveal whether an account exists.
const MsgLoginFailed = "Invalid email or password."

// MsgDatabaseError is returned when the store reports that nothing was
// persisted without giving a reason.
const MsgDatabaseError = "The user could not be saved due to a database error."

// MsgInternalError is the generic message for unexpected failures; internal
// detail never reaches the caller.
const MsgInternalError = "An unexpected error occurred."

// EmailInUseMessage is the conflict message for a taken email address.
func EmailInUseMessage(email string) string {
	return fmt.Sprintf("The email '%s' is already in use.", email)
}

// InvalidUserIDMessage is the bad-request message for a non-positive user ID.
func InvalidUserIDMessage(id int64) string {
	return fmt.Sprintf("The user ID '%d' is not valid.", id)
}

// UserNotFoundMessage is the not-found message for a missing user.
func UserNotFoundMessage(id int64) string {
	return fmt.Sprintf("The user with ID '%d' was not found.", id)
}

// ConcurrencyErrorMessage is returned when an update matched no row, either
// because the record vanished or another writer got there first.
func ConcurrencyErrorMessage(id int64) string {
	return fmt.Sprintf("The user with ID '%d' was modified or deleted by another request.", id)
}
