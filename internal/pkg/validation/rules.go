package validation

import (
	"fmt"
	"regexp"
)

// Validation rule patterns
var (
	// RequestIDPattern accepts caller-supplied request ids that are safe to
	// echo in headers and logs
	RequestIDPattern = `^[A-Za-z0-9._:-]{1,64}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	RequestID *regexp.Regexp
}{
	RequestID: regexp.MustCompile(RequestIDPattern),
}

// Field messages returned to API clients.
const (
	MsgRequired      = "This field is required."
	MsgNull          = "This field may not be null."
	MsgBlank         = "This field may not be blank."
	MsgInvalidEmail  = "Enter a valid email address."
	MsgInvalidDate   = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	MsgEmailTaken    = "student with this email already exists."
	MsgNotString     = "Not a valid string."
	MsgIncorrectType = "Incorrect type. Expected pk value, received %s."
)

// MaxLengthMessage returns the message for a value longer than max characters.
func MaxLengthMessage(max int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", max)
}

// InvalidPKMessage returns the message for a reference to a missing object.
func InvalidPKMessage(id int64) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}

// IncorrectTypeMessage returns the message for a reference given as a
// non-integer JSON value of the named type.
func IncorrectTypeMessage(received string) string {
	return fmt.Sprintf(MsgIncorrectType, received)
}

// IsValidRequestID reports whether id may be reused as a request id.
func IsValidRequestID(id string) bool {
	return CompiledPatterns.RequestID.MatchString(id)
}
