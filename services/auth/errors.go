package auth

// Error codes recognized by the login flows. Anything else falls back to the
// generic message.
const (
	CodeInvalidCredential = "auth/invalid-credential"
	CodeInvalidEmail      = "auth/invalid-email"
	CodeNetworkFailure    = "auth/network-request-failed"
	CodeEmailNotVerified  = "auth/email-not-verified"
	CodeNotDoctor         = "auth/not-doctor"
	CodeNoAccount         = "auth/no-account"
)

// userMessages is the fixed code-to-message table surfaced to clients.
var userMessages = map[string]string{
	CodeInvalidCredential: "Incorrect email or password.",
	CodeInvalidEmail:      "The email format is invalid.",
	CodeNetworkFailure:    "Please check your internet connection.",
	CodeEmailNotVerified:  "Please verify your email before logging in.",
	CodeNotDoctor:         "This account does not have doctor access.",
	CodeNoAccount:         "No account found with this email.",
}

// AuthError carries a machine code plus the user-facing message for it.
type AuthError struct {
	Code string
}

func (e *AuthError) Error() string {
	if msg, ok := userMessages[e.Code]; ok {
		return msg
	}
	return "Something went wrong. Try again."
}

// NewAuthError builds an AuthError for the given code.
func NewAuthError(code string) error {
	return &AuthError{Code: code}
}

// ValidationError rejects a registration before any provider call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
