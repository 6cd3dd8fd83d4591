package errors

var (
	ErrUnauthenticated = &DomainError{
		Code:    "UNAUTHENTICATED",
		Message: "no active session",
	}
	ErrInvalidEmail = &DomainError{
		Code:    "INVALID_EMAIL",
		Message: "invalid email address",
	}
	ErrUserDisabled = &DomainError{
		Code:    "USER_DISABLED",
		Message: "this account has been disabled",
	}
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "no account matches this email",
	}
	ErrWrongPassword = &DomainError{
		Code:    "WRONG_PASSWORD",
		Message: "incorrect password",
	}
	ErrEmailTaken = &DomainError{
		Code:    "EMAIL_TAKEN",
		Message: "an account with this email already exists",
	}
)
