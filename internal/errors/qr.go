package errors

var (
	ErrInvalidPaymentCode = &DomainError{
		Code:    "INVALID_PAYMENT_CODE",
		Message: "invalid payment code",
	}
)
