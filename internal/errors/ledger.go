package errors

var (
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "invalid amount",
	}
	ErrAccountNotFound = &DomainError{
		Code:    "ACCOUNT_NOT_FOUND",
		Message: "account not found",
	}
	ErrInsufficientFunds = &DomainError{
		Code:    "INSUFFICIENT_FUNDS",
		Message: "insufficient funds",
	}
	ErrTransferConflict = &DomainError{
		Code:    "TRANSFER_CONFLICT",
		Message: "transfer conflicted with a concurrent operation, please retry",
	}
	ErrStore = &DomainError{
		Code:    "STORE_ERROR",
		Message: "storage backend failure",
	}
)
