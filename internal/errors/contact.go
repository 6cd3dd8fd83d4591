package errors

var (
	ErrDuplicateContact = &DomainError{
		Code:    "DUPLICATE_CONTACT",
		Message: "contact already exists",
	}
	ErrSelfReference = &DomainError{
		Code:    "SELF_REFERENCE",
		Message: "cannot use your own account as the target",
	}
)
