package usecase

import "errors"

const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeDeliveryNotFound = "DELIVERY_NOT_FOUND"
	CodeInvalidLabel     = "INVALID_LABEL_ACTION"
	CodeEnqueueFailed    = "ENQUEUE_FAILED"
	CodeDatabase         = "DATABASE_ERROR"
)

// DomainError é erro do chamador (400/404); TechnicalError é nosso ou da infra (500).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var techErr *TechnicalError
	return errors.As(err, &techErr)
}
