package evolution

import (
	"errors"
	"fmt"
)

const (
	invalidJSONMessage  = "Invalid JSON response from API"
	unknownErrorMessage = "Unknown error from API"
)

// APIError é o único erro devolvido pelo Service, seja qual for a origem da falha
// (transporte, status HTTP, JSON inválido ou status "error" dentro de um 2xx).
// Code é o status HTTP recebido, 500 para JSON inválido e 0 quando desconhecido.
type APIError struct {
	Message string
	Code    int
	Err     error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("evolution api error (code %d): %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AsAPIError extrai o *APIError da cadeia de err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
