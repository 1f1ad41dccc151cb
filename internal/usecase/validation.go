package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var nonDigit = regexp.MustCompile(`\D`)

func (r SendTextRequest) Validate() []ValidationError {
	errors := validateRecipient(r.Number, r.Delay)
	if strings.TrimSpace(r.Text) == "" {
		errors = append(errors, ValidationError{"text", "is required"})
	}
	return errors
}

func (r SendButtonsRequest) Validate() []ValidationError {
	errors := validateRecipient(r.Number, r.Delay)
	if strings.TrimSpace(r.Title) == "" {
		errors = append(errors, ValidationError{"title", "is required"})
	}
	if len(r.Buttons) == 0 {
		errors = append(errors, ValidationError{"buttons", "must have at least one button"})
	}
	for i, b := range r.Buttons {
		if strings.TrimSpace(b.Type) == "" {
			errors = append(errors, ValidationError{fmt.Sprintf("buttons[%d].type", i), "is required"})
		}
		if strings.TrimSpace(b.DisplayText) == "" {
			errors = append(errors, ValidationError{fmt.Sprintf("buttons[%d].display_text", i), "is required"})
		}
	}
	return errors
}

func (r SendListRequest) Validate() []ValidationError {
	errors := validateRecipient(r.Number, r.Delay)
	if strings.TrimSpace(r.Title) == "" {
		errors = append(errors, ValidationError{"title", "is required"})
	}
	if strings.TrimSpace(r.ButtonText) == "" {
		errors = append(errors, ValidationError{"button_text", "is required"})
	}
	if len(r.Sections) == 0 {
		errors = append(errors, ValidationError{"sections", "must have at least one section"})
	}
	for i, s := range r.Sections {
		if len(s.Rows) == 0 {
			errors = append(errors, ValidationError{fmt.Sprintf("sections[%d].rows", i), "must have at least one row"})
		}
		for j, row := range s.Rows {
			if strings.TrimSpace(row.Title) == "" {
				errors = append(errors, ValidationError{fmt.Sprintf("sections[%d].rows[%d].title", i, j), "is required"})
			}
		}
	}
	return errors
}

func (r SendContactRequest) Validate() []ValidationError {
	errors := validateRecipient(r.Number, 0)
	if len(r.Contacts) == 0 {
		errors = append(errors, ValidationError{"contacts", "must have at least one contact"})
	}
	for i, c := range r.Contacts {
		if strings.TrimSpace(c.FullName) == "" {
			errors = append(errors, ValidationError{fmt.Sprintf("contacts[%d].full_name", i), "is required"})
		}
		if strings.TrimSpace(c.PhoneNumber) == "" {
			errors = append(errors, ValidationError{fmt.Sprintf("contacts[%d].phone_number", i), "is required"})
		}
	}
	return errors
}

func (r SendLocationRequest) Validate() []ValidationError {
	errors := validateRecipient(r.Number, r.Delay)
	if r.Latitude < -90 || r.Latitude > 90 {
		errors = append(errors, ValidationError{"latitude", "must be between -90 and 90"})
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		errors = append(errors, ValidationError{"longitude", "must be between -180 and 180"})
	}
	return errors
}

func validateRecipient(number string, delay int) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(number) == "" {
		errors = append(errors, ValidationError{"number", "is required"})
	} else if !isValidRecipient(number) {
		errors = append(errors, ValidationError{"number", "must be a phone number with country code or a JID"})
	}

	if delay < 0 {
		errors = append(errors, ValidationError{"delay", "must not be negative"})
	}
	return errors
}

// isValidRecipient aceita número com DDI (10 a 15 dígitos) ou JID (grupo, lista, usuário).
func isValidRecipient(number string) bool {
	if strings.Contains(number, "@") {
		return !strings.HasPrefix(number, "@") && !strings.HasSuffix(number, "@")
	}
	cleaned := nonDigit.ReplaceAllString(number, "")
	return len(cleaned) >= 10 && len(cleaned) <= 15
}

func validationFailure(validationErrors []ValidationError) error {
	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
	}
}
