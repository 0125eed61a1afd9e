package services

import "strings"

const (
	reasonAllFieldsRequired         = "All fields are required"
	reasonCredentialsRequired       = "Email and password are required"
	reasonTitleRequired             = "Title is required"
	reasonDescriptionRequired       = "Description is required"
	reasonTitleMustNotBeEmpty       = "Title must not be empty"
	reasonDescriptionMustNotBeEmpty = "Description must not be empty"
)

// ValidationError reports input rejected before reaching the store.
// Reason is safe to show to the client.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func newValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegisterParams(params RegisterParams) error {
	if isBlank(params.Username) || isBlank(params.Email) || params.Password == "" {
		return newValidationError(reasonAllFieldsRequired)
	}
	return nil
}

func validateLoginParams(params LoginParams) error {
	if isBlank(params.Email) || params.Password == "" {
		return newValidationError(reasonCredentialsRequired)
	}
	return nil
}

func validateCreateTaskParams(params CreateTaskParams) error {
	if isBlank(params.Title) {
		return newValidationError(reasonTitleRequired)
	}
	if isBlank(params.Description) {
		return newValidationError(reasonDescriptionRequired)
	}
	return nil
}

func validateUpdateTaskParams(params UpdateTaskParams) error {
	if params.Title != nil && isBlank(*params.Title) {
		return newValidationError(reasonTitleMustNotBeEmpty)
	}
	if params.Description != nil && isBlank(*params.Description) {
		return newValidationError(reasonDescriptionMustNotBeEmpty)
	}
	return nil
}
