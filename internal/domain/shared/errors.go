package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound             = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists        = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput         = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized         = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrMissingRequiredField = NewDomainError("MISSING_REQUIRED_FIELD", "Required field is missing")
	ErrInvalidQuantity      = NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	ErrInvalidPostalCode    = NewDomainError("INVALID_POSTAL_CODE", "Postal code must have exactly 8 digits")
	ErrPostalCodeNotFound   = NewDomainError("POSTAL_CODE_NOT_FOUND", "Postal code not found")
	ErrUpstream             = NewDomainError("UPSTREAM_ERROR", "Upstream service failed")
)
