package dto

import (
	"net/http"
	"regexp"
	"time"

	"natrix-bank/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

// mobileNumberPattern accepts an empty value (presence is checked by the
// required rule) or a local 09... / international +959... number with 7
// to 9 trailing digits.
var mobileNumberPattern = regexp.MustCompile(`^$|^(09\d{7,9}|\+959\d{7,9})$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for a blank tag or a nil func.
	_ = v.RegisterValidation("mobilenum", func(fl validator.FieldLevel) bool {
		return mobileNumberPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidateMobileNumber guards the query-parameter lookups, which bypass
// struct validation.
func ValidateMobileNumber(mobileNumber string) error {
	if mobileNumber == "" {
		return apperrors.NewValidationError("mobileNumber", "Mobile number can not be a null or empty")
	}
	if !mobileNumberPattern.MatchString(mobileNumber) {
		return apperrors.NewValidationError("mobileNumber", "Mobile number must be a valid 09 or +959 number")
	}
	return nil
}

// ResponseDto is the generic success envelope.
type ResponseDto struct {
	Status    string    `json:"status"`
	Code      int       `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewResponseDto(code int, message string) ResponseDto {
	return ResponseDto{
		Status:    statusText(code),
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// ErrorResponseDto is the error envelope. Errors carries the per-field
// messages of a validation failure and is omitted otherwise.
type ErrorResponseDto struct {
	Path         string            `json:"path"`
	Status       string            `json:"status"`
	ErrorCode    int               `json:"errorCode"`
	ErrorMessage string            `json:"errorMessage"`
	Errors       map[string]string `json:"errors,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
}

func NewErrorResponseDto(path string, code int, message string, fields map[string]string) ErrorResponseDto {
	return ErrorResponseDto{
		Path:         path,
		Status:       statusText(code),
		ErrorCode:    code,
		ErrorMessage: message,
		Errors:       fields,
		Timestamp:    time.Now(),
	}
}

func statusText(code int) string {
	switch code {
	case http.StatusOK:
		return "SUCCESS"
	case http.StatusCreated:
		return "CREATED"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusExpectationFailed:
		return "EXPECTATION_FAILED"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// BuildInfoDto reports the running build version.
type BuildInfoDto struct {
	Version string `json:"version"`
}

// ContactInfoDto reports the support contact configured for the service.
type ContactInfoDto struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
