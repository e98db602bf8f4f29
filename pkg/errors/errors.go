package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Input Errors - bad values supplied on the command line or in preferences
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeParse
	ErrorTypeUnknownFlag
	ErrorTypePrecondition
	ErrorTypeNotFound

	// Query Errors - errors raised while answering a weather query
	ErrorTypeUnsupportedHorizon
	ErrorTypeTransport
	ErrorTypeExternalAPI
	ErrorTypeDecode

	// System/Configuration Errors - errors related to local setup and storage
	ErrorTypeStorage
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeParse:
		return "PARSE_ERROR"
	case ErrorTypeUnknownFlag:
		return "UNKNOWN_FLAG"
	case ErrorTypePrecondition:
		return "PRECONDITION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeUnsupportedHorizon:
		return "UNSUPPORTED_HORIZON"
	case ErrorTypeTransport:
		return "TRANSPORT_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeDecode:
		return "DECODE_ERROR"
	case ErrorTypeStorage:
		return "STORAGE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across the codebase
const (
	ValidationError         = ErrorTypeValidation
	ParseError              = ErrorTypeParse
	UnknownFlagError        = ErrorTypeUnknownFlag
	PreconditionError       = ErrorTypePrecondition
	NotFoundError           = ErrorTypeNotFound
	UnsupportedHorizonError = ErrorTypeUnsupportedHorizon
	TransportError          = ErrorTypeTransport
	ExternalAPIError        = ErrorTypeExternalAPI
	DecodeError             = ErrorTypeDecode
	StorageError            = ErrorTypeStorage
	ConfigurationError      = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Input Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewParseError(message string) *AppError {
	return New(ParseError, message)
}

func NewUnknownFlagError(flag string) *AppError {
	return New(UnknownFlagError, fmt.Sprintf("unknown argument '%s'", flag))
}

func NewPreconditionError(message string) *AppError {
	return New(PreconditionError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// Query Error Constructors
func NewUnsupportedHorizonError(message string) *AppError {
	return New(UnsupportedHorizonError, message)
}

func NewTransportError(message string, cause error) *AppError {
	return Wrap(TransportError, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

func NewDecodeError(message string, cause error) *AppError {
	return Wrap(DecodeError, message, cause)
}

// System/Configuration Error Constructors
func NewStorageError(message string, cause error) *AppError {
	return Wrap(StorageError, message, cause)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsParseError(err error) bool {
	return TypeOf(err) == ParseError
}

func IsUnknownFlagError(err error) bool {
	return TypeOf(err) == UnknownFlagError
}

func IsPreconditionError(err error) bool {
	return TypeOf(err) == PreconditionError
}

func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsUnsupportedHorizonError(err error) bool {
	return TypeOf(err) == UnsupportedHorizonError
}

func IsTransportError(err error) bool {
	return TypeOf(err) == TransportError
}

func IsExternalAPIError(err error) bool {
	return TypeOf(err) == ExternalAPIError
}

func IsDecodeError(err error) bool {
	return TypeOf(err) == DecodeError
}

func IsStorageError(err error) bool {
	return TypeOf(err) == StorageError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
