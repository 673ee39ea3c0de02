package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorCode represents internal error codes for record store operations
type ErrorCode int

const (
	// Success
	ErrCodeOK ErrorCode = 0

	// Caller errors
	ErrCodeInvalidArgument ErrorCode = 1000
	ErrCodeInvalidRecord   ErrorCode = 1001
	ErrCodeDuplicateID     ErrorCode = 1002
	ErrCodeNotFound        ErrorCode = 1003
	ErrCodeChecksumFailed  ErrorCode = 1004

	// Internal errors
	ErrCodeInternal       ErrorCode = 2000
	ErrCodeCorruptedData  ErrorCode = 2001
	ErrCodeSnapshotFailed ErrorCode = 2002
)

// String returns a short name for the code, used as a metric label
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeInvalidRecord:
		return "invalid_record"
	case ErrCodeDuplicateID:
		return "duplicate_id"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeChecksumFailed:
		return "checksum_failed"
	case ErrCodeCorruptedData:
		return "corrupted_data"
	case ErrCodeSnapshotFailed:
		return "snapshot_failed"
	default:
		return "internal"
	}
}

// RecordError represents a structured error with code and context
type RecordError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Cause   error
}

// Error implements the error interface
func (e *RecordError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *RecordError) Unwrap() error {
	return e.Cause
}

// ToGRPCStatus converts RecordError to gRPC status
func (e *RecordError) ToGRPCStatus() *status.Status {
	return status.New(e.toGRPCCode(), e.Error())
}

func (e *RecordError) toGRPCCode() codes.Code {
	switch e.Code {
	case ErrCodeOK:
		return codes.OK
	case ErrCodeInvalidArgument, ErrCodeInvalidRecord:
		return codes.InvalidArgument
	case ErrCodeDuplicateID:
		return codes.AlreadyExists
	case ErrCodeNotFound:
		return codes.NotFound
	case ErrCodeChecksumFailed, ErrCodeCorruptedData:
		return codes.DataLoss
	default:
		return codes.Internal
	}
}

// NewRecordError creates a new RecordError
func NewRecordError(code ErrorCode, message string, cause error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Cause:   cause,
	}
}

// WithDetail adds a detail to the error
func (e *RecordError) WithDetail(key string, value interface{}) *RecordError {
	e.Details[key] = value
	return e
}

// Convenience constructors for common errors

func InvalidArgument(message string, cause error) *RecordError {
	return NewRecordError(ErrCodeInvalidArgument, message, cause)
}

func InvalidRecord(id int32, field, reason string) *RecordError {
	return NewRecordError(ErrCodeInvalidRecord, fmt.Sprintf("invalid record %d: %s %s", id, field, reason), nil).
		WithDetail("id", id).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

func DuplicateID(id int32) *RecordError {
	return NewRecordError(ErrCodeDuplicateID, fmt.Sprintf("record with ID %d already exists", id), nil).
		WithDetail("id", id)
}

func NotFound(id int32) *RecordError {
	return NewRecordError(ErrCodeNotFound, fmt.Sprintf("record not found: %d", id), nil).
		WithDetail("id", id)
}

func ChecksumFailed(expected, actual uint32) *RecordError {
	return NewRecordError(ErrCodeChecksumFailed, fmt.Sprintf("checksum validation failed: expected %d, got %d", expected, actual), nil).
		WithDetail("expected", expected).
		WithDetail("actual", actual)
}

func InternalError(message string, cause error) *RecordError {
	return NewRecordError(ErrCodeInternal, message, cause)
}

func CorruptedData(message string, cause error) *RecordError {
	return NewRecordError(ErrCodeCorruptedData, message, cause)
}

func SnapshotFailed(message string, cause error) *RecordError {
	return NewRecordError(ErrCodeSnapshotFailed, message, cause)
}

// FromError returns the RecordError err is or wraps. Any other error is
// wrapped as an internal error.
func FromError(err error) *RecordError {
	var re *RecordError
	if errors.As(err, &re) {
		return re
	}
	return InternalError("unexpected error", err)
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var re *RecordError
	if errors.As(err, &re) {
		return re.Code
	}
	return ErrCodeInternal
}
