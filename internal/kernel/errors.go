package kernel

import (
	"errors"
	"fmt"
)

// FailureCode categorizes why an operation was rejected.
//
// The public operation surface reports rejections as return-value
// sentinels (-1, false, empty), never as errors; these codes surface on
// the snapshot accessors consumed by inspection collaborators, where a
// structured reason is worth more than a sentinel.
type FailureCode string

const (
	// CodeInvalidReference indicates an unknown or out-of-range speaker
	// or request id.
	CodeInvalidReference FailureCode = "INVALID_REFERENCE"

	// CodeUnauthorized indicates the acting speaker may not perform the
	// operation (wrong responder, suspended actor on a write).
	CodeUnauthorized FailureCode = "UNAUTHORIZED"

	// CodeSealed indicates a write to a permanently locked variable.
	CodeSealed FailureCode = "SEALED"

	// CodeCapacityExceeded indicates a fixed-size table is full.
	CodeCapacityExceeded FailureCode = "CAPACITY_EXCEEDED"
)

// OpError is a rejected operation with structured context.
type OpError struct {
	Code   FailureCode
	Op     string // the kernel operation, e.g. "inspect_speaker"
	Detail string
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

// IsInvalidReference reports whether err is an OpError with
// CodeInvalidReference. Uses errors.As to handle wrapped errors.
func IsInvalidReference(err error) bool {
	var oe *OpError
	return errors.As(err, &oe) && oe.Code == CodeInvalidReference
}

func invalidReference(op, detail string) *OpError {
	return &OpError{Code: CodeInvalidReference, Op: op, Detail: detail}
}
