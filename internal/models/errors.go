package models

import (
	"fmt"
)

// ErrorCode identifies the class of a failed request in the response body
type ErrorCode string

const (
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	CodeInternal   ErrorCode = "INTERNAL_ERROR"
)

// ValidationReason enumerates why a payload was rejected
type ValidationReason int

const (
	ReasonBodyTooLarge ValidationReason = iota + 1
	ReasonInvalidJSON
	ReasonListNotArray
	ReasonListTooLong
	ReasonListNotStrings
	ReasonStringTooLong
	ReasonNNotPositiveInteger
	ReasonNTooLarge
)

// Messages returned to the caller, verbatim
const (
	MsgInvalidJSON         = "Body must be valid JSON"
	MsgListNotArray        = "'list' must be an array"
	MsgListNotStrings      = "'list' must contain only strings"
	MsgNNotPositiveInteger = "'n' must be a positive integer"
	msgBodyTooLargeFormat  = "Request body too large (max %d bytes)"
	msgListTooLongFormat   = "'list' length must be <= %d"
	msgStringTooLongFormat = "String at index %d exceeds max length of %d characters"
	msgNTooLargeFormat     = "'n' must be <= %d"
)

// ValidationError is a client input defect. Its message is safe to return to the caller.
type ValidationError struct {
	Reason  ValidationReason
	Message string
	Index   int // offending list position for ReasonStringTooLong, -1 otherwise
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Code returns the response code for validation failures
func (e *ValidationError) Code() ErrorCode {
	return CodeValidation
}

func newValidationError(reason ValidationReason, msg string) *ValidationError {
	return &ValidationError{Reason: reason, Message: msg, Index: -1}
}

// ErrBodyTooLarge reports a body above MaxBodyBytes
func ErrBodyTooLarge() *ValidationError {
	return newValidationError(ReasonBodyTooLarge, fmt.Sprintf(msgBodyTooLargeFormat, MaxBodyBytes))
}

// ErrInvalidJSON reports a body that is not valid JSON
func ErrInvalidJSON() *ValidationError {
	return newValidationError(ReasonInvalidJSON, MsgInvalidJSON)
}

func errListNotArray() *ValidationError {
	return newValidationError(ReasonListNotArray, MsgListNotArray)
}

func errListTooLong() *ValidationError {
	return newValidationError(ReasonListTooLong, fmt.Sprintf(msgListTooLongFormat, MaxListLength))
}

func errListNotStrings() *ValidationError {
	return newValidationError(ReasonListNotStrings, MsgListNotStrings)
}

func errStringTooLong(idx int) *ValidationError {
	err := newValidationError(ReasonStringTooLong, fmt.Sprintf(msgStringTooLongFormat, idx, MaxStringLength))
	err.Index = idx
	return err
}

func errNNotPositiveInteger() *ValidationError {
	return newValidationError(ReasonNNotPositiveInteger, MsgNNotPositiveInteger)
}

func errNTooLarge() *ValidationError {
	return newValidationError(ReasonNTooLarge, fmt.Sprintf(msgNTooLargeFormat, MaxN))
}
