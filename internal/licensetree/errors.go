package licensetree

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes decode failures.
type ErrorCode string

const (
	// ErrCodeInvalidToken indicates a token that does not parse as an integer.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// ErrCodeMalformedInput indicates the stream ran out before a header or
	// the declared metadata could be read, or a header declared a negative count.
	ErrCodeMalformedInput ErrorCode = "MALFORMED_INPUT"

	// ErrCodeEmptyInput indicates the input contained no integers at all.
	ErrCodeEmptyInput ErrorCode = "EMPTY_INPUT"

	// ErrCodeTrailingData indicates integers were left over after the root
	// node was decoded.
	ErrCodeTrailingData ErrorCode = "TRAILING_DATA"
)

// Sentinel errors matched by errors.Is against any *DecodeError with the
// corresponding code.
var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrMalformedInput = errors.New("malformed input")
	ErrEmptyInput     = errors.New("empty input")
	ErrTrailingData   = errors.New("trailing data")
)

// DecodeError describes where and why decoding failed.
type DecodeError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Offset is the 0-based integer (or token) index where the failure was
	// detected.
	Offset int

	// Token is the offending token text (INVALID_TOKEN only).
	Token string

	// Need and Have report how many integers were required and how many
	// remained (MALFORMED_INPUT and TRAILING_DATA).
	Need int
	Have int
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s (at integer %d)", e.Code, e.Message, e.Offset)
}

// Is reports whether target is the sentinel for this error's code.
func (e *DecodeError) Is(target error) bool {
	return sentinelFor(e.Code) == target
}

func sentinelFor(code ErrorCode) error {
	switch code {
	case ErrCodeInvalidToken:
		return ErrInvalidToken
	case ErrCodeMalformedInput:
		return ErrMalformedInput
	case ErrCodeEmptyInput:
		return ErrEmptyInput
	case ErrCodeTrailingData:
		return ErrTrailingData
	}
	return nil
}

// CodeOf returns the ErrorCode of err, or "" if err is not a *DecodeError.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsMalformed returns true if err is a MALFORMED_INPUT decode error.
func IsMalformed(err error) bool {
	return CodeOf(err) == ErrCodeMalformedInput
}

func newInvalidToken(index int, token string) *DecodeError {
	return &DecodeError{
		Code:    ErrCodeInvalidToken,
		Message: fmt.Sprintf("token %q is not an integer", token),
		Offset:  index,
		Token:   token,
	}
}

func newShortHeader(offset, have int) *DecodeError {
	return &DecodeError{
		Code:    ErrCodeMalformedInput,
		Message: fmt.Sprintf("expected 2 integers for header, found %d", have),
		Offset:  offset,
		Need:    2,
		Have:    have,
	}
}

func newShortMetadata(offset, need, have int) *DecodeError {
	return &DecodeError{
		Code:    ErrCodeMalformedInput,
		Message: fmt.Sprintf("expected %d more integers for metadata, found %d", need, have),
		Offset:  offset,
		Need:    need,
		Have:    have,
	}
}

func newNegativeCount(offset int, field string, n int) *DecodeError {
	return &DecodeError{
		Code:    ErrCodeMalformedInput,
		Message: fmt.Sprintf("header declares negative %s %d", field, n),
		Offset:  offset,
	}
}

func newEmptyInput() *DecodeError {
	return &DecodeError{
		Code:    ErrCodeEmptyInput,
		Message: "input contains no integers",
	}
}

func newTrailingData(offset, have int) *DecodeError {
	return &DecodeError{
		Code:    ErrCodeTrailingData,
		Message: fmt.Sprintf("decoded tree ends at integer %d, %d trailing integers ignored", offset, have),
		Offset:  offset,
		Have:    have,
	}
}
