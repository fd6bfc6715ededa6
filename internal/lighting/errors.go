package lighting

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Kind represents the category of error that occurred
type Kind int

const (
	// KindFormat indicates text that could not be parsed (bad hex, unknown name)
	KindFormat Kind = iota
	// KindValidation indicates a well-formed value outside its allowed range
	KindValidation
	// KindIO indicates a device or profile file operation failed
	KindIO
	// KindDecode indicates a saved profile could not be deserialized
	KindDecode
)

// String returns a human-readable name for the error kind
func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "Format Error"
	case KindValidation:
		return "Validation Error"
	case KindIO:
		return "I/O Error"
	case KindDecode:
		return "Decode Error"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Error is the error type returned by parsers, validators, the device writer
// and the profile store.
type Error struct {
	Kind    Kind   // Category of error
	Field   string // Field or path the error refers to (may be empty)
	Message string // Human-readable message
	Err     error  // Underlying error (if any)
	Device  bool   // Set when Field is a keyboard device path
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewFormatError creates a parse error for the given field
func NewFormatError(field, message string) *Error {
	return &Error{Kind: KindFormat, Field: field, Message: message}
}

// NewValidationError creates a range/constraint error for the given field
func NewValidationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NewIOError creates an I/O error naming the path that failed
func NewIOError(path, message string, err error) *Error {
	return &Error{Kind: KindIO, Field: path, Message: message, Err: err}
}

// NewDeviceError creates an I/O error for a keyboard character device
func NewDeviceError(path, message string, err error) *Error {
	return &Error{Kind: KindIO, Field: path, Message: message, Err: err, Device: true}
}

// NewDecodeError creates a deserialization error naming the source
func NewDecodeError(source, message string, err error) *Error {
	return &Error{Kind: KindDecode, Field: source, Message: message, Err: err}
}

func hasKind(err error, kind Kind) bool {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Kind == kind
	}
	return false
}

// IsFormatError checks if an error (or any error it wraps) is a format error
func IsFormatError(err error) bool {
	return hasKind(err, KindFormat)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasKind(err, KindValidation)
}

// IsIOError checks if an error is an I/O error
func IsIOError(err error) bool {
	return hasKind(err, KindIO)
}

// IsDecodeError checks if an error is a profile decode error
func IsDecodeError(err error) bool {
	return hasKind(err, KindDecode)
}

// Hint returns troubleshooting advice for an error, or an empty string when
// there is nothing useful to add beyond the message itself.
func Hint(err error) string {
	var lerr *Error
	if !errors.As(err, &lerr) {
		return ""
	}

	switch lerr.Kind {
	case KindIO:
		if lerr.Device && errors.Is(lerr.Err, os.ErrNotExist) {
			return strings.Join([]string{
				"The keyboard device file does not exist.",
				"Troubleshooting:",
				"  • Make sure the acer-gkbbl kernel module is loaded (lsmod | grep facer)",
				"  • Check that this laptop has a 4-zone RGB keyboard",
				"  • Use --dry-run to preview payloads without hardware",
			}, "\n")
		}
		if lerr.Device && errors.Is(lerr.Err, os.ErrPermission) {
			return strings.Join([]string{
				"Permission denied.",
				"Troubleshooting:",
				"  • Run with sudo, or add a udev rule granting write access to " + lerr.Field,
			}, "\n")
		}
		if errors.Is(lerr.Err, os.ErrPermission) {
			return "Permission denied on " + lerr.Field + ". Check the directory owner or use --profile-dir."
		}
		if errors.Is(lerr.Err, os.ErrNotExist) {
			return "No such profile. Use --list to see saved profiles."
		}
		return ""
	case KindDecode:
		return "The profile file is malformed. Re-create it with --save."
	case KindValidation:
		return "Check the value ranges with --help."
	default:
		return ""
	}
}
