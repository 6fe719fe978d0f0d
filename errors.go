package regrib

import (
	"fmt"

	"github.com/mmp/regrib/internal"
)

// FieldTooWideError reports a bit-field access wider than the 32 bits
// GRIB allows.
type FieldTooWideError = internal.FieldTooWideError

// ParseError represents an error during GRIB parsing, with context
// about where in the stream it occurred.
type ParseError struct {
	Section    int    // which section, or -1 if message-level
	Offset     int    // byte offset in the message where the error occurred
	Message    string // description of the error
	Underlying error  // wrapped error, if any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	where := "message"
	if e.Section >= 0 {
		where = fmt.Sprintf("section %d", e.Section)
	}
	if e.Underlying != nil {
		return fmt.Sprintf("%s at offset %d: %s: %v", where, e.Offset, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s at offset %d: %s", where, e.Offset, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *ParseError) Unwrap() error {
	return e.Underlying
}

// TruncatedError indicates the stream ended before a message's
// declared length was read.
type TruncatedError struct {
	Declared int
	Got      int
}

// Error implements the error interface.
func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated message: declared %d bytes, read %d", e.Declared, e.Got)
}

// LengthMismatchError indicates a section whose declared length is
// incompatible with its contents.
type LengthMismatchError struct {
	Section  int
	Declared int
	Have     int
}

// Error implements the error interface.
func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("section %d length mismatch: header says %d bytes, have %d",
		e.Section, e.Declared, e.Have)
}

// UnsupportedTemplateError indicates a template number outside the
// supported set.
type UnsupportedTemplateError struct {
	Section        int // 3 = grid, 4 = product, 5 = data representation
	TemplateNumber int
}

// Error implements the error interface.
func (e *UnsupportedTemplateError) Error() string {
	name := "unknown"
	switch e.Section {
	case 3:
		name = "grid definition"
	case 4:
		name = "product definition"
	case 5:
		name = "data representation"
	}
	return fmt.Sprintf("unsupported %s template %d", name, e.TemplateNumber)
}

// UnsupportedPackingError indicates a packing form with no reader:
// GRIB1 second-order packing, or a GRIB2 data representation template
// outside {0, 3, 40, 40000}.
type UnsupportedPackingError struct {
	Reason string
}

// Error implements the error interface.
func (e *UnsupportedPackingError) Error() string {
	return "unsupported packing: " + e.Reason
}

// Translation gap kinds for UnmappedError.
const (
	UnmappedParameter = "parameter"
	UnmappedLevel     = "level"
	UnmappedTimeRange = "time range"
	UnmappedProcess   = "statistical process"
)

// UnmappedError indicates a value with no translation between the
// editions. Parameter gaps are handled by the encoders with a fallback
// code and a warning and do not produce this error; level gaps that
// cannot pass through unchanged, time-range gaps, and unmapped
// statistical processes are returned as this error and stop the encode.
type UnmappedError struct {
	Kind   string
	Detail string
}

// Error implements the error interface.
func (e *UnmappedError) Error() string {
	return fmt.Sprintf("no %s mapping: %s", e.Kind, e.Detail)
}
