package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"flatten-generator/internal/common"
)

// Diagnostics collects everything a processing pass has to report.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single message tied to a struct definition and,
// optionally, one of its fields.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this kind of diagnostic
	// (e.g., "unknown-target", "duplicate-definition").
	Code string
	// Message is the human-readable description.
	Message string
	// Struct names the definition this relates to (if any).
	Struct string
	// Field names the field this relates to (if any).
	Field string
}

// Severity is the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError records an error diagnostic.
func (d *Diagnostics) AddError(code, message, structName, fieldName string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Struct:   structName,
		Field:    fieldName,
	})
}

// AddWarning records a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, structName, fieldName string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Struct:   structName,
		Field:    fieldName,
	})
}

// AddInfo records an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, structName, fieldName string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Struct:   structName,
		Field:    fieldName,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic line.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Struct != "" {
		prefix = append(prefix, "["+d.Struct+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
