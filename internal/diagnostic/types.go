package diagnostic

import (
	"errors"
	"strings"
)

// SeverityEnum represents the severity level of a diagnostic.
type SeverityEnum int

const (
	SeverityWarning SeverityEnum = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s SeverityEnum) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single validation finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity SeverityEnum
	// Code is a stable identifier for this kind of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// TypePair identifies which type pairing this relates to (if any).
	TypePair string
	// Member identifies which enum member or field this relates to (if any).
	Member string
	// Suggestion is a ready-to-paste fix, when one is known.
	Suggestion string
}

// String returns a formatted diagnostic line.
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.TypePair != "" {
		b.WriteString("[" + d.TypePair + "] ")
	}

	if d.Member != "" {
		b.WriteString(d.Member + ": ")
	}

	if d.Code != "" {
		b.WriteString("[" + d.Code + "] ")
	}

	b.WriteString(d.Message)

	if d.Suggestion != "" {
		b.WriteString("\n" + d.Suggestion)
	}

	return b.String()
}

// Diagnostics accumulates findings during a validation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// AddError adds an error finding.
func (d *Diagnostics) AddError(code, message, typePair, member string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		TypePair: typePair,
		Member:   member,
	})
}

// AddWarning adds a warning finding.
func (d *Diagnostics) AddWarning(code, message, typePair, member string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		TypePair: typePair,
		Member:   member,
	})
}

// Append adds a fully populated finding, keeping its stated severity.
func (d *Diagnostics) Append(diag Diagnostic) {
	if diag.Severity == SeverityError {
		d.Errors = append(d.Errors, diag)
		return
	}

	d.Warnings = append(d.Warnings, diag)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// HasErrors returns true if there are any error findings.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Error returns a combined error from all error findings, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "\n"))
}
