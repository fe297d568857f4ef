/*
errors.go - Centralized error types for the payroll engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The tax and jurisdiction packages wrap these sentinels with context.

ERROR CATEGORIES:
  1. Input errors - negative amounts, malformed dates (caller must fix)
  2. Range errors - end date before start date
  3. Jurisdiction errors - code absent from the loaded table
  4. Configuration errors - malformed bracket tables, detected at load time

PROPAGATION POLICY:
  Errors are raised at the point of detection and propagated unmodified.
  The engine never retries (pure computation has no transient failures) and
  never substitutes defaults for missing jurisdiction data. The only
  documented fallbacks are filing status (flat rate) and local-tax opt-in.

USAGE:
  if errors.Is(err, payroll.ErrUnsupportedJurisdiction) { ... }
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned for negative or otherwise malformed
	// rates, hours, salaries, or amounts. Not retryable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDateRange is returned when a range ends before it starts.
	ErrInvalidDateRange = errors.New("invalid date range: end before start")

	// ErrUnsupportedJurisdiction is returned when a jurisdiction code is
	// not present in the loaded table. Never silently approximated: a
	// missing jurisdiction must be distinguishable from "no tax owed".
	ErrUnsupportedJurisdiction = errors.New("unsupported jurisdiction")

	// ErrConfiguration is returned for malformed jurisdiction tables
	// (non-monotonic bracket ranges, missing rates). Detected at load
	// time, before any computation.
	ErrConfiguration = errors.New("invalid jurisdiction configuration")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidInputError identifies which field was rejected and why.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// InvalidDateRangeError carries the offending range.
type InvalidDateRangeError struct {
	Start Date
	End   Date
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date range: end %s before start %s", e.End, e.Start)
}

func (e *InvalidDateRangeError) Unwrap() error { return ErrInvalidDateRange }

// UnsupportedJurisdictionError carries the unknown code.
type UnsupportedJurisdictionError struct {
	Code string
}

func (e *UnsupportedJurisdictionError) Error() string {
	return fmt.Sprintf("unsupported jurisdiction: %q", e.Code)
}

func (e *UnsupportedJurisdictionError) Unwrap() error { return ErrUnsupportedJurisdiction }

// ConfigurationError describes a table defect found during validation.
type ConfigurationError struct {
	Section string // e.g. "us.federal_brackets.single"
	Detail  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Section, e.Detail)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// rather than a server-side defect.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrUnsupportedJurisdiction)
}
