// Package errs provides the standardized error types of the lunchbox backend.
//
// The types fall into three kinds the callers can tell apart with errors.Is:
//   - validation (caller's fault): ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError
//   - configuration (operator's fault): ConfigurationIsInvalidError
//   - conflict (concurrent write lost): VersionConflictError
//
// Each type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct with the offending parameter and an optional cause
//   - constructors with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel and the cause,
//     so both errors.Is(err, ErrValueIsInvalid) and errors.Is(err, cause) hold
package errs
