// Package errs provides standardized error types for the office order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two error families live here:
//
// Generic value errors, used mostly by domain constructors:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value falls outside its interval
//   - ObjectNotFoundError: an object cannot be found
//   - VersionIsInvalidError: a persisted version cannot be interpreted
//
// The submission-pipeline taxonomy, used at operation boundaries:
//   - AuthMissingError: no credential available, fatal for the action
//   - ProtocolError: malformed envelope response, surfaced verbatim
//   - CryptoError: encryption/decryption failure, never swallowed
//   - TransportError: non-success HTTP status, carries the code
//   - LookupFailureError: status-code or task-identity lookup failed
//   - PreviewBlockedError: preview preconditions not met
//   - ValidationError: client-side rule failures, never sent to the server
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired, ErrTransport)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause applies
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
package errs
