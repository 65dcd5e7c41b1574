package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for the submission-pipeline failure taxonomy. Every failure
// an operation boundary (save/submit/delete/preview) can surface maps onto
// exactly one of these families.
var (
	ErrAuthMissing      = errors.New("credentials are missing")
	ErrProtocol         = errors.New("protocol violation")
	ErrCrypto           = errors.New("crypto failure")
	ErrTransport        = errors.New("transport failure")
	ErrLookupFailed     = errors.New("lookup failed")
	ErrPreviewBlocked   = errors.New("preview blocked")
	ErrValidationFailed = errors.New("validation failed")
)

// AuthMissingError indicates that no credential was available for an outbound
// call. This is fatal for the action: it must abort immediately with a
// user-facing prompt, before any network traffic.
type AuthMissingError struct {
	ParamName string
}

// NewAuthMissingError creates an AuthMissingError naming the missing
// credential parameter (session id, employee id or role).
func NewAuthMissingError(paramName string) *AuthMissingError {
	return &AuthMissingError{ParamName: paramName}
}

func (e *AuthMissingError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAuthMissing, e.ParamName)
}

func (e *AuthMissingError) Unwrap() error {
	return ErrAuthMissing
}

// ProtocolError indicates a response that violates the envelope protocol,
// for example a missing encrypted payload field. Protocol errors are surfaced
// verbatim and never retried automatically.
type ProtocolError struct {
	Message string
	Cause   error
}

// NewProtocolError creates a ProtocolError with a literal message.
func NewProtocolError(message string) *ProtocolError {
	return &ProtocolError{Message: message}
}

// NewProtocolErrorWithCause creates a ProtocolError wrapping the underlying
// decoding failure.
func NewProtocolErrorWithCause(message string, cause error) *ProtocolError {
	return &ProtocolError{Message: message, Cause: cause}
}

func (e *ProtocolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrProtocol, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrProtocol, e.Message)
}

func (e *ProtocolError) Unwrap() error {
	return ErrProtocol
}

// CryptoError indicates an encryption or decryption failure inside the secure
// envelope. Op names the failing operation ("encrypt" or "decrypt").
type CryptoError struct {
	Op    string
	Cause error
}

// NewCryptoError creates a CryptoError for the given operation.
func NewCryptoError(op string, cause error) *CryptoError {
	return &CryptoError{Op: op, Cause: cause}
}

func (e *CryptoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrCrypto, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrCrypto, e.Op)
}

func (e *CryptoError) Unwrap() error {
	return ErrCrypto
}

// TransportError indicates a non-success HTTP status from the registry
// backend. The status code is preserved for user-facing reporting.
type TransportError struct {
	Endpoint string
	Status   int
}

// NewTransportError creates a TransportError for the given endpoint and
// HTTP status code.
func NewTransportError(endpoint string, status int) *TransportError {
	return &TransportError{Endpoint: endpoint, Status: status}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s returned status %d", ErrTransport, e.Endpoint, e.Status)
}

func (e *TransportError) Unwrap() error {
	return ErrTransport
}

// LookupFailureError indicates that a status-code or task-identity lookup
// round trip failed. The dependent operation must abort with this error
// rather than proceed with a guessed identifier.
type LookupFailureError struct {
	Subject string
	Cause   error
}

// NewLookupFailureError creates a LookupFailureError naming the lookup
// subject ("task identity", `status "Deleted"`).
func NewLookupFailureError(subject string, cause error) *LookupFailureError {
	return &LookupFailureError{Subject: subject, Cause: cause}
}

func (e *LookupFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrLookupFailed, e.Subject, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrLookupFailed, e.Subject)
}

func (e *LookupFailureError) Unwrap() error {
	return ErrLookupFailed
}

// PreviewBlockedError indicates that a preview was requested before its
// preconditions held (no signing authority, or no resolvable task identity).
type PreviewBlockedError struct {
	Reason string
}

// NewPreviewBlockedError creates a PreviewBlockedError with the blocking
// reason.
func NewPreviewBlockedError(reason string) *PreviewBlockedError {
	return &PreviewBlockedError{Reason: reason}
}

func (e *PreviewBlockedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPreviewBlocked, e.Reason)
}

func (e *PreviewBlockedError) Unwrap() error {
	return ErrPreviewBlocked
}

// ValidationError carries the per-field validation results of one validation
// pass. Fields maps a field name to a human-readable message for inline
// display; the error text is the consolidated, deduplicated summary.
//
// Validation errors are always recoverable: they block the action client-side
// and are never sent to the server.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError from a non-empty field map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidationFailed, e.Summary())
}

// Summary returns the consolidated message: every distinct field message
// once, in deterministic order.
func (e *ValidationError) Summary() string {
	seen := make(map[string]bool, len(e.Fields))
	messages := make([]string, 0, len(e.Fields))
	for _, message := range e.Fields {
		if !seen[message] {
			seen[message] = true
			messages = append(messages, message)
		}
	}
	sort.Strings(messages)
	return strings.Join(messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
