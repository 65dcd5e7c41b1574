// Package kernel provides core domain primitives for the office order service.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for editing-session identifiers with validation and comparison capabilities
//   - SessionContext: The caller's credentials (session id, employee id, role), injected and never ambient
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
