// Package order provides domain entities and business logic for office order
// management. It implements the TaskRecord aggregate root with lifecycle
// management and state transitions, plus the value objects that make up the
// editable visit request.
//
// The package includes:
//   - TaskRecord: The aggregate root anchoring one office order's identity and lifecycle
//   - Status: A state machine that enforces valid lifecycle transitions
//   - VisitRequestForm / OrderDocumentBody: the editable record under construction
//   - VisitWindow: the visit date range value object
//   - ProcessType / SigningAuthority: enumerated order attributes
//
// Key business rules:
//   - A record's cover page number is its stable business key
//   - Task/process identity is minted by the registry on first save and
//     re-resolved after every successful save
//   - Status follows New -> Draft -> Submitted, with Draft -> Deleted as the
//     soft-delete branch; Submitted and Deleted are terminal client-side
//   - The visit window invariant VisitFrom <= VisitTo holds whenever both
//     dates are set
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
