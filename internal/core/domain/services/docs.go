// Package services provides stateless domain services for the office-order
// core. The ValidationEngine applies the per-action rule sets (draft, submit,
// preview) over a visit request form and its document body, producing the
// field map and consolidated summary the operation handlers surface to the
// user.
package services
