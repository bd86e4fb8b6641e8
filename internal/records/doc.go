// Package records implements the relational-integrity layer of the
// Forever Home Friends record keeper: ID assignment, row lookup, the
// link/relink/unlink protocol between children and pets, and cascading
// delete across the Children, Pets, and Owners sheets.
//
// Operations are strictly sequential and non-transactional: a storage
// failure in the middle of a multi-step write aborts the operation and
// leaves whatever partial writes already committed. Outcome structs
// report exactly which sub-steps committed so callers can tell the
// operator what happened.
package records
