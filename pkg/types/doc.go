// Package types defines the Workbook and Table interfaces, the entity
// types (Child, Pet, OwnerLink), and the standard error types for the
// Forever Home Friends record keeper.
package types
