// Package errs provides the typed errors shared by every layer of the
// logistics service.
//
// Each error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrConflict, ErrTimeout) with a
// struct carrying the offending parameter and an optional cause. Unwrap
// always returns the sentinel so callers classify failures with errors.Is
// and the HTTP adapter maps them to status codes in one place.
package errs
