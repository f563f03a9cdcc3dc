package application

import (
	"errors"
	"fmt"
)

var (
	ErrFormNotFound     = errors.New("form not found")
	ErrNotAuthorized    = errors.New("owner does not hold this form")
	ErrUpdateFailed     = errors.New("owner forms update failed")
	ErrUnknownOwnerKind = errors.New("owner kind could not be determined")
)

// StoreError reports a failed document store call.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func formNotFound(id string) error {
	return fmt.Errorf("%w: no form with id %s", ErrFormNotFound, id)
}
