package database

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("record not found")

// StoreError wraps a failure reported by the database driver. Error returns
// the driver's text unchanged so it can be passed on to API clients.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// Describe is used for log lines, where the operation is useful context.
func Describe(err error) string {
	var se *StoreError
	if errors.As(err, &se) {
		return fmt.Sprintf("%s: %v", se.Op, se.Err)
	}
	return err.Error()
}
