package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey = errors.New("employee already exists")
	ErrNotFound     = errors.New("employee not found")
)

// EmployeeError attaches the offending key to one of the sentinel errors above.
type EmployeeError struct {
	Kind  error
	ID    int64
	Email string
}

func (e *EmployeeError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Email != "":
		return fmt.Sprintf("%s: email=%s", e.Kind.Error(), e.Email)
	case e.ID != 0:
		return fmt.Sprintf("%s: id=%d", e.Kind.Error(), e.ID)
	}
	return e.Kind.Error()
}

func (e *EmployeeError) Unwrap() error { return e.Kind }

func DuplicateEmail(email string) error {
	return &EmployeeError{Kind: ErrDuplicateKey, Email: email}
}

func NotFoundID(id int64) error {
	return &EmployeeError{Kind: ErrNotFound, ID: id}
}
