package httperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindAuth        Kind = "auth"
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindPersistence Kind = "persistence"
)

// BusinessError is the error every use case returns. Code is a stable
// snake_case identifier; Err, when set, is the underlying cause.
type BusinessError struct {
	Kind Kind
	Code string
	Err  error
}

func (e BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrAuth(code string) error {
	return BusinessError{Kind: KindAuth, Code: code}
}

func ErrValidation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrPersistence(code string, err error) error {
	return BusinessError{Kind: KindPersistence, Code: code, Err: err}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf reports the kind of err. Anything that is not a BusinessError
// counts as a persistence failure.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindPersistence
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
