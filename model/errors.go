package model

import "errors"

// ErrorKind is the closed set of domain failure categories. The HTTP layer
// switches on the kind, never on message text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidInput
	KindNotFound
	KindConflict
	KindInvalidTransition
	KindStorage
)

type DomainError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func ErrInvalidInput(message string) error {
	return &DomainError{Kind: KindInvalidInput, Message: message}
}

func ErrNotFound(message string) error {
	return &DomainError{Kind: KindNotFound, Message: message}
}

func ErrConflict(message string) error {
	return &DomainError{Kind: KindConflict, Message: message}
}

func ErrInvalidTransition(message string) error {
	return &DomainError{Kind: KindInvalidTransition, Message: message}
}

func WrapStorage(err error) error {
	return &DomainError{Kind: KindStorage, Message: "storage failure", Err: err}
}

// KindOf extracts the kind from any error in the chain, KindUnknown otherwise.
func KindOf(err error) ErrorKind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindUnknown
}
