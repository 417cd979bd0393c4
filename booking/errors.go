package booking

import (
	"errors"
	"fmt"
	"log"
)

var (
	ErrDuplicateID     = errors.New("duplicate id")
	ErrNotFound        = errors.New("not found")
	ErrInvalidField    = errors.New("invalid field")
	ErrExhausted       = errors.New("no rooms available")
	ErrMalformedRecord = errors.New("malformed record")
	ErrPersistence     = errors.New("persistence failure")
)

// Kind names an entity collection.
type Kind string

const (
	KindHotel       Kind = "hotel"
	KindCustomer    Kind = "customer"
	KindReservation Kind = "reservation"
)

// NotFoundError reports a missing record of a given kind. It matches
// ErrNotFound under errors.Is.
type NotFoundError struct {
	Kind Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFound reports whether err is a NotFoundError for the given kind.
func IsNotFound(err error, kind Kind) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Kind == kind
}

func notFound(kind Kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func duplicate(kind Kind, id string) error {
	return fmt.Errorf("%w: %s %q already exists", ErrDuplicateID, kind, id)
}

func emptyID(kind Kind) error {
	return fmt.Errorf("%w: %s id must not be empty", ErrInvalidField, kind)
}

// ---------------------------------------------------------------------------
// Lookup results
// ---------------------------------------------------------------------------

// LookupStatus tags the outcome of reading a single record.
type LookupStatus int

const (
	Missing LookupStatus = iota
	Found
	Malformed
)

func (s LookupStatus) String() string {
	switch s {
	case Found:
		return "found"
	case Malformed:
		return "malformed"
	default:
		return "missing"
	}
}

// Lookup is the result of a keyed read. Value is only meaningful when
// Status is Found; Cause is set when Status is Malformed.
type Lookup[T any] struct {
	Value  T
	Status LookupStatus
	Cause  error
}

// Ok reports whether the record was found and decoded.
func (l Lookup[T]) Ok() bool { return l.Status == Found }

// Err converts the lookup into an error: nil when found, a NotFoundError
// when missing, and an ErrMalformedRecord error when the stored record
// could not be decoded.
func (l Lookup[T]) Err(kind Kind, id string) error {
	switch l.Status {
	case Found:
		return nil
	case Malformed:
		return fmt.Errorf("%s %q: %w", kind, id, l.Cause)
	default:
		return notFound(kind, id)
	}
}

// OrNotFound collapses missing and malformed records into a NotFoundError,
// which is how read paths treat records they cannot use.
func (l Lookup[T]) OrNotFound(kind Kind, id string) error {
	if l.Ok() {
		return nil
	}
	return notFound(kind, id)
}

// ---------------------------------------------------------------------------
// Advisory logging
// ---------------------------------------------------------------------------

func loggerOrDefault(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}

func warnf(l *log.Logger, format string, args ...any) {
	l.Printf("[WARN] "+format, args...)
}

// fail logs err as an advisory and hands it back to the caller.
func fail(l *log.Logger, err error) error {
	l.Printf("[ERROR] %v", err)
	return err
}
