package task

import (
	"errors"
	"fmt"
)

var (
	// ErrEnvironment is returned when the home directory cannot be resolved.
	ErrEnvironment = errors.New("cannot resolve home directory")

	// ErrIO is returned when the backing file cannot be read or written.
	ErrIO = errors.New("storage file io error")

	// ErrNotFound is returned when no task has the requested ID.
	ErrNotFound = errors.New("task not found")

	// ErrFieldCount is returned when a record does not have exactly seven fields.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrInvalidField is returned when a record field cannot be parsed.
	ErrInvalidField = errors.New("invalid field")

	// ErrEmptyName is returned when a task name is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrReservedToken is returned when a task name contains an escape token.
	ErrReservedToken = errors.New("name contains a reserved escape token")

	// ErrIDExhausted is returned when no larger task ID can be allocated.
	ErrIDExhausted = errors.New("no task IDs left")

	// ErrSpliceRange is returned when a splice reaches outside the file.
	ErrSpliceRange = errors.New("splice range outside file")

	// ErrInvalidFilter is returned when a list filter is not recognized.
	ErrInvalidFilter = errors.New("invalid list type")
)

// ErrorKind classifies a StoreError.
type ErrorKind int

const (
	KindIO ErrorKind = iota
	KindEnvironment
	KindNotFound
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindEnvironment:
		return ErrEnvironment
	case KindNotFound:
		return ErrNotFound
	default:
		return ErrIO
	}
}

// StoreError describes a failed store operation.
type StoreError struct {
	Kind ErrorKind
	// Op names the store operation, such as "append" or "splice".
	Op string
	// ID is set for KindNotFound.
	ID  uint32
	Err error
}

func (e *StoreError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s: %v: %d", e.Op, ErrNotFound, e.ID)
	case KindEnvironment:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v: %v", e.Op, ErrEnvironment, e.Err)
		}
		return fmt.Sprintf("%s: %v", e.Op, ErrEnvironment)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *StoreError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func ioError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Kind: KindIO, Op: op, Err: err}
}

func notFoundError(op string, id uint32) error {
	return &StoreError{Kind: KindNotFound, Op: op, ID: id}
}

// EnvironmentError wraps a failure to locate the storage file.
func EnvironmentError(err error) error {
	return &StoreError{Kind: KindEnvironment, Op: "resolve path", Err: err}
}

// DecodeKind classifies a DecodeError.
type DecodeKind int

const (
	FieldCount DecodeKind = iota
	InvalidField
)

// DecodeError describes a record line that could not be decoded.
type DecodeError struct {
	Kind DecodeKind
	// Got is the number of fields found, for FieldCount.
	Got int
	// Field names the offending field, for InvalidField.
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Kind == FieldCount {
		return fmt.Sprintf("decode task: %v: expected %d, found %d", ErrFieldCount, fieldCount, e.Got)
	}
	return fmt.Sprintf("decode task: %v %s: %v", ErrInvalidField, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches ErrFieldCount or ErrInvalidField.
func (e *DecodeError) Is(target error) bool {
	if e.Kind == FieldCount {
		return target == ErrFieldCount
	}
	return target == ErrInvalidField
}
