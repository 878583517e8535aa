package community

import (
	"errors"
)

var (
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrStatic        = errors.New("static resource")
	ErrStoreReadOnly = errors.New("store is read-only")
)

func IsErrBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

func IsErrUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsErrNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsErrAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsErrStatic(err error) bool {
	return errors.Is(err, ErrStatic)
}

func IsErrStoreReadOnly(err error) bool {
	return errors.Is(err, ErrStoreReadOnly)
}
