package principal

import (
	"errors"
)

var (
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrProtected     = errors.New("protected principal")
	ErrAlreadyExists = errors.New("already exists")
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

func IsErrForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

func IsErrProtected(err error) bool {
	return errors.Is(err, ErrProtected)
}

func IsErrAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
