package structs

import "errors"

var (
	ErrBadRequest      = errors.New("bad request")
	ErrNoRowsAffected  = errors.New("no rows affected")
	ErrNotFound        = errors.New("no rows in result set")
	ErrUniqueViolation = errors.New("unique violation error")
)
