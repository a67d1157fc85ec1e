package apperror

import "errors"

var (
	ErrInvalidMove       = errors.New("move is not possible")
	ErrIncorrectMark     = errors.New("mark must be X or O")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrInputClosed       = errors.New("input closed")
	ErrUnknownPlayerKind = errors.New("unknown player kind")
)
