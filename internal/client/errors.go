package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingFlag    = errors.New("missing required flag")
	ErrBoxSelector    = errors.New("use exactly one of -id and -name")
)
