package ir

import "errors"

var (
	ErrUnexpectedObject = errors.New("unexpected object")
	ErrUnexpectedArray  = errors.New("unexpected array")
	ErrUnexpectedValue  = errors.New("unexpected value")
	ErrNoSuchKey        = errors.New("no such key")
	ErrIndexRange       = errors.New("index out of range")
	ErrConvert          = errors.New("conversion failed")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrPath             = errors.New("bad path")
)
