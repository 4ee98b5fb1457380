package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")

	ErrStringExpected  = fmt.Errorf("%w: string expected", ErrParse)
	ErrValueExpected   = fmt.Errorf("%w: value expected", ErrParse)
	ErrQuoteExpected   = fmt.Errorf("%w: closing quote expected", ErrParse)
	ErrClosingBrace    = fmt.Errorf("%w: closing brace expected", ErrParse)
	ErrClosingBracket  = fmt.Errorf("%w: closing bracket expected", ErrParse)
	ErrEOFExpected     = fmt.Errorf("%w: end of file expected", ErrParse)
	ErrDuplicateKey    = fmt.Errorf("%w: duplicate key", ErrParse)
	ErrBadEscape       = fmt.Errorf("%w: unexpected escape character", ErrParse)
	ErrEscapeExpected  = fmt.Errorf("%w: escape character expected", ErrParse)
	ErrHexEscape       = fmt.Errorf("%w: hex escapes not supported", ErrParse)
)

func posErr(err error, pos *Pos) error {
	return fmt.Errorf("%w at %s", err, pos)
}

func DuplicateKeyErr(key string, pos *Pos) error {
	return fmt.Errorf("%w %q at %s", ErrDuplicateKey, key, pos)
}

func BadEscapeErr(c rune, pos *Pos) error {
	return fmt.Errorf("%w %q at %s", ErrBadEscape, c, pos)
}
