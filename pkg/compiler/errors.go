package compiler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownToken is matched by every lexical Error via errors.Is.
var ErrUnknownToken = errors.New("unknown token")

// Error is a lexical diagnostic for a lexeme that is not punctuation, a
// keyword, an identifier or a constant.
type Error struct {
	Pos    Pos
	Lexeme string
}

func (e *Error) Error() string {
	return fmt.Sprintf("unknown token '%s' at line %d, column %d", e.Lexeme, e.Pos.Line, e.Pos.Column)
}

func (e *Error) Unwrap() error {
	return ErrUnknownToken
}

// ErrorList collects lexical errors in source order.
type ErrorList []*Error

func (l ErrorList) Len() int { return len(l) }

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	b.WriteString(l[0].Error())
	fmt.Fprintf(&b, " (and %d more errors)", len(l)-1)
	return b.String()
}

// Err returns nil for an empty list and the list itself otherwise, so the
// result can be compared to nil safely.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}
