// Package token defines the lexical vocabulary of rare's regex grammar:
// the tagged token kinds produced by the scanner, their precedence for
// the shunting-yard conversion, and the positional SyntaxError type
// raised by every compilation stage.
package token

import (
	"errors"
	"fmt"
)

// Sentinel error categories that a SyntaxError may wrap. Callers can use
// errors.Is to test for a category without parsing Msg.
var (
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	ErrMissingOperand   = errors.New("operator missing operand")
	ErrMisplacedAnchor  = errors.New("anchor in invalid position")
	ErrTrailingEscape   = errors.New("trailing escape character")
)

// Kind identifies the lexical category of a Token.
type Kind uint8

const (
	// Empty is the internal epsilon marker. It is never produced by the
	// scanner directly; it only appears as the token of auxiliary NFA
	// states introduced during Thompson construction.
	Empty Kind = iota

	// Char carries a single literal code point.
	Char

	// Dot matches any single code point.
	Dot

	// LParen and RParen delimit a group.
	LParen
	RParen

	// Beam is the alternation operator '|'.
	Beam

	// Concat is the implicit concatenation operator inserted by the lexer
	// between adjacent atoms.
	Concat

	// Star, Plus, and Question are the postfix quantifiers '*', '+', '?'.
	Star
	Plus
	Question

	// Hat and Dollar are the start/end anchors '^' and '$'.
	Hat
	Dollar

	// Escape signals "the next character is a literal". It is a one-shot
	// mode switch in the scanner and is never stored in a token list.
	Escape
)

// String returns a human-readable name for the Kind, primarily for
// diagnostics and test failure messages.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Char:
		return "Char"
	case Dot:
		return "Dot"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case Beam:
		return "Beam"
	case Concat:
		return "Concat"
	case Star:
		return "Star"
	case Plus:
		return "Plus"
	case Question:
		return "Question"
	case Hat:
		return "Hat"
	case Dollar:
		return "Dollar"
	case Escape:
		return "Escape"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Precedence returns the shunting-yard precedence of k, low to high:
// grouping parens are 0, alternation is 1, concatenation is 2,
// quantifiers are 3, and every atom (Char, Dot, Hat, Dollar) is 4.
func (k Kind) Precedence() int {
	switch k {
	case LParen, RParen:
		return 0
	case Beam:
		return 1
	case Concat:
		return 2
	case Star, Plus, Question:
		return 3
	default:
		return 4
	}
}

// IsOperator reports whether k participates in the shunting-yard
// precedence table as an operator rather than an atom, i.e. whether
// Precedence(k) <= 3.
func (k Kind) IsOperator() bool {
	return k.Precedence() <= 3
}

// Token is a single lexeme: its kind, the literal rune it carries (only
// meaningful when Kind == Char), and its 0-based column in the source
// pattern, used only for diagnostics.
type Token struct {
	Kind Kind
	Char rune
	Pos  int
}

// New constructs a Token of the given kind at the given position. The
// Char field is left at its zero value; use NewChar for Char tokens.
func New(kind Kind, pos int) Token {
	return Token{Kind: kind, Pos: pos}
}

// NewChar constructs a Char token carrying the given rune.
func NewChar(c rune, pos int) Token {
	return Token{Kind: Char, Char: c, Pos: pos}
}

// String renders the token for debugging, e.g. "Char('a')@3" or "Star@5".
func (t Token) String() string {
	if t.Kind == Char {
		return fmt.Sprintf("Char(%q)@%d", t.Char, t.Pos)
	}
	return fmt.Sprintf("%s@%d", t.Kind, t.Pos)
}

// SyntaxError is the single error kind raised during pattern compilation.
// It carries the 0-based column where the problem was detected and a
// human-readable message. SyntaxError is never raised by the simulator:
// a correctly built Engine never fails to match, it only reports absence
// of a match.
type SyntaxError struct {
	Pos int
	Msg string
	Err error // sentinel category from the Err* vars above; nil if uncategorized
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex syntax error at position %d: %s", e.Pos, e.Msg)
}

// Unwrap exposes the sentinel category so callers can use errors.Is.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// NewSyntaxError constructs an uncategorized SyntaxError at the given
// position.
func NewSyntaxError(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// NewSyntaxErrorWrap constructs a SyntaxError at the given position that
// wraps one of the Err* sentinel categories.
func NewSyntaxErrorWrap(pos int, sentinel error, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...), Err: sentinel}
}
