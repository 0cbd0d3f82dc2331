// Package lexer streams a regex pattern character by character into an
// infix token list, inserting implicit concatenation tokens and
// validating operator positions as it goes: a mode value that switches
// on escape, and a running concat-pending flag that decides
// whether to splice in a Concat token before the next atom.
package lexer

import (
	"github.com/nguyenhuy0905/rare/token"
)

// scanMode identifies which character class the scanner expects next.
type scanMode uint8

const (
	modeNormal scanMode = iota
	modeAfterEscape
)

// Scan tokenizes pattern into an infix token list, inserting Concat
// tokens between adjacent atoms and validating the position of '^' and
// the quantifiers as it scans. It returns a *token.SyntaxError if the
// pattern is malformed.
func Scan(pattern string) ([]token.Token, error) {
	s := &scanner{
		input: []rune(pattern),
		mode:  modeNormal,
	}
	return s.scan()
}

// scanner holds the mutable state of one scan pass: the growing token
// list, the current mode, the last emitted token (for positional
// validation), and whether the next right-side atom needs an implicit
// Concat spliced in front of it.
type scanner struct {
	input         []rune
	mode          scanMode
	tokens        []token.Token
	havePrev      bool
	prev          token.Kind
	concatPending bool
}

// isRightSide reports whether kind can be the right-hand operand of an
// implicit concatenation.
func isRightSide(kind token.Kind) bool {
	switch kind {
	case token.Char, token.Dot, token.LParen, token.Dollar, token.Hat:
		return true
	default:
		return false
	}
}

// leavesPending reports the concat_pending value that should be set
// after emitting a token of the given kind: true unless the token opens
// a new alternative (LParen, Beam) or is itself a start anchor (Hat).
func leavesPending(kind token.Kind) bool {
	switch kind {
	case token.LParen, token.Beam, token.Hat:
		return false
	default:
		return true
	}
}

func (s *scanner) scan() ([]token.Token, error) {
	for pos, ch := range s.input {
		var kind token.Kind
		var literal rune

		if s.mode == modeAfterEscape {
			kind = token.Char
			literal = ch
			s.mode = modeNormal
		} else {
			switch ch {
			case '.':
				kind = token.Dot
			case '*':
				kind = token.Star
			case '+':
				kind = token.Plus
			case '?':
				kind = token.Question
			case '|':
				kind = token.Beam
			case '(':
				kind = token.LParen
			case ')':
				kind = token.RParen
			case '^':
				kind = token.Hat
			case '$':
				kind = token.Dollar
			case '\\':
				s.mode = modeAfterEscape
				continue
			default:
				kind = token.Char
				literal = ch
			}
		}

		if err := s.validatePosition(kind, pos); err != nil {
			return nil, err
		}

		if isRightSide(kind) && s.concatPending {
			s.emit(token.New(token.Concat, pos))
		}

		if kind == token.Char {
			s.emit(token.NewChar(literal, pos))
		} else {
			s.emit(token.New(kind, pos))
		}

		s.concatPending = leavesPending(kind)
		s.havePrev = true
		s.prev = kind
	}

	if s.mode == modeAfterEscape {
		return nil, token.NewSyntaxErrorWrap(len(s.input)-1, token.ErrTrailingEscape, "trailing escape character")
	}

	return s.tokens, nil
}

// emit appends tok to the token list.
func (s *scanner) emit(tok token.Token) {
	s.tokens = append(s.tokens, tok)
}

// validatePosition applies the lexer's cheap, local positional checks
// before kind is committed to the output: '^' may only follow an
// absent-or-LParen-or-Beam predecessor, and the quantifiers require a
// preceding operand.
func (s *scanner) validatePosition(kind token.Kind, pos int) error {
	switch kind {
	case token.Hat:
		if s.havePrev && s.prev != token.LParen && s.prev != token.Beam {
			return token.NewSyntaxErrorWrap(pos, token.ErrMisplacedAnchor, "'^' is only valid at the start of an alternative")
		}
	case token.Star, token.Plus, token.Question:
		if !s.havePrev || s.prev == token.LParen || s.prev == token.Beam {
			return token.NewSyntaxErrorWrap(pos, token.ErrMissingOperand, "quantifier has no preceding value to repeat")
		}
	}
	return nil
}
