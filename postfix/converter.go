// Package postfix converts an infix token list (as produced by lexer.Scan)
// into postfix order using the shunting-yard algorithm over the fixed
// token.Kind precedence table: an explicit operator stack, popped while
// precedence is greater-or-equal, with special-cased parens.
package postfix

import (
	"github.com/nguyenhuy0905/rare/token"
)

// Convert runs the shunting-yard algorithm over tokens and returns the
// equivalent postfix token sequence, or a *token.SyntaxError if the
// parentheses are unbalanced or a Dollar anchor appears somewhere other
// than immediately before RParen, Beam, or end-of-input.
func Convert(tokens []token.Token) ([]token.Token, error) {
	c := &converter{
		output: make([]token.Token, 0, len(tokens)),
		ops:    make([]token.Token, 0, len(tokens)),
	}

	for i, tok := range tokens {
		if tok.Kind == token.Dollar {
			if err := c.checkDollarPosition(tokens, i); err != nil {
				return nil, err
			}
		}

		if !tok.Kind.IsOperator() {
			c.output = append(c.output, tok)
			continue
		}

		if err := c.pushOperator(tok); err != nil {
			return nil, err
		}
	}

	for len(c.ops) > 0 {
		top := c.pop()
		if top.Kind == token.LParen {
			return nil, token.NewSyntaxErrorWrap(top.Pos, token.ErrUnbalancedParens, "unmatched '('")
		}
		c.output = append(c.output, top)
	}

	return c.output, nil
}

// converter holds the shunting-yard operator stack and the output list
// being built.
type converter struct {
	output []token.Token
	ops    []token.Token
}

func (c *converter) pop() token.Token {
	top := c.ops[len(c.ops)-1]
	c.ops = c.ops[:len(c.ops)-1]
	return top
}

func (c *converter) peek() (token.Token, bool) {
	if len(c.ops) == 0 {
		return token.Token{}, false
	}
	return c.ops[len(c.ops)-1], true
}

// pushOperator applies one shunting-yard step for an operator token.
func (c *converter) pushOperator(tok token.Token) error {
	switch tok.Kind {
	case token.LParen:
		c.ops = append(c.ops, tok)
		return nil
	case token.RParen:
		for {
			top, ok := c.peek()
			if !ok {
				return token.NewSyntaxErrorWrap(tok.Pos, token.ErrUnbalancedParens, "unmatched ')'")
			}
			c.pop()
			if top.Kind == token.LParen {
				return nil
			}
			c.output = append(c.output, top)
		}
	default:
		for {
			top, ok := c.peek()
			if !ok || top.Kind == token.LParen {
				break
			}
			if top.Kind.Precedence() < tok.Kind.Precedence() {
				break
			}
			c.output = append(c.output, c.pop())
		}
		c.ops = append(c.ops, tok)
		return nil
	}
}

// checkDollarPosition enforces that the Dollar token at index i is
// immediately followed by RParen, Beam, or end-of-input.
func (c *converter) checkDollarPosition(tokens []token.Token, i int) error {
	if i == len(tokens)-1 {
		return nil
	}
	next := tokens[i+1]
	if next.Kind == token.RParen || next.Kind == token.Beam {
		return nil
	}
	return token.NewSyntaxErrorWrap(tokens[i].Pos, token.ErrMisplacedAnchor, "'$' is only valid at the end of an alternative")
}
