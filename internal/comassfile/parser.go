package comassfile

//----------------------------------------------------------------------
// This file is part of comass.
// Copyright (C) 2011-2020 Bernd Fix
//
// comass is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// comass is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/bfix/comass/internal/recur"
)

// parser is a recursive-descent parser over the small arithmetic
// grammar allowed on the right-hand side of an equation: rationals, n,
// n^k, b^n, s(n-j), +, -, *, /, and parentheses. It builds a recur.Expr
// directly rather than going through go/parser and a Go-syntax AST --
// '^' for exponentiation and bare "s(n-1)" calls aren't valid Go
// expressions, so there is no Go-syntax detour to take here.
type parser struct {
	lx  *lexer
	cur token
}

func newParser(s string) (*parser, error) {
	p := &parser{lx: newLexer(s)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lx.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) expect(k tokKind, what string) error {
	if p.cur.kind != k {
		return fmt.Errorf("comassfile: expected %s, got %q", what, p.cur.text)
	}
	return p.advance()
}

// parseExpr parses the full additive-level grammar and is the
// parser's public entry point (see ParseExpr).
func (p *parser) parseExpr() (recur.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return recur.Expr{}, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.kind
		if err := p.advance(); err != nil {
			return recur.Expr{}, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return recur.Expr{}, err
		}
		if op == tokPlus {
			left = recur.Add(left, right)
		} else {
			left = recur.Sub(left, right)
		}
	}
	return left, nil
}

func (p *parser) parseTerm() (recur.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return recur.Expr{}, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.kind
		if err := p.advance(); err != nil {
			return recur.Expr{}, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return recur.Expr{}, err
		}
		if op == tokStar {
			left = recur.Mul(left, right)
			continue
		}
		// Division is only meaningful here as literal rational
		// construction (e.g. "1/2"); the Expr algebra has no Div node.
		ln, lok := left.Rat(), left.Kind() == recur.KindRational
		rn, rok := right.Rat(), right.Kind() == recur.KindRational
		if !lok || !rok {
			return recur.Expr{}, &recur.SolveError{
				Kind: recur.ParseConstraintViolated,
				Msg:  "division is only supported between rational literals",
			}
		}
		if rn.Sign() == 0 {
			return recur.Expr{}, &recur.SolveError{Kind: recur.ParseConstraintViolated, Msg: "division by zero"}
		}
		left = recur.Rational(new(big.Rat).Quo(ln, rn))
	}
	return left, nil
}

func (p *parser) parseUnary() (recur.Expr, error) {
	if p.cur.kind == tokMinus {
		if err := p.advance(); err != nil {
			return recur.Expr{}, err
		}
		e, err := p.parseUnary()
		if err != nil {
			return recur.Expr{}, err
		}
		return recur.Neg(e), nil
	}
	return p.parsePower()
}

// parsePower handles right-associative '^'; the exponent side reuses
// parseUnary so that "2^-1" parses too.
func (p *parser) parsePower() (recur.Expr, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return recur.Expr{}, err
	}
	if p.cur.kind == tokCaret {
		if err := p.advance(); err != nil {
			return recur.Expr{}, err
		}
		exp, err := p.parseUnary()
		if err != nil {
			return recur.Expr{}, err
		}
		return recur.Pow(base, exp), nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (recur.Expr, error) {
	switch p.cur.kind {
	case tokNumber:
		txt := p.cur.text
		if err := p.advance(); err != nil {
			return recur.Expr{}, err
		}
		v, ok := new(big.Int).SetString(txt, 10)
		if !ok {
			return recur.Expr{}, fmt.Errorf("comassfile: invalid integer literal %q", txt)
		}
		return recur.Rational(new(big.Rat).SetInt(v)), nil

	case tokIdent:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return recur.Expr{}, err
		}
		switch name {
		case "n":
			return recur.Var(recur.VarN), nil
		case "s":
			if err := p.expect(tokLParen, "'(' after s"); err != nil {
				return recur.Expr{}, err
			}
			arg, err := p.parseSArg()
			if err != nil {
				return recur.Expr{}, err
			}
			if err := p.expect(tokRParen, "')' closing s(...)"); err != nil {
				return recur.Expr{}, err
			}
			return arg, nil
		default:
			return recur.Expr{}, &recur.SolveError{
				Kind: recur.ParseConstraintViolated,
				Msg:  fmt.Sprintf("unknown identifier %q", name),
			}
		}

	case tokLParen:
		if err := p.advance(); err != nil {
			return recur.Expr{}, err
		}
		e, err := p.parseExpr()
		if err != nil {
			return recur.Expr{}, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return recur.Expr{}, err
		}
		return e, nil

	default:
		return recur.Expr{}, fmt.Errorf("comassfile: unexpected token %q", p.cur.text)
	}
}

// parseSArg parses the argument of an s(...) application: either "n"
// (s(n) itself) or "n - j" for a positive integer literal j. Any other
// shape -- s(n-n), s(2*n), a bare literal index inside a recurrence's
// right-hand side -- is rejected as ParseConstraintViolated.
func (p *parser) parseSArg() (recur.Expr, error) {
	if p.cur.kind != tokIdent || p.cur.text != "n" {
		return recur.Expr{}, &recur.SolveError{
			Kind: recur.ParseConstraintViolated,
			Msg:  "s(...) argument must be n or n-<integer>",
		}
	}
	if err := p.advance(); err != nil {
		return recur.Expr{}, err
	}
	if p.cur.kind != tokMinus {
		return recur.RecCall(0), nil
	}
	if err := p.advance(); err != nil {
		return recur.Expr{}, err
	}
	if p.cur.kind != tokNumber {
		return recur.Expr{}, &recur.SolveError{
			Kind: recur.ParseConstraintViolated,
			Msg:  "s(n-...) offset must be a positive integer literal",
		}
	}
	j, err := strconv.Atoi(p.cur.text)
	if err != nil || j <= 0 {
		return recur.Expr{}, &recur.SolveError{
			Kind: recur.ParseConstraintViolated,
			Msg:  fmt.Sprintf("invalid s(n-j) offset %q", p.cur.text),
		}
	}
	if err := p.advance(); err != nil {
		return recur.Expr{}, err
	}
	return recur.RecCall(j), nil
}

// ParseExpr parses a single right-hand-side expression (as it appears
// after the '=' of an equation or initial-condition line) and checks
// that it consumes the whole string.
func ParseExpr(s string) (recur.Expr, error) {
	p, err := newParser(s)
	if err != nil {
		return recur.Expr{}, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return recur.Expr{}, err
	}
	if p.cur.kind != tokEOF {
		return recur.Expr{}, fmt.Errorf("comassfile: unexpected trailing input %q", p.cur.text)
	}
	return e, nil
}
