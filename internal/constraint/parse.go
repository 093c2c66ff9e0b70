// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package constraint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrSyntax is returned for malformed constraint text.
	ErrSyntax = errors.New("constraint syntax error")

	// ErrUnknownAxis is returned when constraint text names an axis that is not known.
	ErrUnknownAxis = errors.New("unknown axis")
)

// Parse reads constraint text:
//
//	expr := alt { "||" alt }
//	alt  := term { "&&" term }
//	term := "(" expr ")" | "any" | "never" | [axis] op level | level
//	op   := ">=" | ">" | "<=" | "<" | "==" | "!="
//
// A bare level means ">= level" on the [Primary] axis. Axes are numeric ids or,
// when lookup is not nil, names resolved by lookup. Levels with a minor part
// compare dotted.
func Parse(text string, lookup func(string) (Axis, bool)) (Constraint, error) {
	toks, err := scan(text)
	if err != nil {
		return Constraint{}, err
	}

	p := parser{toks: toks, lookup: lookup}

	c, err := p.expr()
	if err != nil {
		return Constraint{}, err
	}

	if t := p.peek(); t.kind != tokEOF {
		return Constraint{}, p.errorf(t, "unexpected %q", t.text)
	}

	return c, nil
}

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokOr
	tokAnd
	tokLParen
	tokRParen
	tokOp
	tokNumber
	tokIdent
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func scan(text string) ([]token, error) {
	var toks []token

	for i := 0; i < len(text); {
		ch := text[i]

		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++

			continue

		case strings.HasPrefix(text[i:], "||"):
			toks = append(toks, token{tokOr, "||", i})
			i += 2

		case strings.HasPrefix(text[i:], "&&"):
			toks = append(toks, token{tokAnd, "&&", i})
			i += 2

		case ch == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++

		case ch == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++

		case ch == '>' || ch == '<' || ch == '=' || ch == '!':
			n := 1
			if i+1 < len(text) && text[i+1] == '=' {
				n = 2
			}

			op := text[i : i+n]
			if op == "=" || op == "!" {
				return nil, fmt.Errorf("%w at offset %d: unknown operator %q", ErrSyntax, i, op)
			}

			toks = append(toks, token{tokOp, op, i})
			i += n

		case isDigit(ch):
			j := i
			for j < len(text) && (isDigit(text[j]) || text[j] == '.') {
				j++
			}

			toks = append(toks, token{tokNumber, text[i:j], i})
			i = j

		case isLetter(ch):
			j := i
			for j < len(text) && (isLetter(text[j]) || isDigit(text[j])) {
				j++
			}

			toks = append(toks, token{tokIdent, text[i:j], i})
			i = j

		default:
			return nil, fmt.Errorf("%w at offset %d: unexpected character %q", ErrSyntax, i, ch)
		}
	}

	return append(toks, token{tokEOF, "", len(text)}), nil
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

type parser struct {
	toks   []token
	pos    int
	lookup func(string) (Axis, bool)
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, t.pos, fmt.Sprintf(format, args...))
}

func (p *parser) expr() (Constraint, error) {
	c, err := p.alt()
	if err != nil {
		return Constraint{}, err
	}

	for p.peek().kind == tokOr {
		p.next()

		o, err := p.alt()
		if err != nil {
			return Constraint{}, err
		}

		c = c.Or(o)
	}

	return c, nil
}

func (p *parser) alt() (Constraint, error) {
	c, err := p.term()
	if err != nil {
		return Constraint{}, err
	}

	for p.peek().kind == tokAnd {
		p.next()

		o, err := p.term()
		if err != nil {
			return Constraint{}, err
		}

		c = c.And(o)
	}

	return c, nil
}

func (p *parser) term() (Constraint, error) {
	t := p.next()

	switch t.kind {
	case tokLParen:
		c, err := p.expr()
		if err != nil {
			return Constraint{}, err
		}

		if r := p.next(); r.kind != tokRParen {
			return Constraint{}, p.errorf(r, "missing ')'")
		}

		return c, nil

	case tokIdent:
		switch t.text {
		case "any":
			return None(), nil

		case "never":
			return Never(), nil
		}

		axis, err := p.axisNamed(t)
		if err != nil {
			return Constraint{}, err
		}

		return p.comparison(axis)

	case tokNumber:
		if p.peek().kind != tokOp {
			level, err := p.level(t)
			if err != nil {
				return Constraint{}, err
			}

			return AtLeast(Primary, level), nil
		}

		id, err := strconv.ParseInt(t.text, 10, 32)
		if err != nil {
			return Constraint{}, p.errorf(t, "invalid axis %q", t.text)
		}

		return p.comparison(Axis(id))

	case tokOp:
		p.pos--

		return p.comparison(Primary)

	default:
		return Constraint{}, p.errorf(t, "unexpected %q", t.text)
	}
}

func (p *parser) axisNamed(t token) (Axis, error) {
	if p.lookup != nil {
		if axis, ok := p.lookup(t.text); ok {
			return axis, nil
		}
	}

	return 0, fmt.Errorf("%w %q at offset %d", ErrUnknownAxis, t.text, t.pos)
}

func (p *parser) comparison(axis Axis) (Constraint, error) {
	op := p.next()
	if op.kind != tokOp {
		return Constraint{}, p.errorf(op, "expected comparison, got %q", op.text)
	}

	lt := p.next()
	if lt.kind != tokNumber {
		return Constraint{}, p.errorf(lt, "expected level, got %q", lt.text)
	}

	level, err := p.level(lt)
	if err != nil {
		return Constraint{}, err
	}

	dotted := strings.Contains(lt.text, ".")

	switch op.text {
	case ">=":
		return AtLeast(axis, level), nil

	case ">":
		return Above(axis, level, dotted), nil

	case "<=":
		return AtMost(axis, level, dotted), nil

	case "<":
		return Below(axis, level), nil

	case "==":
		return Exactly(axis, level, dotted), nil

	default: // "!="
		return NotEqual(axis, level, dotted), nil
	}
}

func (p *parser) level(t token) (Level, error) {
	level, err := ParseLevel(t.text)
	if err != nil {
		return Level{}, fmt.Errorf("%w at offset %d: %w", ErrSyntax, t.pos, err)
	}

	return level, nil
}

// Must returns c or panics on err. It is intended for static tables and tests.
func Must(c Constraint, err error) Constraint {
	if err != nil {
		panic(err)
	}

	return c
}
