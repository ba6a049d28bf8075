// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"
	"strconv"

	"github.com/cpmech/gosl/chk"
)

// token kinds
const (
	tkEOF = iota
	tkNum
	tkIdent
	tkOp     // + - * / ^ (with ** normalized to ^)
	tkLparen
	tkRparen
	tkComma
)

// token holds one lexical token
type token struct {
	kind int
	text string
	val  float64
}

// constants maps named constants accepted in expressions
var constants = map[string]float64{
	"pi": math.Pi,
	"E":  math.E,
}

// lex splits src into tokens
func lex(src string) (tokens []token, err error) {
	i := 0
	n := len(src)
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < n && (src[j] >= '0' && src[j] <= '9' || src[j] == '.') {
				j++
			}
			if j < n && (src[j] == 'e' || src[j] == 'E') {
				k := j + 1
				if k < n && (src[k] == '+' || src[k] == '-') {
					k++
				}
				if k < n && src[k] >= '0' && src[k] <= '9' {
					for k < n && src[k] >= '0' && src[k] <= '9' {
						k++
					}
					j = k
				}
			}
			v, e := strconv.ParseFloat(src[i:j], 64)
			if e != nil {
				return nil, chk.Err("cannot parse number %q", src[i:j])
			}
			tokens = append(tokens, token{kind: tkNum, val: v})
			i = j
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
			j := i
			for j < n && (src[j] >= 'a' && src[j] <= 'z' || src[j] >= 'A' && src[j] <= 'Z' || src[j] >= '0' && src[j] <= '9' || src[j] == '_') {
				j++
			}
			tokens = append(tokens, token{kind: tkIdent, text: src[i:j]})
			i = j
		case c == '*':
			if i+1 < n && src[i+1] == '*' {
				tokens = append(tokens, token{kind: tkOp, text: "^"})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tkOp, text: "*"})
				i++
			}
		case c == '+' || c == '-' || c == '/' || c == '^':
			tokens = append(tokens, token{kind: tkOp, text: string(c)})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tkLparen})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tkRparen})
			i++
		case c == ',':
			tokens = append(tokens, token{kind: tkComma})
			i++
		case c == '=':
			return nil, chk.Err("equations must be given in residual form; drop %q", "= 0")
		default:
			return nil, chk.Err("unexpected character %q", string(c))
		}
	}
	tokens = append(tokens, token{kind: tkEOF})
	return
}

// parser implements a recursive descent parser over tokens
type parser struct {
	tokens []token
	pos    int
}

func (o *parser) peek() token { return o.tokens[o.pos] }
func (o *parser) next() token { t := o.tokens[o.pos]; o.pos++; return t }

func (o *parser) acceptOp(text string) bool {
	t := o.peek()
	if t.kind == tkOp && t.text == text {
		o.pos++
		return true
	}
	return false
}

// sum := product (('+'|'-') product)*
func (o *parser) sum() (Expr, error) {
	e, err := o.product()
	if err != nil {
		return nil, err
	}
	for {
		if o.acceptOp("+") {
			rhs, err := o.product()
			if err != nil {
				return nil, err
			}
			e = NewSum(e, rhs)
		} else if o.acceptOp("-") {
			rhs, err := o.product()
			if err != nil {
				return nil, err
			}
			e = NewSum(e, NewNeg(rhs))
		} else {
			return e, nil
		}
	}
}

// product := unary (('*'|'/') unary)*
func (o *parser) product() (Expr, error) {
	e, err := o.unary()
	if err != nil {
		return nil, err
	}
	for {
		if o.acceptOp("*") {
			rhs, err := o.unary()
			if err != nil {
				return nil, err
			}
			e = NewProd(e, rhs)
		} else if o.acceptOp("/") {
			rhs, err := o.unary()
			if err != nil {
				return nil, err
			}
			e = NewDiv(e, rhs)
		} else {
			return e, nil
		}
	}
}

// unary := ('+'|'-')* power
func (o *parser) unary() (Expr, error) {
	if o.acceptOp("-") {
		e, err := o.unary()
		if err != nil {
			return nil, err
		}
		return NewNeg(e), nil
	}
	if o.acceptOp("+") {
		return o.unary()
	}
	return o.power()
}

// power := atom ('^' unary)?   (right associative)
func (o *parser) power() (Expr, error) {
	base, err := o.atom()
	if err != nil {
		return nil, err
	}
	if o.acceptOp("^") {
		exp, err := o.unary()
		if err != nil {
			return nil, err
		}
		return NewPow(base, exp), nil
	}
	return base, nil
}

// atom := number | constant | symbol | function '(' sum ')' | '(' sum ')'
func (o *parser) atom() (Expr, error) {
	t := o.next()
	switch t.kind {
	case tkNum:
		return NewNum(t.val), nil
	case tkIdent:
		if o.peek().kind == tkLparen {
			if _, ok := functions[t.text]; !ok {
				return nil, chk.Err("unknown function %q", t.text)
			}
			o.next()
			arg, err := o.sum()
			if err != nil {
				return nil, err
			}
			if o.next().kind != tkRparen {
				return nil, chk.Err("missing closing parenthesis after argument of %q", t.text)
			}
			return NewCall(t.text, arg), nil
		}
		if v, ok := constants[t.text]; ok {
			return NewNum(v), nil
		}
		return NewSym(t.text), nil
	case tkLparen:
		e, err := o.sum()
		if err != nil {
			return nil, err
		}
		if o.next().kind != tkRparen {
			return nil, chk.Err("missing closing parenthesis")
		}
		return e, nil
	}
	return nil, chk.Err("unexpected token in expression")
}

// Parse parses src into an expression tree
func Parse(src string) (Expr, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	e, err := p.sum()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tkEOF {
		return nil, chk.Err("trailing input after expression")
	}
	return e, nil
}
