// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package parse

import (
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/consensys/go-groebner/pkg/util/field"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace (other than newlines)
const WHITESPACE uint = 1

// NEWLINE signals a line break, which separates polynomials in a list.
const NEWLINE uint = 2

// COMMENT signals a comment running to the end of the line
const COMMENT uint = 3

// NUMBER signals a non-negative integer
const NUMBER uint = 4

// IDENTIFIER signals an indeterminate, such as x or x_{1}
const IDENTIFIER uint = 5

// ADD signals addition
const ADD uint = 6

// SUB signals subtraction (or negation)
const SUB uint = 7

// MUL signals (explicit) multiplication, either * or \cdot
const MUL uint = 8

// DIV signals the fraction bar of a rational constant
const DIV uint = 9

// CARET signals exponentiation
const CARET uint = 10

// LBRACE signals "left brace"
const LBRACE uint = 11

// RBRACE signals "right brace"
const RBRACE uint = 12

// LCURLY signals "left curly brace"
const LCURLY uint = 13

// RCURLY signals "right curly brace"
const RCURLY uint = 14

// SEPARATOR signals the end of one polynomial in a list
const SEPARATOR uint = 15

// FACTORS captures the set of tokens which can begin a factor.
var FACTORS = []uint{NUMBER, IDENTIFIER, LBRACE}

var whitespace = Many(Or(Unit(' '), Unit('\t'), Unit('\r')))

var comment = Or(Sequence(Unit('#'), Until('\n')), Unit('#'))

var digits = Many(Within('0', '9'))

var letter = Or(Within('a', 'z'), Within('A', 'Z'))

// Subscripts are either x_1 or x_{1}
var subscript = Sequence(Unit('_'), Or(digits, Sequence(Unit('{'), digits, Unit('}'))))

var identifier = Or(Sequence(letter, subscript), letter)

// lexing rules
var rules = []LexRule{
	Rule(whitespace, WHITESPACE),
	Rule(Unit('\n'), NEWLINE),
	Rule(comment, COMMENT),
	Rule(String("\\cdot"), MUL),
	Rule(String("\\times"), MUL),
	Rule(Unit('*'), MUL),
	Rule(Unit('/'), DIV),
	Rule(Unit('+'), ADD),
	Rule(Unit('-'), SUB),
	Rule(Unit('^'), CARET),
	Rule(Unit('('), LBRACE),
	Rule(Unit(')'), RBRACE),
	Rule(Unit('{'), LCURLY),
	Rule(Unit('}'), RCURLY),
	Rule(Or(Unit(','), Unit(';')), SEPARATOR),
	Rule(digits, NUMBER),
	Rule(identifier, IDENTIFIER),
	Rule(Eof(), END_OF),
}

// CanonicalVariable checks whether a given name is a valid indeterminate and,
// if so, returns its canonical form (e.g. x_{1} becomes x_1).
func CanonicalVariable(name string) (string, bool) {
	runes := []rune(name)
	//
	if len(runes) == 0 || identifier(runes) != uint(len(runes)) {
		return "", false
	}
	//
	return canonical(name), true
}

// Parse a given input string into a polynomial, resolving indeterminates
// against (and extending) a given set of variables.
func Parse[F field.Element[F]](input string, variables *poly.Variables) (poly.Polynomial[F], error) {
	p, err := NewParser[F](variables).Parse(input)
	//
	if err != nil {
		return p, err
	}
	//
	return p, nil
}

// Parser parses polynomials written in a LaTeX-like syntax, such as
// "3x^{2}y - 1/2".  Indeterminates are resolved against a set of variables,
// which is shared between all polynomials parsed by a given parser.
type Parser[F field.Element[F]] struct {
	// Strict determines whether unknown indeterminates are reported as errors,
	// rather than being added to the set of variables.
	Strict    bool
	variables *poly.Variables
	text      []rune
	tokens    []Token
	// Position within the tokens
	index int
}

// NewParser constructs a new parser for a given set of variables.  If no
// variables are given, then an empty set is used.
func NewParser[F field.Element[F]](variables *poly.Variables) *Parser[F] {
	if variables == nil {
		variables = &poly.Variables{}
	}
	//
	return &Parser[F]{variables: variables}
}

// Variables returns the set of variables used by this parser.
func (p *Parser[F]) Variables() poly.Variables {
	return *p.variables
}

// Parse a single polynomial from a given input string.
func (p *Parser[F]) Parse(input string) (poly.Polynomial[F], *SyntaxError) {
	var zero poly.Polynomial[F]
	//
	if err := p.init(input, false); err != nil {
		return zero, err
	}
	//
	q, err := p.parsePolynomial()
	// Check all parsed
	if err == nil && !p.follows(END_OF) {
		return zero, p.syntaxError(p.lookahead(), "unexpected token")
	}
	//
	return q, err
}

// ParseAll parses a list of zero or more polynomials from a given input string,
// where polynomials are separated by commas, semi-colons or newlines.
func (p *Parser[F]) ParseAll(input string) ([]poly.Polynomial[F], *SyntaxError) {
	var polys []poly.Polynomial[F]
	//
	if err := p.init(input, true); err != nil {
		return nil, err
	}
	//
	for {
		// Skip empty entries
		for p.follows(SEPARATOR, NEWLINE) {
			p.index++
		}
		//
		if p.follows(END_OF) {
			return polys, nil
		}
		//
		q, err := p.parsePolynomial()
		//
		if err != nil {
			return nil, err
		} else if !p.follows(SEPARATOR, NEWLINE, END_OF) {
			return nil, p.syntaxError(p.lookahead(), "expected separator")
		}
		//
		polys = append(polys, q)
	}
}

// ParseMonomial parses a single term from a given input string.
func (p *Parser[F]) ParseMonomial(input string) (poly.Monomial[F], *SyntaxError) {
	q, err := p.Parse(input)
	//
	if err != nil {
		return poly.Monomial[F]{}, err
	} else if q.Len() > 1 {
		return poly.Monomial[F]{}, &SyntaxError{p.text, NewSpan(0, len(p.text)), "expected monomial"}
	}
	//
	return q.LeadingTerm(), nil
}

func (p *Parser[F]) init(input string, lines bool) *SyntaxError {
	var (
		text  = []rune(input)
		lexer = NewLexer(text, rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	//
	p.text, p.index = text, 0
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		//
		return &SyntaxError{text, NewSpan(int(start), int(end)), "unknown text encountered"}
	}
	// Remove whitespace and comments
	p.tokens = slices.DeleteFunc(tokens, func(t Token) bool {
		return t.Kind == WHITESPACE || t.Kind == COMMENT || (!lines && t.Kind == NEWLINE)
	})
	//
	return nil
}

func (p *Parser[F]) parsePolynomial() (poly.Polynomial[F], *SyntaxError) {
	var (
		sum    poly.Polynomial[F]
		negate = p.match(SUB)
	)
	//
	if !negate {
		p.match(ADD)
	}
	//
	for {
		term, err := p.parseTerm()
		//
		if err != nil {
			return sum, err
		} else if negate {
			sum = sum.Sub(term)
		} else {
			sum = sum.Add(term)
		}
		//
		if p.match(ADD) {
			negate = false
		} else if p.match(SUB) {
			negate = true
		} else {
			return sum, nil
		}
	}
}

// Parse a product of one or more factors, which are either juxtaposed or
// separated by explicit multiplication.
func (p *Parser[F]) parseTerm() (poly.Polynomial[F], *SyntaxError) {
	term, err := p.parseFactor()
	//
	for err == nil && (p.follows(MUL) || p.follows(FACTORS...)) {
		var factor poly.Polynomial[F]
		//
		p.match(MUL)
		//
		if factor, err = p.parseFactor(); err == nil {
			term = term.Mul(factor)
		}
	}
	//
	return term, err
}

func (p *Parser[F]) parseFactor() (poly.Polynomial[F], *SyntaxError) {
	var (
		factor poly.Polynomial[F]
		err    *SyntaxError
		token  = p.lookahead()
	)
	//
	switch token.Kind {
	case NUMBER:
		factor, err = p.parseNumber()
	case IDENTIFIER:
		factor, err = p.parseVariable()
	case LBRACE:
		factor, err = p.parseBracketedPolynomial()
	default:
		return factor, p.syntaxError(token, "expected number, variable or '('")
	}
	// Check for exponent
	if err != nil || !p.match(CARET) {
		return factor, err
	}
	//
	n, err := p.parseExponent()
	//
	if err != nil {
		return factor, err
	}
	//
	factor, e := factor.Pow(n)
	//
	if e != nil {
		return factor, p.syntaxError(token, e.Error())
	}
	//
	return factor, nil
}

func (p *Parser[F]) parseBracketedPolynomial() (poly.Polynomial[F], *SyntaxError) {
	p.expect(LBRACE)
	//
	q, err := p.parsePolynomial()
	//
	if err == nil && !p.match(RBRACE) {
		return q, p.syntaxError(p.lookahead(), "expected ')'")
	}
	//
	return q, err
}

func (p *Parser[F]) parseVariable() (poly.Polynomial[F], *SyntaxError) {
	var (
		token = p.expect(IDENTIFIER)
		name  = canonical(p.string(token))
	)
	//
	index, ok := p.variables.Index(name)
	//
	if !ok && p.Strict {
		return poly.Polynomial[F]{}, p.syntaxError(token, "unknown variable")
	} else if !ok {
		index = p.variables.Add(name)
	}
	//
	exponents := make([]uint, index+1)
	exponents[index] = 1
	//
	return poly.NewPolynomial(poly.NewMonomial(field.One[F](), exponents...)), nil
}

// Parse an integer constant, or a rational constant such as 1/2.
func (p *Parser[F]) parseNumber() (poly.Polynomial[F], *SyntaxError) {
	var (
		token = p.expect(NUMBER)
		num   = p.number(token)
	)
	//
	if !p.match(DIV) {
		return poly.ConstantPolynomial(field.BigInt[F](num)), nil
	} else if !p.follows(NUMBER) {
		return poly.Polynomial[F]{}, p.syntaxError(p.lookahead(), "expected denominator")
	}
	//
	den := p.expect(NUMBER)
	//
	if val, ok := field.Rat[F](num, p.number(den)); ok {
		return poly.ConstantPolynomial(val), nil
	}
	//
	span := NewSpan(token.Span.Start(), den.Span.End())
	//
	return poly.Polynomial[F]{}, &SyntaxError{p.text, span, "division by zero"}
}

// Parse an exponent, which is either n or {n}.
func (p *Parser[F]) parseExponent() (int, *SyntaxError) {
	braced := p.match(LCURLY)
	//
	if !p.follows(NUMBER) {
		return 0, p.syntaxError(p.lookahead(), "expected exponent")
	}
	//
	token := p.expect(NUMBER)
	n, err := strconv.Atoi(p.string(token))
	//
	if err != nil {
		return 0, p.syntaxError(token, "exponent too large")
	} else if braced && !p.match(RCURLY) {
		return 0, p.syntaxError(p.lookahead(), "expected '}'")
	}
	//
	return n, nil
}

// Get the text representing the given token as a string.
func (p *Parser[F]) string(token Token) string {
	return string(p.text[token.Span.Start():token.Span.End()])
}

// Get the value of a given number token.
func (p *Parser[F]) number(token Token) *big.Int {
	var number big.Int
	//
	number.SetString(p.string(token), 10)
	//
	return &number
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser[F]) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser[F]) lookahead() Token {
	return p.tokens[p.index]
}

func (p *Parser[F]) expect(kind uint) Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser[F]) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser[F]) syntaxError(token Token, msg string) *SyntaxError {
	return &SyntaxError{p.text, token.Span, msg}
}

// Subscripts are canonicalised without braces.
func canonical(name string) string {
	return strings.NewReplacer("{", "", "}", "").Replace(name)
}
