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

// Token associates a kind with a given range of characters in the text being
// lexed.
type Token struct {
	Kind uint
	Span Span
}

// LexRule associates groups of characters matched by a scanner with a given
// kind of token.
type LexRule struct {
	scanner Scanner
	kind    uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// kind.
func Rule(scanner Scanner, kind uint) LexRule {
	return LexRule{scanner, kind}
}

// Lexer splits a given input text into tokens.  Rules are tried in order at
// each position, and the first matching rule determines the token produced.
type Lexer struct {
	items []rune
	index int
	rules []LexRule
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer(input []rune, rules ...LexRule) *Lexer {
	return &Lexer{input, 0, rules}
}

// Index returns the current position within the input text.
func (p *Lexer) Index() uint {
	return uint(p.index)
}

// Remaining determines how many characters of the input were not lexed.
func (p *Lexer) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// Next attempts to lex the next token, returning false if no rule matches.
// Once the end of input is reached, an end-of-file rule (if given) is matched
// exactly once.
func (p *Lexer) Next() (Token, bool) {
	if p.index > len(p.items) {
		return Token{}, false
	}
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			token := Token{r.kind, NewSpan(p.index, end)}
			// Check for EOF
			if p.index == len(p.items) {
				p.index++
			} else {
				p.index = end
			}
			//
			return token, true
		}
	}
	//
	return Token{}, false
}

// Collect lexes as many tokens as possible in one go.  If anything remains
// afterwards, then the input contained unknown text.
func (p *Lexer) Collect() []Token {
	var tokens []Token
	//
	for {
		token, ok := p.Next()
		//
		if !ok {
			return tokens
		}
		//
		tokens = append(tokens, token)
	}
}
