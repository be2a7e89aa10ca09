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

import "fmt"

// Span represents a contiguous slice of the original text, given as a half-open
// interval [start,end).
type Span struct {
	start int
	end   int
}

// NewSpan constructs a new span, checking that it is well formed.
func NewSpan(start int, end int) Span {
	if start > end {
		panic(fmt.Sprintf("invalid span [%d,%d)", start, end))
	}
	//
	return Span{start, end}
}

// Start returns the index of the first character in this span.
func (p Span) Start() int {
	return p.start
}

// End returns one past the index of the last character in this span.
func (p Span) End() int {
	return p.end
}

// Length returns the number of characters in this span.
func (p Span) Length() int {
	return p.end - p.start
}

// Line identifies a line within some text, including its line number (counting
// from 1) and its span.
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the text of this line.
func (p Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number returns the line number of this line, counting from 1.
func (p Line) Number() int {
	return p.number
}

// Start returns the index of the first character of this line in the text.
func (p Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p Line) Length() int {
	return p.span.Length()
}

// SyntaxError is a structured error which retains the span within the original
// text where an error arose, along with an error message.
type SyntaxError struct {
	text []rune
	span Span
	msg  string
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	line := p.FirstEnclosingLine()
	//
	return fmt.Sprintf("%d:%d: %s", line.Number(), 1+p.span.start-line.Start(), p.msg)
}

// FirstEnclosingLine determines the first line of the original text enclosing
// the start of this error.  If the error lies beyond the end of the text, then
// the last line is returned.  The line need not enclose the entire span, since
// this may cross multiple lines.
func (p *SyntaxError) FirstEnclosingLine() Line {
	var (
		num   = 1
		start = 0
	)
	//
	for i := 0; i < len(p.text); i++ {
		if i == p.span.start {
			return Line{p.text, Span{start, endOfLine(i, p.text)}, num}
		} else if p.text[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{p.text, Span{start, len(p.text)}, num}
}

// Find the end of the line enclosing a given index.
func endOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	//
	return len(text)
}
