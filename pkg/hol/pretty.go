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
package hol

import (
	"fmt"
	"io"
	"strings"
)

// Operator precedence, loosest first.  A node whose precedence falls below
// what its context requires is parenthesised.
const (
	precBinder uint = iota
	precArrow
	precImplies
	precOr
	precAnd
	precEqual
	precNot
	precApply
	precAtom
)

// Print renders a term as deterministic text: fixed tokens, fixed
// parenthesisation, operands left to right, binders adjacent to their
// declared sorts.  The only errors are those of the sink.
func Print(w io.Writer, t Term) error {
	return PrintEncoded(w, Encode(t))
}

// PrintEncoded renders an encoded buffer directly, without rebuilding the
// term, and so also reports a MalformedError if the buffer is not well
// formed.
func PrintEncoded(w io.Writer, data []byte) error {
	p := printer{w, data, nil}
	p.render(Span{0, uint(len(data))}, precBinder)
	//
	return p.err
}

// String renders a term via Print.
func String(t Term) string {
	var builder strings.Builder
	//
	if err := Print(&builder, t); err != nil {
		panic(err)
	}
	//
	return builder.String()
}

// Printer renders nodes straight off their encoded spans, holding the first
// error encountered (whether from the sink or from a malformed buffer).
type printer struct {
	w    io.Writer
	data []byte
	err  error
}

func (p *printer) print(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

//nolint:gocyclo
func (p *printer) render(at Span, min uint) {
	if p.err != nil {
		return
	}
	//
	node, err := ParseNode(p.data, at)
	if err != nil {
		p.err = err
		return
	}
	//
	switch node.Tag {
	case TagBool, TagOmega, TagNever, TagTrue, TagFalse:
		p.print(node.Tag.String())
	case TagVariable:
		p.print(node.Var.Unwrap().String())
	case TagNot:
		p.parens(min, precNot, func() {
			p.print("!")
			p.render(node.children[0], precNot)
		})
	case TagPowerset:
		p.print("P(")
		p.render(node.children[0], precBinder)
		p.print(")")
	case TagAnd:
		p.infix(node, min, precAnd, precAnd, precAnd+1, " /\\ ")
	case TagOr:
		p.infix(node, min, precOr, precOr, precOr+1, " \\/ ")
	case TagImplies:
		p.infix(node, min, precImplies, precImplies+1, precImplies, " => ")
	case TagIff:
		p.infix(node, min, precImplies, precImplies+1, precImplies+1, " <=> ")
	case TagEqual:
		p.infix(node, min, precEqual, precEqual+1, precEqual+1, " == ")
	case TagArrow:
		p.infix(node, min, precArrow, precArrow+1, precArrow, " -> ")
	case TagTuple:
		p.print("(")
		p.render(node.children[0], precBinder)
		p.print(", ")
		p.render(node.children[1], precBinder)
		p.print(")")
	case TagCall:
		p.parens(min, precApply, func() {
			p.render(node.children[0], precApply)
			p.print("(")
			p.render(node.children[1], precBinder)
			p.print(")")
		})
	case TagLambda:
		p.parens(min, precBinder, func() {
			p.print("\\")
			p.render(node.children[0], precArrow)
			p.print(" . ")
			p.render(node.children[1], precBinder)
		})
	case TagForall, TagExists:
		p.parens(min, precBinder, func() {
			p.printf("%s %s: ", node.Tag, node.Var.Unwrap())
			p.render(node.children[0], precArrow)
			p.print(" . ")
			p.render(node.children[1], precBinder)
		})
	case TagIf:
		p.parens(min, precBinder, func() {
			p.print("if ")
			p.render(node.children[0], precArrow)
			p.print(" then ")
			p.render(node.children[1], precArrow)
			p.print(" else ")
			p.render(node.children[2], precBinder)
		})
	}
}

// Render an infix operator, parenthesising as the context demands.
func (p *printer) infix(node Node, min uint, prec uint, lhs uint, rhs uint, op string) {
	p.parens(min, prec, func() {
		p.render(node.children[0], lhs)
		p.print(op)
		p.render(node.children[1], rhs)
	})
}

// Wrap the output of a given renderer in parentheses whenever its precedence
// falls below what the context requires.
func (p *printer) parens(min uint, prec uint, body func()) {
	if prec < min {
		p.print("(")
		body()
		p.print(")")
	} else {
		body()
	}
}
