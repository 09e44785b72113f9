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
	"bytes"

	"github.com/verdict-lang/go-verdict/pkg/util/buffer"
)

// Encodable is the capability of appending a canonical binary form of oneself
// to a buffer.  Every term node, every sort and Variable itself implement it;
// nothing outside this package can, which keeps the vocabulary closed.
type Encodable interface {
	// EncodeTo appends the encoding of this value to the given buffer.
	EncodeTo(buf *buffer.Buffer)
	// encodedSize returns the exact number of bytes EncodeTo appends.  Sizes
	// are needed ahead of contents to emit length prefixes in a single
	// forward pass.
	encodedSize() uint64
}

// Term is a node of a formula.  Terms are immutable once constructed, and are
// built exclusively through the combinators in this package; structural
// validity (arity, payload shape) is therefore guaranteed, whilst
// well-typedness is deliberately not tracked.
type Term interface {
	Encodable
	// Tag returns the former of the outermost node.
	Tag() Tag
	//
	isTerm()
}

// ============================================================================
// Constant
// ============================================================================

// Constant is a nullary logical constant, i.e. true or false.  Constants of
// sort shape (bool, omega, never) are the sort values themselves.
type Constant struct {
	tag Tag
}

var (
	// True is the boolean constant true.
	True = Constant{TagTrue}
	// False is the boolean constant false.
	False = Constant{TagFalse}
)

// Tag implementation for the Term interface.
func (p Constant) Tag() Tag {
	return p.tag
}

func (p Constant) isTerm() {}

// ============================================================================
// Unary
// ============================================================================

// Unary is a term former applied to a single sub-term, i.e. negation or
// powerset formation.
type Unary struct {
	tag Tag
	// Arg is the sub-term the former applies to.
	Arg Term
}

// Tag implementation for the Term interface.
func (p *Unary) Tag() Tag {
	return p.tag
}

func (p *Unary) isTerm() {}

// ============================================================================
// Binary
// ============================================================================

// Binary is a term former combining two sub-terms: the connectives, equality,
// pairing, application and abstraction.  For abstraction the left sub-term is
// the domain sort.
type Binary struct {
	tag Tag
	// Lhs is the left sub-term.
	Lhs Term
	// Rhs is the right sub-term.
	Rhs Term
}

// Tag implementation for the Term interface.
func (p *Binary) Tag() Tag {
	return p.tag
}

func (p *Binary) isTerm() {}

// ============================================================================
// Quantifier
// ============================================================================

// Quantifier binds a variable of a declared sort within a body, universally
// or existentially.
type Quantifier struct {
	tag Tag
	// Binder is the variable bound within the body.
	Binder Variable
	// Domain is the sort the bound variable ranges over.
	Domain Sort
	// Body is the quantified sub-term.
	Body Term
}

// Tag implementation for the Term interface.
func (p *Quantifier) Tag() Tag {
	return p.tag
}

func (p *Quantifier) isTerm() {}

// ============================================================================
// If
// ============================================================================

// If is the ternary conditional.
type If struct {
	// Condition determines which branch the conditional takes.
	Condition Term
	// TrueBranch is taken when the condition holds.
	TrueBranch Term
	// FalseBranch is taken otherwise.
	FalseBranch Term
}

// Tag implementation for the Term interface.
func (p *If) Tag() Tag {
	return TagIf
}

func (p *If) isTerm() {}

// ============================================================================
// Equality
// ============================================================================

// Equal determines whether two terms are structurally identical, which is to
// say their canonical encodings coincide byte for byte.  Variables compare by
// raw identifier; there is no renaming of binders.
func Equal(a Term, b Term) bool {
	if a.Tag() != b.Tag() {
		return false
	}
	//
	return bytes.Equal(Encode(a), Encode(b))
}
