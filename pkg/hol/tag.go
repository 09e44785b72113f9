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

import "fmt"

// Tag identifies a term former.  The vocabulary is closed: every node in
// every term carries exactly one of the tags below, and the same byte appears
// first in the node's wire encoding.  Values are grouped by shape, with gaps
// left between groups; zero is never a valid tag.
type Tag byte

const (
	// TagBool is the sort of booleans.
	TagBool Tag = 0x01
	// TagOmega is the sort of extended truth values, admitting true, false
	// and never.
	TagOmega Tag = 0x02
	// TagNever is the uninhabited sort, and the third truth value in omega
	// position.
	TagNever Tag = 0x03
	// TagTrue is the boolean constant true.
	TagTrue Tag = 0x04
	// TagFalse is the boolean constant false.
	TagFalse Tag = 0x05

	// TagNot is logical negation.
	TagNot Tag = 0x10
	// TagPowerset is powerset formation.
	TagPowerset Tag = 0x11

	// TagAnd is logical conjunction.
	TagAnd Tag = 0x20
	// TagOr is logical disjunction.
	TagOr Tag = 0x21
	// TagImplies is logical implication.
	TagImplies Tag = 0x22
	// TagIff is logical equivalence.
	TagIff Tag = 0x23
	// TagEqual is equality between two terms.
	TagEqual Tag = 0x24
	// TagTuple is pair formation.
	TagTuple Tag = 0x25
	// TagCall is application of a function to an argument.
	TagCall Tag = 0x26
	// TagLambda is function abstraction over a given domain.
	TagLambda Tag = 0x27
	// TagArrow is the function space between two sorts.
	TagArrow Tag = 0x28

	// TagForall is universal quantification.  Alongside its two sub-terms it
	// carries the bound variable as payload.
	TagForall Tag = 0x30
	// TagExists is existential quantification, with the same shape as
	// TagForall.
	TagExists Tag = 0x31

	// TagIf is the conditional, with condition, true branch and false branch.
	TagIf Tag = 0x40

	// TagVariable is a variable reference, carrying the variable as payload.
	TagVariable Tag = 0x50
)

// Known determines whether this tag belongs to the vocabulary.
func (t Tag) Known() bool {
	switch t {
	case TagBool, TagOmega, TagNever, TagTrue, TagFalse,
		TagNot, TagPowerset,
		TagAnd, TagOr, TagImplies, TagIff, TagEqual, TagTuple, TagCall,
		TagLambda, TagArrow,
		TagForall, TagExists, TagIf, TagVariable:
		return true
	}
	//
	return false
}

// Arity returns the number of sub-nodes a node with this tag has.  Observe
// that quantifiers count two (sort and body), since their bound variable is
// payload rather than a sub-node.
func (t Tag) Arity() uint {
	switch t {
	case TagBool, TagOmega, TagNever, TagTrue, TagFalse, TagVariable:
		return 0
	case TagNot, TagPowerset:
		return 1
	case TagAnd, TagOr, TagImplies, TagIff, TagEqual, TagTuple, TagCall,
		TagLambda, TagArrow, TagForall, TagExists:
		return 2
	case TagIf:
		return 3
	}
	//
	panic(fmt.Sprintf("unknown tag (%d)", byte(t)))
}

// HasVariable determines whether a variable payload follows the tag byte in
// the wire encoding.
func (t Tag) HasVariable() bool {
	return t == TagVariable || t == TagForall || t == TagExists
}

// String implementation for the Stringer interface.
func (t Tag) String() string {
	switch t {
	case TagBool:
		return "bool"
	case TagOmega:
		return "omega"
	case TagNever:
		return "never"
	case TagTrue:
		return "true"
	case TagFalse:
		return "false"
	case TagNot:
		return "not"
	case TagPowerset:
		return "powerset"
	case TagAnd:
		return "and"
	case TagOr:
		return "or"
	case TagImplies:
		return "implies"
	case TagIff:
		return "iff"
	case TagEqual:
		return "equal"
	case TagTuple:
		return "tuple"
	case TagCall:
		return "call"
	case TagLambda:
		return "lambda"
	case TagArrow:
		return "arrow"
	case TagForall:
		return "forall"
	case TagExists:
		return "exists"
	case TagIf:
		return "if"
	case TagVariable:
		return "variable"
	}
	//
	return fmt.Sprintf("tag(%d)", byte(t))
}
