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

// Not constructs the negation of a given term.
func Not(arg Term) Term {
	return &Unary{TagNot, arg}
}

// Powerset constructs the powerset of a given term.
func Powerset(arg Term) Term {
	return &Unary{TagPowerset, arg}
}

// And constructs the conjunction of two terms.
func And(lhs Term, rhs Term) Term {
	return &Binary{TagAnd, lhs, rhs}
}

// Or constructs the disjunction of two terms.
func Or(lhs Term, rhs Term) Term {
	return &Binary{TagOr, lhs, rhs}
}

// Implies constructs an implication between two terms.
func Implies(lhs Term, rhs Term) Term {
	return &Binary{TagImplies, lhs, rhs}
}

// Iff constructs an equivalence between two terms.
func Iff(lhs Term, rhs Term) Term {
	return &Binary{TagIff, lhs, rhs}
}

// Equals constructs an equality between two terms.
func Equals(lhs Term, rhs Term) Term {
	return &Binary{TagEqual, lhs, rhs}
}

// Tuple constructs the pair of two terms.
func Tuple(lhs Term, rhs Term) Term {
	return &Binary{TagTuple, lhs, rhs}
}

// Call applies a function term to one or more arguments, folding from the
// left: Call(f, x, y) is Call(Call(f, x), y).  Applying to no arguments
// returns the function unchanged.
func Call(fn Term, args ...Term) Term {
	term := fn
	//
	for _, arg := range args {
		term = &Binary{TagCall, term, arg}
	}
	//
	return term
}

// Lambda abstracts a body over an input of the given domain sort.  The bound
// variable is supplied by the surrounding context (e.g. an enclosing
// quantifier), not by the abstraction itself.
func Lambda(domain Sort, body Term) Term {
	return &Binary{TagLambda, domain, body}
}

// Forall quantifies a body universally over a variable of the given sort.
func Forall(v Variable, domain Sort, body Term) Term {
	return &Quantifier{TagForall, v, domain, body}
}

// Exists quantifies a body existentially over a variable of the given sort.
func Exists(v Variable, domain Sort, body Term) Term {
	return &Quantifier{TagExists, v, domain, body}
}

// IfThenElse constructs a conditional from a condition and two branches.
func IfThenElse(condition Term, trueBranch Term, falseBranch Term) Term {
	return &If{condition, trueBranch, falseBranch}
}

// Conjunction folds any number of terms into a left-nested chain of
// conjunctions, yielding trees identical to writing the And calls out by
// hand.  The empty conjunction is true, and a single operand is returned
// as is.
func Conjunction(terms ...Term) Term {
	if len(terms) == 0 {
		return True
	}
	//
	term := terms[0]
	//
	for _, t := range terms[1:] {
		term = And(term, t)
	}
	//
	return term
}

// Disjunction folds any number of terms into a left-nested chain of
// disjunctions.  The empty disjunction is false.
func Disjunction(terms ...Term) Term {
	if len(terms) == 0 {
		return False
	}
	//
	term := terms[0]
	//
	for _, t := range terms[1:] {
		term = Or(term, t)
	}
	//
	return term
}
