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
package axioms

import (
	"slices"

	"github.com/verdict-lang/go-verdict/pkg/hol"
	"github.com/verdict-lang/go-verdict/pkg/ir"
	"github.com/verdict-lang/go-verdict/pkg/util"
)

// Case pairs a guard with the behaviour a function exhibits when the guard
// holds.  An empty guard means unconditionally.
type Case struct {
	// Guard is the encoded formula under which the behaviour applies.
	Guard []byte
	// Behavior exhibited when the guard holds.
	Behavior Behavior
}

// Assertion attaches an encoded formula to a program point.  Whether it is a
// claim to check or a fact to rely on is determined by which list it sits in.
type Assertion struct {
	// At locates the claim within the function.
	At Point
	// Formula holds the claim's wire form.
	Formula []byte
}

// Binding associates a variable with a function, so formulas can mention the
// function by using the variable.
type Binding struct {
	// Var standing for the function inside formulas.
	Var hol.Variable
	// Target the variable stands for.
	Target ir.FunctionPointer
}

// FunctionAxioms aggregates everything claimed or known about one function.
// Assertions and assumptions are kept ordered by program point, so accessors
// present a stable view regardless of insertion order.
type FunctionAxioms struct {
	behavior    Behavior
	cases       []Case
	assertions  []Assertion
	assumptions []Assertion
	bindings    []Binding
}

// NewFunctionAxioms constructs an empty aggregate with unknown behaviour.
func NewFunctionAxioms() *FunctionAxioms {
	return &FunctionAxioms{behavior: BehaviorUnknown}
}

// Assert records a formula which must hold at a point.
func (p *FunctionAxioms) Assert(at Point, formula []byte) {
	p.assertions = insertByPoint(p.assertions, Assertion{at, formula})
}

// Assume records a formula which may be relied upon at a point.
func (p *FunctionAxioms) Assume(at Point, formula []byte) {
	p.assumptions = insertByPoint(p.assumptions, Assertion{at, formula})
}

// SetBehavior joins newly derived behaviour into what is already recorded.
func (p *FunctionAxioms) SetBehavior(b Behavior) {
	if p.behavior == BehaviorUnknown {
		p.behavior = b
	} else {
		p.behavior = p.behavior.Join(b)
	}
}

// AddCase records a guarded behaviour.
func (p *FunctionAxioms) AddCase(guard []byte, b Behavior) {
	p.cases = append(p.cases, Case{guard, b})
}

// Bind associates a variable with a function pointer, replacing any earlier
// binding of the same variable.
func (p *FunctionAxioms) Bind(v hol.Variable, target ir.FunctionPointer) {
	for i, binding := range p.bindings {
		if binding.Var == v {
			p.bindings[i].Target = target
			return
		}
	}
	//
	p.bindings = append(p.bindings, Binding{v, target})
}

// BoundTo resolves a variable to the function it stands for, if any.
func (p *FunctionAxioms) BoundTo(v hol.Variable) util.Option[ir.FunctionPointer] {
	for _, binding := range p.bindings {
		if binding.Var == v {
			return util.Some(binding.Target)
		}
	}
	//
	return util.None[ir.FunctionPointer]()
}

// Behavior returns the recorded termination behaviour.
func (p *FunctionAxioms) Behavior() Behavior {
	return p.behavior
}

// Cases returns the guarded behaviours, in the order recorded.
func (p *FunctionAxioms) Cases() []Case {
	return p.cases
}

// Assertions returns all asserted claims, ordered by program point.
func (p *FunctionAxioms) Assertions() []Assertion {
	return p.assertions
}

// Assumptions returns all assumed facts, ordered by program point.
func (p *FunctionAxioms) Assumptions() []Assertion {
	return p.assumptions
}

// Bindings returns all variable bindings, in the order first bound.
func (p *FunctionAxioms) Bindings() []Binding {
	return p.bindings
}

// Insert keeping point order, with later insertions at a given point placed
// after earlier ones.
func insertByPoint(items []Assertion, item Assertion) []Assertion {
	index, _ := slices.BinarySearchFunc(items, item,
		func(l Assertion, r Assertion) int {
			if c := l.At.Cmp(r.At); c != 0 {
				return c
			}
			// Treat equal points as "less", so the new item lands after.
			return -1
		})
	//
	return slices.Insert(items, index, item)
}
