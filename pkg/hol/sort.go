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

// Sort describes what a term inhabits.  Sorts are built bottom-up from value
// types, hence are acyclic by construction, and every sort is itself a term:
// a sort in term position encodes through the same tag vocabulary as any
// other node.  Like Term, this interface is closed.
type Sort interface {
	Term
	// Kind returns the shape of this sort, independent of its components.
	Kind() Kind
	//
	isSort()
}

// Kind discriminates the seven sort shapes.  Kinds are totally ordered and
// can serve as map keys; the kind of a composite sort never depends on what
// its components are.
type Kind uint8

const (
	// KindBool is the kind of the boolean sort.
	KindBool Kind = iota
	// KindOmega is the kind of the extended truth sort.
	KindOmega
	// KindNever is the kind of the uninhabited sort.
	KindNever
	// KindVar is the kind of sort variables.
	KindVar
	// KindArrow is the kind of function spaces.
	KindArrow
	// KindProduct is the kind of pair sorts.
	KindProduct
	// KindPower is the kind of powersets.
	KindPower
)

// String implementation for the Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindOmega:
		return "omega"
	case KindNever:
		return "never"
	case KindVar:
		return "var"
	case KindArrow:
		return "arrow"
	case KindProduct:
		return "product"
	case KindPower:
		return "power"
	}
	//
	return "kind(?)"
}

// ============================================================================
// Atomic sorts
// ============================================================================

// BoolSort is the sort of booleans.
type BoolSort struct{}

// OmegaSort is the sort of extended truth values.  A term of this sort is
// true, false, or never.
type OmegaSort struct{}

// NeverSort is the uninhabited sort.
type NeverSort struct{}

// Kind implementation for the Sort interface.
func (s BoolSort) Kind() Kind { return KindBool }

// Kind implementation for the Sort interface.
func (s OmegaSort) Kind() Kind { return KindOmega }

// Kind implementation for the Sort interface.
func (s NeverSort) Kind() Kind { return KindNever }

// Tag implementation for the Term interface.
func (s BoolSort) Tag() Tag { return TagBool }

// Tag implementation for the Term interface.
func (s OmegaSort) Tag() Tag { return TagOmega }

// Tag implementation for the Term interface.
func (s NeverSort) Tag() Tag { return TagNever }

func (s BoolSort) isSort() {}

func (s OmegaSort) isSort() {}

func (s NeverSort) isSort() {}

func (s BoolSort) isTerm() {}

func (s OmegaSort) isTerm() {}

func (s NeverSort) isTerm() {}

// ============================================================================
// Composite sorts
// ============================================================================

// Arrow is the function space between two sorts.  Its components are type
// parameters, so heterogeneous composites such as Arrow[BoolSort,
// Power[OmegaSort]] are spelled out in the type system.
type Arrow[S Sort, T Sort] struct {
	From S
	To   T
}

// Product is the sort of pairs.
type Product[S Sort, T Sort] struct {
	First  S
	Second T
}

// Power is the powerset of a given sort.
type Power[T Sort] struct {
	Elem T
}

// Kind implementation for the Sort interface.
func (s Arrow[S, T]) Kind() Kind { return KindArrow }

// Kind implementation for the Sort interface.
func (s Product[S, T]) Kind() Kind { return KindProduct }

// Kind implementation for the Sort interface.
func (s Power[T]) Kind() Kind { return KindPower }

// Tag implementation for the Term interface.
func (s Arrow[S, T]) Tag() Tag { return TagArrow }

// Tag implementation for the Term interface.
func (s Product[S, T]) Tag() Tag { return TagTuple }

// Tag implementation for the Term interface.
func (s Power[T]) Tag() Tag { return TagPowerset }

func (s Arrow[S, T]) isSort() {}

func (s Product[S, T]) isSort() {}

func (s Power[T]) isSort() {}

func (s Arrow[S, T]) isTerm() {}

func (s Product[S, T]) isTerm() {}

func (s Power[T]) isTerm() {}

// EqualSorts determines whether two sorts are structurally identical.  This
// looks through generic instantiations: Arrow[Sort, Sort] values decoded from
// the wire compare equal to the concrete composites they were encoded from.
func EqualSorts(a Sort, b Sort) bool {
	return Equal(a, b)
}
