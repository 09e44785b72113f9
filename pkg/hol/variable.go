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
	"cmp"
	"fmt"
)

// Variable is an opaque identity used for binders and variable references.
// Two variables are the same variable exactly when their raw identifiers are
// equal; there is no registry or freshness bookkeeping behind them.  A
// variable used in term position is a variable reference, and one used in
// sort position is a sort variable.
type Variable struct {
	id uint64
}

// NewVariable wraps a raw identifier as a variable.
func NewVariable(id uint64) Variable {
	return Variable{id}
}

// Raw returns the identifier underlying this variable.
func (v Variable) Raw() uint64 {
	return v.id
}

// Cmp orders variables by their raw identifier.
func (v Variable) Cmp(o Variable) int {
	return cmp.Compare(v.id, o.id)
}

// String returns a compact symbol for this variable.  The first twenty six
// identifiers render as the letters A..Z, and anything beyond as vN.
func (v Variable) String() string {
	if v.id < 26 {
		return string(rune('A' + v.id))
	}
	//
	return fmt.Sprintf("v%d", v.id)
}

// Tag implementation for the Term interface.
func (v Variable) Tag() Tag {
	return TagVariable
}

// Kind implementation for the Sort interface.
func (v Variable) Kind() Kind {
	return KindVar
}

func (v Variable) isTerm() {}

func (v Variable) isSort() {}
