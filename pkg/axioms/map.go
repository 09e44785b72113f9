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

	"github.com/verdict-lang/go-verdict/pkg/ir"
	"github.com/verdict-lang/go-verdict/pkg/util"
)

type mapEntry struct {
	pointer ir.FunctionPointer
	axioms  *FunctionAxioms
}

// Map associates function pointers with their axioms.  Entries are kept in a
// sorted array, so iteration always proceeds in pointer order and is
// identical across runs.
type Map struct {
	entries []mapEntry
}

// NewMap constructs an empty mapping.
func NewMap() *Map {
	return &Map{}
}

// Len returns the number of functions with recorded axioms.
func (p *Map) Len() uint {
	return uint(len(p.entries))
}

// Get returns the axioms recorded against a pointer, if any.
func (p *Map) Get(ptr ir.FunctionPointer) util.Option[*FunctionAxioms] {
	index, ok := p.search(ptr)
	//
	if !ok {
		return util.None[*FunctionAxioms]()
	}
	//
	return util.Some(p.entries[index].axioms)
}

// GetOrCreate returns the axioms recorded against a pointer, creating an
// empty aggregate first when none exist.
func (p *Map) GetOrCreate(ptr ir.FunctionPointer) *FunctionAxioms {
	index, ok := p.search(ptr)
	//
	if !ok {
		entry := mapEntry{ptr, NewFunctionAxioms()}
		p.entries = slices.Insert(p.entries, index, entry)
	}
	//
	return p.entries[index].axioms
}

// Pointers iterates the recorded function pointers in pointer order.
func (p *Map) Pointers() util.Iterator[ir.FunctionPointer] {
	pointers := make([]ir.FunctionPointer, len(p.entries))
	//
	for i, entry := range p.entries {
		pointers[i] = entry.pointer
	}
	//
	return util.NewArrayIterator(pointers)
}

func (p *Map) search(ptr ir.FunctionPointer) (int, bool) {
	return slices.BinarySearchFunc(p.entries, ptr,
		func(entry mapEntry, ptr ir.FunctionPointer) int {
			return entry.pointer.Cmp(ptr)
		})
}
