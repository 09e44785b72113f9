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
	"cmp"
	"fmt"

	"github.com/verdict-lang/go-verdict/pkg/ir"
)

type pointKind uint8

const (
	pointEntry pointKind = iota
	pointInternal
	pointExit
)

// Point locates a claim within a function: on entry, on exit, or at an
// internal block.  Points are totally ordered with entry first, internal
// points by label, and exit last.
type Point struct {
	kind  pointKind
	label ir.Label
}

// Entry constructs the point at which a function is entered.
func Entry() Point {
	return Point{pointEntry, 0}
}

// Internal constructs the point at the head of a labelled block.
func Internal(label ir.Label) Point {
	return Point{pointInternal, label}
}

// Exit constructs the point at which a function returns.
func Exit() Point {
	return Point{pointExit, 0}
}

// IsEntry indicates whether this is the entry point.
func (p Point) IsEntry() bool {
	return p.kind == pointEntry
}

// IsExit indicates whether this is the exit point.
func (p Point) IsExit() bool {
	return p.kind == pointExit
}

// Label returns the block an internal point sits at, and zero otherwise.
func (p Point) Label() ir.Label {
	return p.label
}

// Cmp orders points: entry, then internal points by label, then exit.
func (p Point) Cmp(o Point) int {
	if c := cmp.Compare(p.kind, o.kind); c != 0 {
		return c
	}
	//
	return cmp.Compare(p.label, o.label)
}

// String implementation for the Stringer interface.
func (p Point) String() string {
	switch p.kind {
	case pointEntry:
		return "entry"
	case pointExit:
		return "exit"
	default:
		return fmt.Sprintf("@%d", p.label)
	}
}
