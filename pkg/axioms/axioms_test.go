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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verdict-lang/go-verdict/pkg/hol"
	"github.com/verdict-lang/go-verdict/pkg/ir"
)

func Test_Behavior_01(t *testing.T) {
	assert.True(t, BehaviorUnknown.MayLoop())
	assert.True(t, BehaviorUnknown.MayCrash())
	assert.False(t, BehaviorHalting.MayLoop())
	assert.False(t, BehaviorHalting.MayCrash())
	assert.True(t, BehaviorMayLoop.MayLoop())
	assert.True(t, BehaviorLooping.MayLoop())
	assert.False(t, BehaviorLooping.MayCrash())
	assert.True(t, BehaviorMayCrash.MayCrash())
	assert.True(t, BehaviorCrashes.MayCrash())
}

func Test_Behavior_02(t *testing.T) {
	// Agreement is preserved.
	assert.Equal(t, BehaviorHalting, BehaviorHalting.Join(BehaviorHalting))
	// Definite forms weaken to their "may" forms.
	assert.Equal(t, BehaviorMayLoop, BehaviorHalting.Join(BehaviorLooping))
	assert.Equal(t, BehaviorMayLoop, BehaviorHalting.Join(BehaviorMayLoop))
	assert.Equal(t, BehaviorMayCrash, BehaviorCrashes.Join(BehaviorMayCrash))
	// Incomparable knowledge collapses to unknown.
	assert.Equal(t, BehaviorUnknown, BehaviorHalting.Join(BehaviorCrashes))
	assert.Equal(t, BehaviorUnknown, BehaviorUnknown.Join(BehaviorHalting))
}

func Test_Point_01(t *testing.T) {
	points := []Point{Exit(), Internal(2), Entry(), Internal(1)}
	// Entry < internal (by label) < exit.
	assert.Negative(t, Entry().Cmp(Internal(0)))
	assert.Negative(t, Internal(1).Cmp(Internal(2)))
	assert.Negative(t, Internal(2).Cmp(Exit()))
	assert.Equal(t, 0, Internal(2).Cmp(Internal(2)))
	//
	assert.Equal(t, "entry", points[2].String())
	assert.Equal(t, "@2", points[1].String())
	assert.Equal(t, "exit", points[0].String())
}

func Test_Axioms_01(t *testing.T) {
	fnAxioms := NewFunctionAxioms()
	formula := hol.Encode(hol.True)
	// Insert out of point order.
	fnAxioms.Assert(Exit(), formula)
	fnAxioms.Assert(Entry(), formula)
	fnAxioms.Assert(Internal(1), formula)
	//
	assertions := fnAxioms.Assertions()
	require.Len(t, assertions, 3)
	assert.True(t, assertions[0].At.IsEntry())
	assert.Equal(t, ir.Label(1), assertions[1].At.Label())
	assert.True(t, assertions[2].At.IsExit())
}

func Test_Axioms_02(t *testing.T) {
	fnAxioms := NewFunctionAxioms()
	v := hol.NewVariable(7)
	fn1 := ir.Internal(uuid.New())
	fn2 := ir.External(uuid.New())
	//
	require.True(t, fnAxioms.BoundTo(v).IsEmpty())
	//
	fnAxioms.Bind(v, fn1)
	require.Equal(t, fn1, fnAxioms.BoundTo(v).Unwrap())
	// Rebinding replaces, rather than accumulating.
	fnAxioms.Bind(v, fn2)
	require.Equal(t, fn2, fnAxioms.BoundTo(v).Unwrap())
	require.Len(t, fnAxioms.Bindings(), 1)
}

func Test_Axioms_03(t *testing.T) {
	fnAxioms := NewFunctionAxioms()
	require.Equal(t, BehaviorUnknown, fnAxioms.Behavior())
	//
	fnAxioms.SetBehavior(BehaviorHalting)
	require.Equal(t, BehaviorHalting, fnAxioms.Behavior())
	//
	fnAxioms.SetBehavior(BehaviorLooping)
	require.Equal(t, BehaviorMayLoop, fnAxioms.Behavior())
	//
	fnAxioms.AddCase(hol.Encode(hol.False), BehaviorCrashes)
	require.Len(t, fnAxioms.Cases(), 1)
	require.Equal(t, BehaviorCrashes, fnAxioms.Cases()[0].Behavior)
}

func Test_Map_01(t *testing.T) {
	m := NewMap()
	ptr := ir.Internal(uuid.New())
	//
	require.True(t, m.Get(ptr).IsEmpty())
	// Creation is idempotent.
	created := m.GetOrCreate(ptr)
	require.Same(t, created, m.GetOrCreate(ptr))
	require.Same(t, created, m.Get(ptr).Unwrap())
	require.Equal(t, uint(1), m.Len())
}

func Test_Map_02(t *testing.T) {
	m := NewMap()
	// Three pointers with forced identity order.
	p1 := ir.Internal(uuid.UUID{0: 1})
	p2 := ir.Internal(uuid.UUID{0: 2})
	p3 := ir.External(uuid.UUID{0: 2})
	// Insert out of order.
	m.GetOrCreate(p3)
	m.GetOrCreate(p1)
	m.GetOrCreate(p2)
	// Iteration follows pointer order, not insertion order.
	pointers := m.Pointers().Collect()
	require.Equal(t, []ir.FunctionPointer{p1, p2, p3}, pointers)
}

func Test_Map_03(t *testing.T) {
	m := NewMap()
	pointers := []ir.FunctionPointer{
		ir.Internal(uuid.UUID{0: 4}),
		ir.Internal(uuid.UUID{0: 1}),
		ir.Internal(uuid.UUID{0: 3}),
		ir.Internal(uuid.UUID{0: 5}),
		ir.Internal(uuid.UUID{0: 2}),
	}
	// Creation lands entries at the front, middle and back of the backing
	// array; each must remain retrievable afterwards.
	for i, ptr := range pointers {
		created := m.GetOrCreate(ptr)
		require.Equal(t, uint(i+1), m.Len())
		require.Same(t, created, m.Get(ptr).Unwrap())
		// Earlier entries are undisturbed.
		for _, prev := range pointers[:i] {
			require.False(t, m.Get(prev).IsEmpty())
		}
	}
	//
	collected := m.Pointers().Collect()
	require.Len(t, collected, 5)
	//
	for i := 1; i < len(collected); i++ {
		require.Negative(t, collected[i-1].Cmp(collected[i]))
	}
}
