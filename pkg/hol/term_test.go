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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Variable_01(t *testing.T) {
	x := NewVariable(42)
	y := NewVariable(42)
	z := NewVariable(43)
	// Identity is the raw identifier, nothing else.
	require.Equal(t, x, y)
	require.NotEqual(t, x, z)
	require.Equal(t, uint64(42), x.Raw())
	//
	assert.Equal(t, 0, x.Cmp(y))
	assert.Negative(t, x.Cmp(z))
	assert.Positive(t, z.Cmp(x))
}

func Test_Variable_02(t *testing.T) {
	// Letter symbols for the first twenty six identifiers.
	assert.Equal(t, "A", NewVariable(0).String())
	assert.Equal(t, "B", NewVariable(1).String())
	assert.Equal(t, "Z", NewVariable(25).String())
	assert.Equal(t, "v26", NewVariable(26).String())
	assert.Equal(t, "v1000", NewVariable(1000).String())
}

func Test_Variable_03(t *testing.T) {
	// Variables are usable as map keys.
	seen := map[Variable]uint{}
	seen[NewVariable(1)]++
	seen[NewVariable(1)]++
	seen[NewVariable(2)]++
	//
	require.Equal(t, uint(2), seen[NewVariable(1)])
	require.Equal(t, uint(1), seen[NewVariable(2)])
}

func Test_Tag_01(t *testing.T) {
	tags := []Tag{
		TagBool, TagOmega, TagNever, TagTrue, TagFalse, TagNot, TagPowerset,
		TagAnd, TagOr, TagImplies, TagIff, TagEqual, TagTuple, TagCall,
		TagLambda, TagArrow, TagForall, TagExists, TagIf, TagVariable,
	}
	// Twenty distinct formers, each self-reporting.
	seen := map[Tag]bool{}
	//
	for _, tag := range tags {
		require.True(t, tag.Known(), "tag %s", tag)
		require.False(t, seen[tag])
		//
		seen[tag] = true
	}
	//
	assert.False(t, Tag(0x00).Known())
	assert.False(t, Tag(0xff).Known())
}

func Test_Tag_02(t *testing.T) {
	assert.Equal(t, uint(0), TagTrue.Arity())
	assert.Equal(t, uint(0), TagVariable.Arity())
	assert.Equal(t, uint(1), TagNot.Arity())
	assert.Equal(t, uint(2), TagAnd.Arity())
	assert.Equal(t, uint(2), TagForall.Arity())
	assert.Equal(t, uint(3), TagIf.Arity())
	//
	assert.True(t, TagVariable.HasVariable())
	assert.True(t, TagForall.HasVariable())
	assert.True(t, TagExists.HasVariable())
	assert.False(t, TagAnd.HasVariable())
}

func Test_Term_Equal_01(t *testing.T) {
	a := NewVariable(0)
	// Same construction, same term.
	lhs := And(a, Not(a))
	rhs := And(a, Not(a))
	//
	require.True(t, Equal(lhs, rhs))
	// Operand order matters.
	require.False(t, Equal(And(a, True), And(True, a)))
	// Former matters.
	require.False(t, Equal(And(a, True), Or(a, True)))
	// Binder identity is literal.
	require.False(t, Equal(
		Forall(NewVariable(0), BoolSort{}, NewVariable(0)),
		Forall(NewVariable(1), BoolSort{}, NewVariable(1)),
	))
}

func Test_Term_Equal_02(t *testing.T) {
	// Sorts compare as terms, through generic instantiations.
	composite := Arrow[BoolSort, Power[OmegaSort]]{BoolSort{}, Power[OmegaSort]{OmegaSort{}}}
	decoded, err := DecodeSort(Encode(composite))
	//
	require.NoError(t, err)
	require.True(t, EqualSorts(composite, decoded))
	require.False(t, EqualSorts(composite, Arrow[OmegaSort, BoolSort]{OmegaSort{}, BoolSort{}}))
}

func Test_Build_01(t *testing.T) {
	f := NewVariable(5)
	x := NewVariable(6)
	y := NewVariable(7)
	// Application folds from the left.
	require.True(t, Equal(Call(f, x, y), Call(Call(f, x), y)))
	require.True(t, Equal(Call(f), f))
}

func Test_Build_02(t *testing.T) {
	a, b, c := NewVariable(0), NewVariable(1), NewVariable(2)
	// N-ary folds produce the same trees as spelling the nesting out.
	require.True(t, Equal(Conjunction(a, b, c), And(And(a, b), c)))
	require.True(t, Equal(Disjunction(a, b, c), Or(Or(a, b), c)))
	require.True(t, Equal(Conjunction(a), a))
	require.True(t, Equal(Conjunction(), True))
	require.True(t, Equal(Disjunction(), False))
}

func Test_Build_03(t *testing.T) {
	// Every combinator reports the former it constructs.
	a := NewVariable(0)
	//
	assert.Equal(t, TagNot, Not(a).Tag())
	assert.Equal(t, TagPowerset, Powerset(a).Tag())
	assert.Equal(t, TagAnd, And(a, a).Tag())
	assert.Equal(t, TagOr, Or(a, a).Tag())
	assert.Equal(t, TagImplies, Implies(a, a).Tag())
	assert.Equal(t, TagIff, Iff(a, a).Tag())
	assert.Equal(t, TagEqual, Equals(a, a).Tag())
	assert.Equal(t, TagTuple, Tuple(a, a).Tag())
	assert.Equal(t, TagCall, Call(a, a).Tag())
	assert.Equal(t, TagLambda, Lambda(BoolSort{}, a).Tag())
	assert.Equal(t, TagForall, Forall(a, BoolSort{}, a).Tag())
	assert.Equal(t, TagExists, Exists(a, BoolSort{}, a).Tag())
	assert.Equal(t, TagIf, IfThenElse(a, a, a).Tag())
	assert.Equal(t, TagTrue, True.Tag())
	assert.Equal(t, TagFalse, False.Tag())
	assert.Equal(t, TagVariable, a.Tag())
}
