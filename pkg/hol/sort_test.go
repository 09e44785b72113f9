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

func Test_Kind_01(t *testing.T) {
	// The kind of a composite never depends on its components.
	assert.Equal(t,
		Arrow[BoolSort, OmegaSort]{}.Kind(),
		Arrow[NeverSort, Power[BoolSort]]{}.Kind())
	assert.Equal(t,
		Product[BoolSort, BoolSort]{}.Kind(),
		Product[OmegaSort, NeverSort]{}.Kind())
	assert.Equal(t,
		Power[BoolSort]{}.Kind(),
		Power[Arrow[BoolSort, BoolSort]]{}.Kind())
	// Distinct shapes, distinct kinds.
	assert.NotEqual(t, Arrow[BoolSort, BoolSort]{}.Kind(), Product[BoolSort, BoolSort]{}.Kind())
	assert.NotEqual(t, Power[BoolSort]{}.Kind(), BoolSort{}.Kind())
}

func Test_Kind_02(t *testing.T) {
	sorts := []Sort{
		BoolSort{}, OmegaSort{}, NeverSort{}, NewVariable(3),
		Arrow[BoolSort, OmegaSort]{BoolSort{}, OmegaSort{}},
		Product[BoolSort, BoolSort]{}, Power[NeverSort]{},
	}
	// Seven shapes, seven kinds, usable as map keys.
	seen := map[Kind]bool{}
	//
	for _, sort := range sorts {
		require.False(t, seen[sort.Kind()], "kind %s", sort.Kind())
		//
		seen[sort.Kind()] = true
	}
}

func Test_Kind_03(t *testing.T) {
	// Kinds order atomics before composites.
	assert.Less(t, KindBool, KindOmega)
	assert.Less(t, KindOmega, KindNever)
	assert.Less(t, KindNever, KindVar)
	assert.Less(t, KindVar, KindArrow)
	assert.Less(t, KindArrow, KindProduct)
	assert.Less(t, KindProduct, KindPower)
}

func Test_Sort_01(t *testing.T) {
	// Sorts are terms: they encode through the shared vocabulary.
	assert.Equal(t, TagBool, BoolSort{}.Tag())
	assert.Equal(t, TagOmega, OmegaSort{}.Tag())
	assert.Equal(t, TagNever, NeverSort{}.Tag())
	assert.Equal(t, TagArrow, Arrow[BoolSort, BoolSort]{}.Tag())
	assert.Equal(t, TagTuple, Product[BoolSort, BoolSort]{}.Tag())
	assert.Equal(t, TagPowerset, Power[BoolSort]{}.Tag())
	assert.Equal(t, TagVariable, NewVariable(0).Tag())
}

func Test_Sort_02(t *testing.T) {
	// Heterogeneous composition spelled out in the type system.
	sort := Arrow[Product[BoolSort, OmegaSort], Power[Variable]]{
		From: Product[BoolSort, OmegaSort]{BoolSort{}, OmegaSort{}},
		To:   Power[Variable]{NewVariable(9)},
	}
	//
	decoded, err := DecodeSort(Encode(sort))
	require.NoError(t, err)
	require.Equal(t, KindArrow, decoded.Kind())
	require.True(t, EqualSorts(sort, decoded))
}

func Test_Sort_03(t *testing.T) {
	a := NewVariable(0)
	// A Sort interface value flows anywhere a term does: as an abstraction
	// domain, in equalities, and through term-context decoding.
	var domain Sort = Arrow[BoolSort, OmegaSort]{BoolSort{}, OmegaSort{}}
	//
	term := Lambda(domain, a)
	decoded, err := Decode(Encode(term))
	require.NoError(t, err)
	require.True(t, Equal(term, decoded))
	// An arrow decoded in term position is the sort value itself.
	arrow, err := Decode(Encode(domain))
	require.NoError(t, err)
	require.Equal(t, TagArrow, arrow.Tag())
	require.True(t, Equal(domain, arrow))
	//
	sort, ok := arrow.(Sort)
	require.True(t, ok)
	require.Equal(t, KindArrow, sort.Kind())
}
