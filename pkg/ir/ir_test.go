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
package ir

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verdict-lang/go-verdict/pkg/util"
)

func Test_Pointer_01(t *testing.T) {
	id := uuid.New()
	// Identity is the uuid together with the internal/external flag.
	require.Equal(t, Internal(id), Internal(id))
	require.NotEqual(t, Internal(id), External(id))
	require.Equal(t, id, Internal(id).Id())
	//
	assert.False(t, Internal(id).IsExternal())
	assert.True(t, External(id).IsExternal())
}

func Test_Pointer_02(t *testing.T) {
	lo := Internal(uuid.UUID{0: 1})
	hi := Internal(uuid.UUID{0: 2})
	// Bytewise identity order, internal before external on ties.
	assert.Negative(t, lo.Cmp(hi))
	assert.Positive(t, hi.Cmp(lo))
	assert.Equal(t, 0, lo.Cmp(lo))
	assert.Negative(t, lo.Cmp(External(lo.Id())))
	assert.Positive(t, External(lo.Id()).Cmp(lo))
}

func Test_Pointer_03(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	//
	assert.Equal(t, "fn:"+id.String(), Internal(id).String())
	assert.Equal(t, "extern:"+id.String(), External(id).String())
}

func Test_Instruction_01(t *testing.T) {
	insn := Instruction{
		Op:       OpAssign,
		Dest:     util.Some(Register(3)),
		Operands: []Operand{Imm(42)},
	}
	//
	assert.Equal(t, "r3 = assign #42", insn.String())
	//
	call := Instruction{
		Op:       OpCall,
		Dest:     util.None[Register](),
		Operands: []Operand{Fn(External(uuid.UUID{})), Reg(1), Reg(2)},
	}
	//
	assert.Equal(t,
		"call extern:00000000-0000-0000-0000-000000000000, r1, r2",
		call.String())
}

func Test_Module_01(t *testing.T) {
	f1 := &Function{Pointer: Internal(uuid.New()), Name: "f1"}
	f2 := &Function{Pointer: Internal(uuid.New()), Name: "f2"}
	module := &Module{Name: "m", Functions: []*Function{f1, f2}}
	//
	require.Same(t, f1, module.Lookup(f1.Pointer))
	require.Same(t, f2, module.Lookup(f2.Pointer))
	// External pointers are never defined by a module.
	require.Nil(t, module.Lookup(External(f1.Pointer.Id())))
}
