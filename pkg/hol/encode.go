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
	"github.com/verdict-lang/go-verdict/pkg/util/buffer"
)

// The wire form of a node is its tag byte, then any variable payload as a
// varint, then its sub-nodes in structural order.  Every sub-node except the
// last is preceded by its byte length as a varint, so a reader can hop to any
// sibling without inspecting contents; the last sub-node simply extends to
// the end of its parent.  Equal terms always yield identical bytes: varints
// are minimal and nothing else admits choice.

// Encode a term into a fresh byte array.
func Encode(t Term) []byte {
	var buf buffer.Buffer
	//
	t.EncodeTo(&buf)
	//
	return buf.Bytes()
}

// EncodedSize returns the number of bytes Encode produces for a given term,
// without encoding it.
func EncodedSize(t Term) uint {
	return uint(t.encodedSize())
}

// Append a length-prefixed child.
func encodeSized(buf *buffer.Buffer, child Encodable) {
	buf.WriteUvarint(child.encodedSize())
	child.EncodeTo(buf)
}

// Size of a length-prefixed child.
func sizedLen(child Encodable) uint64 {
	n := child.encodedSize()
	//
	return uint64(buffer.UvarintLen(n)) + n
}

// ============================================================================
// Leaves
// ============================================================================

// EncodeTo implementation for the Encodable interface.
func (v Variable) EncodeTo(buf *buffer.Buffer) {
	buf.WriteByte(byte(TagVariable))
	buf.WriteUvarint(v.id)
}

func (v Variable) encodedSize() uint64 {
	return 1 + uint64(buffer.UvarintLen(v.id))
}

// EncodeTo implementation for the Encodable interface.
func (p Constant) EncodeTo(buf *buffer.Buffer) {
	buf.WriteByte(byte(p.tag))
}

func (p Constant) encodedSize() uint64 {
	return 1
}

// EncodeTo implementation for the Encodable interface.
func (s BoolSort) EncodeTo(buf *buffer.Buffer) {
	buf.WriteByte(byte(TagBool))
}

func (s BoolSort) encodedSize() uint64 {
	return 1
}

// EncodeTo implementation for the Encodable interface.
func (s OmegaSort) EncodeTo(buf *buffer.Buffer) {
	buf.WriteByte(byte(TagOmega))
}

func (s OmegaSort) encodedSize() uint64 {
	return 1
}

// EncodeTo implementation for the Encodable interface.
func (s NeverSort) EncodeTo(buf *buffer.Buffer) {
	buf.WriteByte(byte(TagNever))
}

func (s NeverSort) encodedSize() uint64 {
	return 1
}

// ============================================================================
// Term formers
// ============================================================================

// EncodeTo implementation for the Encodable interface.
func (p *Unary) EncodeTo(buf *buffer.Buffer) {
	buf.WriteByte(byte(p.tag))
	p.Arg.EncodeTo(buf)
}

func (p *Unary) encodedSize() uint64 {
	return 1 + p.Arg.encodedSize()
}

// EncodeTo implementation for the Encodable interface.
func (p *Binary) EncodeTo(buf *buffer.Buffer) {
	buf.WriteByte(byte(p.tag))
	encodeSized(buf, p.Lhs)
	p.Rhs.EncodeTo(buf)
}

func (p *Binary) encodedSize() uint64 {
	return 1 + sizedLen(p.Lhs) + p.Rhs.encodedSize()
}

// EncodeTo implementation for the Encodable interface.
func (p *Quantifier) EncodeTo(buf *buffer.Buffer) {
	buf.WriteByte(byte(p.tag))
	buf.WriteUvarint(p.Binder.id)
	encodeSized(buf, p.Domain)
	p.Body.EncodeTo(buf)
}

func (p *Quantifier) encodedSize() uint64 {
	return 1 + uint64(buffer.UvarintLen(p.Binder.id)) +
		sizedLen(p.Domain) + p.Body.encodedSize()
}

// EncodeTo implementation for the Encodable interface.
func (p *If) EncodeTo(buf *buffer.Buffer) {
	buf.WriteByte(byte(TagIf))
	encodeSized(buf, p.Condition)
	encodeSized(buf, p.TrueBranch)
	p.FalseBranch.EncodeTo(buf)
}

func (p *If) encodedSize() uint64 {
	return 1 + sizedLen(p.Condition) + sizedLen(p.TrueBranch) +
		p.FalseBranch.encodedSize()
}

// ============================================================================
// Sort formers
// ============================================================================

// EncodeTo implementation for the Encodable interface.
func (s Arrow[S, T]) EncodeTo(buf *buffer.Buffer) {
	buf.WriteByte(byte(TagArrow))
	encodeSized(buf, s.From)
	s.To.EncodeTo(buf)
}

func (s Arrow[S, T]) encodedSize() uint64 {
	return 1 + sizedLen(s.From) + s.To.encodedSize()
}

// EncodeTo implementation for the Encodable interface.
func (s Product[S, T]) EncodeTo(buf *buffer.Buffer) {
	buf.WriteByte(byte(TagTuple))
	encodeSized(buf, s.First)
	s.Second.EncodeTo(buf)
}

func (s Product[S, T]) encodedSize() uint64 {
	return 1 + sizedLen(s.First) + s.Second.encodedSize()
}

// EncodeTo implementation for the Encodable interface.
func (s Power[T]) EncodeTo(buf *buffer.Buffer) {
	buf.WriteByte(byte(TagPowerset))
	s.Elem.EncodeTo(buf)
}

func (s Power[T]) encodedSize() uint64 {
	return 1 + s.Elem.encodedSize()
}
