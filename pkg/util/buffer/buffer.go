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
package buffer

import "errors"

// InlineCapacity determines how many bytes a buffer can hold before it spills
// onto the heap.  Typical small formulas encode entirely within this limit.
const InlineCapacity = 32

// Buffer is an append-only byte buffer intended for encoding terms.  The zero
// value is ready for use.  Writes initially accumulate into a fixed inline
// array, and transparently spill into a heap-allocated array once the inline
// capacity is exhausted.
type Buffer struct {
	// Inline storage used until capacity is exceeded.
	inline [InlineCapacity]byte
	// Current contents.  Aliases the inline array until the first spill.
	data []byte
}

// Len returns the number of bytes written so far.
func (p *Buffer) Len() uint {
	return uint(len(p.data))
}

// Bytes returns the current contents of this buffer.  The returned slice is
// only valid until the next write or reset.
func (p *Buffer) Bytes() []byte {
	return p.data
}

// Reset discards the contents of this buffer, retaining any heap storage
// already acquired.
func (p *Buffer) Reset() {
	if p.data != nil {
		p.data = p.data[:0]
	}
}

// WriteByte appends a single byte to this buffer.  The returned error is
// always nil; it exists to satisfy io.ByteWriter.
func (p *Buffer) WriteByte(b byte) error {
	p.init()
	p.data = append(p.data, b)
	return nil
}

// Write appends a sequence of zero or more bytes to this buffer.
func (p *Buffer) Write(bs []byte) {
	p.init()
	p.data = append(p.data, bs...)
}

// WriteUvarint appends an unsigned value in its minimal varint form, as
// defined below.
func (p *Buffer) WriteUvarint(v uint64) {
	p.init()
	//
	for v >= 0x80 {
		p.data = append(p.data, byte(v)|0x80)
		v >>= 7
	}
	//
	p.data = append(p.data, byte(v))
}

func (p *Buffer) init() {
	if p.data == nil {
		p.data = p.inline[:0]
	}
}

// ============================================================================
// Unsigned varint codec
// ============================================================================
//
// Values are written seven bits at a time, least significant group first,
// with the high bit of each byte indicating a continuation.  Encodings are
// minimal: zero occupies one byte, and the largest 64-bit value ten.

var (
	// ErrTruncated signals that the input ended in the middle of a varint.
	ErrTruncated = errors.New("truncated varint")
	// ErrOverlong signals a varint with redundant leading zero groups.  Such
	// forms decode to the same value but are not minimal, and are rejected to
	// keep the encoding canonical.
	ErrOverlong = errors.New("overlong varint")
	// ErrOverflow signals a varint whose value exceeds 64 bits.
	ErrOverflow = errors.New("varint overflows 64 bits")
)

// UvarintLen returns the exact number of bytes WriteUvarint emits for a given
// value.  This is monotonic in the value.
func UvarintLen(v uint64) uint {
	var n uint = 1
	//
	for v >= 0x80 {
		v >>= 7
		n++
	}
	//
	return n
}

// ReadUvarint decodes a varint from the front of the given data, returning
// the value along with the number of bytes consumed.
func ReadUvarint(data []byte) (uint64, uint, error) {
	var (
		value uint64
		shift uint
	)
	//
	for i := 0; i < len(data); i++ {
		b := data[i]
		// Tenth byte may only contribute the single remaining bit.
		if i == 9 && b > 0x01 {
			return 0, 0, ErrOverflow
		}
		//
		value |= uint64(b&0x7f) << shift
		//
		if b&0x80 == 0 {
			if i > 0 && b == 0 {
				return 0, 0, ErrOverlong
			}
			//
			return value, uint(i + 1), nil
		}
		//
		shift += 7
	}
	//
	return 0, 0, ErrTruncated
}
