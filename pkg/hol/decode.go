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
	"fmt"

	"github.com/verdict-lang/go-verdict/pkg/util"
	"github.com/verdict-lang/go-verdict/pkg/util/buffer"
)

// MalformedError signals that a byte buffer does not hold a well-formed term
// encoding, identifying where the fault lies.  Decoding and walking never
// panic on arbitrary input, and never read past the end of the buffer.
type MalformedError struct {
	// Offset of the byte at which the fault was detected.
	Offset uint
	// Reason describes the fault.
	Reason string
}

// Error implementation for the error interface.
func (p *MalformedError) Error() string {
	return fmt.Sprintf("malformed encoding at byte %d: %s", p.Offset, p.Reason)
}

func malformed(offset uint, format string, args ...any) *MalformedError {
	return &MalformedError{offset, fmt.Sprintf(format, args...)}
}

// ============================================================================
// Node headers
// ============================================================================

// Span identifies the byte extent of a single node within an encoded buffer,
// from Start up to but excluding End.
type Span struct {
	Start uint
	End   uint
}

// Len returns the number of bytes this span covers.
func (p Span) Len() uint {
	return p.End - p.Start
}

// Node is the parsed header of one encoded node: its tag, its variable
// payload when the tag carries one, and the spans of its sub-nodes.  Sub-node
// contents are left untouched, which is what allows buffers to be traversed
// without decoding them.
type Node struct {
	// Tag of the node's former.
	Tag Tag
	// Var holds the variable payload of quantifiers and variable references.
	Var util.Option[Variable]
	//
	children [3]Span
	arity    uint8
}

// Children returns the spans of this node's sub-nodes, in structural order.
func (p *Node) Children() []Span {
	return p.children[:p.arity]
}

// ParseNode reads the header of the node spanning exactly the given extent.
// Sub-node spans are computed from the length prefixes alone, in time
// proportional to the arity.
func ParseNode(data []byte, at Span) (Node, error) {
	var node Node
	//
	if at.End > uint(len(data)) {
		return node, malformed(at.Start, "node extends past end of buffer")
	} else if at.Start >= at.End {
		return node, malformed(at.Start, "empty node")
	}
	//
	node.Tag = Tag(data[at.Start])
	if !node.Tag.Known() {
		return node, malformed(at.Start, "unknown tag (%d)", data[at.Start])
	}
	//
	offset := at.Start + 1
	//
	if node.Tag.HasVariable() {
		id, n, err := buffer.ReadUvarint(data[offset:at.End])
		if err != nil {
			return node, malformed(offset, "%s", err)
		}
		//
		node.Var = util.Some(NewVariable(id))
		offset += n
	}
	//
	arity := node.Tag.Arity()
	node.arity = uint8(arity)
	// All sub-nodes except the last carry a length prefix.
	for i := uint(0); arity > 0 && i < arity-1; i++ {
		length, n, err := buffer.ReadUvarint(data[offset:at.End])
		if err != nil {
			return node, malformed(offset, "%s", err)
		}
		//
		offset += n
		//
		if length > uint64(at.End-offset) {
			return node, malformed(offset, "sub-term length overruns node")
		}
		//
		node.children[i] = Span{offset, offset + uint(length)}
		offset = node.children[i].End
	}
	// Last sub-node extends to the end of this one.
	if arity > 0 {
		if offset >= at.End {
			return node, malformed(offset, "missing sub-term")
		}
		//
		node.children[arity-1] = Span{offset, at.End}
	} else if offset != at.End {
		return node, malformed(offset, "leftover bytes within node")
	}
	//
	return node, nil
}

// ============================================================================
// Decoding
// ============================================================================

// Decode an entire buffer back into the term it encodes.  Anything which
// Encode cannot have produced, including trailing bytes after the outermost
// node, yields a MalformedError.
func Decode(data []byte) (Term, error) {
	return decodeTerm(data, Span{0, uint(len(data))})
}

// DecodeSort decodes an entire buffer in sort position.
func DecodeSort(data []byte) (Sort, error) {
	return decodeSort(data, Span{0, uint(len(data))})
}

func decodeTerm(data []byte, at Span) (Term, error) {
	node, err := ParseNode(data, at)
	//
	if err != nil {
		return nil, err
	}
	//
	switch node.Tag {
	case TagTrue:
		return True, nil
	case TagFalse:
		return False, nil
	case TagBool, TagOmega, TagNever, TagArrow:
		return decodeSort(data, at)
	case TagVariable:
		return node.Var.Unwrap(), nil
	case TagNot, TagPowerset:
		arg, err := decodeTerm(data, node.children[0])
		if err != nil {
			return nil, err
		}
		//
		return &Unary{node.Tag, arg}, nil
	case TagLambda:
		return decodeLambda(data, node)
	case TagAnd, TagOr, TagImplies, TagIff, TagEqual, TagTuple, TagCall:
		lhs, err := decodeTerm(data, node.children[0])
		if err != nil {
			return nil, err
		}
		//
		rhs, err := decodeTerm(data, node.children[1])
		if err != nil {
			return nil, err
		}
		//
		return &Binary{node.Tag, lhs, rhs}, nil
	case TagForall, TagExists:
		domain, err := decodeSort(data, node.children[0])
		if err != nil {
			return nil, err
		}
		//
		body, err := decodeTerm(data, node.children[1])
		if err != nil {
			return nil, err
		}
		//
		return &Quantifier{node.Tag, node.Var.Unwrap(), domain, body}, nil
	case TagIf:
		return decodeIf(data, node)
	}
	// Unreachable, since ParseNode rejects unknown tags.
	return nil, malformed(at.Start, "unknown tag (%d)", byte(node.Tag))
}

func decodeLambda(data []byte, node Node) (Term, error) {
	domain, err := decodeSort(data, node.children[0])
	//
	if err != nil {
		return nil, err
	}
	//
	body, err := decodeTerm(data, node.children[1])
	if err != nil {
		return nil, err
	}
	//
	return &Binary{TagLambda, domain, body}, nil
}

func decodeIf(data []byte, node Node) (Term, error) {
	condition, err := decodeTerm(data, node.children[0])
	//
	if err != nil {
		return nil, err
	}
	//
	trueBranch, err := decodeTerm(data, node.children[1])
	if err != nil {
		return nil, err
	}
	//
	falseBranch, err := decodeTerm(data, node.children[2])
	if err != nil {
		return nil, err
	}
	//
	return &If{condition, trueBranch, falseBranch}, nil
}

func decodeSort(data []byte, at Span) (Sort, error) {
	node, err := ParseNode(data, at)
	//
	if err != nil {
		return nil, err
	}
	//
	switch node.Tag {
	case TagBool:
		return BoolSort{}, nil
	case TagOmega:
		return OmegaSort{}, nil
	case TagNever:
		return NeverSort{}, nil
	case TagVariable:
		return node.Var.Unwrap(), nil
	case TagArrow:
		from, err := decodeSort(data, node.children[0])
		if err != nil {
			return nil, err
		}
		//
		to, err := decodeSort(data, node.children[1])
		if err != nil {
			return nil, err
		}
		//
		return Arrow[Sort, Sort]{from, to}, nil
	case TagTuple:
		first, err := decodeSort(data, node.children[0])
		if err != nil {
			return nil, err
		}
		//
		second, err := decodeSort(data, node.children[1])
		if err != nil {
			return nil, err
		}
		//
		return Product[Sort, Sort]{first, second}, nil
	case TagPowerset:
		elem, err := decodeSort(data, node.children[0])
		if err != nil {
			return nil, err
		}
		//
		return Power[Sort]{elem}, nil
	}
	//
	return nil, malformed(at.Start, "invalid sort former (%s)", node.Tag)
}
