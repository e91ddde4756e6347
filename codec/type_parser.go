// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/wessonvm/consts"
)

// TypeParser maps type IDs to decoders so the wire form of a registered
// object (type ID byte followed by its Borsh body) can be turned back into a
// value of T.
type TypeParser[T Typed] struct {
	typeToIndex    map[string]uint8
	indexToDecoder map[uint8]func([]byte) (T, error)

	index uint8
}

func NewTypeParser[T Typed]() *TypeParser[T] {
	return &TypeParser[T]{
		typeToIndex:    map[string]uint8{},
		indexToDecoder: map[uint8]func([]byte) (T, error){},
	}
}

// Register assigns the next free index to o. Registration order must match
// each object's GetTypeID; a mismatch is rejected here rather than surfacing
// later as a misrouted decode.
func (p *TypeParser[T]) Register(o T, f func([]byte) (T, error)) error {
	if p.index == consts.MaxUint8 {
		return ErrTooManyItems
	}
	k := fmt.Sprintf("%T", o)
	if _, ok := p.typeToIndex[k]; ok {
		return ErrDuplicateItem
	}
	if o.GetTypeID() != p.index {
		return fmt.Errorf("%w: %s (typeID=%d, index=%d)", ErrTypeIDMismatch, k, o.GetTypeID(), p.index)
	}
	p.typeToIndex[k] = p.index
	p.indexToDecoder[p.index] = f
	p.index++
	return nil
}

func (p *TypeParser[T]) LookupType(o T) (uint8, bool) {
	index, ok := p.typeToIndex[fmt.Sprintf("%T", o)]
	return index, ok
}

func (p *TypeParser[T]) LookupIndex(index uint8) (func([]byte) (T, error), bool) {
	f, ok := p.indexToDecoder[index]
	return f, ok
}
