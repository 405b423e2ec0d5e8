// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"github.com/gtank/ristretto255"

	"github.com/bytemare/oprf-group/internal"
)

// Element is a ristretto255 group element.
type Element struct {
	element *ristretto255.Element
}

func assertElement(e internal.Element) *Element {
	el, ok := e.(*Element)
	if !ok {
		panic(internal.ErrWrongGroup)
	}

	return el
}

// Encode returns the 32-byte canonical encoding of the element.
func (e *Element) Encode() []byte {
	return e.element.Encode(make([]byte, 0, elementLength))
}

// Multiply returns a new element set to s * e.
func (e *Element) Multiply(s internal.Scalar) internal.Element {
	r := newElement()
	r.element.ScalarMult(assertScalar(s).scalar, e.element)

	return r
}

// MultiplyBytes returns a new element set to e multiplied by the 32-byte little-endian integer b, with its highest
// bit cleared. The integer is not required to be reduced.
func (e *Element) MultiplyBytes(b []byte) (internal.Element, error) {
	if len(b) != scalarLength {
		return nil, internal.ErrScalarLength
	}

	var bits [scalarLength]byte

	copy(bits[:], b)
	bits[scalarLength-1] &= 0x7f

	// The element has prime order l, so multiplying by the integer or by its reduction modulo l is the same.
	s := newScalar()
	s.reduce(bits[:])
	internal.Zero(bits[:])

	defer s.Zeroize()

	return e.Multiply(s), nil
}

// Add returns a new element set to e + el.
func (e *Element) Add(el internal.Element) internal.Element {
	r := newElement()
	r.element.Add(e.element, assertElement(el).element)

	return r
}

// IsIdentity returns whether the element is the identity.
func (e *Element) IsIdentity() bool {
	return e.element.Equal(ristretto255.NewElement()) == 1
}

// Equal returns whether e and el encode to the same bytes. The comparison does not short-circuit.
func (e *Element) Equal(el internal.Element) bool {
	return internal.CTEqual(e.Encode(), assertElement(el).Encode())
}
