// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package p256

import (
	"filippo.io/nistec"

	"github.com/bytemare/oprf-group/internal"
)

// Element is a point on the P-256 curve.
type Element struct {
	point *nistec.P256Point
}

func assertElement(e internal.Element) *Element {
	el, ok := e.(*Element)
	if !ok {
		panic(internal.ErrWrongGroup)
	}

	return el
}

// Encode returns the 33-byte SEC 1 compressed encoding of the point. The identity encodes to 33 zero bytes.
func (e *Element) Encode() []byte {
	out := make([]byte, elementLength)
	copy(out, e.point.BytesCompressed())

	return out
}

func (e *Element) multiply(scalar []byte) *Element {
	r := newElement()
	if _, err := r.point.ScalarMult(e.point, scalar); err != nil {
		// Only reachable with a scalar that is not 32 bytes long.
		panic(err)
	}

	return r
}

// Multiply returns a new element set to s * e.
func (e *Element) Multiply(s internal.Scalar) internal.Element {
	b := assertScalar(s).Encode()
	defer internal.Zero(b)

	return e.multiply(b)
}

// MultiplyBytes returns a new element set to e multiplied by the 32-byte big-endian integer b, reduced modulo the
// group order.
func (e *Element) MultiplyBytes(b []byte) (internal.Element, error) {
	if len(b) != scalarLength {
		return nil, internal.ErrScalarLength
	}

	s := &Scalar{scalar: getScalarField().FromBytes(b)}
	defer s.Zeroize()

	return e.Multiply(s), nil
}

// Add returns a new element set to e + el.
func (e *Element) Add(el internal.Element) internal.Element {
	r := newElement()
	r.point.Add(e.point, assertElement(el).point)

	return r
}

// IsIdentity returns whether the element is the point at infinity.
func (e *Element) IsIdentity() bool {
	return internal.IsAllZero(e.Encode())
}

// Equal returns whether e and el encode to the same bytes. The comparison does not short-circuit.
func (e *Element) Equal(el internal.Element) bool {
	return internal.CTEqual(e.Encode(), assertElement(el).Encode())
}
