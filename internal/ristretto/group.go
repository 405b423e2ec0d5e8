// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ristretto binds the ristretto255 prime-order group to the group interface, using
// github.com/gtank/ristretto255.
package ristretto

import (
	"io"

	"github.com/gtank/ristretto255"

	"github.com/bytemare/oprf-group/internal"
)

const (
	// H2C is the hash-to-curve suite identifier of ristretto255 with SHA-512.
	H2C = "ristretto255_XMD:SHA-512_R255MAP_RO_"

	scalarLength       = 32
	elementLength      = 32
	uniformBytesLength = 64
)

// Group represents the ristretto255 group. It has no state and is safe for concurrent use.
type Group struct{}

// New returns the ristretto255 group.
func New() internal.Group {
	return Group{}
}

// Name returns the hash-to-curve suite identifier.
func (g Group) Name() string {
	return H2C
}

// ScalarLength returns the byte length of an encoded scalar.
func (g Group) ScalarLength() int {
	return scalarLength
}

// ElementLength returns the byte length of an encoded element.
func (g Group) ElementLength() int {
	return elementLength
}

// UniformBytesLength returns the number of uniform bytes HashToCurve expects.
func (g Group) UniformBytesLength() int {
	return uniformBytesLength
}

// NewScalar returns a new scalar set to 0.
func (g Group) NewScalar() internal.Scalar {
	return newScalar()
}

// DecodeScalar decodes a 32-byte little-endian integer and reduces it modulo the group order.
func (g Group) DecodeScalar(b []byte) (internal.Scalar, error) {
	if len(b) != scalarLength {
		return nil, internal.ErrScalarLength
	}

	s := newScalar()
	s.reduce(b)

	return s, nil
}

// RandomNonZeroScalar samples 64 bytes at a time from r, reduced modulo the group order, until the result is not 0.
func (g Group) RandomNonZeroScalar(r io.Reader) (internal.Scalar, error) {
	s := newScalar()

	for {
		b, err := internal.RandomBytes(r, uniformBytesLength)
		if err != nil {
			return nil, err
		}

		s.scalar.FromUniformBytes(b)
		internal.Zero(b)

		if !s.IsZero() {
			return s, nil
		}
	}
}

// NewElement returns the identity element.
func (g Group) NewElement() internal.Element {
	return newElement()
}

// DecodeElement decodes a canonical 32-byte ristretto255 encoding.
func (g Group) DecodeElement(b []byte) (internal.Element, error) {
	if len(b) != elementLength {
		return nil, internal.ErrElementLength
	}

	e := newElement()
	if err := e.element.Decode(b); err != nil {
		return nil, internal.ErrElementEncoding
	}

	return e, nil
}

// HashToCurve maps 64 uniform bytes to an element with the ristretto255 one-way map.
func (g Group) HashToCurve(uniform []byte) (internal.Element, error) {
	if len(uniform) != uniformBytesLength {
		return nil, internal.ErrUniformLength
	}

	e := newElement()
	e.element.FromUniformBytes(uniform)

	return e, nil
}

// Base returns the canonical generator.
func (g Group) Base() internal.Element {
	e := newElement()
	e.element.Base()

	return e
}

func newScalar() *Scalar {
	return &Scalar{scalar: ristretto255.NewScalar()}
}

func newElement() *Element {
	return &Element{element: ristretto255.NewElement()}
}
