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

// Scalar is an integer modulo the ristretto255 group order.
type Scalar struct {
	scalar *ristretto255.Scalar
}

func assertScalar(s internal.Scalar) *Scalar {
	sc, ok := s.(*Scalar)
	if !ok {
		panic(internal.ErrWrongGroup)
	}

	return sc
}

// reduce sets s to the little-endian integer b, of at most 64 bytes, modulo the group order.
func (s *Scalar) reduce(b []byte) {
	var wide [uniformBytesLength]byte

	copy(wide[:], b)
	s.scalar.FromUniformBytes(wide[:])
	internal.Zero(wide[:])
}

// Encode returns the 32-byte little-endian encoding of the scalar.
func (s *Scalar) Encode() []byte {
	return s.scalar.Encode(make([]byte, 0, scalarLength))
}

// Invert returns a new scalar set to 1/s. It panics if s is 0.
func (s *Scalar) Invert() internal.Scalar {
	if s.IsZero() {
		panic(internal.ErrZeroInverse)
	}

	r := newScalar()
	r.scalar.Invert(s.scalar)

	return r
}

// Multiply returns a new scalar set to s * t.
func (s *Scalar) Multiply(t internal.Scalar) internal.Scalar {
	r := newScalar()
	r.scalar.Multiply(s.scalar, assertScalar(t).scalar)

	return r
}

// IsZero returns whether the scalar is 0.
func (s *Scalar) IsZero() bool {
	return s.scalar.Equal(ristretto255.NewScalar()) == 1
}

// Equal returns whether s and t hold the same value.
func (s *Scalar) Equal(t internal.Scalar) bool {
	return s.scalar.Equal(assertScalar(t).scalar) == 1
}

// Copy returns a new scalar with the same value.
func (s *Scalar) Copy() internal.Scalar {
	r := newScalar()
	r.reduce(s.Encode())

	return r
}

// Zeroize sets the scalar to 0, overwriting its memory.
func (s *Scalar) Zeroize() {
	s.scalar.Zero()
}
