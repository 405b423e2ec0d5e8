// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package p256

import (
	"github.com/bytemare/oprf-group/internal"
	"github.com/bytemare/oprf-group/internal/field"
)

// Scalar is an integer modulo the P-256 group order.
type Scalar struct {
	scalar *field.Element
}

func assertScalar(s internal.Scalar) *Scalar {
	sc, ok := s.(*Scalar)
	if !ok {
		panic(internal.ErrWrongGroup)
	}

	return sc
}

// Encode returns the 32-byte big-endian encoding of the scalar.
func (s *Scalar) Encode() []byte {
	return s.scalar.Bytes()
}

// Invert returns a new scalar set to 1/s, computed as s^(n-2). Inverting 0 returns 0 instead of failing.
func (s *Scalar) Invert() internal.Scalar {
	return &Scalar{scalar: getScalarField().Zero().Inv0(s.scalar)}
}

// Multiply returns a new scalar set to s * t.
func (s *Scalar) Multiply(t internal.Scalar) internal.Scalar {
	return &Scalar{scalar: getScalarField().Zero().Mul(s.scalar, assertScalar(t).scalar)}
}

// IsZero returns whether the scalar is 0.
func (s *Scalar) IsZero() bool {
	return s.scalar.IsZero()
}

// Equal returns whether s and t hold the same value.
func (s *Scalar) Equal(t internal.Scalar) bool {
	return s.scalar.Equal(assertScalar(t).scalar)
}

// Copy returns a new scalar with the same value.
func (s *Scalar) Copy() internal.Scalar {
	return &Scalar{scalar: s.scalar.Copy()}
}

// Zeroize sets the scalar to 0, overwriting its memory.
func (s *Scalar) Zeroize() {
	s.scalar.Zeroize()
}
