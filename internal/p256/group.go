// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package p256 binds the NIST P-256 group to the group interface. Points use filippo.io/nistec, scalars are
// integers modulo the group order, and hashing to the curve uses the Simplified SWU mapping.
package p256

import (
	"io"
	"math/big"
	"sync"

	"filippo.io/nistec"

	"github.com/bytemare/oprf-group/internal"
	"github.com/bytemare/oprf-group/internal/field"
	"github.com/bytemare/oprf-group/internal/swu"
)

const (
	// H2C is the hash-to-curve suite identifier of P-256 with SHA-256.
	H2C = "P256_XMD:SHA-256_SSWU_RO_"

	scalarLength  = 32
	elementLength = 33

	// hashToFieldLength is L, the number of bytes reduced into one field element.
	hashToFieldLength  = 48
	uniformBytesLength = 2 * hashToFieldLength

	fieldPrime = "0xffffffff00000001000000000000000000000000ffffffffffffffffffffffff"
	groupOrder = "0xffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"
	curveB     = "0x5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"
	curveA     = -3
	mapZ       = -10
)

var (
	initOnce    sync.Once
	curve       *swu.Curve
	scalarField *field.Field
)

func initP256() {
	curve = swu.New(
		field.String2Int(fieldPrime),
		big.NewInt(curveA),
		field.String2Int(curveB),
		big.NewInt(mapZ),
		hashToFieldLength,
	)
	scalarField = field.NewField(field.String2Int(groupOrder))
}

func getScalarField() *field.Field {
	initOnce.Do(initP256)
	return scalarField
}

func getCurve() *swu.Curve {
	initOnce.Do(initP256)
	return curve
}

// Group represents the P-256 group. It has no state and is safe for concurrent use.
type Group struct{}

// New returns the P-256 group.
func New() internal.Group {
	initOnce.Do(initP256)
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

// DecodeScalar decodes a 32-byte big-endian integer and reduces it modulo the group order.
func (g Group) DecodeScalar(b []byte) (internal.Scalar, error) {
	if len(b) != scalarLength {
		return nil, internal.ErrScalarLength
	}

	return &Scalar{scalar: getScalarField().FromBytes(b)}, nil
}

// RandomNonZeroScalar samples 48 bytes at a time from r, reduced modulo the group order, until the result is not 0.
func (g Group) RandomNonZeroScalar(r io.Reader) (internal.Scalar, error) {
	for {
		b, err := internal.RandomBytes(r, hashToFieldLength)
		if err != nil {
			return nil, err
		}

		s := &Scalar{scalar: getScalarField().FromBytes(b)}
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

// DecodeElement decodes a 33-byte SEC 1 compressed point, or 33 zero bytes for the identity.
func (g Group) DecodeElement(b []byte) (internal.Element, error) {
	if len(b) != elementLength {
		return nil, internal.ErrElementLength
	}

	in := b
	if internal.IsAllZero(b) {
		in = []byte{0}
	}

	e := newElement()
	if _, err := e.point.SetBytes(in); err != nil {
		return nil, internal.ErrElementEncoding
	}

	return e, nil
}

// Base returns the standard generator of P-256.
func (g Group) Base() internal.Element {
	e := newElement()
	e.point.SetGenerator()

	return e
}

func newScalar() *Scalar {
	return &Scalar{scalar: getScalarField().Zero()}
}

func newElement() *Element {
	return &Element{point: nistec.NewP256Point()}
}
