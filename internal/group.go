// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal defines the prime-order group abstraction and the helpers shared by its bindings.
package internal

import "io"

// Group abstracts a prime-order group, its scalar field, and its hash-to-curve mapping.
type Group interface {
	// Name returns the hash-to-curve suite identifier of the group.
	Name() string

	// ScalarLength returns the byte length of an encoded scalar.
	ScalarLength() int

	// ElementLength returns the byte length of an encoded element.
	ElementLength() int

	// UniformBytesLength returns the number of uniform bytes HashToCurve expects.
	UniformBytesLength() int

	// NewScalar returns a new scalar set to 0.
	NewScalar() Scalar

	// DecodeScalar decodes a fixed-length scalar encoding, reducing it modulo the group order.
	DecodeScalar(b []byte) (Scalar, error)

	// RandomNonZeroScalar samples a scalar from r, retrying until it is not zero.
	RandomNonZeroScalar(r io.Reader) (Scalar, error)

	// NewElement returns a new element set to the identity.
	NewElement() Element

	// DecodeElement decodes a canonical element encoding, rejecting invalid points.
	DecodeElement(b []byte) (Element, error)

	// HashToCurve maps UniformBytesLength uniform bytes to an element of the group.
	HashToCurve(uniform []byte) (Element, error)

	// Base returns the group's generator.
	Base() Element
}

// Scalar is an element of a group's scalar field.
type Scalar interface {
	// Encode returns the fixed-length encoding of the scalar.
	Encode() []byte

	// Invert returns a new scalar set to the multiplicative inverse of the receiver.
	Invert() Scalar

	// Multiply returns a new scalar set to the product of the receiver and s.
	Multiply(s Scalar) Scalar

	// IsZero returns whether the scalar is 0.
	IsZero() bool

	// Equal returns whether the scalar is equal to s, in constant time.
	Equal(s Scalar) bool

	// Copy returns a new scalar with the same value.
	Copy() Scalar

	// Zeroize overwrites the scalar's memory and sets it to 0.
	Zeroize()
}

// Element is an element of a prime-order group. Operations never modify their receiver or arguments.
type Element interface {
	// Encode returns the fixed-length canonical encoding of the element.
	Encode() []byte

	// Multiply returns a new element set to the scalar multiplication of the receiver by s.
	Multiply(s Scalar) Element

	// MultiplyBytes returns a new element set to the receiver multiplied by the scalar encoded in b.
	MultiplyBytes(b []byte) (Element, error)

	// Add returns a new element set to the sum of the receiver and e.
	Add(e Element) Element

	// IsIdentity returns whether the element is the identity.
	IsIdentity() bool

	// Equal returns whether the element is equal to e, in constant time.
	Equal(e Element) bool
}
