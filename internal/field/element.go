// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package field

import (
	"crypto/subtle"
	"encoding/hex"
	"math/big"
)

// Element is an integer modulo the prime of its Field, always kept in [0, p).
// Methods set the receiver to the result and return it, in the manner of math/big, so that
// z = x op y reads z.Op(x, y). Operands of a single call must belong to the same Field.
type Element struct {
	f *Field
	v big.Int
}

// Field returns the field the element belongs to.
func (z *Element) Field() *Field {
	return z.f
}

// Copy returns a new element with the same value.
func (z *Element) Copy() *Element {
	return z.f.Zero().Set(z)
}

// Set sets z = x.
func (z *Element) Set(x *Element) *Element {
	z.f = x.f
	z.v.Set(&x.v)

	return z
}

// Add sets z = x + y.
func (z *Element) Add(x, y *Element) *Element {
	f := sameField(x, y)
	z.v.Add(&x.v, &y.v)

	return f.reduce(z)
}

// Sub sets z = x - y.
func (z *Element) Sub(x, y *Element) *Element {
	f := sameField(x, y)
	z.v.Sub(&x.v, &y.v)

	return f.reduce(z)
}

// Neg sets z = -x.
func (z *Element) Neg(x *Element) *Element {
	z.v.Neg(&x.v)

	return x.f.reduce(z)
}

// Mul sets z = x * y.
func (z *Element) Mul(x, y *Element) *Element {
	f := sameField(x, y)
	z.v.Mul(&x.v, &y.v)

	return f.reduce(z)
}

// Square sets z = x^2.
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// Exp sets z = x^e. The exponent must be non-negative.
func (z *Element) Exp(x *Element, e *big.Int) *Element {
	z.v.Exp(&x.v, e, &x.f.order)
	z.f = x.f

	return z
}

// Inv0 sets z = 1/x, computed as x^(p-2), so that Inv0(0) = 0.
func (z *Element) Inv0(x *Element) *Element {
	return z.Exp(x, &x.f.pMinus2)
}

// Div sets z = x / y, using Inv0 for the inversion: dividing by 0 yields 0.
func (z *Element) Div(x, y *Element) *Element {
	inv := y.f.Zero().Inv0(y)

	return z.Mul(x, inv)
}

// Sqrt sets z = x^((p+1)/4). If x is a square, z is one of its square roots, otherwise z^2 = -x.
// It panics if the field's modulus is not 3 mod 4.
func (z *Element) Sqrt(x *Element) *Element {
	if !x.f.threeMod4 {
		panic(errNoSqrt)
	}

	return z.Exp(x, &x.f.sqrtExp)
}

// IsSquare returns whether z is a square in the field, i.e. z^((p-1)/2) is 0 or 1. Zero is a square.
func (z *Element) IsSquare() bool {
	l := z.f.Zero().Exp(z, &z.f.pMinus1div2)

	return boolByte(l.IsZero())|boolByte(l.IsOne()) == 1
}

// IsZero returns whether z = 0.
func (z *Element) IsZero() bool {
	return subtle.ConstantTimeCompare(z.Bytes(), make([]byte, z.f.byteLen)) == 1
}

// IsOne returns whether z = 1.
func (z *Element) IsOne() bool {
	return subtle.ConstantTimeCompare(z.Bytes(), z.f.One().Bytes()) == 1
}

// Equal returns whether z = x.
func (z *Element) Equal(x *Element) bool {
	sameField(z, x)

	return subtle.ConstantTimeCompare(z.Bytes(), x.Bytes()) == 1
}

// Sgn0 returns the parity of z, as defined for hash-to-curve over prime fields.
func (z *Element) Sgn0() int {
	return int(z.v.Bit(0))
}

// CMov sets z = y if c is true, and z = x otherwise. The selection is made on the fixed-length encodings without
// branching on c.
func (z *Element) CMov(x, y *Element, c bool) *Element {
	f := sameField(x, y)
	out := x.Bytes()
	subtle.ConstantTimeCopy(int(boolByte(c)), out, y.Bytes())
	z.f = f
	z.v.SetBytes(out)

	return z
}

// Bytes returns the fixed-length big-endian encoding of z.
func (z *Element) Bytes() []byte {
	return z.v.FillBytes(make([]byte, z.f.byteLen))
}

// BigInt returns a copy of the integer value of z.
func (z *Element) BigInt() *big.Int {
	return new(big.Int).Set(&z.v)
}

// Zeroize overwrites the words backing z and sets it to 0.
func (z *Element) Zeroize() {
	words := z.v.Bits()
	for i := range words {
		words[i] = 0
	}

	z.v.SetInt64(0)
}

// String returns the hexadecimal encoding of z.
func (z *Element) String() string {
	return hex.EncodeToString(z.Bytes())
}

func boolByte(b bool) uint8 {
	var r uint8
	if b {
		r = 1
	}

	return r
}
