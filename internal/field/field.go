// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package field implements arithmetic in prime order fields, as used by hash-to-curve mappings and scalar fields.
//
// Values are held in math/big integers, which are not constant-time. Selections, zero tests, equality, and the
// square test are combined without secret-dependent branches, but the underlying multiplications and exponentiations
// may still leak timing information.
package field

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)

	errFieldMismatch = errors.New("field: operands belong to different fields")
	errNoSqrt        = errors.New("field: square root is only implemented for p = 3 mod 4")
)

// String2Int returns the integer represented by s. A 0x prefix indicates hexadecimal, otherwise decimal is assumed.
// It panics if s is not a valid integer.
func String2Int(s string) *big.Int {
	i, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Sprintf("field: invalid integer string %q", s))
	}

	return i
}

// Field represents the prime field of integers modulo p.
type Field struct {
	order       big.Int
	pMinus1div2 big.Int // Legendre exponent, for the square test.
	pMinus2     big.Int // Fermat exponent, for inversion.
	sqrtExp     big.Int // (p+1)/4, only set when p = 3 mod 4.
	byteLen     int
	threeMod4   bool
}

// NewField returns the field of integers modulo prime. The primality of the input is not verified, but it must be an
// odd integer greater than 2.
func NewField(prime *big.Int) *Field {
	if prime == nil || prime.Cmp(two) <= 0 || prime.Bit(0) == 0 {
		panic("field: modulus must be an odd prime")
	}

	f := &Field{
		byteLen:   (prime.BitLen() + 7) / 8,
		threeMod4: prime.Bit(1) == 1,
	}

	f.order.Set(prime)
	f.pMinus1div2.Sub(prime, one)
	f.pMinus1div2.Rsh(&f.pMinus1div2, 1)
	f.pMinus2.Sub(prime, two)

	if f.threeMod4 {
		f.sqrtExp.Add(prime, one)
		f.sqrtExp.Rsh(&f.sqrtExp, 2)
	}

	return f
}

// Order returns a copy of the field's modulus.
func (f *Field) Order() *big.Int {
	return new(big.Int).Set(&f.order)
}

// ByteLen returns the length in bytes of the canonical encoding of an element.
func (f *Field) ByteLen() int {
	return f.byteLen
}

// BitLen returns the bit length of the modulus.
func (f *Field) BitLen() int {
	return f.order.BitLen()
}

// IsThreeModFour returns whether p = 3 mod 4, in which case Sqrt is available.
func (f *Field) IsThreeModFour() bool {
	return f.threeMod4
}

// Zero returns a new element set to 0.
func (f *Field) Zero() *Element {
	return &Element{f: f}
}

// One returns a new element set to 1.
func (f *Field) One() *Element {
	e := f.Zero()
	e.v.SetInt64(1)

	return e
}

// FromBigInt returns a new element set to i mod p. Negative integers are accepted.
func (f *Field) FromBigInt(i *big.Int) *Element {
	e := f.Zero()
	e.v.Mod(i, &f.order)

	return e
}

// FromInt64 returns a new element set to i mod p. Negative integers are accepted.
func (f *Field) FromInt64(i int64) *Element {
	return f.FromBigInt(big.NewInt(i))
}

// FromBytes interprets b as a big-endian unsigned integer of any length and returns it reduced modulo p.
func (f *Field) FromBytes(b []byte) *Element {
	e := f.Zero()
	e.v.SetBytes(b)
	e.v.Mod(&e.v, &f.order)

	return e
}

func (f *Field) reduce(e *Element) *Element {
	e.f = f
	e.v.Mod(&e.v, &f.order)

	return e
}

func sameField(x, y *Element) *Field {
	if x.f != y.f {
		panic(errFieldMismatch)
	}

	return x.f
}
