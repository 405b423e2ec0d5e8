// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package swu implements the Simplified Shallue-van de Woestijne-Ulas mapping to short Weierstrass curves
// y^2 = x^3 + Ax + B with AB != 0, over prime fields where p = 3 mod 4.
package swu

import (
	"errors"
	"math/big"

	"github.com/bytemare/oprf-group/internal/field"
)

var (
	errParamNot3Mod4 = errors.New("swu: the field modulus must be 3 mod 4")
	errParamZeroAB   = errors.New("swu: A and B must be non-zero")
	errParamZ        = errors.New("swu: Z must be a non-square different from -1")
	errParamLength   = errors.New("swu: invalid hash-to-field length")
)

// Curve holds the mapping parameters for one curve, and the constants derived from them.
// A Curve is immutable once built and safe for concurrent use.
type Curve struct {
	f  *field.Field
	a  *field.Element
	b  *field.Element
	z  *field.Element
	c1 *field.Element // -B/A
	c2 *field.Element // -1/Z
	l  int
}

// New returns the mapping for the curve y^2 = x^3 + ax + b over the prime field p, with the non-square z, and the
// hash-to-field length l in bytes. It panics on parameters the mapping cannot work with.
func New(p, a, b, z *big.Int, l int) *Curve {
	f := field.NewField(p)
	if !f.IsThreeModFour() {
		panic(errParamNot3Mod4)
	}

	if l < f.ByteLen() {
		panic(errParamLength)
	}

	c := &Curve{
		f: f,
		a: f.FromBigInt(a),
		b: f.FromBigInt(b),
		z: f.FromBigInt(z),
		l: l,
	}

	if c.a.IsZero() || c.b.IsZero() {
		panic(errParamZeroAB)
	}

	if c.z.IsSquare() || c.z.Equal(f.FromInt64(-1)) {
		panic(errParamZ)
	}

	c.c1 = f.Zero().Div(c.b, c.a)
	c.c1.Neg(c.c1)
	c.c2 = f.Zero().Inv0(c.z)
	c.c2.Neg(c.c2)

	return c
}

// Field returns the base field of the curve.
func (c *Curve) Field() *field.Field {
	return c.f
}

// L returns the number of uniform bytes reduced into a single field element.
func (c *Curve) L() int {
	return c.l
}

// FieldElement reduces a chunk of L uniform bytes into a field element, as in hash_to_field.
func (c *Curve) FieldElement(uniform []byte) (*field.Element, error) {
	if len(uniform) != c.l {
		return nil, errParamLength
	}

	return c.f.FromBytes(uniform), nil
}

// Evaluate returns x^3 + Ax + B.
func (c *Curve) Evaluate(x *field.Element) *field.Element {
	f := c.f
	x3 := f.Zero().Square(x)
	x3.Mul(x3, x)
	ax := f.Zero().Mul(c.a, x)

	return x3.Add(x3, ax).Add(x3, c.b)
}

// IsOnCurve returns whether (x, y) satisfies the curve equation.
func (c *Curve) IsOnCurve(x, y *field.Element) bool {
	return c.f.Zero().Square(y).Equal(c.Evaluate(x))
}

// Map maps the field element u to an affine point (x, y) on the curve. The computation selects between candidates
// with conditional moves only, and u's parity is carried into y.
func (c *Curve) Map(u *field.Element) (x, y *field.Element) {
	f := c.f

	// tv1 = Z * u^2, tv2 = tv1^2
	tv1 := f.Zero().Square(u)
	tv1.Mul(c.z, tv1)
	tv2 := f.Zero().Square(tv1)

	// x1 = (1 + inv0(tv1 + tv2)) * c1, or c2 * c1 in the exceptional case
	x1 := f.Zero().Add(tv1, tv2)
	x1.Inv0(x1)
	e1 := x1.IsZero()
	x1.Add(x1, f.One())
	x1.CMov(x1, c.c2, e1)
	x1.Mul(x1, c.c1)

	gx1 := c.Evaluate(x1)

	// x2 = tv1 * x1, gx2 = gx1 * tv1^3
	x2 := f.Zero().Mul(tv1, x1)
	gx2 := f.Zero().Mul(tv1, tv2)
	gx2.Mul(gx1, gx2)

	e2 := gx1.IsSquare()
	x = f.Zero().CMov(x2, x1, e2)
	y2 := f.Zero().CMov(gx2, gx1, e2)

	y = f.Zero().Sqrt(y2)
	e3 := u.Sgn0() == y.Sgn0()
	y.CMov(f.Zero().Neg(y), y, e3)

	tv1.Zeroize()
	tv2.Zeroize()
	x1.Zeroize()
	x2.Zeroize()
	gx1.Zeroize()
	gx2.Zeroize()
	y2.Zeroize()

	return x, y
}
