// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package p256

import (
	"fmt"

	"filippo.io/nistec"

	"github.com/bytemare/oprf-group/internal"
	"github.com/bytemare/oprf-group/internal/field"
)

// HashToCurve maps 96 uniform bytes to a point: each 48-byte half is reduced to a field element u and mapped with
// the Simplified SWU mapping, and the two resulting points are added.
func (g Group) HashToCurve(uniform []byte) (internal.Element, error) {
	if len(uniform) != uniformBytesLength {
		return nil, internal.ErrUniformLength
	}

	c := getCurve()

	u0, err := c.FieldElement(uniform[:hashToFieldLength])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internal.ErrUniformLength, err)
	}

	u1, err := c.FieldElement(uniform[hashToFieldLength:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internal.ErrUniformLength, err)
	}

	q0, err := mapToPoint(u0)
	if err != nil {
		return nil, err
	}

	q1, err := mapToPoint(u1)
	if err != nil {
		return nil, err
	}

	e := newElement()
	e.point.Add(q0, q1)

	return e, nil
}

// mapToPoint maps u to an affine point and lifts it into a nistec point, which checks it is on the curve.
func mapToPoint(u *field.Element) (*nistec.P256Point, error) {
	x, y := getCurve().Map(u)
	defer x.Zeroize()
	defer y.Zeroize()

	p, err := nistec.NewP256Point().SetBytes(internal.Concatenate([]byte{4}, x.Bytes(), y.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internal.ErrHashToCurve, err)
	}

	return p, nil
}
