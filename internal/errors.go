// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is the single error kind returned by decoding and hash-to-curve operations.
	ErrDecode = errors.New("decode error")

	// ErrScalarLength indicates an encoded scalar of the wrong length.
	ErrScalarLength = fmt.Errorf("%w: invalid scalar length", ErrDecode)

	// ErrElementLength indicates an encoded element of the wrong length.
	ErrElementLength = fmt.Errorf("%w: invalid element length", ErrDecode)

	// ErrElementEncoding indicates an element encoding that does not represent a valid point.
	ErrElementEncoding = fmt.Errorf("%w: invalid element encoding", ErrDecode)

	// ErrUniformLength indicates hash-to-curve input of the wrong length.
	ErrUniformLength = fmt.Errorf("%w: invalid uniform bytes length", ErrDecode)

	// ErrHashToCurve indicates a mapped point that could not be lifted into the group.
	ErrHashToCurve = fmt.Errorf("%w: mapped point is not on the curve", ErrDecode)

	// ErrZeroInverse is the panic value when inverting the zero scalar in groups that don't define it.
	ErrZeroInverse = errors.New("the zero scalar has no inverse")

	// ErrWrongGroup is the panic value when mixing scalars or elements of different groups.
	ErrWrongGroup = errors.New("operand belongs to a different group")

	// ErrRandom wraps failures of the random source.
	ErrRandom = errors.New("could not read from the random source")
)
