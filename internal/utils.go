// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"crypto/subtle"
	"fmt"
	"io"
)

// CTEqual returns whether a and b are equal, without short-circuiting on the first difference.
// Slices of different lengths are never equal.
func CTEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// IsAllZero returns whether all bytes of b are 0, in constant time.
func IsAllZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}

	return subtle.ConstantTimeByteEq(acc, 0) == 1
}

// Concatenate returns a new slice holding the inputs in order.
func Concatenate(input ...[]byte) []byte {
	length := 0
	for _, in := range input {
		length += len(in)
	}

	buf := make([]byte, 0, length)

	for _, in := range input {
		buf = append(buf, in...)
	}

	return buf
}

// RandomBytes reads exactly length bytes from r.
func RandomBytes(r io.Reader, length int) ([]byte, error) {
	b := make([]byte, length)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandom, err)
	}

	return b, nil
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
