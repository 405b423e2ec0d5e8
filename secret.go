// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package group

// WithScalar calls f with s, and zeroizes s when f returns, errors, or panics.
func WithScalar(s Scalar, f func(Scalar) error) error {
	defer s.Zeroize()

	return f(s)
}
