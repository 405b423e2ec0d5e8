// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package group

import (
	"errors"

	"github.com/bytemare/oprf-group/internal"
)

// ErrDecode is returned, possibly wrapped, by every decoding and hash-to-curve failure. Test for it with errors.Is.
var ErrDecode = internal.ErrDecode

var (
	errParamInvalidID     = errors.New("invalid group identifier")
	errParamHash          = errors.New("hash function is not available")
	errParamEmptyDST      = errors.New("zero-length DST")
	errParamOutputLength  = errors.New("requested output length is out of range")
	errParamNilRandomness = errors.New("nil random source")
)
