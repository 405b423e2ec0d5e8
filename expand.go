// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package group

import (
	"crypto"
	_ "crypto/sha256" // registers SHA-256
	_ "crypto/sha512" // registers SHA-512
	"fmt"

	"github.com/cloudflare/circl/expander"
)

const (
	maxExpandLength = 65535
	maxExpandBlocks = 255
)

// ExpandMessage implements expand_message_xmd from RFC 9380 with the hash function h, and returns length
// pseudorandom bytes derived from msg and dst. DSTs longer than 255 bytes are first hashed, as the RFC specifies.
func ExpandMessage(h crypto.Hash, msg, dst []byte, length int) ([]byte, error) {
	if !h.Available() {
		return nil, fmt.Errorf("%w: %d", errParamHash, h)
	}

	if len(dst) == 0 {
		return nil, errParamEmptyDST
	}

	if length <= 0 || length > maxExpandLength {
		return nil, fmt.Errorf("%w: %d", errParamOutputLength, length)
	}

	if (length+h.Size()-1)/h.Size() > maxExpandBlocks {
		return nil, fmt.Errorf("%w: %d bytes exceeds 255 blocks of %s", errParamOutputLength, length, h)
	}

	return expander.NewExpanderMD(h, dst).Expand(msg, uint(length)), nil
}
