// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package group provides the prime-order groups used by OPRF and OPAQUE: ristretto255 and NIST P-256, behind a
// common Group interface.
//
// A group is obtained from its identifier, and exposes scalar and element arithmetic, fixed-length encodings, and
// hashing to the group. Hashing to P-256 is done with the Simplified SWU mapping of RFC 9380, and the uniform bytes
// it consumes come from ExpandMessage, the expand_message_xmd function of the same document.
//
//	g := group.P256Sha256.Get()
//	e, err := group.P256Sha256.HashToGroup([]byte("input"), []byte("dst"))
//
// Scalars carry secrets: release them with Zeroize, or use WithScalar which does it on every exit path.
package group
