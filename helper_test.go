// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package group_test

import (
	"crypto"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"testing"

	circl "github.com/cloudflare/circl/group"

	group "github.com/bytemare/oprf-group"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// helper functions

type configuration struct {
	reference     circl.Group
	encode        func(circl.Element) ([]byte, error)
	name          string
	h2c           string
	hash          crypto.Hash
	one           []byte
	scalarLength  int
	elementLength int
	uniformLength int
	id            group.Identifier
}

var configurationTable = []configuration{
	{
		name:          "Ristretto255Sha512",
		id:            group.Ristretto255Sha512,
		h2c:           "ristretto255_XMD:SHA-512_R255MAP_RO_",
		hash:          crypto.SHA512,
		scalarLength:  32,
		elementLength: 32,
		uniformLength: 64,
		one:           littleEndianOne(32),
		reference:     circl.Ristretto255,
		encode:        func(e circl.Element) ([]byte, error) { return e.MarshalBinary() },
	},
	{
		name:          "P256Sha256",
		id:            group.P256Sha256,
		h2c:           "P256_XMD:SHA-256_SSWU_RO_",
		hash:          crypto.SHA256,
		scalarLength:  32,
		elementLength: 33,
		uniformLength: 96,
		one:           bigEndianOne(32),
		reference:     circl.P256,
		encode: func(e circl.Element) ([]byte, error) {
			b, err := e.MarshalBinaryCompress()
			if err != nil || len(b) != 1 {
				return b, err
			}

			// circl encodes the identity on a single byte.
			return make([]byte, 33), nil
		},
	},
}

func testAll(t *testing.T, f func(*testing.T, *configuration)) {
	for _, test := range configurationTable {
		t.Run(test.name, func(t *testing.T) {
			f(t, &test)
		})
	}
}

func littleEndianOne(length int) []byte {
	b := make([]byte, length)
	b[0] = 1

	return b
}

func bigEndianOne(length int) []byte {
	b := make([]byte, length)
	b[length-1] = 1

	return b
}

func randomBytes(length int) []byte {
	r := make([]byte, length)
	if _, err := rand.Read(r); err != nil {
		panic(fmt.Errorf("unexpected error in generating random bytes : %w", err))
	}

	return r
}

func decodeHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}

	return b
}

func getBadRistrettoElement() []byte {
	a := "2a292df7e32cababbd9de088d1d1abec9fc0440f637ed2fba145094dc14bea08"
	decoded, _ := hex.DecodeString(a)

	return decoded
}

func getBadNistElement(t *testing.T, g group.Group) []byte {
	size := g.ElementLength()
	element := randomBytes(size)
	// detag compression
	element[0] = 4

	// test if invalid compression is detected
	if _, err := g.DecodeElement(element); err == nil {
		t.Errorf("detagged compressed point did not yield an error for group %s", g.Name())
	}

	return element
}

func getBadElement(t *testing.T, c *configuration) []byte {
	switch c.id {
	case group.Ristretto255Sha512:
		return getBadRistrettoElement()
	default:
		return getBadNistElement(t, c.id.Get())
	}
}

func randomScalar(t *testing.T, c *configuration) group.Scalar {
	s, err := c.id.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	return s
}

func randomElement(t *testing.T, c *configuration) group.Element {
	return c.id.Get().Base().Multiply(randomScalar(t, c))
}
