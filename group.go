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
	"fmt"
	"io"

	"github.com/bytemare/oprf-group/internal"
	"github.com/bytemare/oprf-group/internal/p256"
	"github.com/bytemare/oprf-group/internal/ristretto"
)

// Group abstracts a prime-order group, its scalar field, and its hash-to-curve mapping.
type Group = internal.Group

// Scalar is an element of a group's scalar field.
type Scalar = internal.Scalar

// Element is an element of a prime-order group.
type Element = internal.Element

// Identifier identifies a group and the hash function it is used with, as in RFC 9497 cipher suites.
type Identifier byte

const (
	// Ristretto255Sha512 identifies the ristretto255 group with SHA-512.
	Ristretto255Sha512 Identifier = 1 + iota

	// decaf448Shake256 is reserved and not implemented.
	decaf448Shake256

	// P256Sha256 identifies the NIST P-256 group with SHA-256.
	P256Sha256

	maxID

	sRistretto255Sha512 = "ristretto255-SHA512"
	sP256Sha256         = "P256-SHA256"
)

type params struct {
	get  func() internal.Group
	name string
	hash crypto.Hash
}

var groups [maxID]*params

func (i Identifier) register(name string, h crypto.Hash, get func() internal.Group) {
	groups[i] = &params{
		get:  get,
		name: name,
		hash: h,
	}
}

func init() {
	Ristretto255Sha512.register(sRistretto255Sha512, crypto.SHA512, ristretto.New)
	P256Sha256.register(sP256Sha256, crypto.SHA256, p256.New)
}

// Available reports whether the group identified by i is implemented.
func (i Identifier) Available() bool {
	return i > 0 && i < maxID && groups[i] != nil
}

// Get returns the group identified by i. It panics if the group is not available.
func (i Identifier) Get() Group {
	if !i.Available() {
		panic(fmt.Sprintf("%v: %d", errParamInvalidID, i))
	}

	return groups[i].get()
}

// String returns the cipher suite name of the group, or an empty string if it is not available.
func (i Identifier) String() string {
	if !i.Available() {
		return ""
	}

	return groups[i].name
}

// HashFunc returns the hash function associated with the group. It panics if the group is not available.
func (i Identifier) HashFunc() crypto.Hash {
	if !i.Available() {
		panic(fmt.Sprintf("%v: %d", errParamInvalidID, i))
	}

	return groups[i].hash
}

// HashToGroup expands msg and dst to uniform bytes with the group's hash function, and maps them to an element.
func (i Identifier) HashToGroup(msg, dst []byte) (Element, error) {
	g := i.Get()

	uniform, err := ExpandMessage(i.HashFunc(), msg, dst, g.UniformBytesLength())
	if err != nil {
		return nil, err
	}

	return g.HashToCurve(uniform)
}

// DecodeScalar decodes s to a scalar in the group.
func (i Identifier) DecodeScalar(s []byte) (Scalar, error) {
	return i.Get().DecodeScalar(s)
}

// DecodeElement decodes e to an element in the group.
func (i Identifier) DecodeElement(e []byte) (Element, error) {
	return i.Get().DecodeElement(e)
}

// RandomScalar returns a random non-zero scalar drawn from r.
func (i Identifier) RandomScalar(r io.Reader) (Scalar, error) {
	if r == nil {
		return nil, errParamNilRandomness
	}

	return i.Get().RandomNonZeroScalar(r)
}
