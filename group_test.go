// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package group_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	group "github.com/bytemare/oprf-group"
)

const nonZeroSamples = 10000

func TestAvailability(t *testing.T) {
	for _, id := range []group.Identifier{group.Ristretto255Sha512, group.P256Sha256} {
		assert.True(t, id.Available(), id)
	}

	for _, id := range []group.Identifier{0, 2, 4, 5, 255} {
		assert.False(t, id.Available())
		assert.Empty(t, id.String())
		assert.Panics(t, func() { id.Get() })
		assert.Panics(t, func() { _ = id.HashFunc() })
	}
}

func TestParameters(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		g := c.id.Get()
		assert.Equal(t, c.h2c, g.Name())
		assert.Equal(t, c.hash, c.id.HashFunc())
		assert.Equal(t, c.scalarLength, g.ScalarLength())
		assert.Equal(t, c.elementLength, g.ElementLength())
		assert.Equal(t, c.uniformLength, g.UniformBytesLength())
		assert.Len(t, g.NewScalar().Encode(), c.scalarLength)
		assert.Len(t, g.NewElement().Encode(), c.elementLength)
	})

	assert.Equal(t, "ristretto255-SHA512", group.Ristretto255Sha512.String())
	assert.Equal(t, "P256-SHA256", group.P256Sha256.String())
}

func TestElementRoundTrip(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		g := c.id.Get()

		elements := []group.Element{g.NewElement(), g.Base()}
		for rep := 0; rep < 32; rep++ {
			elements = append(elements, randomElement(t, c))
		}

		for _, e := range elements {
			enc := e.Encode()
			require.Len(t, enc, c.elementLength)

			d, err := c.id.DecodeElement(enc)
			require.NoError(t, err)
			assert.True(t, d.Equal(e))
			assert.Equal(t, enc, d.Encode())

			d2, err := g.DecodeElement(d.Encode())
			require.NoError(t, err)
			assert.Equal(t, enc, d2.Encode())
		}
	})
}

func TestScalarRoundTrip(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		for rep := 0; rep < 64; rep++ {
			s, err := c.id.DecodeScalar(randomBytes(c.scalarLength))
			require.NoError(t, err)

			enc := s.Encode()
			require.Len(t, enc, c.scalarLength)

			s2, err := c.id.DecodeScalar(enc)
			require.NoError(t, err)
			assert.Equal(t, enc, s2.Encode())
			assert.True(t, s.Equal(s2))
		}
	})
}

func TestDecodeErrors(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		_, err := c.id.DecodeElement(getBadElement(t, c))
		assert.ErrorIs(t, err, group.ErrDecode)

		_, err = c.id.DecodeElement(make([]byte, c.elementLength-1))
		assert.ErrorIs(t, err, group.ErrDecode)

		_, err = c.id.DecodeScalar(make([]byte, c.scalarLength+1))
		assert.ErrorIs(t, err, group.ErrDecode)

		_, err = c.id.Get().HashToCurve(make([]byte, c.uniformLength-1))
		assert.ErrorIs(t, err, group.ErrDecode)

		_, err = c.id.Get().Base().MultiplyBytes(nil)
		assert.ErrorIs(t, err, group.ErrDecode)
	})
}

func TestNonZeroSampling(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		g := c.id.Get()

		for rep := 0; rep < nonZeroSamples; rep++ {
			s, err := g.RandomNonZeroScalar(rand.Reader)
			require.NoError(t, err)
			require.False(t, s.IsZero())
		}
	})
}

func TestRandomScalarErrors(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		_, err := c.id.RandomScalar(nil)
		assert.Error(t, err)

		_, err = c.id.RandomScalar(bytes.NewReader(nil))
		assert.Error(t, err)
		assert.False(t, errors.Is(err, group.ErrDecode))
	})
}

func TestInverseLaw(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		one, err := c.id.DecodeScalar(c.one)
		require.NoError(t, err)

		for rep := 0; rep < 64; rep++ {
			s := randomScalar(t, c)
			assert.True(t, s.Multiply(s.Invert()).Equal(one))
			assert.Equal(t, c.one, s.Invert().Multiply(s).Encode())
		}
	})
}

func TestScalarMultiplicationConsistency(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		g := c.id.Get()
		a, b := randomScalar(t, c), randomScalar(t, c)

		// a(bG) = (ab)G
		left := g.Base().Multiply(b).Multiply(a)
		right := g.Base().Multiply(a.Multiply(b))
		assert.True(t, left.Equal(right))

		// aG + aG = a(G + G)
		aG := g.Base().Multiply(a)
		assert.True(t, aG.Add(aG).Equal(g.Base().Add(g.Base()).Multiply(a)))

		// MultiplyBytes agrees with Multiply on canonical scalars.
		m, err := g.Base().MultiplyBytes(a.Encode())
		require.NoError(t, err)
		assert.True(t, m.Equal(aG))

		// Operations leave their operands untouched.
		assert.True(t, g.Base().Equal(c.id.Get().Base()))
	})
}

func TestBaseSanity(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		g := c.id.Get()
		assert.False(t, g.Base().IsIdentity())
		assert.True(t, g.NewElement().IsIdentity())
		assert.True(t, g.NewScalar().IsZero())

		zero, err := g.Base().MultiplyBytes(make([]byte, c.scalarLength))
		require.NoError(t, err)
		assert.True(t, zero.IsIdentity())
		assert.True(t, zero.Equal(g.NewElement()))

		one, err := g.Base().MultiplyBytes(c.one)
		require.NoError(t, err)
		assert.True(t, one.Equal(g.Base()))

		ref, err := c.encode(c.reference.Generator())
		require.NoError(t, err)
		assert.Equal(t, ref, g.Base().Encode())

		ref, err = c.encode(c.reference.Identity())
		require.NoError(t, err)
		assert.Equal(t, ref, g.NewElement().Encode())
	})
}

func TestEqualAgreesWithEncoding(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		elements := []group.Element{c.id.Get().NewElement(), c.id.Get().Base()}
		for rep := 0; rep < 8; rep++ {
			elements = append(elements, randomElement(t, c))
		}

		for _, a := range elements {
			for _, b := range elements {
				assert.Equal(t, bytes.Equal(a.Encode(), b.Encode()), a.Equal(b))
			}
		}

		s1, s2 := randomScalar(t, c), randomScalar(t, c)
		assert.True(t, s1.Equal(s1.Copy()))
		assert.Equal(t, bytes.Equal(s1.Encode(), s2.Encode()), s1.Equal(s2))
	})
}

func TestHashToGroup(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		dst := []byte("QUUX-V01-CS02-with-" + c.h2c)

		for _, msg := range [][]byte{nil, []byte("abc"), randomBytes(32), bytes.Repeat([]byte("a"), 512)} {
			e1, err := c.id.HashToGroup(msg, dst)
			require.NoError(t, err)

			e2, err := c.id.HashToGroup(msg, dst)
			require.NoError(t, err)
			assert.Equal(t, e1.Encode(), e2.Encode())

			ref, err := c.encode(c.reference.HashToElement(msg, dst))
			require.NoError(t, err)
			assert.Equal(t, ref, e1.Encode())
		}

		_, err := c.id.HashToGroup([]byte("msg"), nil)
		assert.Error(t, err)
	})
}

func TestHashToCurveDeterminism(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		g := c.id.Get()
		uniform := randomBytes(c.uniformLength)

		e1, err := g.HashToCurve(uniform)
		require.NoError(t, err)

		e2, err := g.HashToCurve(bytes.Clone(uniform))
		require.NoError(t, err)

		assert.Equal(t, e1.Encode(), e2.Encode())
		assert.False(t, e1.IsIdentity())
	})
}

func TestWithScalar(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		errTest := errors.New("test")

		s := randomScalar(t, c)
		require.NoError(t, group.WithScalar(s, func(s group.Scalar) error {
			assert.False(t, s.IsZero())
			return nil
		}))
		assert.True(t, s.IsZero())

		s = randomScalar(t, c)
		assert.ErrorIs(t, group.WithScalar(s, func(group.Scalar) error { return errTest }), errTest)
		assert.True(t, s.IsZero())

		s = randomScalar(t, c)
		assert.Panics(t, func() {
			_ = group.WithScalar(s, func(group.Scalar) error { panic(errTest) })
		})
		assert.True(t, s.IsZero())
	})
}

func TestInvertZero(t *testing.T) {
	assert.Panics(t, func() { group.Ristretto255Sha512.Get().NewScalar().Invert() })
	assert.True(t, group.P256Sha256.Get().NewScalar().Invert().IsZero())
}
