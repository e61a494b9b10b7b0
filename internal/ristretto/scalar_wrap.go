// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"crypto/rand"
	"math/big"

	"github.com/bytemare/crypto/internal"
)

// Scalar implements the Scalar interface for Ristretto255 group scalars.
type Scalar struct {
	s scalar255
}

func assertScalar(scalar internal.Scalar) *Scalar {
	if scalar == nil {
		panic(internal.ErrParamNilScalar)
	}

	sc, ok := scalar.(*Scalar)
	if !ok {
		panic(internal.ErrCastScalar)
	}

	return sc
}

// Zero sets the scalar to 0, and returns it.
func (s *Scalar) Zero() internal.Scalar {
	s.s.zero()
	return s
}

// One sets the scalar to 1, and returns it.
func (s *Scalar) One() internal.Scalar {
	s.s.one()
	return s
}

// Random sets the receiver to a fresh, uniformly distributed scalar, and
// returns it.
func (s *Scalar) Random() internal.Scalar {
	for {
		var b [64]byte
		if _, err := rand.Read(b[:]); err != nil {
			panic(err)
		}

		s.s = scalarFromBytesReduced(b[:])
		if s.s.IsZero() == 0 {
			return s
		}
	}
}

// Add sets the receiver to the sum of the arguments, and returns it.
func (s *Scalar) Add(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s
	}

	sc := assertScalar(scalar)
	s.s.Add(&s.s, &sc.s)

	return s
}

// Subtract subtracts the argument from the receiver, and returns it.
func (s *Scalar) Subtract(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s
	}

	sc := assertScalar(scalar)
	s.s.Subtract(&s.s, &sc.s)

	return s
}

// Multiply multiplies the receiver with the argument, and returns it.
func (s *Scalar) Multiply(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		s.s.zero()
		return s
	}

	sc := assertScalar(scalar)
	s.s.Multiply(&s.s, &sc.s)

	return s
}

// Pow sets the receiver to its value raised to the power of scalar, and returns it.
func (s *Scalar) Pow(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		s.s.one()
		return s
	}

	sc := assertScalar(scalar)
	s.s.Pow(&s.s, &sc.s)

	return s
}

// Invert sets the receiver to its modular inverse, and returns it.
func (s *Scalar) Invert() internal.Scalar {
	s.s.Invert(&s.s)
	return s
}

// Equal returns 1 if the scalars are equal, 0 otherwise.
func (s *Scalar) Equal(scalar internal.Scalar) int {
	if scalar == nil {
		return 0
	}

	sc := assertScalar(scalar)

	return s.s.Equal(&sc.s)
}

// LessOrEqual returns 1 if s <= scalar, 0 otherwise.
func (s *Scalar) LessOrEqual(scalar internal.Scalar) int {
	sc := assertScalar(scalar)
	return s.s.LessOrEqual(&sc.s)
}

// IsZero returns whether the scalar is 0.
func (s *Scalar) IsZero() bool {
	return s.s.IsZero() == 1
}

func (s *Scalar) set(scalar *Scalar) *Scalar {
	*s = *scalar
	return s
}

// Set sets the receiver to the value of the argument, and returns the receiver.
func (s *Scalar) Set(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		s.s.zero()
		return s
	}

	sc, ok := scalar.(*Scalar)
	if !ok {
		panic(internal.ErrCastScalar)
	}

	return s.set(sc)
}

// SetInt sets s to the value of i, reduced modulo the group order.
func (s *Scalar) SetInt(i *big.Int) error {
	if i == nil {
		return internal.ErrParamNilScalar
	}

	b := i.Bytes()

	rev := make([]byte, len(b))
	for idx, v := range b {
		rev[len(b)-1-idx] = v
	}

	s.s = scalarFromBytesReduced(rev)

	return nil
}

// Copy returns a copy of the receiver.
func (s *Scalar) Copy() internal.Scalar {
	return &Scalar{s: s.s}
}

// Encode returns the 32-byte little-endian encoding of the scalar.
func (s *Scalar) Encode() []byte {
	b := s.s.Bytes()
	return b[:]
}

// Decode sets the receiver to a decoding of the input data, and returns an
// error on failure. Out-of-range input is still decoded to its reduced
// value, per the scalar decode contract.
func (s *Scalar) Decode(data []byte) error {
	if len(data) != canonicalEncodingLength {
		return internal.ErrParamScalarLength
	}

	var b [32]byte
	copy(b[:], data)

	sc, ok := decodeScalar(&b)
	s.s = sc

	if !ok {
		return internal.ErrParamScalarInvalidEncoding
	}

	return nil
}

// MarshalBinary returns the 32-byte little-endian encoding of the scalar.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	return s.Encode(), nil
}

// UnmarshalBinary sets s to the decoding of the byte encoded scalar.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	return s.Decode(data)
}
