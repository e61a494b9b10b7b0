// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarWrap_ZeroOneRoundTrip(t *testing.T) {
	s := new(Scalar).Zero()
	assert.True(t, s.(*Scalar).IsZero())

	s.(*Scalar).One()
	assert.False(t, s.(*Scalar).IsZero())
}

func TestScalarWrap_RandomIsNonZero(t *testing.T) {
	s := new(Scalar).Random()
	assert.False(t, s.(*Scalar).IsZero())
}

func TestScalarWrap_EncodeDecodeRoundTrip(t *testing.T) {
	s := new(Scalar).Random().(*Scalar)

	enc := s.Encode()

	back := new(Scalar)
	assert.NoError(t, back.Decode(enc))
	assert.Equal(t, 1, back.Equal(s))
}

func TestScalarWrap_DecodeRejectsWrongLength(t *testing.T) {
	s := new(Scalar)
	assert.Error(t, s.Decode(make([]byte, 31)))
}

func TestScalarWrap_SetIntRoundTrip(t *testing.T) {
	s := new(Scalar)
	assert.NoError(t, s.SetInt(big.NewInt(12345)))

	want := new(Scalar)
	want.s = scalar255{12345, 0, 0, 0}

	assert.Equal(t, 1, s.Equal(want))
}

func TestScalarWrap_InvertRoundTrip(t *testing.T) {
	s := new(Scalar)
	s.s = scalar255{42, 0, 0, 0}

	inv := s.Copy().(*Scalar)
	inv.Invert()

	product := s.Copy().(*Scalar)
	product.Multiply(inv)

	assert.False(t, product.IsZero())
	assert.Equal(t, 1, product.s.Equal(&scalarOne))
}

func TestScalarWrap_MarshalUnmarshalBinary(t *testing.T) {
	s := new(Scalar).Random().(*Scalar)

	data, err := s.MarshalBinary()
	assert.NoError(t, err)

	back := new(Scalar)
	assert.NoError(t, back.UnmarshalBinary(data))
	assert.Equal(t, 1, back.Equal(s))
}
