// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalar_AddSubRoundTrip(t *testing.T) {
	a := scalar255{1, 2, 3, 0}
	b := scalar255{9, 8, 7, 0}

	var sum, back scalar255
	sum.Add(&a, &b)
	back.Subtract(&sum, &b)

	assert.Equal(t, 1, back.Equal(&a))
}

func TestScalar_MultiplyByOne(t *testing.T) {
	a := scalar255{123456789, 0, 0, 0}

	var r scalar255
	r.Multiply(&a, &scalarOne)

	assert.Equal(t, 1, r.Equal(&a))
}

func TestScalar_InvertRoundTrip(t *testing.T) {
	a := scalar255{42, 0, 0, 0}

	var inv, product scalar255
	inv.Invert(&a)
	product.Multiply(&a, &inv)

	assert.Equal(t, 1, product.Equal(&scalarOne))
}

func TestScalar_NegateThenAddIsZero(t *testing.T) {
	a := scalar255{99, 1, 0, 0}

	var neg, sum scalar255
	neg.Negate(&a)
	sum.Add(&a, &neg)

	assert.Equal(t, 1, sum.IsZero())
}

func TestScalar_BytesRoundTrip(t *testing.T) {
	a := scalar255{0x1122334455667788, 0x99aabbccddeeff00, 1, 0}

	b := a.Bytes()

	var back scalar255
	back.SetBytes(&b)

	assert.Equal(t, 1, back.Equal(&a))
}

func TestDecodeScalar_AcceptsZeroAndRejectsGreaterOrEqualL(t *testing.T) {
	var zero [32]byte

	s, ok := decodeScalar(&zero)
	assert.True(t, ok)
	assert.Equal(t, 1, s.IsZero())

	// l itself must be rejected: it is scalarL exactly, not < l.
	lVal := scalar255{scalarL[0], scalarL[1], scalarL[2], scalarL[3]}
	lBytes := lVal.Bytes()

	_, ok = decodeScalar(&lBytes)
	assert.False(t, ok)

	// l - 1 must be accepted.
	lMinus1 := scalar255{scalarL[0] - 1, scalarL[1], scalarL[2], scalarL[3]}
	lMinus1Bytes := lMinus1.Bytes()

	decoded, ok := decodeScalar(&lMinus1Bytes)
	assert.True(t, ok)
	assert.Equal(t, 1, decoded.Equal(&lMinus1))
}

func TestScalarFromBytesReduced_SmallValueUnchanged(t *testing.T) {
	var wide [64]byte
	wide[0] = 7

	s := scalarFromBytesReduced(wide[:])

	want := scalar255{7, 0, 0, 0}
	assert.Equal(t, 1, s.Equal(&want))
}

func TestScalarMontMul_AgreesWithRepeatedAddition(t *testing.T) {
	a := scalar255{5, 0, 0, 0}

	var viaMul, viaAdd scalar255
	viaMul.Multiply(&a, &scalar255{3, 0, 0, 0})

	viaAdd.Add(&a, &a)
	viaAdd.Add(&viaAdd, &a)

	assert.Equal(t, 1, viaMul.Equal(&viaAdd))
}

func TestScalar_Halve(t *testing.T) {
	a := scalar255{10, 0, 0, 0}

	var half, doubled scalar255
	half.Halve(&a)
	doubled.Add(&half, &half)

	assert.Equal(t, 1, doubled.Equal(&a))
}

func TestScalar_LessOrEqual(t *testing.T) {
	small := scalar255{1, 0, 0, 0}
	big := scalar255{2, 0, 0, 0}

	assert.Equal(t, 1, small.LessOrEqual(&big))
	assert.Equal(t, 1, small.LessOrEqual(&small))
	assert.Equal(t, 0, big.LessOrEqual(&small))
}
