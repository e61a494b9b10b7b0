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

func TestEddsaEncodeDecode_BaseRoundTrip(t *testing.T) {
	var base point
	base.SetBase()

	enc := eddsaEncode(&base)

	decoded, err := eddsaDecode(enc[:])
	assert.NoError(t, err)
	assert.Equal(t, 1, decoded.Equal(&base))
}

func TestEddsaEncodeDecode_DoubledBaseRoundTrip(t *testing.T) {
	var base, doubled point
	base.SetBase()
	doubled.Double(&base)

	enc := eddsaEncode(&doubled)

	decoded, err := eddsaDecode(enc[:])
	assert.NoError(t, err)
	assert.Equal(t, 1, decoded.Equal(&doubled))
}

func TestEddsaDecode_RejectsWrongLength(t *testing.T) {
	_, err := eddsaDecode(make([]byte, 31))
	assert.Error(t, err)
}

func TestElement_EncodeEdDSA_ProducesCanonicalLength(t *testing.T) {
	e := new(Element).Base().(*Element)

	out := e.EncodeEdDSA()
	assert.Len(t, out, canonicalEncodingLength)
}

// EncodeEdDSA multiplies by 4 and DecodeEdDSA by 2, so the round trip is not
// the identity: it scales the original element by the cofactor, 8.
func TestElement_EncodeEdDSA_DecodeEdDSA_ScalesByCofactor(t *testing.T) {
	e := new(Element).Base().(*Element)

	enc := e.EncodeEdDSA()

	decoded := new(Element)
	err := decoded.DecodeEdDSA(enc)
	assert.NoError(t, err)

	eight := scalar255{8, 0, 0, 0}
	expected := scalarMultCT(&eight, &e.p)

	assert.Equal(t, 1, decoded.p.Equal(&expected))
}
