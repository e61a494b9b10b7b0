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

func TestElement_EncodeDecodeRoundTrip(t *testing.T) {
	e := new(Element).Base()

	enc := e.(*Element).Encode()

	back := new(Element)
	assert.NoError(t, back.Decode(enc))
	assert.Equal(t, 1, back.Equal(e))
}

func TestElement_HexDecodeHexRoundTrip(t *testing.T) {
	e := new(Element).Base()

	h := e.(*Element).Hex()

	back := new(Element)
	assert.NoError(t, back.DecodeHex(h))
	assert.Equal(t, 1, back.Equal(e))
}

func TestElement_DecodeRejectsWrongLength(t *testing.T) {
	e := new(Element)
	assert.Error(t, e.Decode(make([]byte, 31)))
	assert.Error(t, e.Decode(make([]byte, 33)))
}

func TestElement_AddSubtractRoundTrip(t *testing.T) {
	base := new(Element).Base().(*Element)
	double := new(Element).Base().(*Element)
	double.Add(base)

	back := new(Element)
	back.Set(double)
	back.Subtract(base)

	assert.Equal(t, 1, back.Equal(base))
}

func TestElement_IdentityIsIdentity(t *testing.T) {
	e := new(Element).Identity()
	assert.True(t, e.(*Element).IsIdentity())
}

func TestElement_CopyIsIndependent(t *testing.T) {
	base := new(Element).Base().(*Element)
	cp := base.Copy().(*Element)

	cp.Double()

	assert.Equal(t, 0, cp.Equal(base))
}

func TestElement_MarshalUnmarshalBinary(t *testing.T) {
	base := new(Element).Base().(*Element)

	data, err := base.MarshalBinary()
	assert.NoError(t, err)

	back := new(Element)
	assert.NoError(t, back.UnmarshalBinary(data))
	assert.Equal(t, 1, back.Equal(base))
}
