// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bytemare/crypto/internal"
)

func TestElement_EncodeDecodeRoundTrip(t *testing.T) {
	base := Ristretto255Sha512.Base()

	enc := base.Encode()

	back := Ristretto255Sha512.NewElement()
	assert.NoError(t, back.Decode(enc))
	assert.Equal(t, 1, back.Equal(base))
}

func TestElement_HexDecodeHexRoundTrip(t *testing.T) {
	base := Ristretto255Sha512.Base()

	h := base.Hex()

	back := Ristretto255Sha512.NewElement()
	assert.NoError(t, back.DecodeHex(h))
	assert.Equal(t, 1, back.Equal(base))
}

func TestElement_AddNilIsNoop(t *testing.T) {
	base := Ristretto255Sha512.Base()
	copied := base.Copy()

	copied.Add(nil)

	assert.Equal(t, 1, copied.Equal(base))
}

func TestElement_MultiplyNilIsIdentity(t *testing.T) {
	base := Ristretto255Sha512.Base()
	identity := Ristretto255Sha512.NewElement()

	base.Multiply(nil)

	assert.Equal(t, 1, base.Equal(identity))
}

func TestElement_CopyIsIndependent(t *testing.T) {
	base := Ristretto255Sha512.Base()
	cp := base.Copy()

	cp.Double()

	assert.Equal(t, 0, cp.Equal(base))
}

func TestElement_DecodeErrorIsWrapped(t *testing.T) {
	e := Ristretto255Sha512.NewElement()
	err := e.Decode(make([]byte, 10))
	assert.Error(t, err)
	assert.ErrorIs(t, err, internal.ErrParamInvalidPointEncoding)
}
