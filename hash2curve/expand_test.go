// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package hash2curve

import (
	"crypto"
	_ "crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandXMD_OutputHasRequestedLength(t *testing.T) {
	out := ExpandXMD(crypto.SHA512, []byte("input"), []byte("test-dst"), 64)
	assert.Len(t, out, 64)
}

func TestExpandXMD_IsDeterministic(t *testing.T) {
	a := ExpandXMD(crypto.SHA512, []byte("abc"), []byte("test-dst"), 48)
	b := ExpandXMD(crypto.SHA512, []byte("abc"), []byte("test-dst"), 48)

	assert.Equal(t, a, b)
}

func TestExpandXMD_DifferentInputsDiffer(t *testing.T) {
	a := ExpandXMD(crypto.SHA512, []byte("abc"), []byte("test-dst"), 48)
	b := ExpandXMD(crypto.SHA512, []byte("abd"), []byte("test-dst"), 48)

	assert.NotEqual(t, a, b)
}

func TestExpandXMD_DifferentDSTsDiffer(t *testing.T) {
	a := ExpandXMD(crypto.SHA512, []byte("abc"), []byte("dst-one"), 48)
	b := ExpandXMD(crypto.SHA512, []byte("abc"), []byte("dst-two"), 48)

	assert.NotEqual(t, a, b)
}

func TestExpandXMD_PanicsOnZeroLengthDST(t *testing.T) {
	assert.Panics(t, func() {
		ExpandXMD(crypto.SHA512, []byte("abc"), nil, 32)
	})
}

func TestExpandXMD_LongDSTIsHashed(t *testing.T) {
	longDSTValue := make([]byte, 300)
	for i := range longDSTValue {
		longDSTValue[i] = byte(i)
	}

	out := ExpandXMD(crypto.SHA512, []byte("abc"), longDSTValue, 64)
	assert.Len(t, out, 64)
}
