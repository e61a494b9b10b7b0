// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessagePack_RoundTrip(t *testing.T) {
	testString := "this string will be encoded and decoded again"

	enc, err := MessagePack.Encode(testString)
	assert.NoError(t, err)

	var decoded string
	dec, err := MessagePack.Decode(enc, &decoded)
	assert.NoError(t, err)

	s, ok := dec.(*string)
	assert.True(t, ok)
	assert.Equal(t, testString, *s)
}

func TestMessagePack_Available(t *testing.T) {
	assert.NoError(t, MessagePack.Available())
}
