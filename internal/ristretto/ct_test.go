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

func TestCtEqI32(t *testing.T) {
	assert.Equal(t, 1, ctEqI32(5, 5))
	assert.Equal(t, 0, ctEqI32(5, 6))
	assert.Equal(t, 1, ctEqI32(0, 0))
	assert.Equal(t, 0, ctEqI32(-1, 1))
	assert.Equal(t, 1, ctEqI32(-7, -7))
}

func TestSelectPNiels_ZeroReturnsIdentity(t *testing.T) {
	var base point
	base.SetBase()
	table := buildPNielsTable(&base, 8)

	entry := selectPNiels(table, 0)

	var acc point
	acc.Identity()
	acc.AddPNiels(&acc, &entry)

	assert.Equal(t, 1, acc.Equal(&identityPoint))
}

func TestSelectPNiels_PicksRequestedMultiple(t *testing.T) {
	var base, triple point
	base.SetBase()
	triple.Add(&base, &base)
	triple.Add(&triple, &base)

	table := buildPNielsTable(&base, 8)
	entry := selectPNiels(table, 3)

	var acc point
	acc.Identity()
	acc.AddPNiels(&acc, &entry)

	assert.Equal(t, 1, acc.Equal(&triple))
}

func TestSelectNiels_ZeroReturnsIdentity(t *testing.T) {
	table := baseNielsTable()
	entry := selectNiels(table, 0)

	var acc point
	acc.Identity()
	acc.AddNiels(&acc, &entry)

	assert.Equal(t, 1, acc.Equal(&identityPoint))
}

func TestSecureZero(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	SecureZero(buf)

	for _, b := range buf {
		assert.Equal(t, byte(0), b)
	}
}
