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

func TestBatchAffinize_PreservesPointsAndSetsZToOne(t *testing.T) {
	var base, double, triple point
	base.SetBase()
	double.Double(&base)
	triple.Add(&double, &base)

	in := []point{base, double, triple}
	out := batchAffinize(in)

	assert.Len(t, out, 3)

	for i, p := range out {
		assert.Equal(t, 1, p.Z.Equal(&feOne))
		assert.Equal(t, 1, p.Equal(&in[i]))
	}
}

func TestBatchAffinize_EmptyInput(t *testing.T) {
	out := batchAffinize(nil)
	assert.Nil(t, out)
}

func TestBaseNielsTable_FirstEntryMatchesBase(t *testing.T) {
	table := baseNielsTable()
	assert.Len(t, table, radix16BaseTableSize)

	var fromNiels, base point
	base.SetBase()
	fromNiels.Identity()
	fromNiels.AddNiels(&fromNiels, &table[0])

	assert.Equal(t, 1, fromNiels.Equal(&base))
}

func TestBaseWNAFNielsTable_FirstEntryMatchesBase(t *testing.T) {
	table := baseWNAFNielsTable()
	assert.Len(t, table, wnafBaseTableSize)

	var fromNiels, base point
	base.SetBase()
	fromNiels.Identity()
	fromNiels.AddNiels(&fromNiels, &table[0])

	assert.Equal(t, 1, fromNiels.Equal(&base))
}
