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

func TestPoint_IdentityIsAdditiveIdentity(t *testing.T) {
	var base, sum point
	base.SetBase()

	sum.Add(&base, &identityPoint)

	assert.Equal(t, 1, sum.Equal(&base))
}

func TestPoint_AddMatchesDouble(t *testing.T) {
	var base, viaAdd, viaDouble point
	base.SetBase()

	viaAdd.Add(&base, &base)
	viaDouble.Double(&base)

	assert.Equal(t, 1, viaAdd.Equal(&viaDouble))
}

func TestPoint_SubtractUndoesAdd(t *testing.T) {
	var base, sum, back point
	base.SetBase()

	sum.Add(&base, &base)
	back.Subtract(&sum, &base)

	assert.Equal(t, 1, back.Equal(&base))
}

func TestPoint_NegateThenAddIsIdentity(t *testing.T) {
	var base, neg, sum point
	base.SetBase()
	neg.Negate(&base)

	sum.Add(&base, &neg)

	assert.Equal(t, 1, sum.Equal(&identityPoint))
}

func TestPoint_NielsAddMatchesPointAdd(t *testing.T) {
	var base, double point
	base.SetBase()
	double.Double(&base)

	n := base.toNiels()

	var viaNiels point
	viaNiels.AddNiels(&base, &n)

	assert.Equal(t, 1, viaNiels.Equal(&double))
}

func TestPoint_PNielsAddMatchesPointAdd(t *testing.T) {
	var base, double point
	base.SetBase()
	double.Double(&base)

	n := base.toPNiels()

	var viaPNiels point
	viaPNiels.AddPNiels(&base, &n)

	assert.Equal(t, 1, viaPNiels.Equal(&double))
}

func TestPoint_BaseAndIdentityAreValid(t *testing.T) {
	var base point
	base.SetBase()

	assert.True(t, base.valid())
	assert.True(t, identityPoint.valid())
}

// TestPoint_TorqueIsRistrettoEqualButCoordinatesDiffer exercises TESTABLE
// PROPERTY S6: the 4-torsion generator moves a point's (X, Y, Z, T)
// coordinates but not its Ristretto-equivalence class.
func TestPoint_TorqueIsRistrettoEqualButCoordinatesDiffer(t *testing.T) {
	var p, q point
	p.SetBase()
	q.Torque(&p)

	assert.Equal(t, 1, p.Equal(&q))
	assert.NotEqual(t, p, q)

	pEnc := p.encode()
	qEnc := q.encode()
	assert.Equal(t, pEnc, qEnc)
}
