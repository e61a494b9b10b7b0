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

// TestScalarMultCT_OrderMinusOneTimesBasePlusBaseIsIdentity exercises
// TESTABLE PROPERTY S4: (l-1)*B + B == l*B == identity, for B the base
// point generating the prime-order subgroup.
func TestScalarMultCT_OrderMinusOneTimesBasePlusBaseIsIdentity(t *testing.T) {
	lMinus1 := scalar255{scalarL[0] - 1, scalarL[1], scalarL[2], scalarL[3]}

	var base point
	base.SetBase()

	acc := scalarMultCT(&lMinus1, &base)
	acc.Add(&acc, &base)

	assert.Equal(t, 1, acc.Equal(&identityPoint))
}

func TestScalarMultCT_ByZeroIsIdentity(t *testing.T) {
	var base point
	base.SetBase()

	acc := scalarMultCT(&scalarZero, &base)

	assert.Equal(t, 1, acc.Equal(&identityPoint))
}

func TestScalarMultCT_ByOneIsUnchanged(t *testing.T) {
	var base point
	base.SetBase()

	acc := scalarMultCT(&scalarOne, &base)

	assert.Equal(t, 1, acc.Equal(&base))
}

func TestScalarMultBase_AgreesWithScalarMultCTOnBase(t *testing.T) {
	s := scalar255{12345, 6789, 0, 0}

	var base point
	base.SetBase()

	viaBase := scalarMultBase(&s)
	viaCT := scalarMultCT(&s, &base)

	assert.Equal(t, 1, viaBase.Equal(&viaCT))
}

func TestScalarMultCT_IsAdditiveOverScalars(t *testing.T) {
	a := scalar255{7, 0, 0, 0}
	b := scalar255{11, 0, 0, 0}

	var sum scalar255
	sum.Add(&a, &b)

	var base point
	base.SetBase()

	left := scalarMultCT(&sum, &base)

	pa := scalarMultCT(&a, &base)
	pb := scalarMultCT(&b, &base)

	var right point
	right.Add(&pa, &pb)

	assert.Equal(t, 1, left.Equal(&right))
}

func TestDoubleScalarMultCT_MatchesSeparateMultiplications(t *testing.T) {
	s1 := scalar255{3, 0, 0, 0}
	s2 := scalar255{5, 0, 0, 0}

	var base, other point
	base.SetBase()
	other.Double(&base)

	got := doubleScalarMultCT(&s1, &base, &s2, &other)

	p1 := scalarMultCT(&s1, &base)
	p2 := scalarMultCT(&s2, &other)

	var want point
	want.Add(&p1, &p2)

	assert.Equal(t, 1, got.Equal(&want))
}

func TestVarTimeDoubleScalarBaseMult_AgreesWithScalarMultBase(t *testing.T) {
	s1 := scalar255{999, 0, 0, 0}

	var base point
	base.SetBase()

	got := VarTimeDoubleScalarBaseMult(&s1, &scalarZero, &base)
	want := scalarMultBase(&s1)

	assert.Equal(t, 1, got.Equal(&want))
}

func TestVarTimeDoubleScalarBaseMult_AgreesWithDoubleScalarMultCT(t *testing.T) {
	s1 := scalar255{17, 0, 0, 0}
	s2 := scalar255{23, 0, 0, 0}

	var base, other point
	base.SetBase()
	other.Double(&base)

	got := VarTimeDoubleScalarBaseMult(&s1, &s2, &other)
	want := doubleScalarMultCT(&s1, &base, &s2, &other)

	assert.Equal(t, 1, got.Equal(&want))
}
