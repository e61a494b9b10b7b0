// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import "sync"

// radix16BaseTableSize is the table width consumed by scalarMultBase's
// signed-radix-16 recoding: one entry per magnitude in [1, 8].
const radix16BaseTableSize = 8

// wnafBaseTableSize is the table width consumed by the width-5 wNAF
// recoding: one entry per odd magnitude in {1, 3, ..., 15}.
const wnafBaseTableSize = 1 << (wnafBaseWidth - 2)

var (
	radix16Once  sync.Once
	radix16Table [radix16BaseTableSize]niels

	wnafOnce  sync.Once
	wnafTable [wnafBaseTableSize]niels
)

// batchAffinize converts points of arbitrary Z into affine (Z == 1) form
// using a single field inversion plus 3*(n-1) multiplications (Montgomery's
// trick), instead of one inversion per point.
func batchAffinize(points []point) []point {
	n := len(points)
	if n == 0 {
		return nil
	}

	prefix := make([]fieldElement, n)
	prefix[0] = points[0].Z

	for i := 1; i < n; i++ {
		prefix[i].Multiply(&prefix[i-1], &points[i].Z)
	}

	var inv fieldElement
	inv.Invert(&prefix[n-1])

	out := make([]point, n)

	for i := n - 1; i >= 0; i-- {
		var zInv fieldElement

		if i == 0 {
			zInv = inv
		} else {
			zInv.Multiply(&inv, &prefix[i-1])
		}

		if i > 0 {
			inv.Multiply(&inv, &points[i].Z)
		}

		out[i].X.Multiply(&points[i].X, &zInv)
		out[i].Y.Multiply(&points[i].Y, &zInv)
		out[i].Z = feOne
		out[i].T.Multiply(&out[i].X, &out[i].Y)
	}

	return out
}

// buildAffineMultiples returns the affine forms of 1*P, 2*P, ..., n*P
// (radix16 scheme) or, when odd is true, 1*P, 3*P, ..., (2n-1)*P (wNAF
// scheme), batch-inverted together.
func buildAffineMultiples(p *point, n int, odd bool) []niels {
	raw := make([]point, n)
	acc := *p
	raw[0] = acc

	var step point
	if odd {
		step.Double(p)
	} else {
		step = *p
	}

	for i := 1; i < n; i++ {
		acc.Add(&acc, &step)
		raw[i] = acc
	}

	affine := batchAffinize(raw)

	table := make([]niels, n)
	for i, a := range affine {
		a := a
		table[i] = a.toNiels()
	}

	return table
}

// baseNielsTable returns the precomputed, affinized table of
// 1*base, 2*base, ..., 8*base, built once.
func baseNielsTable() []niels {
	radix16Once.Do(func() {
		table := buildAffineMultiples(&basePoint, radix16BaseTableSize, false)
		copy(radix16Table[:], table)
	})

	return radix16Table[:]
}

// baseWNAFNielsTable returns the precomputed, affinized table of
// 1*base, 3*base, ..., 15*base, built once.
func baseWNAFNielsTable() []niels {
	wnafOnce.Do(func() {
		table := buildAffineMultiples(&basePoint, wnafBaseTableSize, true)
		copy(wnafTable[:], table)
	})

	return wnafTable[:]
}
