// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

// ctEqI32 returns 1 if a == b, 0 otherwise, without branching on a or b.
func ctEqI32(a, b int32) int {
	d := uint32(a) ^ uint32(b)
	neg := -d
	return int(1 - ((d | neg) >> 31))
}

// identityNiels and identityPNiels are the precomputation forms of the
// identity point, used to give a zero scalar digit a neutral (rather than
// degenerate all-zero) table entry during constant-time lookup.
var identityNiels = func() niels {
	p := identityPoint
	return p.toNiels()
}()

var identityPNiels = func() pNiels {
	p := identityPoint
	return p.toPNiels()
}()

// selectPNiels performs a constant-time masked scan over table, returning
// the entry at position absDigit-1 (1-indexed, table holds multiples
// 1..len(table) of some point P), or the identity's pNiels form if
// absDigit is 0. Every entry is touched on every call; the access pattern
// does not depend on absDigit.
func selectPNiels(table []pNiels, absDigit int32) pNiels {
	result := identityPNiels

	for j := 0; j < len(table); j++ {
		mask := ctEqI32(int32(j+1), absDigit)
		result.a.ConditionalAssign(&table[j].a, mask)
		result.b.ConditionalAssign(&table[j].b, mask)
		result.c.ConditionalAssign(&table[j].c, mask)
		result.z2.ConditionalAssign(&table[j].z2, mask)
	}

	return result
}

// selectNiels is the affine-table counterpart of selectPNiels.
func selectNiels(table []niels, absDigit int32) niels {
	result := identityNiels

	for j := 0; j < len(table); j++ {
		mask := ctEqI32(int32(j+1), absDigit)
		result.a.ConditionalAssign(&table[j].a, mask)
		result.b.ConditionalAssign(&table[j].b, mask)
		result.c.ConditionalAssign(&table[j].c, mask)
	}

	return result
}

// SecureZero overwrites buf with zeros. It is a plain loop: Go's compiler
// does not elide writes to memory that is observably reachable (unlike C,
// there is no UB-driven dead-store elimination across a function that could
// still read buf), but callers handling long-lived secret buffers should
// still prefer dropping all references promptly.
func SecureZero(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
