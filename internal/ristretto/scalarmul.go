// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import "math/big"

// signedRadix16 recodes a little-endian 32-byte scalar into 64 signed
// nibbles in [-8, 7] (for a scalar below l the last digit is in [0, 2]),
// such that scalar = sum_i e[i]*16^i. Standard ref10-style recoding.
func signedRadix16(b [32]byte) [64]int8 {
	var e [64]int8

	for i := 0; i < 32; i++ {
		e[2*i] = int8(b[i] & 15)
		e[2*i+1] = int8((b[i] >> 4) & 15)
	}

	var carry int8
	for i := 0; i < 63; i++ {
		e[i] += carry
		carry = (e[i] + 8) >> 4
		e[i] -= carry << 4
	}

	e[63] += carry

	return e
}

// buildPNielsTable returns the pNiels forms of 1*P, 2*P, ..., n*P.
func buildPNielsTable(p *point, n int) []pNiels {
	table := make([]pNiels, n)

	acc := *p
	pNielsOne := acc.toPNiels()
	table[0] = pNielsOne

	for i := 1; i < n; i++ {
		acc.AddPNiels(&acc, &pNielsOne)
		table[i] = acc.toPNiels()
	}

	return table
}

// buildOddPNielsTable returns the pNiels forms of 1*P, 3*P, ..., (2*n-1)*P,
// the odd-multiples table consumed by wNAF-recoded digit streams.
func buildOddPNielsTable(p *point, n int) []pNiels {
	table := make([]pNiels, n)

	acc := *p
	table[0] = acc.toPNiels()

	var double point
	double.Double(p)
	doubleNiels := double.toPNiels()

	for i := 1; i < n; i++ {
		acc.AddPNiels(&acc, &doubleNiels)
		table[i] = acc.toPNiels()
	}

	return table
}

// scalarMultCT computes s*P for secret s via the constant-time signed
// 4-bit windowed method: a masked table lookup selects the magnitude and a
// conditional negation applies the sign, so no branch or memory access
// depends on a digit's value.
func scalarMultCT(s *scalar255, p *point) point {
	digits := signedRadix16(s.Bytes())
	table := buildPNielsTable(p, 8)

	var acc point
	acc.Identity()

	for i := 63; i >= 0; i-- {
		if i != 63 {
			acc.Double(&acc)
			acc.Double(&acc)
			acc.Double(&acc)
			acc.Double(&acc)
		}

		d32 := int32(digits[i])
		signMask := d32 >> 31
		absD := (d32 ^ signMask) - signMask
		signBit := int(signMask & 1)

		entry := selectPNiels(table, absD)

		negated := pNielsNegate(&entry)
		entry.a.ConditionalAssign(&negated.a, signBit)
		entry.b.ConditionalAssign(&negated.b, signBit)
		entry.c.ConditionalAssign(&negated.c, signBit)

		acc.AddPNiels(&acc, &entry)
	}

	return acc
}

// scalarMultBase computes s*basePoint for secret s, reading from the
// shared precomputed affine table instead of rebuilding it per call.
func scalarMultBase(s *scalar255) point {
	table := baseNielsTable()
	digits := signedRadix16(s.Bytes())

	var acc point
	acc.Identity()

	for i := 63; i >= 0; i-- {
		if i != 63 {
			acc.Double(&acc)
			acc.Double(&acc)
			acc.Double(&acc)
			acc.Double(&acc)
		}

		d32 := int32(digits[i])
		signMask := d32 >> 31
		absD := (d32 ^ signMask) - signMask
		signBit := int(signMask & 1)

		entry := selectNiels(table, absD)

		negated := nielsNegate(&entry)
		entry.a.ConditionalAssign(&negated.a, signBit)
		entry.b.ConditionalAssign(&negated.b, signBit)
		entry.c.ConditionalAssign(&negated.c, signBit)

		acc.AddNiels(&acc, &entry)
	}

	return acc
}

// doubleScalarMultCT computes s1*P + s2*Q for secret s1, s2. It runs two
// separate constant-time scalarMultCT passes and adds the results; the two
// windowed accumulations are not interleaved, so no doublings are shared.
func doubleScalarMultCT(s1 *scalar255, p *point, s2 *scalar255, q *point) point {
	var r point
	r.Add(scalarMultCTPtr(s1, p), scalarMultCTPtr(s2, q))

	return r
}

func scalarMultCTPtr(s *scalar255, p *point) *point {
	r := scalarMultCT(s, p)
	return &r
}

// scalarToBigInt interprets the little-endian encoding of s as a
// (non-secret, public) big.Int, for use only on the variable-time
// verification path.
func scalarToBigInt(s *scalar255) *big.Int {
	b := s.Bytes()

	rev := make([]byte, len(b))
	for i, v := range b {
		rev[len(b)-1-i] = v
	}

	return new(big.Int).SetBytes(rev)
}

// wnaf computes the width-w non-adjacent form of a public scalar value.
// This recoding is only ever applied to scalars that are already public
// (signature verification inputs), so using math/big here leaks no secret.
func wnaf(n *big.Int, w uint) []int32 {
	k := new(big.Int).Set(n)

	width := new(big.Int).Lsh(big.NewInt(1), w)
	half := int64(1) << (w - 1)

	var digits []int32

	zero := big.NewInt(0)
	for k.Cmp(zero) > 0 {
		var digit int32

		if k.Bit(0) == 1 {
			mod := new(big.Int).Mod(k, width)
			d := mod.Int64()

			if d >= half {
				d -= int64(1) << w
			}

			digit = int32(d)
			k.Sub(k, big.NewInt(d))
		}

		digits = append(digits, digit)
		k.Rsh(k, 1)
	}

	return digits
}

const (
	wnafBaseWidth = 5
	wnafVarWidth  = 3
)

// VarTimeDoubleScalarBaseMult computes s1*base + s2*P for public scalars
// s1, s2, via interleaved wNAF. It is explicitly NOT constant-time: its
// running time depends on the bit pattern of s1 and s2, which is
// acceptable because signature verification scalars are public.
func VarTimeDoubleScalarBaseMult(s1 *scalar255, s2 *scalar255, p *point) point {
	baseDigits := wnaf(scalarToBigInt(s1), wnafBaseWidth)
	varDigits := wnaf(scalarToBigInt(s2), wnafVarWidth)

	baseTable := baseWNAFNielsTable()
	varTable := buildOddPNielsTable(p, 1<<(wnafVarWidth-2))

	maxLen := len(baseDigits)
	if len(varDigits) > maxLen {
		maxLen = len(varDigits)
	}

	var acc point
	acc.Identity()

	for i := maxLen - 1; i >= 0; i-- {
		acc.Double(&acc)

		if i < len(baseDigits) && baseDigits[i] != 0 {
			d := baseDigits[i]
			abs := d
			if abs < 0 {
				abs = -abs
			}

			idx := (abs - 1) / 2
			n := baseTable[idx]

			if d > 0 {
				acc.AddNiels(&acc, &n)
			} else {
				acc.SubNiels(&acc, &n)
			}
		}

		if i < len(varDigits) && varDigits[i] != 0 {
			d := varDigits[i]
			abs := d
			if abs < 0 {
				abs = -abs
			}

			idx := (abs - 1) / 2
			n := varTable[idx]

			if d > 0 {
				acc.AddPNiels(&acc, &n)
			} else {
				acc.SubPNiels(&acc, &n)
			}
		}
	}

	return acc
}
