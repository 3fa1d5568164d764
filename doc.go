// github.com/ocio-go/lut3d - 3D colour lookup table composition
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package lut3d implements the numeric core of a 3D colour lookup table
// (LUT3D) operator: a dense RGB sample grid, bit-depth-tagged identity
// and rescale semantics, direction inversion, structural equality and a
// content-addressable cache ID, and — the hard part — functional
// composition of two LUT3Ds into one, including a fast-inverse builder
// that resamples an inverse LUT through an exact renderer to produce an
// equivalent forward LUT on a denser grid.
//
// # Building and mutating LUT3Ds
//
// Use [NewLUT3D] for an identity LUT3D at the default bit depths, or
// [NewFullLUT3D] when the bit depths, interpolation and metadata are
// known up front:
//
//	l, err := lut3d.NewLUT3D(33)
//	l.SetOutputBitDepth(lut3d.U16)
//
// # Composing two LUT3Ds
//
// [Compose] replaces two sequential forward LUT3Ds with one equivalent
// LUT3D, sampled on whichever of the two grids is larger:
//
//	err := lut3d.Compose(a, b) // a becomes "first a then b"
//
// # Fast inverse
//
// [MakeFastLUT3DFromInverse] turns an inverse-direction LUT3D into an
// equivalent forward LUT3D on a fixed 48³ grid, for callers that need a
// fast approximate inverse rather than an exact per-sample inversion:
//
//	fwd, err := lut3d.MakeFastLUT3DFromInverse(inv)
package lut3d
