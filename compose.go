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

package lut3d

// Compose collapses two forward LUT3Ds, "first a then b", into one and
// stores the result in a. b is read-only; Compose clones it before use
// so the op pipeline does not share ownership with the caller's b.
//
// a.bd_out must equal b.bd_in, otherwise Compose fails with a
// BitDepthMismatch error and a is left unmodified.
//
// Composition is lossy: resampling one grid through the other can only
// approximate the true composite function. The larger of the two edge
// lengths is kept as the sampling domain to bound that loss; a future
// whole-chain sizing pass (propagating the largest edge length across
// an entire pipeline rather than pairwise) is a natural extension but
// out of scope here.
func Compose(a, b *LUT3D) error {
	if a.bdOut != b.bdIn {
		return newValidationError(BitDepthMismatch, "a.bd_out (%s) does not match b.bd_in (%s)", a.bdOut, b.bdIn)
	}

	bClone := b.Clone()

	n, m := a.array.L, bClone.array.L

	var domain *SampleArray
	pipe := make(pipeline, 0, 3)

	if n >= m {
		domain = a.array
		pipe = append(pipe, &scaleOp{factor: 1.0 / a.bdOut.MaxValue()})
	} else {
		d, err := NewFullLUT3D(a.bdIn, F32, a.metadata, a.interp, m)
		if err != nil {
			return err
		}
		domain = d.array
		pipe = append(pipe, &lut3dStage{lut: a})
	}

	pipe = append(pipe, &lut3dStage{lut: bClone})
	pipe = append(pipe, &scaleOp{factor: bClone.bdOut.MaxValue()})

	lPrime := domain.L
	result, err := NewFullLUT3D(a.bdIn, bClone.bdOut, MergeMetadata(a.metadata, bClone.metadata), a.interp, lPrime)
	if err != nil {
		return err
	}

	for i := 0; i < lPrime; i++ {
		for j := 0; j < lPrime; j++ {
			for k := 0; k < lPrime; k++ {
				rgb := domain.Get(i, j, k)
				result.array.Set(i, j, k, pipe.Apply(rgb))
			}
		}
	}

	a.array = result.array
	a.bdIn = result.bdIn
	a.bdOut = result.bdOut
	a.interp = result.interp
	a.metadata = result.metadata
	a.cacheID = ""
	return nil
}
