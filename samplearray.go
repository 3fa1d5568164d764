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

import "math"

// MaxSupportedLength is the largest edge length a SampleArray or LUT3D
// may have.
const MaxSupportedLength = 129

// IdentityTolerance is the absolute per-channel tolerance used by
// IsIdentity.
const IdentityTolerance = 1e-4

// SampleArray is a dense, row-major 3D grid of RGB triples with edge
// length L, holding L³ nodes of 3 floats each. Addressing follows the
// "blue fastest among samples, channels fastest overall" convention: the
// value for node (i, j, k) occupies Values[3*(i*L*L+j*L+k)+c] for channel
// c in {0,1,2}.
type SampleArray struct {
	L      int
	Values []float64 // len 3*L*L*L
}

// NewSampleArray allocates an identity-filled array of edge length l at
// output bit depth bdOut.
func NewSampleArray(l int, bdOut BitDepth) (*SampleArray, error) {
	a := &SampleArray{}
	if err := a.Resize(l); err != nil {
		return nil, err
	}
	a.FillIdentity(bdOut)
	return a, nil
}

// Resize sets the edge length to l and reinitialises storage. It fails,
// leaving the array unchanged, if l is out of range; length is validated
// before storage is touched so a failed Resize never partially mutates
// the array.
func (a *SampleArray) Resize(l int) error {
	return a.resize(l, MaxSupportedLength)
}

func (a *SampleArray) resize(l, maxLength int) error {
	if l < 2 || l > maxLength {
		return newValidationError(BadGridSize, "length %d must not be greater than %d (and at least 2)", l, maxLength)
	}
	a.L = l
	a.Values = make([]float64, 3*l*l*l)
	return nil
}

// index returns the offset of channel 0 of node (i, j, k).
func (a *SampleArray) index(i, j, k int) int {
	return 3 * (i*a.L*a.L + j*a.L + k)
}

// Get returns the RGB triple stored at grid node (i, j, k).
func (a *SampleArray) Get(i, j, k int) [3]float64 {
	off := a.index(i, j, k)
	return [3]float64{a.Values[off], a.Values[off+1], a.Values[off+2]}
}

// Set stores rgb at grid node (i, j, k).
func (a *SampleArray) Set(i, j, k int, rgb [3]float64) {
	off := a.index(i, j, k)
	a.Values[off] = rgb[0]
	a.Values[off+1] = rgb[1]
	a.Values[off+2] = rgb[2]
}

// FillIdentity overwrites every entry with the identity ramp for bdOut:
// node (i, j, k) becomes (i*s, j*s, k*s) with s = M(bdOut)/(L-1).
func (a *SampleArray) FillIdentity(bdOut BitDepth) {
	if a.L < 2 {
		return
	}
	step := bdOut.MaxValue() / float64(a.L-1)
	for i := 0; i < a.L; i++ {
		for j := 0; j < a.L; j++ {
			for k := 0; k < a.L; k++ {
				a.Set(i, j, k, [3]float64{float64(i) * step, float64(j) * step, float64(k) * step})
			}
		}
	}
}

// IsIdentity reports whether every entry matches FillIdentity(bdOut)
// within IdentityTolerance.
func (a *SampleArray) IsIdentity(bdOut BitDepth) bool {
	return a.isIdentity(bdOut, IdentityTolerance)
}

func (a *SampleArray) isIdentity(bdOut BitDepth, tolerance float64) bool {
	if a.L < 2 {
		return true
	}
	step := bdOut.MaxValue() / float64(a.L-1)
	for i := 0; i < a.L; i++ {
		for j := 0; j < a.L; j++ {
			for k := 0; k < a.L; k++ {
				want := [3]float64{float64(i) * step, float64(j) * step, float64(k) * step}
				got := a.Get(i, j, k)
				for c := 0; c < 3; c++ {
					if math.Abs(got[c]-want[c]) > tolerance {
						return false
					}
				}
			}
		}
	}
	return true
}

// Scale multiplies every stored float by k. A factor of exactly 1.0 is a
// no-op.
func (a *SampleArray) Scale(k float64) {
	if k == 1.0 {
		return
	}
	for i := range a.Values {
		a.Values[i] *= k
	}
}

// Equal reports whether a and other hold identical sample data.
func (a *SampleArray) Equal(other *SampleArray) bool {
	if a.L != other.L || len(a.Values) != len(other.Values) {
		return false
	}
	for i := range a.Values {
		if a.Values[i] != other.Values[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of a.
func (a *SampleArray) Clone() *SampleArray {
	clone := &SampleArray{L: a.L, Values: make([]float64, len(a.Values))}
	copy(clone.Values, a.Values)
	return clone
}
