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

// DefaultFastInverseGridSize is the edge length MakeFastLUT3DFromInverse
// uses unless overridden through a Config. 48 is a deliberate
// accuracy/latency trade-off: large enough to keep error small for
// typical image pipelines, small enough to finish in interactive time.
const DefaultFastInverseGridSize = 48

// MakeFastLUT3DFromInverse builds a forward LUT3D on a fixed grid that
// approximates the inverse of lInv, a LUT3D whose stored direction is
// Inverse. It fails with WrongDirection if lInv is not Inverse.
func MakeFastLUT3DFromInverse(lInv *LUT3D) (*LUT3D, error) {
	return makeFastLUT3DFromInverse(lInv, DefaultFastInverseGridSize)
}

func makeFastLUT3DFromInverse(lInv *LUT3D, gridSize int) (*LUT3D, error) {
	if lInv.dir != Inverse {
		return nil, newValidationError(WrongDirection, "make_fast_lut3d_from_inverse requires an Inverse LUT3D, got %s", lInv.dir)
	}

	restore := withOverride(lInv.InversionQuality, lInv.SetInversionQuality, Exact)
	defer restore()

	d, err := NewFullLUT3D(lInv.bdIn, lInv.bdIn, nil, lInv.interp, gridSize)
	if err != nil {
		return nil, err
	}

	if err := Compose(d, lInv); err != nil {
		return nil, err
	}
	return d, nil
}

// withOverride sets value via set, after recording the current value
// via get, and returns a function that restores the recorded value.
// It is the scoped-mutation helper used wherever a shared parameter
// must be temporarily overridden and restored on every exit path, such
// as the inversion-style toggle above.
func withOverride[T any](get func() T, set func(T), value T) func() {
	prev := get()
	set(value)
	return func() { set(prev) }
}
