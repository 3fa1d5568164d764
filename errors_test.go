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

import (
	"errors"
	"testing"
)

func TestValidationErrorIsSentinel(t *testing.T) {
	err := newValidationError(BitDepthMismatch, "a.bd_out (%s) does not match b.bd_in (%s)", U8, U10)
	if !errors.Is(err, ErrBitDepthMismatch) {
		t.Error("errors.Is(err, ErrBitDepthMismatch) = false, want true")
	}
	if errors.Is(err, ErrWrongDirection) {
		t.Error("errors.Is(err, ErrWrongDirection) = true, want false")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := newValidationError(BadGridSize, "length %d must not be greater than %d", 130, MaxSupportedLength)
	want := "lut3d: bad grid size: length 130 must not be greater than 129"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		BadGridSize:      "bad grid size",
		BadInterpolation: "bad interpolation",
		BadChannelCount:  "bad channel count",
		BitDepthMismatch: "bit depth mismatch",
		WrongDirection:   "wrong direction",
		LengthMismatch:   "length mismatch",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
