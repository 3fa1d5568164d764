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
	"strings"
	"testing"
)

func TestComposeRejectsBitDepthMismatch(t *testing.T) {
	a, err := NewFullLUT3D(U8, U10, nil, Default, 5)
	if err != nil {
		t.Fatalf("NewFullLUT3D failed: %v", err)
	}
	b, err := NewFullLUT3D(U12, U16, nil, Default, 5)
	if err != nil {
		t.Fatalf("NewFullLUT3D failed: %v", err)
	}

	err = Compose(a, b)
	if err == nil {
		t.Fatal("Compose should fail on bit-depth mismatch")
	}
	if !strings.Contains(err.Error(), "bit depth mismatch") {
		t.Errorf("error %q does not mention 'bit depth mismatch'", err.Error())
	}
}

// Closed-form fixture: composing two identity LUT3Ds, reusing A's (larger)
// grid as the sampling domain, must yield an identity LUT3D.
func TestComposeIdentityReuseLargerGrid(t *testing.T) {
	a, err := NewFullLUT3D(U8, U10, &MetadataNode{Name: "a"}, Default, 5)
	if err != nil {
		t.Fatalf("NewFullLUT3D failed: %v", err)
	}
	b, err := NewFullLUT3D(U10, U12, &MetadataNode{Name: "b"}, Default, 3)
	if err != nil {
		t.Fatalf("NewFullLUT3D failed: %v", err)
	}

	if err := Compose(a, b); err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if a.Length() != 5 {
		t.Errorf("Length() = %d, want 5", a.Length())
	}
	if a.BitDepthIn() != U8 || a.BitDepthOut() != U12 {
		t.Errorf("bit depths = (%v, %v), want (U8, U12)", a.BitDepthIn(), a.BitDepthOut())
	}
	if !a.IsIdentity() {
		t.Error("composing two identity LUTs should yield an identity LUT")
	}
	if a.Metadata().Name != "a + b" {
		t.Errorf("Metadata().Name = %q, want %q", a.Metadata().Name, "a + b")
	}
}

// Closed-form fixture: composing two identity LUT3Ds where B's grid is
// larger forces a resample of A onto a fresh domain; still identity.
func TestComposeIdentityResampleThroughA(t *testing.T) {
	a, err := NewFullLUT3D(U8, U10, &MetadataNode{Name: "a"}, Default, 3)
	if err != nil {
		t.Fatalf("NewFullLUT3D failed: %v", err)
	}
	b, err := NewFullLUT3D(U10, U12, &MetadataNode{Name: "b"}, Default, 5)
	if err != nil {
		t.Fatalf("NewFullLUT3D failed: %v", err)
	}

	if err := Compose(a, b); err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if a.Length() != 5 {
		t.Errorf("Length() = %d, want 5", a.Length())
	}
	if a.BitDepthIn() != U8 || a.BitDepthOut() != U12 {
		t.Errorf("bit depths = (%v, %v), want (U8, U12)", a.BitDepthIn(), a.BitDepthOut())
	}
	if !a.IsIdentity() {
		t.Error("composing two identity LUTs should yield an identity LUT")
	}
}

func TestComposeClonesB(t *testing.T) {
	a, err := NewFullLUT3D(U8, U10, nil, Default, 5)
	if err != nil {
		t.Fatalf("NewFullLUT3D failed: %v", err)
	}
	b, err := NewFullLUT3D(U10, U12, nil, Default, 3)
	if err != nil {
		t.Fatalf("NewFullLUT3D failed: %v", err)
	}
	bBefore := b.Clone()

	if err := Compose(a, b); err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if !b.Equal(bBefore) {
		t.Error("Compose must not mutate its caller's b")
	}
}
