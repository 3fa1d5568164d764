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

func TestSampleArrayIdentityDetection(t *testing.T) {
	a, err := NewSampleArray(2, U8)
	if err != nil {
		t.Fatalf("NewSampleArray failed: %v", err)
	}
	if !a.IsIdentity(U8) {
		t.Fatal("freshly constructed array should be identity")
	}

	a.Values[0] += 37
	if a.IsIdentity(U8) {
		t.Fatal("mutated array should no longer be identity")
	}
}

func TestSampleArrayResizeRejectsOversize(t *testing.T) {
	a := &SampleArray{}
	if err := a.Resize(129); err != nil {
		t.Errorf("Resize(129) failed: %v", err)
	}
	if a.L != 129 {
		t.Errorf("L = %d, want 129", a.L)
	}

	prevL, prevLen := a.L, len(a.Values)
	err := a.Resize(130)
	if err == nil {
		t.Fatal("Resize(130) should fail")
	}
	if !strings.Contains(err.Error(), "must not be greater") {
		t.Errorf("error %q does not mention 'must not be greater'", err.Error())
	}
	if a.L != prevL || len(a.Values) != prevLen {
		t.Error("failed Resize must not mutate the array")
	}
}

func TestSampleArrayResizeRejectsTooSmall(t *testing.T) {
	a := &SampleArray{}
	if err := a.Resize(1); err == nil {
		t.Fatal("Resize(1) should fail, L must be >= 2")
	}
}

func TestSampleArrayScaleNoOpAtOne(t *testing.T) {
	a, err := NewSampleArray(3, U8)
	if err != nil {
		t.Fatalf("NewSampleArray failed: %v", err)
	}
	before := a.Clone()
	a.Scale(1.0)
	if !a.Equal(before) {
		t.Error("Scale(1.0) must be a no-op")
	}
}

func TestSampleArrayScale(t *testing.T) {
	a, err := NewSampleArray(3, U8)
	if err != nil {
		t.Fatalf("NewSampleArray failed: %v", err)
	}
	a.Scale(2.0)
	want, err := NewSampleArray(3, U8)
	if err != nil {
		t.Fatalf("NewSampleArray failed: %v", err)
	}
	for i := range want.Values {
		want.Values[i] *= 2.0
	}
	if !a.Equal(want) {
		t.Error("Scale(2.0) did not double every entry")
	}
}

func TestSampleArrayGetSet(t *testing.T) {
	a, err := NewSampleArray(4, U8)
	if err != nil {
		t.Fatalf("NewSampleArray failed: %v", err)
	}
	rgb := [3]float64{1, 2, 3}
	a.Set(1, 2, 3, rgb)
	if got := a.Get(1, 2, 3); got != rgb {
		t.Errorf("Get(1,2,3) = %v, want %v", got, rgb)
	}
}

func TestSampleArrayClone(t *testing.T) {
	a, err := NewSampleArray(3, U8)
	if err != nil {
		t.Fatalf("NewSampleArray failed: %v", err)
	}
	clone := a.Clone()
	clone.Values[0] = 999
	if a.Values[0] == 999 {
		t.Error("mutating the clone affected the original")
	}
}
