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

import "testing"

func TestParseRedFastestFixture(t *testing.T) {
	values, err := parseRedFastestFixture(identityFixtureText)
	if err != nil {
		t.Fatalf("parseRedFastestFixture failed: %v", err)
	}
	want := 3 * 5 * 5 * 5
	if len(values) != want {
		t.Fatalf("len(values) = %d, want %d", len(values), want)
	}
}

func TestParseRedFastestFixtureRejectsGarbage(t *testing.T) {
	if _, err := parseRedFastestFixture("not a number"); err == nil {
		t.Fatal("expected a parse error")
	}
}
