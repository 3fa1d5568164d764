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
	_ "embed"
	"strconv"
	"strings"
)

// identityFixtureText holds a tiny, human-editable L=5 identity LUT in
// "one RGB triple per line, red fastest" order, used by tests exercising
// SetArrayFromRedFastest without hand-writing 375 literals inline.
//
//go:embed testdata/identity5_red_fastest.txt
var identityFixtureText string

// parseRedFastestFixture parses identityFixtureText (or any file in the
// same format) into a flat slice suitable for SetArrayFromRedFastest.
func parseRedFastestFixture(text string) ([]float64, error) {
	fields := strings.Fields(text)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
