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

import "golang.org/x/exp/constraints"

// op is one stage of the miniature pipeline Compose builds. Each op
// consumes and produces an RGB triple; a pipeline is evaluated
// per-sample, left to right, exactly the way applyCLUT chains curve and
// CLUT stages in an ICC LutAToB transform.
type op interface {
	Apply(rgb [3]float64) [3]float64
}

// scaleOp multiplies every channel by factor. Compose uses it to bring
// a LUT's domain or range onto a common numeric scale before resampling.
type scaleOp struct {
	factor float64
}

func (s *scaleOp) Apply(rgb [3]float64) [3]float64 {
	return [3]float64{rgb[0] * s.factor, rgb[1] * s.factor, rgb[2] * s.factor}
}

// rangeOp affinely remaps each channel from [inLow, inHigh] to
// [outLow, outHigh], clamping the input first. It is the op an identity
// LUT3D is replaced with (LUT3D.IdentityReplacement); Compose's pipeline
// uses scaleOp, not rangeOp, for its bit-depth rescales.
type rangeOp struct {
	inLow, inHigh   float64
	outLow, outHigh float64
}

func (r *rangeOp) Apply(rgb [3]float64) [3]float64 {
	span := r.inHigh - r.inLow
	if span == 0 {
		return [3]float64{r.outLow, r.outLow, r.outLow}
	}
	scale := (r.outHigh - r.outLow) / span
	var out [3]float64
	for c := 0; c < 3; c++ {
		v := clampT(rgb[c], r.inLow, r.inHigh)
		out[c] = (v-r.inLow)*scale + r.outLow
	}
	return out
}

// lut3dStage evaluates one LUT3D, dispatching between tetrahedral and
// trilinear interpolation by its concrete interpolation style, the same
// way Lut8.applyCLUT picks a kernel by channel count.
//
// Apply takes a domain coordinate normalised to [0, 1] and returns a
// range value also normalised to [0, 1] — the stage divides the raw,
// bd_out-scaled interpolation result by M(bd_out) so that a chain of
// stages (as Compose builds) stays in normalised units throughout,
// with bit-depth rescaling applied explicitly at the chain's ends via
// scaleOp.
type lut3dStage struct {
	lut *LUT3D
}

func (s *lut3dStage) Apply(rgb [3]float64) [3]float64 {
	out := s.lut.evalAt(rgb)
	m := s.lut.bdOut.MaxValue()
	return [3]float64{out[0] / m, out[1] / m, out[2] / m}
}

// pipeline is an ordered sequence of ops, evaluated left to right.
type pipeline []op

func (p pipeline) Apply(rgb [3]float64) [3]float64 {
	for _, stage := range p {
		rgb = stage.Apply(rgb)
	}
	return rgb
}

// clampT restricts v to [lo, hi].
func clampT[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
