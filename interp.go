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

// tetrahedralInterp3D performs tetrahedral interpolation in a 3-channel
// CLUT. r, g, b are grid coordinates normalised to [0, 1]; values holds
// the CLUT samples in the "blue fastest, channels fastest" layout used
// throughout this package.
func tetrahedralInterp3D(values []float64, gridSize int, r, g, b float64) [3]float64 {
	if gridSize < 2 {
		var out [3]float64
		if len(values) >= 3 {
			out[0], out[1], out[2] = values[0], values[1], values[2]
		}
		return out
	}

	// scale to grid coordinates
	scale := float64(gridSize - 1)
	rPos := r * scale
	gPos := g * scale
	bPos := b * scale

	ri := clampIndex(int(rPos), gridSize)
	gi := clampIndex(int(gPos), gridSize)
	bi := clampIndex(int(bPos), gridSize)

	// fractional parts
	fr := clamp(rPos-float64(ri), 0, 1)
	fg := clamp(gPos-float64(gi), 0, 1)
	fb := clamp(bPos-float64(bi), 0, 1)

	// compute base offset for cube corner (ri, gi, bi)
	const stride = 3
	gStride := gridSize * stride
	rStride := gridSize * gStride
	base := ri*rStride + gi*gStride + bi*stride

	// the 8 corners of the cube
	c000 := base
	c001 := base + stride
	c010 := base + gStride
	c011 := base + gStride + stride
	c100 := base + rStride
	c101 := base + rStride + stride
	c110 := base + rStride + gStride
	c111 := base + rStride + gStride + stride

	var out [3]float64

	// select tetrahedron based on which fractional component is largest
	switch {
	case fr > fg && fg > fb:
		// fr > fg > fb
		for i := 0; i < 3; i++ {
			out[i] = (1-fr)*values[c000+i] + (fr-fg)*values[c100+i] + (fg-fb)*values[c110+i] + fb*values[c111+i]
		}
	case fr > fg && fr > fb:
		// fr > fb >= fg
		for i := 0; i < 3; i++ {
			out[i] = (1-fr)*values[c000+i] + (fr-fb)*values[c100+i] + (fb-fg)*values[c101+i] + fg*values[c111+i]
		}
	case fr > fg:
		// fb >= fr > fg
		for i := 0; i < 3; i++ {
			out[i] = (1-fb)*values[c000+i] + (fb-fr)*values[c001+i] + (fr-fg)*values[c101+i] + fg*values[c111+i]
		}
	case fr > fb:
		// fg >= fr > fb
		for i := 0; i < 3; i++ {
			out[i] = (1-fg)*values[c000+i] + (fg-fr)*values[c010+i] + (fr-fb)*values[c110+i] + fb*values[c111+i]
		}
	case fg > fb:
		// fg > fb >= fr
		for i := 0; i < 3; i++ {
			out[i] = (1-fg)*values[c000+i] + (fg-fb)*values[c010+i] + (fb-fr)*values[c011+i] + fr*values[c111+i]
		}
	default:
		// fb >= fg >= fr
		for i := 0; i < 3; i++ {
			out[i] = (1-fb)*values[c000+i] + (fb-fg)*values[c001+i] + (fg-fr)*values[c011+i] + fr*values[c111+i]
		}
	}

	return out
}

// trilinearInterp3D performs ordinary trilinear interpolation in a
// 3-channel CLUT. This is the kernel ConcreteInterpolation()==Linear
// selects; it generalises the teacher's n-dimensional multilinearInterp
// to the fixed 3-channel, 3-dimensional case this package always needs.
func trilinearInterp3D(values []float64, gridSize int, r, g, b float64) [3]float64 {
	if gridSize < 2 {
		var out [3]float64
		if len(values) >= 3 {
			out[0], out[1], out[2] = values[0], values[1], values[2]
		}
		return out
	}

	scale := float64(gridSize - 1)
	rPos, gPos, bPos := r*scale, g*scale, b*scale

	ri := clampIndex(int(rPos), gridSize)
	gi := clampIndex(int(gPos), gridSize)
	bi := clampIndex(int(bPos), gridSize)

	fr := clamp(rPos-float64(ri), 0, 1)
	fg := clamp(gPos-float64(gi), 0, 1)
	fb := clamp(bPos-float64(bi), 0, 1)

	const stride = 3
	gStride := gridSize * stride
	rStride := gridSize * gStride
	base := ri*rStride + gi*gStride + bi*stride

	var out [3]float64
	for dr := 0; dr < 2; dr++ {
		wr := fr
		if dr == 0 {
			wr = 1 - fr
		}
		for dg := 0; dg < 2; dg++ {
			wg := fg
			if dg == 0 {
				wg = 1 - fg
			}
			for db := 0; db < 2; db++ {
				wb := fb
				if db == 0 {
					wb = 1 - fb
				}
				weight := wr * wg * wb
				if weight == 0 {
					continue
				}
				off := base + dr*rStride + dg*gStride + db*stride
				out[0] += weight * values[off]
				out[1] += weight * values[off+1]
				out[2] += weight * values[off+2]
			}
		}
	}
	return out
}

// interpFunc is the kernel signature shared by tetrahedralInterp3D and
// trilinearInterp3D: given the stored grid samples and a domain
// coordinate normalised to [0, 1] per axis, return the interpolated
// output in the samples' own units.
type interpFunc func(values []float64, gridSize int, r, g, b float64) [3]float64

// invert3D numerically inverts the forward mapping sampled in values:
// given a target output triple in the same units as the stored samples,
// it returns the domain coordinate (normalised to [0, 1] per axis) whose
// forward evaluation comes closest to target.
//
// The search follows the same bracket-then-refine shape as
// Curve.invertSampled's binary search plus linear interpolation in the
// 1D case, generalised to three dimensions: nearestGridPoint brackets
// the answer by scanning the stored grid for the forward sample closest
// to target, and — when exact is true — a handful of Newton iterations
// driven by a finite-difference Jacobian refine that bracket to within
// tolerance. exact=false (the Fast inversion quality) returns the
// bracket as-is, trading accuracy for a single grid scan instead of
// several interpolate-and-solve rounds.
func invert3D(values []float64, gridSize int, tetrahedral, exact bool, tolerance float64, target [3]float64) [3]float64 {
	guess := nearestGridPoint(values, gridSize, target)
	if !exact || gridSize < 2 {
		return guess
	}

	eval := trilinearInterp3D
	if tetrahedral {
		eval = tetrahedralInterp3D
	}

	const maxIterations = 8
	const step = 1e-3
	for iter := 0; iter < maxIterations; iter++ {
		out := eval(values, gridSize, guess[0], guess[1], guess[2])
		residual := [3]float64{target[0] - out[0], target[1] - out[1], target[2] - out[2]}
		if math.Abs(residual[0]) < tolerance && math.Abs(residual[1]) < tolerance && math.Abs(residual[2]) < tolerance {
			break
		}

		jac := localJacobian(eval, values, gridSize, guess, out, step)
		delta, ok := solve3x3(jac, residual)
		if !ok {
			break
		}
		for c := 0; c < 3; c++ {
			guess[c] = clamp(guess[c]+delta[c], 0, 1)
		}
	}
	return guess
}

// nearestGridPoint scans every stored grid node and returns the domain
// coordinate (normalised to [0, 1]) of whichever node's forward sample
// is closest to target in Euclidean distance.
func nearestGridPoint(values []float64, gridSize int, target [3]float64) [3]float64 {
	if gridSize < 2 {
		return [3]float64{0, 0, 0}
	}

	const stride = 3
	gStride := gridSize * stride
	rStride := gridSize * gStride

	bestDist := math.Inf(1)
	var bestI, bestJ, bestK int
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			for k := 0; k < gridSize; k++ {
				off := i*rStride + j*gStride + k*stride
				dr := values[off] - target[0]
				dg := values[off+1] - target[1]
				db := values[off+2] - target[2]
				dist := dr*dr + dg*dg + db*db
				if dist < bestDist {
					bestDist = dist
					bestI, bestJ, bestK = i, j, k
				}
			}
		}
	}

	scale := float64(gridSize - 1)
	return [3]float64{float64(bestI) / scale, float64(bestJ) / scale, float64(bestK) / scale}
}

// localJacobian estimates d(output)/d(domain) at "at" by forward
// differences, reusing the already-computed output "base" for the
// unperturbed sample.
func localJacobian(eval interpFunc, values []float64, gridSize int, at, base [3]float64, step float64) [3][3]float64 {
	var jac [3][3]float64
	for c := 0; c < 3; c++ {
		perturbed := at
		perturbed[c] = clamp(at[c]+step, 0, 1)
		dh := perturbed[c] - at[c]
		if dh == 0 {
			perturbed[c] = clamp(at[c]-step, 0, 1)
			dh = perturbed[c] - at[c]
		}
		if dh == 0 {
			continue
		}
		out := eval(values, gridSize, perturbed[0], perturbed[1], perturbed[2])
		for r := 0; r < 3; r++ {
			jac[r][c] = (out[r] - base[r]) / dh
		}
	}
	return jac
}

// solve3x3 solves the linear system a*x = b via Cramer's rule, reporting
// ok=false if a is (numerically) singular.
func solve3x3(a [3][3]float64, b [3]float64) (x [3]float64, ok bool) {
	det := determinant3x3(a)
	if math.Abs(det) < 1e-12 {
		return x, false
	}
	for col := 0; col < 3; col++ {
		m := a
		for row := 0; row < 3; row++ {
			m[row][col] = b[row]
		}
		x[col] = determinant3x3(m) / det
	}
	return x, true
}

func determinant3x3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func clampIndex(idx, gridSize int) int {
	if idx < 0 {
		return 0
	}
	if idx >= gridSize-1 {
		return gridSize - 2
	}
	return idx
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
