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
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
)

// LUT3D wraps a SampleArray with tagged input/output bit depths, an
// interpolation selector, a direction, an inversion-quality hint, and
// format metadata. See package doc for construction and composition.
//
// A LUT3D is mutable during construction and conventionally frozen
// (from the caller's perspective) once Finalize has been called.
// Concurrent readers of a finalized LUT3D are safe; concurrent writers
// are not. Finalize itself is safe to call concurrently.
type LUT3D struct {
	array *SampleArray

	bdIn       BitDepth
	bdOut      BitDepth
	interp     Interpolation
	dir        Direction
	invQuality InversionQuality
	metadata   *MetadataNode

	mu      sync.Mutex
	cacheID string
}

// NewLUT3D creates an identity-filled forward LUT3D of edge length l
// with bd_in = bd_out = F32, Default interpolation and Fast inversion
// quality.
func NewLUT3D(l int) (*LUT3D, error) {
	return NewFullLUT3D(F32, F32, nil, Default, l)
}

// NewFullLUT3D creates a forward, identity-filled LUT3D with the given
// bit depths, metadata, interpolation and edge length.
func NewFullLUT3D(bdIn, bdOut BitDepth, md *MetadataNode, interp Interpolation, l int) (*LUT3D, error) {
	array, err := NewSampleArray(l, bdOut)
	if err != nil {
		return nil, err
	}
	return &LUT3D{
		array:      array,
		bdIn:       bdIn,
		bdOut:      bdOut,
		interp:     interp,
		dir:        Forward,
		invQuality: Fast,
		metadata:   md,
	}, nil
}

// Length returns the edge length of the underlying sample array.
func (l *LUT3D) Length() int { return l.array.L }

// Array returns the underlying sample array for direct read/write access.
func (l *LUT3D) Array() *SampleArray { return l.array }

// BitDepthIn returns the stored input bit depth.
func (l *LUT3D) BitDepthIn() BitDepth { return l.bdIn }

// BitDepthOut returns the stored output bit depth.
func (l *LUT3D) BitDepthOut() BitDepth { return l.bdOut }

// Interp returns the stored (possibly abstract) interpolation selector.
func (l *LUT3D) Interp() Interpolation { return l.interp }

// ConcreteInterpolation resolves Best/Tetrahedral to Tetrahedral and
// everything else valid to Linear.
//
// Nearest concretising to Linear (rather than running a true
// nearest-neighbour sampler) is intentional, not a placeholder: it
// matches documented upstream behaviour that downstream callers may
// depend on.
func (l *LUT3D) ConcreteInterpolation() Interpolation { return l.interp.Concrete() }

// InversionQuality returns the stored inversion-quality hint.
func (l *LUT3D) InversionQuality() InversionQuality { return l.invQuality }

// ConcreteInversionQuality resolves Exact/Best to Exact and
// Fast/Default to Fast.
func (l *LUT3D) ConcreteInversionQuality() InversionQuality { return l.invQuality.Concrete() }

// Dir returns the evaluation direction.
func (l *LUT3D) Dir() Direction { return l.dir }

// Metadata returns the LUT3D's format metadata tree, or nil.
func (l *LUT3D) Metadata() *MetadataNode { return l.metadata }

// SetInterpolation stores i verbatim; no validation is performed here,
// Validate rejects unsupported values.
func (l *LUT3D) SetInterpolation(i Interpolation) { l.interp = i }

// SetInversionQuality stores q verbatim.
func (l *LUT3D) SetInversionQuality(q InversionQuality) { l.invQuality = q }

// SetInputBitDepth updates bd_in. If the LUT3D is currently in the
// Inverse direction, the stored array is rescaled by M(d)/M(bd_in)
// first, because for an inverse LUT the array still holds samples in
// the original forward output space.
func (l *LUT3D) SetInputBitDepth(d BitDepth) {
	if l.dir == Inverse {
		l.array.Scale(d.MaxValue() / l.bdIn.MaxValue())
	}
	l.bdIn = d
}

// SetOutputBitDepth updates bd_out. If the LUT3D is currently Forward,
// the stored array is rescaled by M(d)/M(bd_out) first.
func (l *LUT3D) SetOutputBitDepth(d BitDepth) {
	if l.dir == Forward {
		l.array.Scale(d.MaxValue() / l.bdOut.MaxValue())
	}
	l.bdOut = d
}

// Validate checks that the LUT3D's interpolation, channel count and
// grid size are all within bounds.
func (l *LUT3D) Validate() error {
	return l.validate(MaxSupportedLength)
}

func (l *LUT3D) validate(maxLength int) error {
	if !l.interp.validForLUT3D() {
		return newValidationError(BadInterpolation, "%s is not valid for a LUT3D", l.interp)
	}
	if l.array == nil || l.array.L < 2 {
		return newValidationError(BadChannelCount, "channel count must be 3")
	}
	if l.array.L > maxLength {
		return newValidationError(BadGridSize, "length %d must not be greater than %d", l.array.L, maxLength)
	}
	return nil
}

// IsNoOp always returns false: a 3D LUT clamps to its domain, so it is
// never equivalent to an identity pass-through operation in general.
func (l *LUT3D) IsNoOp() bool { return false }

// HasChannelCrosstalk always returns true: a 3D LUT's output channels
// each depend on all three input channels.
func (l *LUT3D) HasChannelCrosstalk() bool { return true }

// IsIdentity reports whether the stored array is the identity fill for
// bd_out.
func (l *LUT3D) IsIdentity() bool { return l.array.isIdentity(l.bdOut, IdentityTolerance) }

// Clone returns a deep copy of l, including metadata and cache ID.
func (l *LUT3D) Clone() *LUT3D {
	return &LUT3D{
		array:      l.array.Clone(),
		bdIn:       l.bdIn,
		bdOut:      l.bdOut,
		interp:     l.interp,
		dir:        l.dir,
		invQuality: l.invQuality,
		metadata:   l.metadata.Clone(),
		cacheID:    l.cacheID,
	}
}

// Inverse returns a clone of l with direction flipped and bd_in/bd_out
// swapped. The stored array is not rescaled.
func (l *LUT3D) Inverse() *LUT3D {
	inv := l.Clone()
	if inv.dir == Forward {
		inv.dir = Inverse
	} else {
		inv.dir = Forward
	}
	inv.bdIn, inv.bdOut = inv.bdOut, inv.bdIn
	inv.cacheID = ""
	return inv
}

// Equal reports whether l and other have the same direction,
// interpolation, bit depths and array contents. Inversion quality and
// metadata are deliberately excluded.
func (l *LUT3D) Equal(other *LUT3D) bool {
	if other == nil {
		return false
	}
	return l.dir == other.dir &&
		l.interp == other.interp &&
		l.bdIn == other.bdIn &&
		l.bdOut == other.bdOut &&
		l.array.Equal(other.array)
}

// IsInverse reports whether l and other are equivalent forward/inverse
// pairs of the same LUT. Exactly one of l, other must be Forward and
// the other Inverse; arrays are compared after harmonising bit depths,
// using exact float equality (no tolerance) — floating-point-equivalent
// inverses that differ in their last bit are rejected by design.
func (l *LUT3D) IsInverse(other *LUT3D) bool {
	if other == nil || l.dir == other.dir {
		return false
	}

	var fwd, inv *LUT3D
	if l.dir == Forward {
		fwd, inv = l, other
	} else {
		fwd, inv = other, l
	}

	if fwd.bdOut.MaxValue() == inv.bdIn.MaxValue() {
		return fwd.array.Equal(inv.array)
	}

	if len(fwd.array.Values) != len(inv.array.Values) {
		return false
	}

	harmonised := fwd.Clone()
	harmonised.SetOutputBitDepth(inv.bdIn)
	return harmonised.array.Equal(inv.array)
}

// Finalize validates the LUT3D and computes its cache ID: an MD5 hash
// of the raw sample buffer (each value packed as a big-endian 4-byte
// float32), followed by the interpolation, direction, input bit depth
// and output bit depth names, space separated. Inversion quality is
// deliberately excluded, matching Equal. Finalize is safe to call
// concurrently; all callers converge on the same cache ID.
func (l *LUT3D) Finalize() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cacheID != "" {
		return nil
	}
	if err := l.Validate(); err != nil {
		return err
	}

	buf := make([]byte, 4*len(l.array.Values))
	for i, v := range l.array.Values {
		binary.BigEndian.PutUint32(buf[i*4:], math.Float32bits(float32(v)))
	}
	sum := md5.Sum(buf)

	l.cacheID = fmt.Sprintf("%x %s %s %s %s", sum, l.interp, l.dir, l.bdIn, l.bdOut)
	return nil
}

// CacheID returns the cache ID computed by Finalize, or "" if Finalize
// has not been called yet.
func (l *LUT3D) CacheID() string { return l.cacheID }

// SetArrayFromRedFastest repacks v — which must hold 3*L³ values laid
// out with red varying fastest among samples (a common file-format
// convention) — into this LUT3D's blue-fastest storage order.
func (l *LUT3D) SetArrayFromRedFastest(v []float64) error {
	n := l.array.L
	want := 3 * n * n * n
	if len(v) != want {
		return newValidationError(LengthMismatch, "got %d values, want %d", len(v), want)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				srcOff := 3 * (k*n*n + j*n + i)
				l.array.Set(i, j, k, [3]float64{v[srcOff], v[srcOff+1], v[srcOff+2]})
			}
		}
	}
	return nil
}

// IdentityReplacement returns the range op an identity LUT3D may be
// replaced with during pipeline optimisation: a clip of [0, M(bd_in)]
// into [0, M(bd_out)].
func (l *LUT3D) IdentityReplacement() *rangeOp {
	return &rangeOp{
		inLow: 0, inHigh: l.bdIn.MaxValue(),
		outLow: 0, outHigh: l.bdOut.MaxValue(),
	}
}

// evalAt evaluates the LUT3D at a domain coordinate normalised to
// [0, 1] per axis, using the concrete interpolation style. The stored
// array always holds the forward function's samples; when the LUT3D's direction is Inverse, evalAt numerically inverts
// that forward mapping instead of reading the array as if it were the
// inverse's own samples.
func (l *LUT3D) evalAt(rgb [3]float64) [3]float64 {
	tetrahedral := l.ConcreteInterpolation() == Tetrahedral

	if l.dir == Inverse {
		scaleIn := l.bdIn.MaxValue()
		target := [3]float64{rgb[0] * scaleIn, rgb[1] * scaleIn, rgb[2] * scaleIn}
		exact := l.ConcreteInversionQuality() == Exact
		tolerance := scaleIn * 1e-4
		domain := invert3D(l.array.Values, l.array.L, tetrahedral, exact, tolerance, target)
		scaleOut := l.bdOut.MaxValue()
		return [3]float64{domain[0] * scaleOut, domain[1] * scaleOut, domain[2] * scaleOut}
	}

	if tetrahedral {
		return tetrahedralInterp3D(l.array.Values, l.array.L, rgb[0], rgb[1], rgb[2])
	}
	return trilinearInterp3D(l.array.Values, l.array.L, rgb[0], rgb[1], rgb[2])
}
