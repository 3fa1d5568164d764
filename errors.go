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

import "fmt"

// Kind identifies one of the error conditions the core can report.
type Kind int

// Error kinds reported by this package.
const (
	// BadGridSize indicates an edge length greater than [MaxSupportedLength]
	// at construction or resize.
	BadGridSize Kind = iota
	// BadInterpolation indicates an interpolation value outside the set
	// valid for a LUT3D.
	BadInterpolation
	// BadChannelCount indicates a sample array with a channel count other
	// than 3.
	BadChannelCount
	// BitDepthMismatch indicates that Compose's precondition
	// (a.bd_out == b.bd_in) failed.
	BitDepthMismatch
	// WrongDirection indicates that MakeFastLUT3DFromInverse was called
	// with a forward-direction LUT3D.
	WrongDirection
	// LengthMismatch indicates that SetArrayFromRedFastest received a
	// slice of the wrong length.
	LengthMismatch
)

func (k Kind) String() string {
	switch k {
	case BadGridSize:
		return "bad grid size"
	case BadInterpolation:
		return "bad interpolation"
	case BadChannelCount:
		return "bad channel count"
	case BitDepthMismatch:
		return "bit depth mismatch"
	case WrongDirection:
		return "wrong direction"
	case LengthMismatch:
		return "length mismatch"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ValidationError reports a failed precondition or invariant check. The
// Kind field can be compared directly or matched with [errors.Is] against
// the sentinel values in this package ([ErrBadGridSize] and friends).
type ValidationError struct {
	Kind   Kind
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("lut3d: %s", e.Kind)
	}
	return fmt.Sprintf("lut3d: %s: %s", e.Kind, e.Detail)
}

// Is reports whether target is a sentinel for the same Kind, so that
// errors.Is(err, lut3d.ErrBitDepthMismatch) works without callers needing
// to type-assert *ValidationError themselves.
func (e *ValidationError) Is(target error) bool {
	sentinel, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return sentinel.Kind == e.Kind && sentinel.Detail == ""
}

func newValidationError(kind Kind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Sentinel errors, one per [Kind], for use with errors.Is.
var (
	ErrBadGridSize      = &ValidationError{Kind: BadGridSize}
	ErrBadInterpolation = &ValidationError{Kind: BadInterpolation}
	ErrBadChannelCount  = &ValidationError{Kind: BadChannelCount}
	ErrBitDepthMismatch = &ValidationError{Kind: BitDepthMismatch}
	ErrWrongDirection   = &ValidationError{Kind: WrongDirection}
	ErrLengthMismatch   = &ValidationError{Kind: LengthMismatch}
)
