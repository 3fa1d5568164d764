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
	"log/slog"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Config holds the tunable constants this package otherwise defaults:
// the fast-inverse builder's grid size, the maximum supported edge
// length, and the identity-detection tolerance. The zero value is not
// useful; use DefaultConfig or LoadConfig.
type Config struct {
	FastInverseGridSize int     `koanf:"fast_inverse_grid_size"`
	MaxSupportedLength  int     `koanf:"max_supported_length"`
	IdentityTolerance   float64 `koanf:"identity_tolerance"`
}

// DefaultConfig returns the spec-mandated defaults: a fast-inverse grid
// size of 48, a maximum supported edge length of 129, and an identity
// tolerance of 1e-4.
func DefaultConfig() Config {
	return Config{
		FastInverseGridSize: DefaultFastInverseGridSize,
		MaxSupportedLength:  MaxSupportedLength,
		IdentityTolerance:   IdentityTolerance,
	}
}

// LoadConfig reads an optional TOML file at path, overlaying it onto
// DefaultConfig. A missing file is not an error: the library runs with
// zero configuration, as is the case throughout the pack's koanf usage.
// A present but malformed file is reported, wrapped with the file path.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no lut3d config file found, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "loading config file %q", path)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, errors.Wrapf(err, "unmarshalling config file %q", path)
	}

	slog.Info("loaded lut3d config",
		"fast_inverse_grid_size", cfg.FastInverseGridSize,
		"max_supported_length", cfg.MaxSupportedLength,
		"identity_tolerance", cfg.IdentityTolerance,
	)
	return cfg, nil
}

// MakeFastLUT3DFromInverse builds a fast inverse on cfg.FastInverseGridSize
// instead of DefaultFastInverseGridSize. It is the config-driven
// counterpart to the package-level MakeFastLUT3DFromInverse.
func (cfg Config) MakeFastLUT3DFromInverse(lInv *LUT3D) (*LUT3D, error) {
	return makeFastLUT3DFromInverse(lInv, cfg.FastInverseGridSize)
}

// Resize sets a's edge length, honouring cfg.MaxSupportedLength instead
// of the package default bound.
func (cfg Config) Resize(a *SampleArray, l int) error {
	return a.resize(l, cfg.MaxSupportedLength)
}

// Validate checks l against cfg.MaxSupportedLength instead of the
// package default bound.
func (cfg Config) Validate(l *LUT3D) error {
	return l.validate(cfg.MaxSupportedLength)
}

// IsIdentity reports whether l's stored array is the identity fill for
// bd_out, using cfg.IdentityTolerance instead of the package default.
func (cfg Config) IsIdentity(l *LUT3D) bool {
	return l.array.isIdentity(l.bdOut, cfg.IdentityTolerance)
}
