// seehuhn.de/go/annotensor - rasterise annotations into tensors
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

package annotensor

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/annotensor/raster"
	"seehuhn.de/go/annotensor/tensor"
)

// These errors are returned, possibly wrapped, by the encoders.
var (
	// ErrInvalidArgument indicates an unsupported mode, channel count,
	// geometry type or write region.
	ErrInvalidArgument = errors.New("annotensor: invalid argument")

	// ErrSizeMismatch indicates raw image data whose length does not match
	// the declared size.
	ErrSizeMismatch = errors.New("annotensor: size mismatch")
)

// RasterMode selects how geometry is turned into cell values.
type RasterMode int

// These are the available modes.
const (
	// Binary sets covered cells to 1.
	Binary RasterMode = iota

	// Heatmap draws Gaussian densities, combined using max.
	Heatmap

	// Distance is reserved. No encoder supports it.
	Distance

	// Raw copies values without rasterisation. Only used by the
	// image encoder.
	Raw
)

var modeNames = [...]string{"binary", "heatmap", "distance", "raw"}

func (m RasterMode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("RasterMode(%d)", int(m))
}

// ParseRasterMode converts a mode name, as returned by String, to a
// RasterMode. Case is ignored.
func ParseRasterMode(s string) (RasterMode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return RasterMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown raster mode %q", ErrInvalidArgument, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (m RasterMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *RasterMode) UnmarshalText(text []byte) error {
	mode, err := ParseRasterMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Config describes where and how an encoder writes.
// Config values are copied into each call; encoders never modify them.
type Config struct {
	// TargetChannel is the first output channel to write.
	TargetChannel int `json:"channel" yaml:"channel" toml:"channel"`

	// TargetBatch is the batch slot to write.
	TargetBatch int `json:"batch" yaml:"batch" toml:"batch"`

	// OutHeight and OutWidth give the size of the written region.
	// The tensor must be at least this large.
	OutHeight int `json:"height" yaml:"height" toml:"height"`
	OutWidth  int `json:"width" yaml:"width" toml:"width"`

	Mode RasterMode `json:"mode" yaml:"mode" toml:"mode"`

	// GaussianSigma is the standard deviation of the Gaussian kernel in
	// output cells. Only used in Heatmap mode, where it must be positive.
	GaussianSigma float64 `json:"sigma,omitempty" yaml:"sigma,omitempty" toml:"sigma,omitempty"`

	// Normalize requests division of 8-bit image intensities by 255.
	Normalize bool `json:"normalize,omitempty" yaml:"normalize,omitempty" toml:"normalize,omitempty"`
}

// Region returns the part of the tensor written by an encoder which
// writes n consecutive channels.
func (c Config) Region(n int) tensor.Region {
	return tensor.Region{
		Batch:    c.TargetBatch,
		Channel:  c.TargetChannel,
		Channels: n,
		Height:   c.OutHeight,
		Width:    c.OutWidth,
	}
}

// rasterizer returns a Rasterizer clipped to the output region.
func (c Config) rasterizer() *raster.Rasterizer {
	r := raster.Window(c.OutWidth, c.OutHeight)
	r.Sigma = c.GaussianSigma
	return r
}
