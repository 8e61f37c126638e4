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

// Names of the registered encoders.
const (
	ImageEncoderName = "ImageEncoder"
	PointEncoderName = "Point2DEncoder"
	MaskEncoderName  = "Mask2DEncoder"
	LineEncoderName  = "Line2DEncoder"
)

var registry = []struct {
	name string
	make func() Encoder
}{
	{ImageEncoderName, func() Encoder { return &ImageEncoder{} }},
	{PointEncoderName, func() Encoder { return &PointEncoder{} }},
	{MaskEncoderName, func() Encoder { return &MaskEncoder{} }},
	{LineEncoderName, func() Encoder { return &LineEncoder{} }},
}

// New returns a new encoder with the given name. The second return value
// is false if no encoder of this name exists.
func New(name string) (Encoder, bool) {
	for _, entry := range registry {
		if entry.name == name {
			return entry.make(), true
		}
	}
	return nil, false
}

// Names returns the names of all encoders, in a fixed order.
func Names() []string {
	names := make([]string, len(registry))
	for i, entry := range registry {
		names[i] = entry.name
	}
	return names
}
