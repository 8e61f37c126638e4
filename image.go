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
	"fmt"
	"log/slog"
	"math"

	"seehuhn.de/go/annotensor/raster"
	"seehuhn.de/go/annotensor/tensor"
)

// ImageEncoder copies raster images with one or three channels into a
// tensor, resampling them to the output size.
//
// The mode in the configuration is ignored; images are always copied as
// raw values.
type ImageEncoder struct{}

// Name returns "ImageEncoder".
func (*ImageEncoder) Name() string { return ImageEncoderName }

// Kind returns KindImage.
func (*ImageEncoder) Kind() Kind { return KindImage }

// Encode implements the [Encoder] interface. The geometry must be
// an [Image].
func (e *ImageEncoder) Encode(g Geometry, src SourceSize, dst *tensor.Tensor, cfg Config) error {
	img, ok := g.(Image)
	if !ok {
		return wrongGeometry(e, g)
	}
	return e.EncodeImage(img, src, dst, cfg)
}

// EncodeImage writes img, of size src, into dst.
//
// The number of channels written depends on the room left in the tensor
// after cfg.TargetChannel. A single-channel image is repeated into three
// channels if there is room for three. Otherwise as many image channels
// as fit are written, and the remaining ones are dropped.
//
// For uint8 tensors the values are copied unchanged, apart from bilinear
// resampling when the image size differs from the output size. For
// float32 tensors, uint8 images are divided by 255 if cfg.Normalize is
// set. Float images are divided by their maximum whenever it exceeds 1.
func (e *ImageEncoder) EncodeImage(img Image, src SourceSize, dst *tensor.Tensor, cfg Config) error {
	if img.Channels != 1 && img.Channels != 3 {
		return fmt.Errorf("%w: %s: image has %d channels, want 1 or 3",
			ErrInvalidArgument, e.Name(), img.Channels)
	}
	if src.Width <= 0 || src.Height <= 0 {
		return fmt.Errorf("%w: %s: invalid source size %dx%d",
			ErrInvalidArgument, e.Name(), src.Width, src.Height)
	}
	if want, got := src.Width*src.Height*img.Channels, img.Len(); got != want {
		return fmt.Errorf("%w: %s: expected %d values for %dx%dx%d image, got %d",
			ErrSizeMismatch, e.Name(), want, src.Width, src.Height, img.Channels, got)
	}
	if dst == nil {
		return fmt.Errorf("%w: %s: missing output tensor", ErrInvalidArgument, e.Name())
	}

	available := dst.Channels() - cfg.TargetChannel
	n := min(img.Channels, available)
	broadcast := img.Channels == 1 && available >= 3
	if broadcast {
		n = 3
	}
	if err := checkTarget(e.Name(), src, dst, cfg, max(n, 1)); err != nil {
		return err
	}

	log := Logger()
	if broadcast {
		log.Debug("broadcasting grayscale image", slog.Int("channel", cfg.TargetChannel))
	} else if n < img.Channels {
		log.Debug("truncating image channels",
			slog.Int("have", img.Channels), slog.Int("written", n))
	}

	switch dst.DType() {
	case tensor.Uint8:
		planes := img.bytePlanes(src)
		out := make([]tensor.Plane[uint8], n)
		for i := range out {
			out[i] = dst.BytePlane(cfg.TargetBatch, cfg.TargetChannel+i).Sub(cfg.OutWidth, cfg.OutHeight)
		}
		if broadcast {
			raster.BilinearBytes(out[0], planes[0])
			copyPlanes(out[1:], out[0])
		} else {
			for i := range out {
				raster.BilinearBytes(out[i], planes[i])
			}
		}

	default:
		planes := img.floatPlanes(src, cfg.Normalize)
		out := make([]tensor.Plane[float32], n)
		for i := range out {
			out[i] = dst.Plane(cfg.TargetBatch, cfg.TargetChannel+i).Sub(cfg.OutWidth, cfg.OutHeight)
		}
		if broadcast {
			raster.Bilinear(out[0], planes[0])
			copyPlanes(out[1:], out[0])
		} else {
			for i := range out {
				raster.Bilinear(out[i], planes[i])
			}
		}
	}
	return nil
}

func copyPlanes[T tensor.Elem](dst []tensor.Plane[T], src tensor.Plane[T]) {
	for _, p := range dst {
		for y := range src.Height {
			copy(p.Row(y, p.Width), src.Row(y, src.Width))
		}
	}
}

// floatPlanes splits the image into one float32 plane per channel.
func (img Image) floatPlanes(src SourceSize, normalize bool) []tensor.Plane[float32] {
	planes := make([]tensor.Plane[float32], img.Channels)
	for c := range planes {
		planes[c] = tensor.NewPlane[float32](src.Width, src.Height)
	}

	div := float32(1)
	if img.Float != nil {
		// float data is taken as normalised unless its maximum exceeds 1
		var m float32
		for _, v := range img.Float {
			m = max(m, v)
		}
		if m > 1 {
			div = m
		}
		for i, v := range img.Float {
			planes[i%img.Channels].Pix[i/img.Channels] = v / div
		}
		return planes
	}

	if normalize {
		div = 255
	}
	for i, v := range img.Pix {
		planes[i%img.Channels].Pix[i/img.Channels] = float32(v) / div
	}
	return planes
}

// bytePlanes splits the image into one uint8 plane per channel.
// Float values are rounded and clamped to [0, 255].
func (img Image) bytePlanes(src SourceSize) []tensor.Plane[uint8] {
	planes := make([]tensor.Plane[uint8], img.Channels)
	for c := range planes {
		planes[c] = tensor.NewPlane[uint8](src.Width, src.Height)
	}

	if img.Float != nil {
		for i, v := range img.Float {
			b := uint8(math.Round(float64(min(max(v, 0), 255))))
			planes[i%img.Channels].Pix[i/img.Channels] = b
		}
		return planes
	}
	for i, v := range img.Pix {
		planes[i%img.Channels].Pix[i/img.Channels] = v
	}
	return planes
}
