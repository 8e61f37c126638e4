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

package job

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/effect"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor"
	"seehuhn.de/go/annotensor/tensor"
)

// AnnotationError reports the annotation which stopped a job.
type AnnotationError struct {
	Index   int
	Encoder string
	Err     error
}

func (err *AnnotationError) Error() string {
	return fmt.Sprintf("annotation %d (%s): %v", err.Index, err.Encoder, err.Err)
}

func (err *AnnotationError) Unwrap() error {
	return err.Err
}

// Run encodes all annotations, in order, into a new tensor.
// The first failing annotation stops the job; the error is an
// [*AnnotationError].
func (j *Job) Run() (*tensor.Tensor, error) {
	dst, err := j.NewTensor()
	if err != nil {
		return nil, err
	}
	if err := j.RunInto(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// RunInto encodes all annotations, in order, into dst.
// On failure, the annotations before the failing one have been written.
func (j *Job) RunInto(dst *tensor.Tensor) error {
	log := annotensor.Logger()
	for i, a := range j.Annotations {
		enc, ok := annotensor.New(a.Encoder)
		if !ok {
			return &AnnotationError{Index: i, Encoder: a.Encoder,
				Err: fmt.Errorf("%w: unknown encoder", ErrInvalidJob)}
		}

		g, src, err := a.geometry(j.dir)
		if err != nil {
			return &AnnotationError{Index: i, Encoder: a.Encoder, Err: err}
		}

		cfg := a.Config
		if cfg.OutHeight == 0 && cfg.OutWidth == 0 {
			cfg.OutHeight = dst.Height()
			cfg.OutWidth = dst.Width()
		}

		err = enc.Encode(g, src, dst, cfg)
		if err != nil {
			return &AnnotationError{Index: i, Encoder: a.Encoder, Err: err}
		}
		log.Debug("encoded annotation",
			slog.Int("index", i),
			slog.String("encoder", a.Encoder),
			slog.String("kind", g.Kind().String()))
	}
	return nil
}

// geometry converts the geometry fields of a into an annotation.
func (a *Annotation) geometry(dir string) (annotensor.Geometry, annotensor.SourceSize, error) {
	var res []annotensor.Geometry
	if a.Points != nil {
		res = append(res, annotensor.Points(toVec(a.Points)))
	}
	if a.Polyline != nil {
		res = append(res, annotensor.Polyline(toVec(a.Polyline)))
	}
	if a.Path != nil {
		p, err := toPath(a.Path)
		if err != nil {
			return nil, a.Source, err
		}
		res = append(res, annotensor.Path{Data: p})
	}
	if a.Pixels != nil {
		pixels := make(annotensor.PixelSet, len(a.Pixels))
		for i, px := range a.Pixels {
			pixels[i] = annotensor.Pixel{X: px[0], Y: px[1]}
		}
		res = append(res, pixels)
	}
	if a.Polygon != nil {
		poly := make(annotensor.Polygon, len(a.Polygon))
		for i, ring := range a.Polygon {
			poly[i] = toVec(ring)
		}
		res = append(res, poly)
	}

	src := a.Source
	if a.Image != nil {
		img, size, err := a.Image.load(dir)
		if err != nil {
			return nil, src, err
		}
		if size != (annotensor.SourceSize{}) {
			if src != (annotensor.SourceSize{}) && src != size {
				return nil, src, fmt.Errorf("%w: image is %dx%d, source size is %dx%d",
					ErrInvalidJob, size.Width, size.Height, src.Width, src.Height)
			}
			src = size
		}
		res = append(res, img)
	}

	switch len(res) {
	case 0:
		return nil, src, fmt.Errorf("%w: no geometry", ErrInvalidJob)
	case 1:
		return res[0], src, nil
	default:
		return nil, src, fmt.Errorf("%w: %d geometries in one annotation", ErrInvalidJob, len(res))
	}
}

func toVec(pts [][2]float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return res
}

// toPath builds path data from a list of segments.
func toPath(segs []Segment) (*path.Data, error) {
	p := &path.Data{}
	open := false
	for i, seg := range segs {
		var want int
		switch seg.Cmd {
		case "M":
			want = 1
		case "L":
			want = 1
		case "Q":
			want = 2
		case "C":
			want = 3
		case "Z":
			want = 0
		default:
			return nil, fmt.Errorf("%w: path segment %d: unknown command %q", ErrInvalidJob, i, seg.Cmd)
		}
		if len(seg.Pts) != want {
			return nil, fmt.Errorf("%w: path segment %d: %s needs %d points, got %d",
				ErrInvalidJob, i, seg.Cmd, want, len(seg.Pts))
		}
		if seg.Cmd != "M" && !open {
			return nil, fmt.Errorf("%w: path segment %d: %s without current point",
				ErrInvalidJob, i, seg.Cmd)
		}

		pts := toVec(seg.Pts)
		switch seg.Cmd {
		case "M":
			p = p.MoveTo(pts[0])
			open = true
		case "L":
			p = p.LineTo(pts[0])
		case "Q":
			p = p.QuadTo(pts[0], pts[1])
		case "C":
			p = p.CubeTo(pts[0], pts[1], pts[2])
		case "Z":
			p = p.Close()
		}
	}
	return p, nil
}

// load returns the image and, for image files, its size.
func (d *ImageData) load(dir string) (annotensor.Image, annotensor.SourceSize, error) {
	if d.File == "" {
		return annotensor.Image{Pix: d.Pix, Float: d.Float, Channels: d.Channels}, annotensor.SourceSize{}, nil
	}
	if d.Pix != nil || d.Float != nil {
		return annotensor.Image{}, annotensor.SourceSize{},
			fmt.Errorf("%w: image has both a file and inline data", ErrInvalidJob)
	}

	name := d.File
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	fd, err := os.Open(name)
	if err != nil {
		return annotensor.Image{}, annotensor.SourceSize{}, err
	}
	defer fd.Close()
	src, _, err := image.Decode(fd)
	if err != nil {
		return annotensor.Image{}, annotensor.SourceSize{}, fmt.Errorf("%s: %w", d.File, err)
	}

	img, size := FromImage(src, d.Gray)
	return img, size, nil
}

// FromImage converts a decoded image into interleaved 8-bit data.
// Colours are premultiplied by alpha, so transparent areas become black.
// If gray is set, the ITU-R BT.601 luma is used.
func FromImage(src image.Image, gray bool) (annotensor.Image, annotensor.SourceSize) {
	rgba := clone.AsRGBA(src)
	b := rgba.Bounds()
	size := annotensor.SourceSize{Width: b.Dx(), Height: b.Dy()}

	channels := 3
	if gray {
		channels = 1
		rgba = effect.GrayscaleWithWeights(rgba, 0.299, 0.587, 0.114)
	}
	pix := make([]uint8, 0, channels*size.Width*size.Height)
	for y := range size.Height {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*size.Width]
		for x := range size.Width {
			if gray {
				pix = append(pix, row[4*x])
			} else {
				pix = append(pix, row[4*x], row[4*x+1], row[4*x+2])
			}
		}
	}
	return annotensor.Image{Pix: pix, Channels: channels}, size
}
