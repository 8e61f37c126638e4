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

// Package job reads annotation jobs from YAML, JSON or TOML files and
// encodes them into a tensor.
package job

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/annotensor"
	"seehuhn.de/go/annotensor/tensor"
)

// ErrInvalidJob is returned, possibly wrapped, for malformed job files.
var ErrInvalidJob = errors.New("job: invalid job")

// Job describes an output tensor and the annotations written into it.
type Job struct {
	Shape       Shape        `json:"shape" yaml:"shape" toml:"shape"`
	DType       string       `json:"dtype,omitempty" yaml:"dtype,omitempty" toml:"dtype,omitempty"`
	Annotations []Annotation `json:"annotations" yaml:"annotations" toml:"annotations"`

	// dir is used to resolve relative image file names.
	dir string
}

// Shape is the shape of the output tensor.
type Shape struct {
	Batch    int `json:"batch" yaml:"batch" toml:"batch"`
	Channels int `json:"channels" yaml:"channels" toml:"channels"`
	Height   int `json:"height" yaml:"height" toml:"height"`
	Width    int `json:"width" yaml:"width" toml:"width"`
}

// Annotation is a single encoder invocation. Exactly one of the geometry
// fields must be set.
//
// If the output size in Config is zero, the full tensor height and width
// are used.
type Annotation struct {
	Encoder string                `json:"encoder" yaml:"encoder" toml:"encoder"`
	Source  annotensor.SourceSize `json:"source" yaml:"source" toml:"source"`
	Config  annotensor.Config     `json:"config" yaml:"config" toml:"config"`

	Points   [][2]float64   `json:"points,omitempty" yaml:"points,omitempty" toml:"points,omitempty"`
	Polyline [][2]float64   `json:"polyline,omitempty" yaml:"polyline,omitempty" toml:"polyline,omitempty"`
	Path     []Segment      `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
	Pixels   [][2]int       `json:"pixels,omitempty" yaml:"pixels,omitempty" toml:"pixels,omitempty"`
	Polygon  [][][2]float64 `json:"polygon,omitempty" yaml:"polygon,omitempty" toml:"polygon,omitempty"`
	Image    *ImageData     `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
}

// Segment is one path command. Cmd is one of "M", "L", "Q", "C" and "Z",
// followed by 1, 1, 2, 3 and 0 points respectively.
type Segment struct {
	Cmd string       `json:"cmd" yaml:"cmd" toml:"cmd"`
	Pts [][2]float64 `json:"pts,omitempty" yaml:"pts,omitempty" toml:"pts,omitempty"`
}

// ImageData is an image given either inline or as a PNG or JPEG file.
// If File is set, the image size is taken from the file and the source
// size of the annotation may be left zero.
type ImageData struct {
	File     string    `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"`
	Gray     bool      `json:"gray,omitempty" yaml:"gray,omitempty" toml:"gray,omitempty"`
	Channels int       `json:"channels,omitempty" yaml:"channels,omitempty" toml:"channels,omitempty"`
	Pix      []uint8   `json:"pix,omitempty" yaml:"pix,omitempty" toml:"pix,omitempty"`
	Float    []float32 `json:"float,omitempty" yaml:"float,omitempty" toml:"float,omitempty"`
}

// Format is a job file format.
type Format int

// These are the supported job file formats.
const (
	YAML Format = iota
	JSON
	TOML
)

// FormatOf selects the format from the file name extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("%w: unknown file type %q", ErrInvalidJob, filepath.Ext(name))
}

// Load reads a job file. Relative image file names in the job are
// resolved against the directory containing the job file.
func Load(name string) (*Job, error) {
	format, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	j, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	j.dir = filepath.Dir(name)
	return j, nil
}

// Parse decodes and validates a job. JSON is read by the YAML decoder.
func Parse(data []byte, format Format) (*Job, error) {
	j := &Job{}
	switch format {
	case YAML, JSON:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(j); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
		}
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(j); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %d", ErrInvalidJob, format)
	}

	if err := j.Validate(); err != nil {
		return nil, err
	}
	return j, nil
}

// Validate checks the tensor shape, the element type and the encoder
// names. Geometry is only checked when the job runs.
func (j *Job) Validate() error {
	s := j.Shape
	if s.Batch <= 0 || s.Channels <= 0 || s.Height <= 0 || s.Width <= 0 {
		return fmt.Errorf("%w: invalid shape %dx%dx%dx%d",
			ErrInvalidJob, s.Batch, s.Channels, s.Height, s.Width)
	}
	if _, err := j.dtype(); err != nil {
		return err
	}
	for i, a := range j.Annotations {
		if _, ok := annotensor.New(a.Encoder); !ok {
			return fmt.Errorf("%w: annotation %d: unknown encoder %q (have %s)",
				ErrInvalidJob, i, a.Encoder, strings.Join(annotensor.Names(), ", "))
		}
	}
	return nil
}

func (j *Job) dtype() (tensor.DType, error) {
	if j.DType == "" {
		return tensor.Float32, nil
	}
	dt, err := tensor.ParseDType(j.DType)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	return dt, nil
}

// NewTensor allocates the zeroed output tensor of the job.
func (j *Job) NewTensor() (*tensor.Tensor, error) {
	dt, err := j.dtype()
	if err != nil {
		return nil, err
	}
	s := j.Shape
	return tensor.New(dt, s.Batch, s.Channels, s.Height, s.Width), nil
}
