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

// Command annotensor encodes the annotations in a job file and writes
// every plane of the resulting tensor as a grayscale PNG image.
//
// Usage:
//
//	annotensor [-o dir] [-zoom n] [-v] job.yaml
//
// The job file may be given in YAML, JSON or TOML format. Output files are
// named plane_<batch>_<channel>.png.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/transform"

	"seehuhn.de/go/annotensor"
	"seehuhn.de/go/annotensor/internal/job"
	"seehuhn.de/go/annotensor/tensor"
)

func main() {
	outDir := flag.String("o", ".", "output directory")
	zoom := flag.Int("zoom", 1, "enlarge the output images by this factor")
	verbose := flag.Bool("v", false, "log details of the encoding")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] job-file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 || *zoom < 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	annotensor.SetLogger(logger)

	err := run(flag.Arg(0), *outDir, *zoom, logger)
	if err != nil {
		logger.Error("job failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(jobFile, outDir string, zoom int, logger *slog.Logger) error {
	j, err := job.Load(jobFile)
	if err != nil {
		return err
	}
	logger.Info("loaded job",
		slog.String("file", jobFile),
		slog.Int("annotations", len(j.Annotations)))

	dst, err := j.Run()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for b := range dst.Batch() {
		for c := range dst.Channels() {
			name := filepath.Join(outDir, fmt.Sprintf("plane_%d_%d.png", b, c))
			err := writePlane(name, dst, b, c, zoom)
			if err != nil {
				return err
			}
			logger.Debug("wrote plane", slog.String("file", name))
		}
	}
	return nil
}

// writePlane stores plane (b, c) as a PNG file. Float values in [0, 1]
// are mapped to [0, 255]; values outside this range are clamped.
func writePlane(name string, t *tensor.Tensor, b, c, zoom int) error {
	var img image.Image = planeImage(t, b, c)
	if zoom > 1 {
		img = transform.Resize(img, zoom*t.Width(), zoom*t.Height(), transform.NearestNeighbor)
	}

	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	err = png.Encode(fd, img)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func planeImage(t *tensor.Tensor, b, c int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, t.Width(), t.Height()))
	if t.DType() == tensor.Uint8 {
		copy(img.Pix, t.BytePlane(b, c).Pix)
		return img
	}
	for i, v := range t.Plane(b, c).Pix {
		img.Pix[i] = uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
	}
	return img
}
