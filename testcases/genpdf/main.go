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

// Command genpdf generates reference images for the geometric test cases.
// It draws the scaled annotations into PDFs and renders them to PNGs
// using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/annotensor"
	"seehuhn.de/go/annotensor/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Encoder == annotensor.ImageEncoderName {
				continue
			}
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	cfg := tc.Config
	w, h := float64(cfg.OutWidth), float64(cfg.OutHeight)

	// Page size in points (1 point = 1 cell at 72 DPI)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left and cell centres sit at half-integer
	// positions on the page.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	page.Transform(matrix.Matrix{1, 0, 0, 1, 0.5, 0.5})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	lineWidth := 1.0
	if cfg.Mode == annotensor.Heatmap {
		lineWidth = 2 * cfg.GaussianSigma
	}
	page.SetLineWidth(lineWidth)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	scale := func(p vec.Vec2) vec.Vec2 {
		return annotensor.Scale(p, tc.Source, cfg.OutHeight, cfg.OutWidth)
	}
	dot := func(p vec.Vec2) {
		q := scale(p)
		page.Rectangle(q.X-lineWidth/2, q.Y-lineWidth/2, lineWidth, lineWidth)
	}

	switch g := tc.Geometry.(type) {
	case annotensor.Points:
		for _, p := range g {
			dot(p)
		}
		page.Fill()

	case annotensor.PixelSet:
		for _, px := range g {
			dot(vec.Vec2{X: float64(px.X), Y: float64(px.Y)})
		}
		page.Fill()

	case annotensor.Polyline:
		if len(g) == 0 {
			break
		}
		q := scale(g[0])
		page.MoveTo(q.X, q.Y)
		for _, p := range g[1:] {
			q = scale(p)
			page.LineTo(q.X, q.Y)
		}
		page.Stroke()

	case annotensor.Path:
		if g.Data == nil || len(g.Cmds) == 0 {
			break
		}
		for cmd, pts := range g.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				q := scale(pts[0])
				page.MoveTo(q.X, q.Y)
			case path.CmdLineTo:
				q := scale(pts[0])
				page.LineTo(q.X, q.Y)
			case path.CmdCubeTo:
				c1, c2, q := scale(pts[0]), scale(pts[1]), scale(pts[2])
				page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, q.X, q.Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()

	case annotensor.Polygon:
		drawn := false
		for _, ring := range g {
			if len(ring) < 3 {
				continue
			}
			q := scale(ring[0])
			page.MoveTo(q.X, q.Y)
			for _, p := range ring[1:] {
				q = scale(p)
				page.LineTo(q.X, q.Y)
			}
			page.ClosePath()
			drawn = true
		}
		if drawn {
			page.Fill()
		}
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 cell)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
