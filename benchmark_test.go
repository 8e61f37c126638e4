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

package annotensor_test

import (
	"fmt"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/annotensor"
	"seehuhn.de/go/annotensor/testcases"
)

// BenchmarkEncode benchmarks all encoders on large outputs.
func BenchmarkEncode(b *testing.B) {
	for _, tc := range testcases.Large {
		b.Run(tc.Name, func(b *testing.B) {
			enc, ok := annotensor.New(tc.Encoder)
			if !ok {
				b.Fatalf("unknown encoder %q", tc.Encoder)
			}
			dst := tc.NewTensor()

			b.ReportAllocs()
			for b.Loop() {
				err := enc.Encode(tc.Geometry, tc.Source, dst, tc.Config)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCategories benchmarks each category of the regular test cases.
func BenchmarkCategories(b *testing.B) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases := testcases.All[category]
		b.Run(fmt.Sprintf("%s_%d", category, len(cases)), func(b *testing.B) {
			for b.Loop() {
				for _, tc := range cases {
					if _, err := tc.Encode(); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}
