// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestLinearToDB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		amplitude float64
		want      float64
		tolerance float64
	}{
		{
			name:      "full scale is 0 dB",
			amplitude: 1.0,
			want:      0.0,
			tolerance: 1e-9,
		},
		{
			name:      "half scale",
			amplitude: 0.5,
			want:      -6.0206,
			tolerance: 0.001,
		},
		{
			name:      "zero returns sentinel floor",
			amplitude: 0.0,
			want:      SilenceFloorDB,
			tolerance: 0,
		},
		{
			name:      "negative returns sentinel floor",
			amplitude: -0.5,
			want:      SilenceFloorDB,
			tolerance: 0,
		},
		{
			name:      "tiny value clamps to sentinel floor",
			amplitude: 1e-10,
			want:      SilenceFloorDB,
			tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToDB(tt.amplitude)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("LinearToDB(%v) = %v, want %v", tt.amplitude, got, tt.want)
			}
		})
	}
}

func TestDBToLinear_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, db := range []float64{0, -1, -3, -20, -60} {
		back := LinearToDB(DBToLinear(db))
		if math.Abs(back-db) > 1e-9 {
			t.Errorf("LinearToDB(DBToLinear(%v)) = %v, want %v", db, back, db)
		}
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.5, 0, 1, 0},
		{1.5, 0, 1, 1},
		{-96, -96, 0, -96},
	}

	for _, tt := range tests {
		if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}
