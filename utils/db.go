// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// SilenceFloorDB is the sentinel level reported for digital silence, where a
// true logarithm would be negative infinity.
const SilenceFloorDB = -96.0

// LinearToDB converts a linear amplitude to decibels (dBFS). Amplitudes at or
// below zero return SilenceFloorDB, and the result is never below it.
func LinearToDB(amplitude float64) float64 {
	if amplitude <= 0 {
		return SilenceFloorDB
	}
	db := 20 * math.Log10(amplitude)
	if db < SilenceFloorDB {
		return SilenceFloorDB
	}
	return db
}

// DBToLinear converts a decibel value to a linear amplitude.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
