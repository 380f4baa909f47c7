// SPDX-License-Identifier: EPL-2.0

// Package analysis computes objective quality metrics for decoded audio.
//
// Analyze measures peak level, average RMS, an estimated noise floor, an SNR
// estimate, the silence ratio and the clip duration, then derives a quality
// score, rating and set of issue tags from fixed thresholds:
//
//	result, err := analysis.Analyze(buf)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("score %d (%s)\n", result.Quality.Score, result.Quality.Rating)
//
// The noise floor is estimated without voice-activity detection: the clip is
// split into 50 ms frames and the floor is the mean RMS of the quietest 10%
// of them. The silence ratio counts frames below the floor plus a 3 dB margin,
// capped at an absolute -40 dBFS ceiling.
//
// All thresholds are policy constants exposed on Config; pass a custom Config
// to AnalyzeWithConfig to probe boundary values in tests. Analysis is pure and
// deterministic: the same buffer always yields a bit-identical Result.
package analysis
