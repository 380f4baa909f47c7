// SPDX-License-Identifier: EPL-2.0

// Package reduce implements the noise and artifact cleanup chain.
//
// Reduce applies up to five stages in a fixed order, each gated by Options:
//
//  1. Spectral noise gate, scaled by Strength: short-time spectral
//     subtraction of a noise profile estimated from the quietest frames.
//  2. Click suppression: impulsive discontinuities are interpolated away.
//  3. Echo damping: delayed self-similar spectral content is attenuated.
//     An approximation, not deconvolution.
//  4. Silence trimming: long sub-threshold spans are removed with guard
//     intervals and fades at the cut points. The only stage that changes
//     the clip length.
//  5. Peak normalization to -1 dBFS.
//
// Usage:
//
//	opts := reduce.DefaultOptions()
//	opts.RemoveSilence = true
//	cleaned, report, err := reduce.Reduce(ctx, buf, opts)
//
// Reduce never mutates its input and is deterministic for identical input
// and options, so invocations for different clips can run in parallel
// without coordination.
package reduce
