// SPDX-License-Identifier: EPL-2.0

// Package clipwash cleans up voice recordings: it decodes common audio
// formats, measures objective quality, removes noise and artifacts, and
// re-encodes the result.
//
// # Supported Formats
//
// Decoding:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//   - M4A/AAC via formats/ffmpeg (requires an ffmpeg binary on PATH)
//
// Encoding: WAV natively, everything else through formats/ffmpeg.
//
// # Quick Start
//
// The typical pipeline is ingest, clean, convert:
//
//	data, _ := os.ReadFile("recording.mp3")
//
//	buf, err := clipwash.Ingest(data, "")
//	if err != nil {
//	    // ErrUnsupportedFormat, ErrCorruptData or audio.ErrEmptyInput
//	}
//
//	cleaned, report, err := clipwash.Reduce(ctx, buf, reduce.DefaultOptions())
//	if err != nil {
//	    // reduce.ErrInvalidOptions or reduce.ErrProcessing
//	}
//	_ = report.ProcessedDuration
//
//	out, err := clipwash.Convert(ctx, cleaned, convert.Options{
//	    Format:  "mp3",
//	    Bitrate: "192k",
//	})
//
// Analysis works on any decoded buffer:
//
//	result, _ := clipwash.Analyze(buf)
//	fmt.Println(result.Quality.Score, result.Quality.Rating)
//
// # Processing Pipeline
//
// For more control, build custom chains from the audio subpackage:
//
//	resampler := audio.NewResampler(source, 16000)
//	mono := audio.NewMonoMixer(resampler)
//
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Concurrency
//
// All operations are pure functions over their inputs: the same clip and
// options always produce the same output, input buffers are never
// modified, and concurrent calls on different inputs are safe. Long
// operations take a context.Context and stop between stages when it is
// cancelled.
package clipwash
