// SPDX-License-Identifier: EPL-2.0

// Package ffmpeg shells out to the ffmpeg binary, via
// github.com/u2takey/ffmpeg-go, for the codecs that have no pure-Go
// implementation: MP3, Ogg Vorbis, FLAC and M4A/AAC encoding, and M4A
// decoding.
//
// All transfers go through a temporary 16-bit PCM WAV file. Callers should
// check Available() before relying on this package; every entry point
// returns ErrBinaryNotFound when ffmpeg is not on PATH.
package ffmpeg
