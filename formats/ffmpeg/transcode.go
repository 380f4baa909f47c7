// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/idosh/clipwash/audio"
	"github.com/idosh/clipwash/formats/wav"
	"github.com/idosh/clipwash/logger"
)

// Available reports whether an ffmpeg executable is on PATH.
func Available() bool {
	_, err := exec.LookPath("ffmpeg")
	return err == nil
}

// outputArgs maps a target format and bitrate to ffmpeg output arguments.
func outputArgs(format, bitrate string) (ffmpeg.KwArgs, error) {
	switch format {
	case "mp3":
		return ffmpeg.KwArgs{"acodec": "libmp3lame", "ab": bitrate}, nil
	case "ogg":
		return ffmpeg.KwArgs{"acodec": "libvorbis", "ab": bitrate}, nil
	case "flac":
		return ffmpeg.KwArgs{"acodec": "flac"}, nil
	case "m4a":
		// The ipod muxer writes a plain .m4a container.
		return ffmpeg.KwArgs{"acodec": "aac", "ab": bitrate, "f": "ipod"}, nil
	case "wav":
		return ffmpeg.KwArgs{"acodec": "pcm_s16le"}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, format)
	}
}

// Encode renders buf into the target format via ffmpeg, going through a
// temporary 16-bit WAV intermediate. bitrate is an ffmpeg bitrate string
// such as "192k" and is ignored for lossless targets.
func Encode(ctx context.Context, buf *audio.Buffer, format, bitrate string) ([]byte, error) {
	if !Available() {
		return nil, ErrBinaryNotFound
	}
	args, err := outputArgs(format, bitrate)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := logger.WithComponent("ffmpeg-encode").WithField("format", format)

	tmpDir, err := os.MkdirTemp("", "clipwash-*")
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer os.RemoveAll(tmpDir)

	srcPath := filepath.Join(tmpDir, "source.wav")
	dstPath := filepath.Join(tmpDir, "target."+format)

	srcFile, err := os.Create(srcPath)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := wav.WritePCM16(srcFile, buf); err != nil {
		srcFile.Close()
		return nil, fmt.Errorf("write intermediate: %w", err)
	}
	if err := srcFile.Close(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	log.Debug().Str("bitrate", bitrate).Msg("running ffmpeg encode")
	err = ffmpeg.Input(srcPath).
		Output(dstPath, args).
		OverWriteOutput().
		Run()
	if err != nil {
		log.Error().Err(err).Msg("ffmpeg encode failed")
		return nil, fmt.Errorf("%w: %v", ErrTranscode, err)
	}

	data, err := os.ReadFile(dstPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscode, err)
	}
	return data, nil
}

// DecodeBytes decodes any container ffmpeg can read by transcoding it to a
// temporary 16-bit WAV and parsing that. It is the fallback for formats
// without a native decoder, such as M4A/AAC.
func DecodeBytes(ctx context.Context, data []byte, ext string) (audio.Source, error) {
	if !Available() {
		return nil, ErrBinaryNotFound
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := logger.WithComponent("ffmpeg-decode").WithField("ext", ext)

	tmpDir, err := os.MkdirTemp("", "clipwash-*")
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer os.RemoveAll(tmpDir)

	srcPath := filepath.Join(tmpDir, "source."+ext)
	dstPath := filepath.Join(tmpDir, "decoded.wav")

	if err := os.WriteFile(srcPath, data, 0o600); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	log.Debug().Msg("running ffmpeg decode")
	err = ffmpeg.Input(srcPath).
		Output(dstPath, ffmpeg.KwArgs{"acodec": "pcm_s16le"}).
		OverWriteOutput().
		Run()
	if err != nil {
		log.Error().Err(err).Msg("ffmpeg decode failed")
		return nil, fmt.Errorf("%w: %v", ErrTranscode, err)
	}

	decoded, err := os.Open(dstPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscode, err)
	}
	defer decoded.Close()

	// The wav decoder reads everything into memory, so the temp dir can be
	// removed as soon as this returns.
	return wav.Decoder{}.Decode(decoded)
}
