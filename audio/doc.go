// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the building blocks the rest of the module works on:
//   - Buffer, the in-memory representation of a decoded clip
//   - Source interface for streaming audio input
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Format registry for decoder registration
//
// # Buffer
//
// The Buffer holds a whole decoded clip as de-interleaved per-channel float64
// samples plus a sample rate. Processing stages take a Buffer and return a
// new one; a Buffer is never modified in place:
//
//	buf, err := audio.ReadAll(source)
//	resampled, err := audio.ResampleBuffer(buf, 22050)
//	mono, err := audio.MixToMono(buf)
//
// # Source Interface
//
// The Source interface is the streaming side of the package:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders and stream processors implement this interface, allowing
// them to be chained together. NewBufferSource adapts a Buffer back into a
// Source so decoded clips can be fed through the same chain.
//
// # Resampling
//
// The Resampler changes the sample rate of audio using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 16000)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// Resampling works for both upsampling and downsampling.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//
// The analyzer measures clips through a mono mixdown.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Samples are normalized to the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Streaming sources carry float32; Buffers widen to float64 so spectral
// processing does not accumulate rounding error.
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available. Other
// errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
