package wav

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrNotWavFile, "not a WAV file"},
		{ErrTruncatedData, "truncated WAV data"},
		{ErrUnsupportedBitDepth, "unsupported WAV bit depth"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	for _, sentinel := range []error{ErrNotWavFile, ErrTruncatedData, ErrUnsupportedBitDepth} {
		wrapped := fmt.Errorf("%w: context", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, sentinel)
		}
	}
}
