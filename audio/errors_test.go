package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrInvalidDstSize(t *testing.T) {
	t.Parallel()

	if got, want := ErrInvalidDstSize.Error(), "dst size must be multiple of channels"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := fmt.Errorf("resampling: %w", ErrInvalidDstSize)
	if !errors.Is(wrapped, ErrInvalidDstSize) {
		t.Error("errors.Is() = false for wrapped ErrInvalidDstSize")
	}
}
