package shroud

import (
	"errors"
	"testing"
)

func TestLengthError_Is(t *testing.T) {
	err := newLengthError(32, 16)

	if !errors.Is(err, ErrLengthMismatch) {
		t.Error("LengthError should unwrap to ErrLengthMismatch")
	}
	if errors.Is(err, ErrInvalidEncoding) {
		t.Error("LengthError should not match ErrInvalidEncoding")
	}
}

func TestEncodingError_Is(t *testing.T) {
	err := newEncodingError("hex", errors.New("bad byte"))

	if !errors.Is(err, ErrInvalidEncoding) {
		t.Error("EncodingError should unwrap to ErrInvalidEncoding")
	}
	if errors.Is(err, ErrLengthMismatch) {
		t.Error("EncodingError should not match ErrLengthMismatch")
	}
}

func TestRandomSourceError_Is(t *testing.T) {
	err := newRandomSourceError(errors.New("entropy pool closed"))

	if !errors.Is(err, ErrRandomSource) {
		t.Error("RandomSourceError should unwrap to ErrRandomSource")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "length error",
			err:  newLengthError(32, 16),
			want: "length mismatch: want 32 bytes, got 16",
		},
		{
			name: "encoding error with cause",
			err:  newEncodingError("hex", errors.New("bad byte")),
			want: "invalid encoding: hex: bad byte",
		},
		{
			name: "encoding error without cause",
			err:  &EncodingError{Encoding: "base64url"},
			want: "invalid encoding: base64url",
		},
		{
			name: "random source error with cause",
			err:  newRandomSourceError(errors.New("read failed")),
			want: "random source unavailable: read failed",
		},
		{
			name: "random source error without cause",
			err:  &RandomSourceError{},
			want: "random source unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
