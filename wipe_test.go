package shroud

import (
	"errors"
	"testing"
)

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	wipe(b)
	for i, c := range b {
		if c != 0 {
			t.Errorf("byte %d = %#x, want 0", i, c)
		}
	}
}

func TestWipe_Empty(t *testing.T) {
	wipe(nil)
	wipe([]byte{})
}

func TestGuard_WipesOnReturn(t *testing.T) {
	f := NewFixed([4]byte{1, 2, 3, 4})

	err := Guard(f, func(s *Fixed[[4]byte]) error {
		if s.Expose()[0] != 1 {
			t.Error("secret not intact inside Guard")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Guard: %v", err)
	}

	for i, b := range f.Expose() {
		if b != 0 {
			t.Errorf("byte %d = %#x after Guard, want 0", i, b)
		}
	}
}

func TestGuard_WipesOnError(t *testing.T) {
	sentinel := errors.New("send failed")
	d := DynamicFromString("token")

	err := Guard(d, func(*Dynamic) error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Guard error = %v, want %v", err, sentinel)
	}

	for i, b := range d.Expose() {
		if b != 0 {
			t.Errorf("byte %d = %#x after failing Guard, want 0", i, b)
		}
	}
}

func TestGuard_WipesOnPanic(t *testing.T) {
	f := NewFixed([4]byte{1, 2, 3, 4})

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the panic to propagate")
			}
		}()
		Guard(f, func(*Fixed[[4]byte]) error {
			panic("downstream failure")
		})
	}()

	for i, b := range f.Expose() {
		if b != 0 {
			t.Errorf("byte %d = %#x after panicking Guard, want 0", i, b)
		}
	}
}
