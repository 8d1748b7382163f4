package shroud

import (
	"errors"
	"testing"
)

func TestLockUnlockMemory(t *testing.T) {
	b := make([]byte, 32)

	if err := LockMemory(b); err != nil {
		if !errors.Is(err, ErrMemoryLock) {
			t.Fatalf("LockMemory error = %v, want ErrMemoryLock", err)
		}
		// RLIMIT_MEMLOCK or an unsupported platform; best-effort by design.
		t.Skipf("memory locking unavailable: %v", err)
	}

	if err := UnlockMemory(b); err != nil {
		t.Fatalf("UnlockMemory: %v", err)
	}
}

func TestLockMemory_Empty(t *testing.T) {
	if err := LockMemory(nil); err != nil {
		t.Errorf("LockMemory(nil) = %v, want nil", err)
	}
	if err := UnlockMemory(nil); err != nil {
		t.Errorf("UnlockMemory(nil) = %v, want nil", err)
	}
}
