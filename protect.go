package shroud

// Best-effort memory protection for long-lived secrets. Like the encode
// helpers, these operate on exposed views, never wrapper types:
//
//	if err := shroud.LockMemory(key.Expose()); err != nil { ... }
//	defer shroud.UnlockMemory(key.Expose())
//
// Locking pins the pages backing the view so they are not written to swap.
// This does not stop the Go runtime from moving or copying values on its
// own (stack growth, GC); it narrows the window, it does not close it.
// Wiping remains the primary control.

// LockMemory pins the pages backing b into RAM. On platforms without
// memory locking, and when the OS refuses (for example RLIMIT_MEMLOCK),
// it returns an error wrapping ErrMemoryLock.
func LockMemory(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return lockMemory(b)
}

// UnlockMemory releases a LockMemory pin. Call it before the buffer is
// wiped and released.
func UnlockMemory(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unlockMemory(b)
}
