//go:build unix

package shroud

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func lockMemory(b []byte) error {
	if err := unix.Mlock(b); err != nil {
		return fmt.Errorf("%w: mlock: %v", ErrMemoryLock, err)
	}
	return nil
}

func unlockMemory(b []byte) error {
	if err := unix.Munlock(b); err != nil {
		return fmt.Errorf("%w: munlock: %v", ErrMemoryLock, err)
	}
	return nil
}
