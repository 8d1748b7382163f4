//go:build !unix

package shroud

import (
	"fmt"
	"runtime"
)

func lockMemory(_ []byte) error {
	return fmt.Errorf("%w: not supported on %s", ErrMemoryLock, runtime.GOOS)
}

func unlockMemory(_ []byte) error {
	return fmt.Errorf("%w: not supported on %s", ErrMemoryLock, runtime.GOOS)
}
