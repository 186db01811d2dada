//go:build linux

package chunker

import (
	"os"

	"golang.org/x/sys/unix"
)

// SyncData сбрасывает только содержимое файла (fdatasync)
func SyncData(f *os.File) error {
	for {
		err := unix.Fdatasync(int(f.Fd()))
		if err != unix.EINTR {
			return err
		}
	}
}
