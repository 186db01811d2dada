//go:build !linux

package chunker

import "os"

// SyncData: без fdatasync на платформе делаем полный fsync
func SyncData(f *os.File) error {
	return f.Sync()
}
