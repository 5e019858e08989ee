//go:build linux || freebsd

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data to stable storage.
//
// fdatasync skips the metadata flush a full fsync pays for; the rename
// that follows carries the metadata update.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
