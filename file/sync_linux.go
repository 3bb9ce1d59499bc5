//go:build linux

package file

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile 只同步数据, 不强制刷新元数据
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
