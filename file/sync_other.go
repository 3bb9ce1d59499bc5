//go:build !linux

package file

import "os"

func syncFile(f *os.File) error {
	return f.Sync()
}
