package file

import (
	"io"
	"os"
)

// CoreFile 表文件需要的最小文件能力集合
type CoreFile interface {
	io.Reader
	io.Writer
	io.Seeker
	Sync() error
	Close() error
}

// osFile 用平台相关的方式刷盘
type osFile struct {
	*os.File
}

func (f osFile) Sync() error {
	return syncFile(f.File)
}
