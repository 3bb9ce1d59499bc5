// Copyright 2021 hardcore-os Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License")
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package file

import (
	"io"
	"os"

	"github.com/hardcore-os/flatdb/utils"
	"github.com/pkg/errors"
)

// Options
type Options struct {
	FileName string
	Flag     int
	FileMode os.FileMode
	// SyncWrites 为 false 时 Rewrite 不做 fdatasync
	SyncWrites bool
}

// TableFile 持有数据库文件句柄, 只做整表读写
type TableFile struct {
	f   CoreFile
	opt *Options
}

// OpenTableFile 按 opt.Flag 打开文件
func OpenTableFile(opt *Options) (*TableFile, error) {
	mode := opt.FileMode
	if mode == 0 {
		mode = utils.DefaultFileMode
	}
	f, err := os.OpenFile(opt.FileName, opt.Flag, mode)
	if err != nil {
		return nil, errors.Wrapf(utils.ErrOpenFailed, "%s: %v", opt.FileName, err)
	}
	return NewTableFile(osFile{f}, opt), nil
}

// NewTableFile 包装一个已经打开的文件
func NewTableFile(f CoreFile, opt *Options) *TableFile {
	return &TableFile{f: f, opt: opt}
}

// Name 文件路径
func (tf *TableFile) Name() string {
	return tf.opt.FileName
}

// ReadAll 从头读出 size 字节, 文件必须恰好是 size 字节
func (tf *TableFile) ReadAll(size int) ([]byte, error) {
	if _, err := tf.f.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrapf(utils.ErrCorruptFile, "%s: %v", tf.Name(), err)
	}
	buf := make([]byte, size)
	n, err := io.ReadFull(tf.f, buf)
	if err != nil {
		return nil, errors.Wrapf(utils.ErrCorruptFile, "%s: read %d of %d bytes", tf.Name(), n, size)
	}
	// 多出来的字节同样视为损坏
	var extra [1]byte
	m, err := tf.f.Read(extra[:])
	if m != 0 {
		return nil, errors.Wrapf(utils.ErrCorruptFile, "%s: trailing bytes after %d", tf.Name(), size)
	}
	if err != nil && err != io.EOF {
		return nil, errors.Wrapf(utils.ErrCorruptFile, "%s: %v", tf.Name(), err)
	}
	return buf, nil
}

// Rewrite 回到文件开头, 一次写入全部数据并刷盘
func (tf *TableFile) Rewrite(data []byte) error {
	if _, err := tf.f.Seek(0, io.SeekStart); err != nil {
		return errors.Wrapf(utils.ErrWriteFailed, "%s: %v", tf.Name(), err)
	}
	n, err := tf.f.Write(data)
	if err != nil || n != len(data) {
		return errors.Wrapf(utils.ErrWriteFailed, "%s: wrote %d of %d bytes: %v", tf.Name(), n, len(data), err)
	}
	if !tf.opt.SyncWrites {
		return nil
	}
	if err := tf.f.Sync(); err != nil {
		return errors.Wrapf(utils.ErrFlushFailed, "%s: %v", tf.Name(), err)
	}
	return nil
}

// Close 允许重复调用
func (tf *TableFile) Close() error {
	if tf == nil || tf.f == nil {
		return nil
	}
	err := tf.f.Close()
	tf.f = nil
	return err
}
