package flatdb

import (
	"io"
	"log/slog"
	"os"

	"github.com/hardcore-os/flatdb/utils"
)

// Mode 打开数据库的方式
type Mode int

const (
	// ModeModify 读写已有文件, 打开时加载整张表
	ModeModify Mode = iota
	// ModeCreate 截断或新建文件, 表从全空开始
	ModeCreate
)

// ParseMode 将命令行的动作字符映射为打开方式, 只有 'c' 是创建
func ParseMode(action byte) Mode {
	if action == 'c' {
		return ModeCreate
	}
	return ModeModify
}

func (m Mode) String() string {
	if m == ModeCreate {
		return "create"
	}
	return "modify"
}

func (m Mode) fileFlag() int {
	if m == ModeCreate {
		return utils.CreateFileFlag
	}
	return utils.ModifyFileFlag
}

type Options struct {
	Path       string
	Mode       Mode
	FileMode   os.FileMode
	SyncWrites bool
	Logger     *slog.Logger
}

// NewDefaultOptions 返回默认的options
func NewDefaultOptions(path string) *Options {
	opt := &Options{}
	opt.Path = path
	opt.Mode = ModeModify
	opt.FileMode = utils.DefaultFileMode
	opt.SyncWrites = true
	return opt
}

func (opt *Options) logger() *slog.Logger {
	if opt.Logger != nil {
		return opt.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
