// Copyright 2021 logicrec Project Authors
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

package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

var (
	gopath = path.Join(os.Getenv("GOPATH"), "src") + "/"
)

var (
	// ErrOpenFailed is returned when the database file cannot be opened in the requested mode.
	ErrOpenFailed = errors.New("Fail to open the file")
	// ErrAllocationFailed 保留给内存分配失败, Go 中不会出现
	ErrAllocationFailed = errors.New("Memory error")
	// ErrCorruptFile is returned when the file does not hold exactly one table.
	ErrCorruptFile = errors.New("Failed to load database")
	// ErrInvalidID is returned for ids outside [0, MaxRows).
	ErrInvalidID = errors.New("There is not that many records")
	// ErrSlotOccupied set 一个已经设置过的槽位
	ErrSlotOccupied = errors.New("Already set, delete it first")
	// ErrSlotEmpty get 一个没有设置的槽位
	ErrSlotEmpty = errors.New("ID is not set")
	// ErrWriteFailed is returned on a short write of the table.
	ErrWriteFailed = errors.New("Failed to write database")
	// ErrFlushFailed is returned when the table cannot be flushed to disk.
	ErrFlushFailed = errors.New("Cannot flush database")

	ErrClosed = errors.New("Database is closed")
)

// Panic 如果err 不为nil 则panicc
func Panic(err error) {
	if err != nil {
		panic(err)
	}
}

// Err 打印带调用位置的错误, 原样返回
func Err(w io.Writer, err error) error {
	if err != nil {
		fmt.Fprintf(w, "%s %s\n", location(2, true), err)
	}
	return err
}

func location(deep int, fullPath bool) string {
	_, file, line, ok := runtime.Caller(deep)
	if !ok {
		file = "???"
		line = 0
	}

	if fullPath {
		if strings.HasPrefix(file, gopath) {
			file = file[len(gopath):]
		}
	} else {
		file = filepath.Base(file)
	}
	return file + ":" + strconv.Itoa(line)
}

// ValidID 判断 id 是否落在 [0, MaxRows)
func ValidID(id int) bool {
	return id >= 0 && id < MaxRows
}
