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

package utils

import "os"

// table
const (
	// MaxRows 表中固定的槽位数量, 下标即 id
	MaxRows = 100
	// MaxData name/email 字段的定长宽度, 含结尾的 NUL
	MaxData = 512
	// MaxStringLen 可以保存的最长字符串
	MaxStringLen = MaxData - 1
	// IntSize 与 C 的 int 对齐, 固定 4 字节小端
	IntSize = 4
)

// slot layout: id | set | name | email
const (
	SlotIDOffset    = 0
	SlotSetOffset   = SlotIDOffset + IntSize
	SlotNameOffset  = SlotSetOffset + IntSize
	SlotEmailOffset = SlotNameOffset + MaxData
	SlotSize        = SlotEmailOffset + MaxData
	TableSize       = MaxRows * SlotSize
)

// file
const (
	CreateFileFlag  = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	ModifyFileFlag  = os.O_RDWR
	DefaultFileMode = 0666
)
