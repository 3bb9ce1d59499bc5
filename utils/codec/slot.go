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

package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/hardcore-os/flatdb/utils"
	"github.com/pkg/errors"
)

// Slot 表中一个定长的槽位
type Slot struct {
	ID    int32
	Set   bool
	Name  string
	Email string
}

// NewSlot 返回一个空槽位
func NewSlot(id int) Slot {
	return Slot{ID: int32(id)}
}

// WithData 写入 name/email, 超过 MaxStringLen 的部分被截掉
func (s *Slot) WithData(name, email string) *Slot {
	s.Name = Truncate(name)
	s.Email = Truncate(email)
	s.Set = true
	return s
}

func (s *Slot) String() string {
	return fmt.Sprintf("%d %s %s", s.ID, s.Name, s.Email)
}

// Truncate 按定长字段截断字符串: 先截到第一个 NUL, 再截到 MaxStringLen,
// 保证内存中的值与写盘后读回的值一致
func Truncate(str string) string {
	if i := strings.IndexByte(str, 0); i >= 0 {
		str = str[:i]
	}
	if len(str) > utils.MaxStringLen {
		return str[:utils.MaxStringLen]
	}
	return str
}

// EncodeSlot 将 slot 按固定布局写入 buf, buf 至少 SlotSize 字节
func EncodeSlot(buf []byte, s *Slot) {
	if len(buf) < utils.SlotSize {
		utils.Panic(errors.Errorf("slot buffer too small: %d", len(buf)))
	}
	binary.LittleEndian.PutUint32(buf[utils.SlotIDOffset:], uint32(s.ID))
	var set uint32
	if s.Set {
		set = 1
	}
	binary.LittleEndian.PutUint32(buf[utils.SlotSetOffset:], set)
	putFixed(buf[utils.SlotNameOffset:utils.SlotEmailOffset], s.Name)
	putFixed(buf[utils.SlotEmailOffset:utils.SlotSize], s.Email)
}

// DecodeSlot 从 buf 中按固定布局读出 slot
func DecodeSlot(buf []byte) (Slot, error) {
	if len(buf) < utils.SlotSize {
		return Slot{}, errors.Wrapf(utils.ErrCorruptFile, "slot needs %d bytes, got %d", utils.SlotSize, len(buf))
	}
	return Slot{
		ID:    int32(binary.LittleEndian.Uint32(buf[utils.SlotIDOffset:])),
		Set:   binary.LittleEndian.Uint32(buf[utils.SlotSetOffset:]) != 0,
		Name:  getFixed(buf[utils.SlotNameOffset:utils.SlotEmailOffset]),
		Email: getFixed(buf[utils.SlotEmailOffset:utils.SlotSize]),
	}, nil
}

// putFixed 拷贝字符串并用 NUL 填满剩余字节, 最后一个字节总是 NUL
func putFixed(field []byte, str string) {
	n := copy(field[:len(field)-1], str)
	for i := n; i < len(field); i++ {
		field[i] = 0
	}
}

// getFixed 读到第一个 NUL 为止
func getFixed(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}
