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
	"github.com/hardcore-os/flatdb/utils"
	"github.com/pkg/errors"
)

// Table 固定 MaxRows 个槽位
type Table struct {
	Rows [utils.MaxRows]Slot
}

// NewTable 返回所有槽位都为空的表, 槽位 id 与下标一致
func NewTable() *Table {
	t := &Table{}
	t.Reset()
	return t
}

// Reset 将所有槽位清空, id 与下标一致
func (t *Table) Reset() {
	for i := range t.Rows {
		t.Rows[i] = NewSlot(i)
	}
}

// Encode 序列化整张表, 长度恒为 TableSize
func (t *Table) Encode() []byte {
	buf := make([]byte, utils.TableSize)
	for i := range t.Rows {
		off := i * utils.SlotSize
		EncodeSlot(buf[off:off+utils.SlotSize], &t.Rows[i])
	}
	return buf
}

// DecodeTable 从完整的文件内容还原表, 字节数必须正好是 TableSize
func DecodeTable(data []byte) (*Table, error) {
	if len(data) != utils.TableSize {
		return nil, errors.Wrapf(utils.ErrCorruptFile, "expected %d bytes, got %d", utils.TableSize, len(data))
	}
	t := NewTable()
	for i := range t.Rows {
		off := i * utils.SlotSize
		s, err := DecodeSlot(data[off : off+utils.SlotSize])
		if err != nil {
			return nil, err
		}
		t.Rows[i] = s
	}
	return t, nil
}
