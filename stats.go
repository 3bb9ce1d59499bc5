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

package flatdb

import (
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/hardcore-os/flatdb/utils"
)

type Stats struct {
	Occupied int    // 已设置的槽位数
	Free     int    // 空槽位数
	Size     int    // 序列化后的字节数
	Digest   uint64 // 内存中表镜像的 xxhash64
}

func (s *Stats) String() string {
	return fmt.Sprintf("occupied=%d free=%d size=%d digest=%016x", s.Occupied, s.Free, s.Size, s.Digest)
}

// Info 统计当前内存中的表, 与文件内容无关
func (db *DB) Info() *Stats {
	s := &Stats{}
	if db.table == nil {
		return s
	}
	for i := range db.table.Rows {
		if db.table.Rows[i].Set {
			s.Occupied++
		}
	}
	s.Free = utils.MaxRows - s.Occupied
	data := db.table.Encode()
	s.Size = len(data)
	s.Digest = xxhash.Sum64(data)
	return s
}
