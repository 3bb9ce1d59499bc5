package flatdb

import (
	"github.com/hardcore-os/flatdb/utils"
	"github.com/hardcore-os/flatdb/utils/codec"
)

// Iterator 按 id 升序遍历已设置的槽位
type Iterator interface {
	Next()
	Valid() bool
	Rewind()
	Item() *codec.Slot
	Close() error
	Seek(id int)
}

// SlotIterator 每一步都读取所属 DB 当前的表, 空槽位被跳过.
// DB 关闭后迭代器不再有效.
type SlotIterator struct {
	db  *DB
	pos int
}

// NewIterator 返回的迭代器需要先 Rewind 或 Seek
func (db *DB) NewIterator() Iterator {
	return &SlotIterator{db: db, pos: utils.MaxRows}
}

func (iter *SlotIterator) table() *codec.Table {
	if iter.db == nil {
		return nil
	}
	return iter.db.table
}

// Rewind 回到第一个已设置的槽位, 可以反复调用
func (iter *SlotIterator) Rewind() {
	iter.Seek(0)
}

// Seek 定位到 id 及之后的第一个已设置的槽位
func (iter *SlotIterator) Seek(id int) {
	if id < 0 {
		id = 0
	}
	iter.pos = id
	iter.skip()
}

func (iter *SlotIterator) Next() {
	if !iter.Valid() {
		return
	}
	iter.pos++
	iter.skip()
}

func (iter *SlotIterator) skip() {
	t := iter.table()
	if t == nil {
		iter.pos = utils.MaxRows
		return
	}
	for iter.pos < utils.MaxRows && !t.Rows[iter.pos].Set {
		iter.pos++
	}
}

func (iter *SlotIterator) Valid() bool {
	return iter.table() != nil && iter.pos < utils.MaxRows
}

// Item 返回当前槽位的拷贝
func (iter *SlotIterator) Item() *codec.Slot {
	if !iter.Valid() {
		return nil
	}
	slot := iter.table().Rows[iter.pos]
	return &slot
}

func (iter *SlotIterator) Close() error {
	iter.db = nil
	return nil
}
