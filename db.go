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

package flatdb

import (
	"log/slog"

	"github.com/hardcore-os/flatdb/file"
	"github.com/hardcore-os/flatdb/utils"
	"github.com/hardcore-os/flatdb/utils/codec"
	"github.com/pkg/errors"
)

type (
	// flatdb对外提供的功能集合
	CoreAPI interface {
		Create() error
		Set(id int, name, email string) error
		Get(id int) (*codec.Slot, error)
		Del(id int) error
		NewIterator() Iterator
		List() ([]*codec.Slot, error)
		Write() error
		Info() *Stats
		Close() error
	}

	// DB 持有文件句柄和内存中的表, 两者一起打开一起释放
	DB struct {
		opt   *Options
		log   *slog.Logger
		f     *file.TableFile
		table *codec.Table
	}
)

var _ CoreAPI = (*DB)(nil)

// Open 按 opt.Mode 打开数据库文件. ModeModify 下会立刻加载整张表,
// ModeCreate 下得到一张全空的表, 槽位 id 已与下标一致.
func Open(opt *Options) (*DB, error) {
	if opt == nil || opt.Path == "" {
		return nil, errors.Wrap(utils.ErrOpenFailed, "no database path")
	}
	db := &DB{opt: opt, log: opt.logger()}
	f, err := file.OpenTableFile(&file.Options{
		FileName:   opt.Path,
		Flag:       opt.Mode.fileFlag(),
		FileMode:   opt.FileMode,
		SyncWrites: opt.SyncWrites,
	})
	if err != nil {
		return nil, err
	}
	db.f = f
	if opt.Mode == ModeCreate {
		db.table = codec.NewTable()
		db.log.Debug("database opened", "path", opt.Path, "mode", opt.Mode)
		return db, nil
	}
	if err := db.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	db.log.Debug("database loaded", "path", opt.Path, "occupied", db.Info().Occupied)
	return db, nil
}

func (db *DB) load() error {
	data, err := db.f.ReadAll(utils.TableSize)
	if err != nil {
		return err
	}
	table, err := codec.DecodeTable(data)
	if err != nil {
		return errors.WithMessage(err, db.opt.Path)
	}
	db.table = table
	return nil
}

// Close 只释放资源, 不会隐式写盘. 重复调用或者对半初始化的句柄调用都是安全的
func (db *DB) Close() error {
	if db == nil {
		return nil
	}
	db.table = nil
	if db.f == nil {
		return nil
	}
	err := db.f.Close()
	db.f = nil
	if db.log != nil {
		db.log.Debug("database closed", "path", db.opt.Path)
	}
	return err
}

func (db *DB) check(id int) error {
	if db.table == nil {
		return utils.ErrClosed
	}
	if !utils.ValidID(id) {
		return errors.Wrapf(utils.ErrInvalidID, "id %d", id)
	}
	return nil
}

// Create 清空所有槽位, 槽位 id 与下标一致
func (db *DB) Create() error {
	if db.table == nil {
		return utils.ErrClosed
	}
	db.table.Reset()
	return nil
}

// Set 写入第 id 条记录, 已经设置过的槽位必须先删除
func (db *DB) Set(id int, name, email string) error {
	if err := db.check(id); err != nil {
		return err
	}
	slot := &db.table.Rows[id]
	if slot.Set {
		return errors.Wrapf(utils.ErrSlotOccupied, "id %d", id)
	}
	slot.WithData(name, email)
	return nil
}

// Get 返回第 id 条记录的拷贝
func (db *DB) Get(id int) (*codec.Slot, error) {
	if err := db.check(id); err != nil {
		return nil, err
	}
	slot := db.table.Rows[id]
	if !slot.Set {
		return nil, errors.Wrapf(utils.ErrSlotEmpty, "id %d", id)
	}
	return &slot, nil
}

// Del 将第 id 条记录标记为未设置, 删除空槽位不是错误
func (db *DB) Del(id int) error {
	if err := db.check(id); err != nil {
		return err
	}
	db.table.Rows[id] = codec.NewSlot(id)
	return nil
}

// List 按 id 升序返回所有已设置的记录
func (db *DB) List() ([]*codec.Slot, error) {
	if db.table == nil {
		return nil, utils.ErrClosed
	}
	iter := db.NewIterator()
	defer func() { _ = iter.Close() }()
	var res []*codec.Slot
	for iter.Rewind(); iter.Valid(); iter.Next() {
		res = append(res, iter.Item())
	}
	return res, nil
}

// Write 序列化整张表并覆盖写回文件
func (db *DB) Write() error {
	if db.table == nil || db.f == nil {
		return utils.ErrClosed
	}
	if err := db.f.Rewrite(db.table.Encode()); err != nil {
		return err
	}
	db.log.Debug("database written", "path", db.opt.Path, "bytes", utils.TableSize)
	return nil
}
