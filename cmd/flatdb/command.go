package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hardcore-os/flatdb"
	"github.com/hardcore-os/flatdb/utils"
	"github.com/pkg/errors"
)

const (
	actionCreate = 'c'
	actionGet    = 'g'
	actionSet    = 's'
	actionDelete = 'd'
	actionList   = 'l'
	actionInfo   = 'i'
	actionBatch  = 'b'
)

var errInvalidAction = errors.New("Invalid action, only: c=create, g=get, s=set, d=delete, l=list, i=info, b=batch")

// command 是解析过的一条动作, args 的第一个元素是动作本身
type command struct {
	action byte
	id     int
	name   string
	email  string
}

func parseCommand(args []string) (*command, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, errInvalidAction
	}
	cmd := &command{action: args[0][0]}
	switch cmd.action {
	case actionCreate, actionList, actionInfo:
		return cmd, nil
	case actionGet:
		if len(args) != 2 {
			return nil, errors.New("Need an id to get")
		}
	case actionSet:
		if len(args) != 4 {
			return nil, errors.New("Need id, name, email to set")
		}
		cmd.name, cmd.email = args[2], args[3]
	case actionDelete:
		if len(args) != 2 {
			return nil, errors.New("Need id to delete")
		}
	default:
		return nil, errInvalidAction
	}
	id, err := parseID(args[1])
	if err != nil {
		return nil, err
	}
	cmd.id = id
	return cmd, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid id %q", s)
	}
	if !utils.ValidID(id) {
		return 0, errors.Wrapf(utils.ErrInvalidID, "id %d", id)
	}
	return id, nil
}

// apply 执行动作并返回表是否被修改. create 由调用方处理
func (cmd *command) apply(db *flatdb.DB, out io.Writer) (bool, error) {
	switch cmd.action {
	case actionGet:
		slot, err := db.Get(cmd.id)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(out, slot)
	case actionSet:
		return true, db.Set(cmd.id, cmd.name, cmd.email)
	case actionDelete:
		return true, db.Del(cmd.id)
	case actionList:
		iter := db.NewIterator()
		defer func() { _ = iter.Close() }()
		for iter.Rewind(); iter.Valid(); iter.Next() {
			fmt.Fprintln(out, iter.Item())
		}
	case actionInfo:
		fmt.Fprintln(out, db.Info())
	default:
		return false, errInvalidAction
	}
	return false, nil
}
